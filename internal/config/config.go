// Package config provides hierarchical configuration management for relkit
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.relkit.yml) > user config (~/.config/relkit/config.yml) >
// defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// GitHubConfig identifies the repository whose PRs are resolved and the
// credential source used to reach the API.
type GitHubConfig struct {
	// Owner is the GitHub organization or user owning the repository.
	Owner string `koanf:"owner"`
	// Repo is the repository name.
	Repo string `koanf:"repo"`
	// TokenFile is the fallback credential file consulted when
	// GH_ACCESS_TOKEN is not set. Supports a leading "~/".
	TokenFile string `koanf:"token_file"`
	// APIBaseURL is the GitHub API root. Overridable for GitHub
	// Enterprise installs and for tests.
	APIBaseURL string `koanf:"api_base_url"`
}

// ChangelogConfig tunes the changelog synthesizer.
type ChangelogConfig struct {
	// ExcludeLabels suppresses any PR carrying one of these labels.
	ExcludeLabels []string `koanf:"exclude_labels"`
	// IncludeLabels appends the PR's label list to each entry.
	// It adds quite a bit of visual noise, so it defaults to off.
	IncludeLabels bool `koanf:"include_labels"`
	// Concurrency bounds the number of in-flight PR lookups.
	// Zero means one worker per CPU.
	Concurrency int `koanf:"concurrency"`
}

// TemplateConfig identifies the upstream template repository.
type TemplateConfig struct {
	// URL is the clone URL of the upstream template.
	URL string `koanf:"url"`
	// Keep lists downstream files that update must never overwrite,
	// in addition to the manifest's do_not_overwrite set.
	Keep []string `koanf:"keep"`
}

// Configuration represents the relkit CLI tool configuration.
type Configuration struct {
	GitHub    GitHubConfig    `koanf:"github"`
	Changelog ChangelogConfig `koanf:"changelog"`
	Template  TemplateConfig  `koanf:"template"`
}

// Load loads configuration from user, project, and environment sources.
// Priority: environment variables > project config > user config > defaults.
// projectConfigPath overrides the project config location when non-empty
// (default: .relkit.yml in the current directory).
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if path, err := UserConfigPath(); err == nil && fileExists(path) {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading user config %s: %w", path, err)
		}
	}

	projectPath := projectConfigPath
	if projectPath == "" {
		projectPath = ProjectConfigPath()
	}
	if fileExists(projectPath) {
		if err := k.Load(file.Provider(projectPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading project config %s: %w", projectPath, err)
		}
	}

	if err := k.Load(env.Provider("RELKIT_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// envTransform maps RELKIT_GITHUB_OWNER to github.owner and so on.
// Only the first underscore becomes a separator so multi-word keys
// like exclude_labels survive.
func envTransform(s string) string {
	s = strings.TrimPrefix(s, "RELKIT_")
	s = strings.ToLower(s)
	return strings.Replace(s, "_", ".", 1)
}

// UserConfigPath returns the XDG-compliant user config path.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "relkit", "config.yml"), nil
}

// ProjectConfigPath returns the default project-level config path.
func ProjectConfigPath() string {
	return ".relkit.yml"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
