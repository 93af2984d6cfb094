package config

import "github.com/knadh/koanf/v2"

// Default label policy: typo PRs are high-frequency and low-value in a
// changelog, and maintainers can opt any PR out explicitly.
var defaultExcludeLabels = []string{"exclude from changelog", "typo"}

// GetDefaults returns the default configuration values keyed by koanf path.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"github.owner":             "rerun-io",
		"github.repo":              "egui_tiles",
		"github.token_file":        "~/.githubtoken",
		"github.api_base_url":      "https://api.github.com",
		"changelog.exclude_labels": defaultExcludeLabels,
		"changelog.include_labels": false,
		"changelog.concurrency":    0,
		"template.url":             "https://github.com/rerun-io/rerun_template.git",
		"template.keep":            []string{},
	}
}

func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# relkit configuration
# Project config lives at .relkit.yml, user config at ~/.config/relkit/config.yml.
# Environment overrides use the RELKIT_ prefix, e.g. RELKIT_GITHUB_OWNER.

github:
  owner: rerun-io                     # Repository owner for PR lookups
  repo: egui_tiles                    # Repository name
  token_file: ~/.githubtoken          # Fallback token file (GH_ACCESS_TOKEN wins)
  api_base_url: https://api.github.com

changelog:
  exclude_labels:                     # PRs with any of these labels are dropped
    - exclude from changelog
    - typo
  include_labels: false               # Append label lists to entries
  concurrency: 0                      # Parallel PR lookups (0 = CPU count)

template:
  url: https://github.com/rerun-io/rerun_template.git
  keep: []                            # Extra files 'template update' must not overwrite
`
}
