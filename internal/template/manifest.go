// Package template reconciles a downstream repository's file set against
// the upstream template it was generated from, gated by the set of
// languages the downstream project supports.
package template

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/releng/relkit/internal/errors"
)

//go:embed manifest.yaml
var embeddedManifest []byte

// LanguageFiles lists the files a single language needs from the template.
type LanguageFiles struct {
	Files []string `yaml:"files"`
}

// Manifest describes the template's language-specific file sets, the
// downstream-owned files update must never touch, and files removed in
// newer template versions.
type Manifest struct {
	Upstream       string                   `yaml:"upstream"`
	DoNotOverwrite []string                 `yaml:"do_not_overwrite"`
	DeadFiles      []string                 `yaml:"dead_files"`
	Languages      map[string]LanguageFiles `yaml:"languages"`
}

// LoadManifest parses the embedded manifest.
func LoadManifest() (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(embeddedManifest, &m); err != nil {
		return nil, fmt.Errorf("parsing embedded template manifest: %w", err)
	}
	if len(m.Languages) == 0 {
		return nil, fmt.Errorf("embedded template manifest lists no languages")
	}
	return &m, nil
}

// SupportedLanguages returns the manifest's language names, sorted.
func (m *Manifest) SupportedLanguages() []string {
	names := make([]string, 0, len(m.Languages))
	for name := range m.Languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseLanguages validates a slice of language names against the
// manifest. Unknown names are an input error. An empty slice is valid
// and yields the empty set (every language-specific file gets denied).
func (m *Manifest) ParseLanguages(langs []string) (map[string]bool, error) {
	set := make(map[string]bool, len(langs))
	for _, lang := range langs {
		if _, ok := m.Languages[lang]; !ok {
			return nil, errors.UnsupportedLanguage(lang, m.SupportedLanguages())
		}
		set[lang] = true
	}
	return set, nil
}

// DenySet computes the files to delete or ignore for the chosen
// languages: the union of every language's file set, minus the file set
// of each language the downstream project keeps.
func (m *Manifest) DenySet(languages map[string]bool) map[string]bool {
	deny := make(map[string]bool)
	for _, lang := range m.Languages {
		for _, f := range lang.Files {
			deny[f] = true
		}
	}
	for name := range languages {
		for _, f := range m.Languages[name].Files {
			delete(deny, f)
		}
	}
	return deny
}
