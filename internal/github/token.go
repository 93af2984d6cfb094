package github

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/releng/relkit/internal/errors"
)

// TokenEnvVar is the environment variable consulted first for a credential.
const TokenEnvVar = "GH_ACCESS_TOKEN"

// ResolveToken resolves the GitHub bearer credential: the GH_ACCESS_TOKEN
// environment variable wins, then the configured token file (a leading
// "~/" expands to the home directory). When neither yields a token the
// whole run must stop before any fetch is attempted, so a Configuration
// error is returned.
func ResolveToken(tokenFile string) (string, error) {
	if token := strings.TrimSpace(os.Getenv(TokenEnvVar)); token != "" {
		return token, nil
	}

	path := ExpandHome(tokenFile)
	data, err := os.ReadFile(path)
	if err == nil {
		if token := strings.TrimSpace(string(data)); token != "" {
			return token, nil
		}
	}

	return "", errors.MissingCredential(tokenFile)
}

// ExpandHome expands a leading "~/" to the user's home directory.
// Paths without the prefix pass through unchanged.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
