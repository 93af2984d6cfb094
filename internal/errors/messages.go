package errors

import "fmt"

// Common error messages for the relkit CLI.
// These templates ensure consistent, actionable error messages.

// MalformedVersion creates an error for a version string that is not
// exactly three dot-separated integer components.
func MalformedVersion(version string) *CLIError {
	return NewInputErrorWithUsage(
		fmt.Sprintf("invalid version %q: expected the format X.Y.Z", version),
		"relkit changelog --version <X.Y.Z>",
		"Provide the new release version with major, minor, and patch components",
		"Example: relkit changelog --version 0.42.0",
	)
}

// MissingCredential creates an error for an unresolvable GitHub token.
func MissingCredential(tokenFile string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("expected a GitHub token in the environment variable GH_ACCESS_TOKEN or in %s", tokenFile),
		"Export GH_ACCESS_TOKEN with a personal access token",
		fmt.Sprintf("Or write the token to %s", tokenFile),
	)
}

// UnsupportedLanguage creates an error for a language name outside the
// template manifest.
func UnsupportedLanguage(lang string, supported []string) *CLIError {
	return NewInputErrorWithUsage(
		fmt.Sprintf("unsupported language %q", lang),
		"relkit template update --languages <cpp,python,rust>",
		fmt.Sprintf("Supported languages: %v", supported),
	)
}

// MissingReleaseTag creates an error for an unresolvable previous release tag.
func MissingReleaseTag(tag string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("release tag %q not found in repository", tag),
		"Check that the previous release was tagged",
		"Run 'git tag' to list available tags",
	)
}

// NotARepository creates an error for a path that is not inside a git repository.
func NotARepository(path string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("%s is not inside a git repository", path),
		"Run relkit from the repository you are releasing",
		"Or pass --path pointing at the repository root",
	)
}
