package cli

import "github.com/releng/relkit/internal/errors"

// Exit codes for the relkit CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitRuntime indicates a runtime failure (missing tag, clone failure)
	ExitRuntime = 1

	// ExitInvalidInput indicates invalid command input (bad version, unknown language)
	ExitInvalidInput = 3

	// ExitMissingDependencies indicates a required credential or dependency is missing
	ExitMissingDependencies = 4
)

// ExitCode maps an error to its process exit code. Categorized errors
// map by category; anything else is a runtime failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case errors.Input:
			return ExitInvalidInput
		case errors.Configuration:
			return ExitMissingDependencies
		}
	}
	return ExitRuntime
}
