package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releng/relkit/internal/changelog"
	"github.com/releng/relkit/internal/errors"
)

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err      error
		expected int
	}{
		"nil is success":                 {err: nil, expected: ExitSuccess},
		"input error":                    {err: errors.MalformedVersion("1.2"), expected: ExitInvalidInput},
		"configuration error":            {err: errors.MissingCredential("~/.githubtoken"), expected: ExitMissingDependencies},
		"runtime error":                  {err: errors.MissingReleaseTag("0.1.0"), expected: ExitRuntime},
		"plain error is runtime failure": {err: fmt.Errorf("boom"), expected: ExitRuntime},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExitCode(tc.err))
		})
	}
}

func TestSplitLanguages(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected []string
	}{
		"comma separated":    {input: "cpp,python,rust", expected: []string{"cpp", "python", "rust"}},
		"single":             {input: "rust", expected: []string{"rust"}},
		"spaces trimmed":     {input: " cpp , rust ", expected: []string{"cpp", "rust"}},
		"empty string":       {input: "", expected: nil},
		"whitespace only":    {input: "   ", expected: nil},
		"trailing separator": {input: "rust,", expected: []string{"rust"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, splitLanguages(tc.input))
		})
	}
}

func TestCountPRs(t *testing.T) {
	records := []changelog.CommitRecord{
		changelog.Classify("Fix bug (#10)", "a"),
		changelog.Classify("Direct tweak", "b"),
		changelog.Classify("Merge pull request #11 from alice/feature", "c"),
	}
	assert.Equal(t, 2, countPRs(records))
	assert.Equal(t, 0, countPRs(nil))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "relkit dev")
}

func TestChangelogCommand_RejectsMalformedVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"changelog", "--version", "not-a-version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitInvalidInput, ExitCode(err))
}
