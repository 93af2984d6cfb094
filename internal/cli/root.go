// Package cli wires the relkit commands: the changelog synthesizer and
// the template synchronization tool.
package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/releng/relkit/internal/errors"
	"github.com/releng/relkit/internal/gitlog"
)

var (
	configFlag string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "relkit",
	Short: "Release engineering utilities",
	Long: `relkit bundles the release-engineering utilities for template-based
repositories: a changelog synthesizer that summarizes recent PRs from
git history, and a template synchronizer that reconciles a downstream
repository against its upstream template.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			gitlog.SetDebugLogger(log.Printf)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to project config file (default .relkit.yml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}

// Execute runs the root command. Categorized errors are rendered with
// remediation guidance; the caller maps the error to an exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
	} else {
		errors.PrintError(errors.Wrap(err, errors.Runtime))
	}
	return err
}
