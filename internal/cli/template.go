package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/releng/relkit/internal/config"
	"github.com/releng/relkit/internal/output"
	"github.com/releng/relkit/internal/template"
)

var (
	templateLanguagesFlag string
	templateDryRunFlag    bool
	templatePathFlag      string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Synchronize this repository with its upstream template",
	Long: `Commands for reconciling a downstream repository's file set against the
upstream template it was generated from.

In either case, make sure the list of languages matches the languages
the repository supports. Use --dry-run to see what would happen without
actually changing anything.`,
}

var templateInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Remove language-specific files not needed by this repository",
	Long: `Clean out template files for languages this repository does not support.
Run once after generating a new repository from the template.

Example:
  relkit template init --languages cpp,rust`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		syncer, languages, err := newSyncer(cmd)
		if err != nil {
			return err
		}
		return syncer.Init(languages)
	},
}

var templateUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update this repository with the latest template changes",
	Long: `Clone the upstream template and copy its files over this repository,
skipping files owned by the downstream project and files belonging to
unsupported languages.

Example:
  relkit template update --languages rust --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		syncer, languages, err := newSyncer(cmd)
		if err != nil {
			return err
		}
		return syncer.Update(cmd.Context(), languages)
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateInitCmd)
	templateCmd.AddCommand(templateUpdateCmd)

	for _, cmd := range []*cobra.Command{templateInitCmd, templateUpdateCmd} {
		cmd.Flags().StringVar(&templateLanguagesFlag, "languages", "", "The languages to support (e.g. cpp,python,rust)")
		cmd.Flags().BoolVar(&templateDryRunFlag, "dry-run", false, "Don't actually change any files")
		cmd.Flags().StringVar(&templatePathFlag, "path", ".", "Downstream repository root")
	}
}

// newSyncer builds the template syncer and validated language set shared
// by the init and update subcommands.
func newSyncer(cmd *cobra.Command) (*template.Syncer, map[string]bool, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, nil, err
	}

	manifest, err := template.LoadManifest()
	if err != nil {
		return nil, nil, err
	}

	languages, err := manifest.ParseLanguages(splitLanguages(templateLanguagesFlag))
	if err != nil {
		return nil, nil, err
	}

	if templateDryRunFlag {
		output.PrintWarning(cmd.ErrOrStderr(), "dry run: no files will be changed")
	}

	syncer := &template.Syncer{
		Manifest:    manifest,
		Root:        templatePathFlag,
		UpstreamURL: cfg.Template.URL,
		ExtraKeep:   cfg.Template.Keep,
		DryRun:      templateDryRunFlag,
		Out:         cmd.OutOrStdout(),
	}
	return syncer, languages, nil
}

func splitLanguages(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
