package cli

import (
	"github.com/spf13/cobra"

	"github.com/releng/relkit/internal/changelog"
	"github.com/releng/relkit/internal/config"
	"github.com/releng/relkit/internal/github"
	"github.com/releng/relkit/internal/gitlog"
	"github.com/releng/relkit/internal/output"
)

var (
	changelogVersionFlag string
	changelogLabelsFlag  bool
	changelogPathFlag    string
)

var changelogCmd = &cobra.Command{
	Use:   "changelog --version <X.Y.Z>",
	Short: "Summarize recent PRs into a changelog section",
	Long: `Summarize the PRs merged since the previous release into a changelog
section, based on git history and live GitHub PR metadata.

The commit range is derived from the release version: a patch release
diffs against the preceding patch, a minor release against the previous
minor line's start, a major release against the previous major line's
start. The result can be copy-pasted into CHANGELOG.md, though it often
needs some manual editing too.

PR lookups need a GitHub token in the GH_ACCESS_TOKEN environment
variable or in the configured token file (default ~/.githubtoken).
A single unavailable PR degrades to its commit title; it never aborts
the run.

Examples:
  relkit changelog --version 0.42.0
  relkit changelog --version 0.42.1 --labels
  relkit changelog --version 1.0.0 --path ~/code/egui_tiles`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangelog(cmd)
	},
}

func init() {
	rootCmd.AddCommand(changelogCmd)

	changelogCmd.Flags().StringVar(&changelogVersionFlag, "version", "", "The version of the new release, e.g. 0.42.0")
	changelogCmd.Flags().BoolVar(&changelogLabelsFlag, "labels", false, "Append PR label lists to entries")
	changelogCmd.Flags().StringVar(&changelogPathFlag, "path", "", "Repository path (default: current directory)")
	changelogCmd.MarkFlagRequired("version")
}

func runChangelog(cmd *cobra.Command) error {
	// Malformed input aborts before any network activity.
	version, err := changelog.ParseVersion(changelogVersionFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	// No credential means no fetch can succeed: stop before reading history.
	token, err := github.ResolveToken(cfg.GitHub.TokenFile)
	if err != nil {
		return err
	}

	rawCommits, err := gitlog.CommitsSince(changelogPathFlag, version.PreviousBoundary().String())
	if err != nil {
		return err
	}

	records := make([]changelog.CommitRecord, len(rawCommits))
	for i, c := range rawCommits {
		records[i] = changelog.Classify(c.Summary, c.Hash)
	}

	client := github.NewClient(cfg.GitHub.Owner, cfg.GitHub.Repo, token,
		github.WithBaseURL(cfg.GitHub.APIBaseURL),
		github.WithWarnWriter(cmd.ErrOrStderr()),
	)

	includeLabels := cfg.Changelog.IncludeLabels
	if cmd.Flags().Changed("labels") {
		includeLabels = changelogLabelsFlag
	}

	progress := output.NewFetchProgress(countPRs(records), output.IsTerminal(cmd.ErrOrStderr()))
	defer progress.Stop()

	assembler := &changelog.Assembler{
		Fetcher:       client,
		Owner:         cfg.GitHub.Owner,
		Repo:          cfg.GitHub.Repo,
		ExcludeLabels: cfg.Changelog.ExcludeLabels,
		IncludeLabels: includeLabels,
		Concurrency:   cfg.Changelog.Concurrency,
		Warn:          cmd.ErrOrStderr(),
		Progress:      progress.Update,
	}

	return assembler.Assemble(cmd.Context(), records, version, cmd.OutOrStdout())
}

func countPRs(records []changelog.CommitRecord) int {
	n := 0
	for _, r := range records {
		if r.HasPR() {
			n++
		}
	}
	return n
}
