package changelog

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"golang.org/x/sync/errgroup"
)

// PRFetcher resolves live pull request metadata by number. Implementations
// must be safe for concurrent use across distinct PR numbers. A nil
// metadata result with a nil error means the PR was unavailable and the
// caller should degrade to commit-derived text.
type PRFetcher interface {
	FetchPR(ctx context.Context, number int) (*PRMetadata, error)
}

// Assembler turns an ordered commit list into a rendered changelog section.
type Assembler struct {
	Fetcher PRFetcher

	// Owner and Repo build the commit, PR, and compare links.
	Owner string
	Repo  string

	// ExcludeLabels drops any PR carrying one of these labels.
	ExcludeLabels []string
	// IncludeLabels appends each PR's label list to its entry.
	IncludeLabels bool

	// Concurrency bounds in-flight PR lookups; zero means one per CPU.
	Concurrency int

	// Now supplies the date in the section header. Defaults to time.Now;
	// fixed in tests so rendering is byte-reproducible.
	Now func() time.Time

	// Warn receives per-item fetch diagnostics. Defaults to os.Stderr.
	Warn io.Writer

	// Progress, when set, is called after each PR lookup completes with
	// the number finished so far and the total. Calls may come from
	// multiple goroutines.
	Progress func(done, total int)
}

// Assemble classifies nothing itself: it takes already-classified commits
// in original chronological order (oldest first), resolves PR metadata
// concurrently while preserving that order, applies label suppression,
// and renders the section to w.
//
// A failed lookup degrades that single entry to its commit-derived title;
// it never aborts the run.
func (a *Assembler) Assemble(ctx context.Context, commits []CommitRecord, version Version, w io.Writer) error {
	metadata, err := a.resolvePRs(ctx, commits)
	if err != nil {
		return err
	}

	prs, unsorted := a.buildEntries(commits, metadata)

	a.render(w, version, prs, unsorted)
	return nil
}

// resolvePRs fetches metadata for every PR-bearing commit using a bounded
// worker pool. Results land in a slice indexed by commit position, so the
// merge step iterates in original order regardless of completion order.
func (a *Assembler) resolvePRs(ctx context.Context, commits []CommitRecord) ([]*PRMetadata, error) {
	metadata := make([]*PRMetadata, len(commits))

	total := 0
	for _, c := range commits {
		if c.HasPR() {
			total++
		}
	}
	if total == 0 {
		return metadata, nil
	}

	limit := a.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	var done atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, c := range commits {
		if !c.HasPR() {
			continue
		}
		i, c := i, c
		g.Go(func() error {
			pr, err := a.Fetcher.FetchPR(ctx, c.PRNumber)
			if err != nil {
				// Isolated per-item: warn and leave the slot nil.
				fmt.Fprintf(a.warnWriter(), "WARNING: PR #%d lookup failed: %v\n", c.PRNumber, err)
			} else {
				metadata[i] = pr
			}
			if a.Progress != nil {
				a.Progress(int(done.Add(1)), total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving PR metadata: %w", err)
	}
	return metadata, nil
}

// buildEntries merges each commit with its (optional) PR metadata into
// the two rendered buckets, in commit order.
func (a *Assembler) buildEntries(commits []CommitRecord, metadata []*PRMetadata) (prs, unsorted []string) {
	for i, c := range commits {
		pr := metadata[i]

		if !c.HasPR() {
			// Someone committed straight to main.
			title := cleanTitle(c.Title)
			unsorted = append(unsorted, fmt.Sprintf("%s [%s](https://github.com/%s/%s/commit/%s)",
				title, c.ShortHash(), a.Owner, a.Repo, c.Hash))
			continue
		}

		// Prefer the live PR title when the lookup succeeded.
		title := c.Title
		if pr != nil {
			title = pr.Title
		}
		title = cleanTitle(title)

		if a.excluded(pr) {
			continue
		}

		entry := fmt.Sprintf("%s [#%d](https://github.com/%s/%s/pull/%d)",
			title, c.PRNumber, a.Owner, a.Repo, c.PRNumber)

		if a.IncludeLabels && pr != nil && len(pr.Labels) > 0 {
			entry += fmt.Sprintf(" (%s)", strings.Join(pr.Labels, ", "))
		}

		if pr != nil {
			entry += fmt.Sprintf(" by [@%s](https://github.com/%s)", pr.Author, pr.Author)
		}

		prs = append(prs, entry)
	}

	prs = cleanupEntries(prs)
	return prs, unsorted
}

// excluded reports whether the PR carries any suppressing label.
func (a *Assembler) excluded(pr *PRMetadata) bool {
	for _, label := range a.ExcludeLabels {
		if pr.HasLabel(label) {
			return true
		}
	}
	return false
}

// cleanTitle strips the unnecessary trailing period some PR titles end
// with, along with surrounding whitespace.
func cleanTitle(title string) string {
	title = strings.TrimSpace(title)
	return strings.TrimSpace(strings.TrimRight(title, "."))
}

// cleanupEntries upper-cases the first letter of each PR entry and
// collapses exact duplicates, which re-applied cherry-picks of the same
// PR would otherwise print twice.
func cleanupEntries(entries []string) []string {
	seen := make(map[string]bool, len(entries))
	out := entries[:0]
	for _, line := range entries {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}
		r := []rune(line)
		r[0] = unicode.ToUpper(r[0])
		line = string(r)
		if seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return out
}

func (a *Assembler) render(w io.Writer, version Version, prs, unsorted []string) {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	fmt.Fprintf(w, "## %s - %s\n", version, now().Format("2006-01-02"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Full diff at https://github.com/%s/%s/compare/%s\n", a.Owner, a.Repo, version.Range())
	fmt.Fprintln(w)
	renderSection(w, "PRs", prs)
	renderSection(w, "Unsorted commits", unsorted)
}

// renderSection writes one labeled bullet list. The header only appears
// for non-empty sections; the trailing blank line is unconditional so the
// output pastes cleanly between existing changelog sections.
func renderSection(w io.Writer, name string, items []string) {
	if len(items) > 0 {
		fmt.Fprintf(w, "#### %s\n", name)
		for _, line := range items {
			fmt.Fprintf(w, "* %s\n", line)
		}
	}
	fmt.Fprintln(w)
}

func (a *Assembler) warnWriter() io.Writer {
	if a.Warn != nil {
		return a.Warn
	}
	return os.Stderr
}
