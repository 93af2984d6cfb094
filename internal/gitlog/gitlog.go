// Package gitlog reads commit history for a release range using go-git,
// so changelog generation works without a git CLI installation.
package gitlog

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/releng/relkit/internal/errors"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default it's a no-op. Set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for gitlog operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Commit is one raw history entry: the stable identifier plus the summary
// line handed to classification.
type Commit struct {
	Hash    string
	Summary string
}

// openRepo opens the git repository at path (or the current working
// directory when empty), traversing up the directory tree to find the
// repository root.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[gitlog] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, errors.NotARepository(path)
	}

	return repo, nil
}

// CommitsSince returns the commits in `<boundaryTag>..HEAD`, oldest
// first. The boundary tag is resolved with and without a leading "v".
// Commits reachable from the boundary are excluded, so the result matches
// what `git log <tag>..HEAD` would report.
func CommitsSince(path, boundaryTag string) ([]Commit, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}

	boundary, err := resolveTag(repo, boundaryTag)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD reference: %w", err)
	}

	released, err := reachableFrom(repo, boundary)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("reading history from HEAD: %w", err)
	}

	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if released[c.Hash] {
			return nil
		}
		commits = append(commits, Commit{
			Hash:    c.Hash.String(),
			Summary: summaryLine(c.Message),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	// go-git walks newest first; the changelog wants oldest first.
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}

	logDebug("[gitlog] CommitsSince %s..HEAD: %d commits", boundaryTag, len(commits))
	return commits, nil
}

// resolveTag resolves a release tag to a commit hash, trying the bare
// version first and a "v" prefix second.
func resolveTag(repo *git.Repository, tag string) (plumbing.Hash, error) {
	for _, candidate := range []string{tag, "v" + tag} {
		hash, err := repo.ResolveRevision(plumbing.Revision(candidate))
		if err == nil {
			logDebug("[gitlog] resolved tag %s to %s", candidate, hash)
			return *hash, nil
		}
	}
	return plumbing.ZeroHash, errors.MissingReleaseTag(tag)
}

// reachableFrom collects every commit reachable from the boundary so the
// main walk can exclude history that shipped in the previous release.
func reachableFrom(repo *git.Repository, from plumbing.Hash) (map[plumbing.Hash]bool, error) {
	iter, err := repo.Log(&git.LogOptions{From: from})
	if err != nil {
		return nil, fmt.Errorf("reading history from boundary: %w", err)
	}

	seen := make(map[plumbing.Hash]bool)
	err = iter.ForEach(func(c *object.Commit) error {
		seen[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating boundary history: %w", err)
	}
	return seen, nil
}

func summaryLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}
	return strings.TrimRight(message, "\r")
}
