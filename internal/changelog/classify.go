package changelog

import (
	"regexp"
	"strconv"
	"strings"
)

// The two PR-bearing commit shapes, tried in order. The squash pattern is
// strictly more specific and must win before the merge-commit pattern and
// the no-PR fallback.
var (
	squashMergePattern = regexp.MustCompile(`^(.*) \(#(\d+)\)$`)
	mergeCommitPattern = regexp.MustCompile(`^Merge pull request #(\d+) from (.*)$`)
)

// Classify parses one raw commit summary line into a CommitRecord.
// It recognizes squash-merge summaries ("Title (#123)"), explicit merge
// commits ("Merge pull request #123 from branch"), and falls back to a
// direct commit with no PR association. It never fails: any unmatched
// shape becomes a direct commit with the raw summary as its title.
func Classify(summary, hash string) CommitRecord {
	summary = strings.TrimRight(summary, "\r\n")

	if m := squashMergePattern.FindStringSubmatch(summary); m != nil {
		n, _ := strconv.Atoi(m[2])
		return CommitRecord{
			Hash:     hash,
			Title:    strings.TrimSpace(m[1]),
			PRNumber: n,
		}
	}

	if m := mergeCommitPattern.FindStringSubmatch(summary); m != nil {
		n, _ := strconv.Atoi(m[1])
		return CommitRecord{
			Hash:     hash,
			Title:    strings.TrimSpace(m[2]),
			PRNumber: n,
		}
	}

	return CommitRecord{Hash: hash, Title: summary}
}
