package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		summary  string
		expected CommitRecord
	}{
		"squash-merge commit": {
			summary: "Fix dragging bug (#123)",
			expected: CommitRecord{
				Hash:     "abc",
				Title:    "Fix dragging bug",
				PRNumber: 123,
			},
		},
		"squash-merge with inner parenthetical": {
			summary: "Update docs (again) (#7)",
			expected: CommitRecord{
				Hash:     "abc",
				Title:    "Update docs (again)",
				PRNumber: 7,
			},
		},
		"merge commit": {
			summary: "Merge pull request #456 from alice/feature",
			expected: CommitRecord{
				Hash:     "abc",
				Title:    "alice/feature",
				PRNumber: 456,
			},
		},
		"direct commit": {
			summary: "Tweak readme wording",
			expected: CommitRecord{
				Hash:  "abc",
				Title: "Tweak readme wording",
			},
		},
		"PR reference mid-sentence is not a squash merge": {
			summary: "Revert (#12) because it broke CI",
			expected: CommitRecord{
				Hash:  "abc",
				Title: "Revert (#12) because it broke CI",
			},
		},
		"merge-like prefix without PR number": {
			summary: "Merge pull request from somewhere",
			expected: CommitRecord{
				Hash:  "abc",
				Title: "Merge pull request from somewhere",
			},
		},
		"empty summary": {
			summary:  "",
			expected: CommitRecord{Hash: "abc"},
		},
		"coincidental squash shape still classified": {
			// Classification is best-effort: a manual commit that happens
			// to match the squash shape yields a PR number whose fetch
			// will 404 and degrade gracefully downstream.
			summary: "Fix (#999)",
			expected: CommitRecord{
				Hash:     "abc",
				Title:    "Fix",
				PRNumber: 999,
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := Classify(tc.summary, "abc")
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestClassify_SquashWinsOverMerge(t *testing.T) {
	// A summary matching both shapes takes the squash interpretation,
	// since that pattern is strictly more specific.
	got := Classify("Merge pull request #1 from bob/fix (#2)", "abc")
	assert.Equal(t, 2, got.PRNumber)
	assert.Equal(t, "Merge pull request #1 from bob/fix", got.Title)
}

func TestCommitRecord_ShortHash(t *testing.T) {
	c := CommitRecord{Hash: "0123456789abcdef"}
	assert.Equal(t, "0123456", c.ShortHash())

	short := CommitRecord{Hash: "012"}
	assert.Equal(t, "012", short.ShortHash())
}
