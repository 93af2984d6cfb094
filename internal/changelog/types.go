package changelog

// CommitRecord is the normalized form of one raw commit summary line.
// It is created once per commit by Classify and immutable thereafter.
type CommitRecord struct {
	// Hash is the full commit identifier.
	Hash string
	// Title is the commit-derived entry text. For squash merges this is
	// the summary minus the trailing PR parenthetical; for merge commits
	// it is the branch description (later overridden by the live PR
	// title when available).
	Title string
	// PRNumber is the associated pull request number, or zero when the
	// commit has no PR association.
	PRNumber int
}

// HasPR reports whether the commit carries a PR association.
func (c CommitRecord) HasPR() bool {
	return c.PRNumber > 0
}

// ShortHash returns the abbreviated commit identifier used in rendered links.
func (c CommitRecord) ShortHash() string {
	if len(c.Hash) < 7 {
		return c.Hash
	}
	return c.Hash[:7]
}

// PRMetadata holds the live pull request fields consumed by the assembler.
// A nil *PRMetadata means the lookup failed or the commit had no PR; the
// assembler degrades to commit-derived text in that case.
type PRMetadata struct {
	Author string
	Title  string
	Labels []string
}

// HasLabel reports whether the PR carries the given label.
func (p *PRMetadata) HasLabel(name string) bool {
	if p == nil {
		return false
	}
	for _, l := range p.Labels {
		if l == name {
			return true
		}
	}
	return false
}
