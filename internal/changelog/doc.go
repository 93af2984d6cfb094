// Package changelog synthesizes a human-readable changelog section from a
// range of git commits.
//
// This package implements:
//   - Commit summary classification (squash-merge, merge-commit, direct)
//   - Release range calculation from a semantic version
//   - Concurrent, order-preserving PR metadata resolution
//   - Label-based suppression and markdown rendering
//
// The output is meant to be copy-pasted into CHANGELOG.md, though it often
// needs some manual editing too.
package changelog
