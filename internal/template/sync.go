package template

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/releng/relkit/internal/errors"
)

// Syncer applies template init and update operations to a downstream
// repository rooted at Root.
type Syncer struct {
	Manifest *Manifest
	// Root is the downstream repository root.
	Root string
	// UpstreamURL overrides the manifest's clone URL when non-empty.
	UpstreamURL string
	// ExtraKeep lists additional downstream files update must not overwrite.
	ExtraKeep []string
	// DryRun reports what would happen without touching anything.
	DryRun bool
	// Out receives per-file progress lines. Defaults to os.Stdout.
	Out io.Writer
}

// Init removes every language-specific file the chosen languages don't
// need. Run once after generating a new repository from the template.
func (s *Syncer) Init(languages map[string]bool) error {
	deny := s.Manifest.DenySet(languages)
	return s.deletePaths(deny)
}

// Update clones the upstream template and copies its files over the
// downstream repository, skipping the deny set, downstream-owned files,
// template source stubs, and git internals. Dead files are removed first.
func (s *Syncer) Update(ctx context.Context, languages map[string]bool) error {
	for _, dead := range s.Manifest.DeadFiles {
		fmt.Fprintf(s.out(), "Removing dead file %s…\n", dead)
		if !s.DryRun {
			if err := os.Remove(filepath.Join(s.Root, dead)); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("removing dead file %s: %w", dead, err)
			}
		}
	}

	ignore := s.Manifest.DenySet(languages)
	for _, f := range s.Manifest.DoNotOverwrite {
		ignore[f] = true
	}
	for _, f := range s.ExtraKeep {
		ignore[f] = true
	}

	tempDir, err := os.MkdirTemp("", "relkit-template-*")
	if err != nil {
		return fmt.Errorf("creating temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	url := s.UpstreamURL
	if url == "" {
		url = s.Manifest.Upstream
	}

	_, err = git.PlainCloneContext(ctx, tempDir, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime,
			fmt.Sprintf("cloning template %s", url),
			"Check the template URL and your network connection")
	}

	return s.copyTree(tempDir, ignore)
}

// copyTree walks the cloned template and copies eligible files into the
// downstream repository, preserving relative paths.
func (s *Syncer) copyTree(templateDir string, ignore map[string]bool) error {
	return filepath.Walk(templateDir, func(srcPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(templateDir, srcPath)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		// Template source stubs stay upstream; the downstream repo has
		// real sources there.
		if strings.HasPrefix(relPath, ".git/") || strings.HasPrefix(relPath, "src/") {
			return nil
		}
		if ignore[relPath] {
			return nil
		}

		fmt.Fprintf(s.out(), "Updating %s…\n", relPath)
		if s.DryRun {
			return nil
		}

		destPath := filepath.Join(s.Root, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(destPath), err)
		}
		return copyFile(srcPath, destPath, info.Mode())
	})
}

// deletePaths removes existing deny-set entries, files and folders alike.
// Paths are processed in sorted order so dry-run output is stable.
func (s *Syncer) deletePaths(paths map[string]bool) error {
	sorted := make([]string, 0, len(paths))
	for path := range paths {
		sorted = append(sorted, path)
	}
	sort.Strings(sorted)

	for _, path := range sorted {
		fullPath := filepath.Join(s.Root, filepath.FromSlash(path))
		info, err := os.Stat(fullPath)
		if err != nil {
			continue
		}

		if info.IsDir() {
			fmt.Fprintf(s.out(), "Removing folder %s…\n", fullPath)
			if !s.DryRun {
				if err := os.RemoveAll(fullPath); err != nil {
					return fmt.Errorf("removing folder %s: %w", fullPath, err)
				}
			}
		} else {
			fmt.Fprintf(s.out(), "Removing file %s…\n", fullPath)
			if !s.DryRun {
				if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("removing file %s: %w", fullPath, err)
				}
			}
		}
	}
	return nil
}

func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying to %s: %w", dest, err)
	}
	return out.Close()
}

func (s *Syncer) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stdout
}
