// Package output provides terminal output formatting utilities for the
// relkit CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// IsTerminal reports whether the writer is an interactive terminal.
// Spinners are suppressed when output is piped or captured.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PrintWarning prints a yellow warning line to the given writer.
func PrintWarning(out io.Writer, format string, args ...any) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("⚠"), fmt.Sprintf(format, args...))
}

// FetchProgress renders a spinner tracking PR metadata lookups, standing
// in for a progress bar when the run is attached to a terminal. All
// methods are safe to call from multiple goroutines and are no-ops when
// the progress display is disabled.
type FetchProgress struct {
	mu sync.Mutex
	sp *spinner.Spinner
}

// NewFetchProgress starts a fetch progress spinner on stderr when enabled
// is true and returns it. A disabled progress is a valid no-op handle.
func NewFetchProgress(total int, enabled bool) *FetchProgress {
	if !enabled || total == 0 {
		return &FetchProgress{}
	}

	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = fmt.Sprintf(" Fetching PR info 0/%d", total)
	sp.Start()
	return &FetchProgress{sp: sp}
}

// Update refreshes the fetched/total counter. The spinner stops itself
// once every lookup has completed so rendered output never interleaves
// with a live spinner line.
func (p *FetchProgress) Update(done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sp == nil {
		return
	}
	if done >= total {
		p.sp.Stop()
		p.sp = nil
		return
	}
	p.sp.Suffix = fmt.Sprintf(" Fetching PR info %d/%d", done, total)
}

// Stop halts the spinner and clears its line.
func (p *FetchProgress) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sp == nil {
		return
	}
	p.sp.Stop()
	p.sp = nil
}
