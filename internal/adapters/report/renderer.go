// Package report renders the progress and summary of a prune run as plain lines.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/extprune/internal/core/domain"
	"go.trai.ch/extprune/internal/ui/output"
	"go.trai.ch/extprune/internal/ui/style"
)

// Renderer implements ports.Renderer by writing human-readable lines to stdout.
type Renderer struct {
	out     *termenv.Output
	verbose bool

	mu sync.Mutex
}

// NewRenderer creates a new Renderer. Verbose adds the keep list and one line per decision.
func NewRenderer(stdout io.Writer, verbose bool) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Renderer{
		out:     output.New(stdout),
		verbose: verbose,
	}
}

// OnKeepListLoaded prints the size of the keep list, and its contents when verbose.
func (r *Renderer) OnKeepListLoaded(path string, keep domain.KeepSet) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("Loaded %d extension(s) to keep from '%s'\n", len(keep), path)
	if r.verbose {
		r.printf("Extensions to keep: %s\n", strings.Join(keep.Sorted(), ", "))
	}
}

// OnInventoryScanned prints the scanned directory and the number of entries found.
func (r *Renderer) OnInventoryScanned(dir string, installed int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("Scanning extensions directory: %s\n", dir)
	r.printf("Found %d installed extension(s)\n", installed)
}

// OnDecision prints the decision when verbose.
func (r *Renderer) OnDecision(d domain.Decision) {
	if !r.verbose {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := d.Entry.RawName
	switch d.Action {
	case domain.ActionKeep:
		if d.Reason == domain.ReasonLatest {
			r.printf("Keeping: %s (%s)\n", name, d.Reason)
			return
		}
		r.printf("Keeping: %s\n", name)
	case domain.ActionRemoveOldVersion:
		r.printf("Will remove old version: %s\n", name)
	case domain.ActionRemoveUnwanted:
		r.printf("Will remove (not in keep list): %s\n", name)
	}
}

// OnPlan prints the summary block and the header of the removal phase.
func (r *Renderer) OnPlan(rep *domain.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("\nSummary:\n")
	r.printf("  Extensions to keep: %d\n", len(rep.Kept))
	r.printf("  Unwanted extensions to remove: %d\n", rep.Unwanted)
	r.printf("  Old versions to remove: %d\n", rep.OldVersions)
	r.printf("  Total to remove: %d\n", rep.TotalToRemove())

	switch {
	case rep.TotalToRemove() == 0:
		r.printf("\n%s\n", r.paint("No extensions to remove. All done!", string(style.Green)))
	case rep.DryRun:
		r.printf("\n%s\n", r.paint("[DRY RUN MODE] The following would be removed:", string(style.Yellow)))
	default:
		r.printf("\nRemoving extensions...\n")
	}
}

// OnRemoval prints one line per removed or simulated entry. Failures are
// reported by the logger.
func (r *Renderer) OnRemoval(d domain.Decision, dryRun bool, err error) {
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if dryRun {
		r.printf("%s %s (%s)\n", r.paint("[DRY RUN] Would remove:", string(style.Yellow)), d.Entry.RawName, d.Reason)
		return
	}
	r.printf("%s %s (%s)\n", r.paint("Removed:", string(style.Green)), d.Entry.RawName, d.Reason)
}

// OnComplete prints the final tallies. Nothing is printed when nothing had to be removed.
func (r *Renderer) OnComplete(rep *domain.Report) {
	if rep.TotalToRemove() == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("\nComplete!\n")
	if rep.DryRun {
		r.printf("  Would remove: %d\n", rep.Removed)
		return
	}
	r.printf("  Successfully removed: %d\n", rep.Removed)
	if rep.HasFailures() {
		r.printf("  %s\n", r.paint(fmt.Sprintf("Failed to remove: %d", len(rep.Failures)), string(style.Red)))
	}
}

func (r *Renderer) paint(s, hex string) string {
	return output.Paint(r.out, s, hex)
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
