package report

import (
	"fmt"
	"io"
	"time"

	"go.trai.ch/extprune/internal/core/domain"
	"go.trai.ch/extprune/internal/ui/output"
	"go.trai.ch/extprune/internal/ui/style"
)

// InventoryState describes the extensions directory relative to a recorded run.
type InventoryState uint8

const (
	// InventoryUnknown means the directory could not be listed.
	InventoryUnknown InventoryState = iota
	// InventoryUnchanged means the directory holds what the run left behind.
	InventoryUnchanged
	// InventoryChanged means extensions were added or removed since the run.
	InventoryChanged
)

// WriteHistory prints a recorded run and the state of the directory since.
func WriteHistory(w io.Writer, rec *domain.RunRecord, state InventoryState) error {
	out := output.New(w)

	mode := ""
	if rec.DryRun {
		mode = " (dry run)"
	}

	lines := []string{
		fmt.Sprintf("Last run: %s%s", rec.Timestamp.UTC().Format(time.RFC3339), mode),
		fmt.Sprintf("Extensions directory: %s", rec.ExtensionsDir),
		fmt.Sprintf("  Installed: %d", rec.Installed),
		fmt.Sprintf("  Kept: %d", rec.Kept),
		fmt.Sprintf("  Unwanted: %d", rec.Unwanted),
		fmt.Sprintf("  Old versions: %d", rec.OldVersions),
	}
	if rec.DryRun {
		lines = append(lines, fmt.Sprintf("  Would remove: %d", rec.Removed))
	} else {
		lines = append(lines, fmt.Sprintf("  Removed: %d", rec.Removed))
	}
	if rec.Failed > 0 {
		lines = append(lines, output.Paint(out, fmt.Sprintf("  Failed: %d", rec.Failed), string(style.Red)))
	}

	switch state {
	case InventoryUnchanged:
		lines = append(lines, output.Paint(out, style.Check+" Inventory unchanged since last run", string(style.Green)))
	case InventoryChanged:
		lines = append(lines, output.Paint(out, style.Tilde+" Inventory changed since last run", string(style.Yellow)))
	case InventoryUnknown:
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
