package domain

import (
	"errors"
	"io/fs"
)

// RemovalKind classifies a failed removal.
type RemovalKind uint8

const (
	// RemovalFailed is any OS-level failure other than a permission error.
	RemovalFailed RemovalKind = iota
	// RemovalPermissionDenied means the process lacked permission to delete the entry.
	RemovalPermissionDenied
)

// String returns a short description of the failure kind.
func (k RemovalKind) String() string {
	if k == RemovalPermissionDenied {
		return "permission denied"
	}
	return "removal failed"
}

// RemovalFailure is a recoverable, per-entry removal error. It is recorded in
// the report and never aborts a run.
type RemovalFailure struct {
	Entry Entry
	Kind  RemovalKind
	Err   error
}

// NewRemovalFailure classifies err for the given entry.
func NewRemovalFailure(e Entry, err error) RemovalFailure {
	kind := RemovalFailed
	if errors.Is(err, fs.ErrPermission) {
		kind = RemovalPermissionDenied
	}
	return RemovalFailure{Entry: e, Kind: kind, Err: err}
}

// Report is the outcome of one reconciliation run.
type Report struct {
	ExtensionsDir string
	DryRun        bool
	// Installed is the number of entries found in the inventory.
	Installed int
	// Decisions holds one decision per installed entry.
	Decisions []Decision
	// Kept lists the retained entries.
	Kept []Entry
	// Unwanted counts entries decided ActionRemoveUnwanted.
	Unwanted int
	// OldVersions counts entries decided ActionRemoveOldVersion.
	OldVersions int
	// Removed counts successful removals, or simulated ones in a dry run.
	Removed int
	// Failures lists removals that were attempted and failed.
	Failures []RemovalFailure
}

// TotalToRemove is the number of entries decided for removal.
func (r *Report) TotalToRemove() int {
	return r.Unwanted + r.OldVersions
}

// HasFailures reports whether any removal attempt failed.
func (r *Report) HasFailures() bool {
	return len(r.Failures) > 0
}
