package domain

import "time"

// RunRecord summarises a past run against one extensions directory.
type RunRecord struct {
	ExtensionsDir string    `json:"extensions_dir,omitzero"`
	Timestamp     time.Time `json:"timestamp,omitzero"`
	DryRun        bool      `json:"dry_run,omitzero"`
	Fingerprint   string    `json:"fingerprint,omitzero"`
	Installed     int       `json:"installed,omitzero"`
	Kept          int       `json:"kept,omitzero"`
	Unwanted      int       `json:"unwanted,omitzero"`
	OldVersions   int       `json:"old_versions,omitzero"`
	Removed       int       `json:"removed,omitzero"`
	Failed        int       `json:"failed,omitzero"`
}

// NewRunRecord builds a record from a finished report.
func NewRunRecord(r *Report, fingerprint string, at time.Time) RunRecord {
	return RunRecord{
		ExtensionsDir: r.ExtensionsDir,
		Timestamp:     at,
		DryRun:        r.DryRun,
		Fingerprint:   fingerprint,
		Installed:     r.Installed,
		Kept:          len(r.Kept),
		Unwanted:      r.Unwanted,
		OldVersions:   r.OldVersions,
		Removed:       r.Removed,
		Failed:        len(r.Failures),
	}
}
