package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extprune/internal/adapters/report"
	"go.trai.ch/extprune/internal/core/domain"
)

func TestWriteHistory_Golden(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		rec        domain.RunRecord
		state      report.InventoryState
		goldenName string
	}{
		{
			name: "unchanged with failure",
			rec: domain.RunRecord{
				ExtensionsDir: "/ext",
				Timestamp:     at,
				Installed:     3,
				Kept:          1,
				Unwanted:      1,
				OldVersions:   1,
				Removed:       1,
				Failed:        1,
			},
			state:      report.InventoryUnchanged,
			goldenName: "history_unchanged",
		},
		{
			name: "dry run changed",
			rec: domain.RunRecord{
				ExtensionsDir: "/ext",
				Timestamp:     at,
				DryRun:        true,
				Installed:     3,
				Kept:          1,
				Unwanted:      2,
				Removed:       2,
			},
			state:      report.InventoryChanged,
			goldenName: "history_dry_run_changed",
		},
		{
			name: "unknown state",
			rec: domain.RunRecord{
				ExtensionsDir: "/ext",
				Timestamp:     at,
				Installed:     1,
				Kept:          1,
			},
			state:      report.InventoryUnknown,
			goldenName: "history_unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			require.NoError(t, report.WriteHistory(buf, &tt.rec, tt.state))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}
