package report_test

import (
	"bytes"
	"errors"
	"io/fs"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/extprune/internal/adapters/report"
	"go.trai.ch/extprune/internal/core/domain"
	"go.trai.ch/extprune/internal/engine/reconciler"
)

var installed = []string{
	"ms-python.python-2023.1.0",
	"ms-python.python-2024.2.0",
	"old.theme-1.0.0",
}

// replay drives the renderer through a run the way the reconciler does,
// failing the removals listed in failing.
func replay(r *report.Renderer, opts reconciler.Options, keep domain.KeepSet, failing map[string]error) {
	rep := reconciler.Plan(installed, keep, opts)

	r.OnKeepListLoaded("keep.txt", keep)
	r.OnInventoryScanned(opts.ExtensionsDir, rep.Installed)
	for _, d := range rep.Decisions {
		r.OnDecision(d)
	}
	r.OnPlan(rep)

	if rep.TotalToRemove() == 0 {
		r.OnComplete(rep)
		return
	}

	for _, action := range []domain.Action{domain.ActionRemoveUnwanted, domain.ActionRemoveOldVersion} {
		for _, d := range rep.Decisions {
			if d.Action != action {
				continue
			}
			err := failing[d.Entry.RawName]
			if err != nil {
				rep.Failures = append(rep.Failures, domain.NewRemovalFailure(d.Entry, err))
			} else {
				rep.Removed++
			}
			r.OnRemoval(d, opts.DryRun, err)
		}
	}
	r.OnComplete(rep)
}

func TestRenderer_Golden(t *testing.T) {
	tests := []struct {
		name       string
		verbose    bool
		opts       reconciler.Options
		keep       domain.KeepSet
		failing    map[string]error
		goldenName string
	}{
		{
			name:       "verbose dry run",
			verbose:    true,
			opts:       reconciler.Options{ExtensionsDir: "/ext", DryRun: true},
			keep:       domain.NewKeepSet("ms-python.python"),
			goldenName: "verbose_dry_run",
		},
		{
			name:       "removal with failure",
			opts:       reconciler.Options{ExtensionsDir: "/ext"},
			keep:       domain.NewKeepSet("ms-python.python"),
			failing:    map[string]error{"old.theme-1.0.0": fs.ErrPermission},
			goldenName: "removal_with_failure",
		},
		{
			name:       "nothing to remove",
			verbose:    true,
			opts:       reconciler.Options{ExtensionsDir: "/ext", KeepAllVersions: true},
			keep:       domain.NewKeepSet("ms-python.python", "old.theme"),
			goldenName: "nothing_to_remove",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			replay(report.NewRenderer(buf, tt.verbose), tt.opts, tt.keep, tt.failing)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestRenderer_QuietOmitsDecisions(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	r := report.NewRenderer(buf, false)
	r.OnKeepListLoaded("keep.txt", domain.NewKeepSet("a.b"))
	r.OnDecision(domain.Decision{Entry: domain.Decode("a.b-1.0.0"), Action: domain.ActionKeep, Reason: domain.ReasonLatest})

	assert.Equal(t, "Loaded 1 extension(s) to keep from 'keep.txt'\n", buf.String())
}

func TestRenderer_FailedRemovalPrintsNothing(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	r := report.NewRenderer(buf, true)
	d := domain.Decision{Entry: domain.Decode("a.b-1.0.0"), Action: domain.ActionRemoveUnwanted, Reason: domain.ReasonNotInKeepList}

	r.OnRemoval(d, false, errors.New("boom"))

	assert.Empty(t, buf.String())
}

func TestRenderer_Colors(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")

	buf := &bytes.Buffer{}
	r := report.NewRenderer(buf, false)
	d := domain.Decision{Entry: domain.Decode("a.b-1.0.0"), Action: domain.ActionRemoveOldVersion, Reason: domain.ReasonOldVersion}

	r.OnRemoval(d, false, nil)

	assert.Contains(t, buf.String(), "Removed:")
	assert.Contains(t, buf.String(), "a.b-1.0.0 (old version)")
}
