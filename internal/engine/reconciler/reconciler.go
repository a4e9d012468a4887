// Package reconciler applies the keep policy to the installed extensions.
package reconciler

import (
	"context"
	"fmt"

	"go.trai.ch/extprune/internal/core/domain"
	"go.trai.ch/extprune/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configures a single reconciliation run.
type Options struct {
	// ExtensionsDir is the directory holding the installed extensions.
	ExtensionsDir string
	// KeepAllVersions disables pruning of old versions for kept extensions.
	KeepAllVersions bool
	// DryRun computes and reports decisions without deleting anything.
	DryRun bool
}

// Reconciler decides which installed extensions to keep and removes the rest.
type Reconciler struct {
	inventory ports.Inventory
	remover   ports.Remover
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Reconciler.
func New(
	inventory ports.Inventory,
	remover ports.Remover,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Reconciler {
	return &Reconciler{
		inventory: inventory,
		remover:   remover,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Run lists the inventory, decides every entry against keep and performs the
// removals. Errors listing the inventory are returned before any decision is
// made. Failed removals never abort the run; they are collected in the report.
func (r *Reconciler) Run(
	ctx context.Context,
	keep domain.KeepSet,
	opts Options,
	renderer ports.Renderer,
) (*domain.Report, error) {
	names, err := r.inventory.List(ctx, opts.ExtensionsDir)
	if err != nil {
		return nil, err
	}
	renderer.OnInventoryScanned(opts.ExtensionsDir, len(names))

	report := Plan(names, keep, opts)
	for _, d := range report.Decisions {
		renderer.OnDecision(d)
	}
	renderer.OnPlan(report)

	if report.TotalToRemove() == 0 {
		renderer.OnComplete(report)
		return report, nil
	}

	for _, d := range removalOrder(report.Decisions) {
		if err := ctx.Err(); err != nil {
			return report, zerr.Wrap(err, "reconciliation interrupted")
		}
		r.remove(ctx, report, d, opts, renderer)
	}

	renderer.OnComplete(report)
	return report, nil
}

// Plan decodes and groups names and decides each entry. It performs no I/O.
func Plan(names []string, keep domain.KeepSet, opts Options) *domain.Report {
	entries := make([]domain.Entry, len(names))
	for i, name := range names {
		entries[i] = domain.Decode(name)
	}

	report := &domain.Report{
		ExtensionsDir: opts.ExtensionsDir,
		DryRun:        opts.DryRun,
		Installed:     len(entries),
		Decisions:     make([]domain.Decision, 0, len(entries)),
	}

	for base, group := range domain.GroupEntries(entries).All() {
		for _, d := range domain.Decide(group, keep.Contains(base), opts.KeepAllVersions) {
			report.Decisions = append(report.Decisions, d)

			switch d.Action {
			case domain.ActionKeep:
				report.Kept = append(report.Kept, d.Entry)
			case domain.ActionRemoveUnwanted:
				report.Unwanted++
			case domain.ActionRemoveOldVersion:
				report.OldVersions++
			}
		}
	}

	return report
}

// removalOrder returns unwanted removals first, then old versions.
func removalOrder(decisions []domain.Decision) []domain.Decision {
	ordered := make([]domain.Decision, 0, len(decisions))
	for _, action := range []domain.Action{domain.ActionRemoveUnwanted, domain.ActionRemoveOldVersion} {
		for _, d := range decisions {
			if d.Action == action {
				ordered = append(ordered, d)
			}
		}
	}
	return ordered
}

func (r *Reconciler) remove(
	ctx context.Context,
	report *domain.Report,
	d domain.Decision,
	opts Options,
	renderer ports.Renderer,
) {
	ctx, vertex := r.telemetry.Record(ctx, "remove "+d.Entry.RawName)
	vertex.Log(d.Reason)

	if opts.DryRun {
		vertex.Cached()
		report.Removed++
		renderer.OnRemoval(d, true, nil)
		return
	}

	err := r.remover.Remove(ctx, opts.ExtensionsDir, d.Entry.RawName)
	vertex.Complete(err)
	if err != nil {
		failure := domain.NewRemovalFailure(d.Entry, err)
		report.Failures = append(report.Failures, failure)
		r.logger.Error(zerr.With(
			zerr.Wrap(err, fmt.Sprintf("failed to remove %s (%s)", d.Entry.RawName, failure.Kind)),
			"extension", d.Entry.RawName,
		))
		renderer.OnRemoval(d, false, err)
		return
	}

	report.Removed++
	renderer.OnRemoval(d, false, nil)
}
