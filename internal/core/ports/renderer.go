package ports

import "go.trai.ch/extprune/internal/core/domain"

// Renderer presents the progress and outcome of a run to the user.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnKeepListLoaded is called once the keep list has been read.
	OnKeepListLoaded(path string, keep domain.KeepSet)

	// OnInventoryScanned is called once the extensions directory has been listed.
	OnInventoryScanned(dir string, installed int)

	// OnDecision is called for every decision, in group order.
	OnDecision(d domain.Decision)

	// OnPlan is called after all decisions are made and before any removal.
	OnPlan(r *domain.Report)

	// OnRemoval is called after each removal attempt, or its simulation in a
	// dry run. err is nil on success.
	OnRemoval(d domain.Decision, dryRun bool, err error)

	// OnComplete is called when the run has finished.
	OnComplete(r *domain.Report)
}
