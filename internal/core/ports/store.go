package ports

import "go.trai.ch/extprune/internal/core/domain"

// HistoryStore defines the interface for storing and retrieving run records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type HistoryStore interface {
	// Get retrieves the last run recorded for an extensions directory.
	// Returns nil, nil if not found.
	Get(extensionsDir string) (*domain.RunRecord, error)

	// Put stores the run record, replacing any previous one for the same directory.
	Put(rec domain.RunRecord) error
}

// HistoryOpener opens the history store persisted at path.
type HistoryOpener func(path string) (HistoryStore, error)
