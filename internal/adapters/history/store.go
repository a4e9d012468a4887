// Package history persists the last run recorded for each extensions directory.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/extprune/internal/core/domain"
	"go.trai.ch/extprune/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.HistoryStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.RunRecord
}

// Open is the ports.HistoryOpener backed by NewStore.
func Open(path string) (ports.HistoryStore, error) {
	return NewStore(path)
}

// NewStore creates a new Store backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.RunRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return s.fail(domain.ErrHistoryReadFailed, err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return s.fail(domain.ErrHistoryUnmarshalFailed, err)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return s.fail(domain.ErrHistoryMarshalFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return s.fail(domain.ErrHistoryWriteFailed, err)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return s.fail(domain.ErrHistoryWriteFailed, err)
	}

	return nil
}

func (s *Store) fail(sentinel, cause error) error {
	err := zerr.With(zerr.Wrap(sentinel, "history store"), "path", s.path)
	return zerr.With(err, "detail", cause.Error())
}

// Get retrieves the last run recorded for an extensions directory.
func (s *Store) Get(extensionsDir string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.cache[key(extensionsDir)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores the run record.
func (s *Store) Put(rec domain.RunRecord) error {
	s.mu.Lock()
	s.cache[key(rec.ExtensionsDir)] = rec
	s.mu.Unlock()

	return s.save()
}

func key(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}
