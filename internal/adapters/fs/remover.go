package fs

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/extprune/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Remover = (*DirRemover)(nil)

// DirRemover deletes extension directories.
type DirRemover struct{}

// NewRemover creates a new DirRemover.
func NewRemover() *DirRemover {
	return &DirRemover{}
}

// Remove recursively deletes dir/name. The name must be a single path
// element so nothing outside dir can be touched.
func (r *DirRemover) Remove(_ context.Context, dir, name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return zerr.With(zerr.New("refusing to remove path outside extensions directory"), "name", name)
	}

	path := filepath.Join(dir, name)
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove extension"), "path", path)
	}

	return nil
}
