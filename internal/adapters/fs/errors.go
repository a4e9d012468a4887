// Package fs provides file system adapters for listing, loading and removing extensions.
package fs

import (
	"errors"
	iofs "io/fs"

	"go.trai.ch/zerr"
)

// inputError tags a fatal input failure with the matching sentinel, the
// offending path and the OS detail.
func inputError(notFound, permission, other error, msg, path string, cause error) error {
	sentinel := other
	switch {
	case errors.Is(cause, iofs.ErrNotExist):
		sentinel = notFound
	case errors.Is(cause, iofs.ErrPermission):
		sentinel = permission
	}

	err := zerr.With(zerr.Wrap(sentinel, msg), "path", path)
	return zerr.With(err, "detail", cause.Error())
}
