package reconciler_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extprune/internal/adapters/fs"
	"go.trai.ch/extprune/internal/adapters/telemetry"
	"go.trai.ch/extprune/internal/core/domain"
	"go.trai.ch/extprune/internal/core/ports/mocks"
	"go.trai.ch/extprune/internal/engine/reconciler"
	"go.uber.org/mock/gomock"
)

func TestRun_IdempotentOnDisk(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"ms-python.python-2023.1.0",
		"ms-python.python-2024.2.0",
		"golang.go-0.40.0",
		"golang.go-0.41.0-linux-x64",
		"old.theme-1.0.0",
	} {
		//nolint:gosec // Test directory permissions
		require.NoError(t, os.MkdirAll(filepath.Join(dir, name, "out"), 0o750))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extensions.json"), []byte("[]"), 0o600))

	ctrl := gomock.NewController(t)
	r := reconciler.New(fs.NewInventory(), fs.NewRemover(), mocks.NewMockLogger(ctrl), telemetry.NewNoOp())
	keep := domain.NewKeepSet("ms-python.python", "golang.go")
	opts := reconciler.Options{ExtensionsDir: dir}

	first, err := r.Run(context.Background(), keep, opts, &recordingRenderer{})
	require.NoError(t, err)
	assert.Equal(t, 3, first.Removed)
	assert.Empty(t, first.Failures)

	left, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(left))
	for _, e := range left {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"extensions.json", "golang.go-0.41.0-linux-x64", "ms-python.python-2024.2.0"}, names)

	second, err := r.Run(context.Background(), keep, opts, &recordingRenderer{})
	require.NoError(t, err)
	assert.Zero(t, second.TotalToRemove())
	assert.Zero(t, second.Removed)
	assert.Len(t, second.Kept, 2)
}
