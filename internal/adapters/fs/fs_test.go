package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extprune/internal/adapters/fs"
	"go.trai.ch/extprune/internal/core/domain"
	"go.trai.ch/zerr"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		//nolint:gosec // Test directory permissions
		require.NoError(t, os.MkdirAll(filepath.Join(root, n, "out"), 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(root, n, "package.json"), []byte("{}"), 0o600))
	}
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
}

func metadata(t *testing.T, err error) map[string]any {
	t.Helper()
	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	return zErr.Metadata()
}

func TestInventory_List(t *testing.T) {
	tmpDir := t.TempDir()
	mkdirs(t, tmpDir, "b.b-1.0.0", "a.a-2.0.0")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".obsolete"), []byte("{}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "extensions.json"), []byte("[]"), 0o600))

	target := t.TempDir()
	mkdirs(t, target, "linked.ext-1.0.0")
	require.NoError(t, os.Symlink(filepath.Join(target, "linked.ext-1.0.0"), filepath.Join(tmpDir, "linked.ext-1.0.0")))
	require.NoError(t, os.Symlink(filepath.Join(tmpDir, "extensions.json"), filepath.Join(tmpDir, "file-link")))

	names, err := fs.NewInventory().List(context.Background(), tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.a-2.0.0", "b.b-1.0.0", "linked.ext-1.0.0"}, names)
}

func TestInventory_List_Empty(t *testing.T) {
	names, err := fs.NewInventory().List(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestInventory_List_Missing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nope")

	_, err := fs.NewInventory().List(context.Background(), dir)

	require.ErrorIs(t, err, domain.ErrInventoryNotFound)
	assert.Equal(t, dir, metadata(t, err)["path"])
	assert.NotEmpty(t, metadata(t, err)["detail"])
}

func TestInventory_List_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	_, err := fs.NewInventory().List(context.Background(), path)

	require.ErrorIs(t, err, domain.ErrInventoryNotDir)
	assert.Equal(t, path, metadata(t, err)["path"])
}

func TestInventory_List_PermissionDenied(t *testing.T) {
	skipIfRoot(t)

	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0o000))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o750) }) //nolint:gosec // Test directory permissions

	_, err := fs.NewInventory().List(context.Background(), dir)

	require.ErrorIs(t, err, domain.ErrInventoryPermission)
}

func TestRemover_Remove(t *testing.T) {
	tmpDir := t.TempDir()
	mkdirs(t, tmpDir, "a.b-1.0.0", "a.b-1.2.0")

	require.NoError(t, fs.NewRemover().Remove(context.Background(), tmpDir, "a.b-1.0.0"))

	_, err := os.Stat(filepath.Join(tmpDir, "a.b-1.0.0"))
	assert.True(t, os.IsNotExist(err))
	assert.DirExists(t, filepath.Join(tmpDir, "a.b-1.2.0"))
}

func TestRemover_RejectsEscapingNames(t *testing.T) {
	tmpDir := t.TempDir()
	mkdirs(t, tmpDir, "keep")
	extDir := filepath.Join(tmpDir, "extensions")
	require.NoError(t, os.Mkdir(extDir, 0o750)) //nolint:gosec // Test directory permissions

	for _, name := range []string{"", ".", "..", "../keep", "a/b"} {
		err := fs.NewRemover().Remove(context.Background(), extDir, name)
		require.Error(t, err, "name %q", name)
	}

	assert.DirExists(t, filepath.Join(tmpDir, "keep"))
	assert.DirExists(t, extDir)
}

func TestRemover_PermissionDenied(t *testing.T) {
	skipIfRoot(t)

	tmpDir := t.TempDir()
	mkdirs(t, tmpDir, "a.b-1.0.0")
	require.NoError(t, os.Chmod(tmpDir, 0o500)) //nolint:gosec // Test directory permissions
	t.Cleanup(func() { _ = os.Chmod(tmpDir, 0o750) }) //nolint:gosec // Test directory permissions

	err := fs.NewRemover().Remove(context.Background(), tmpDir, "a.b-1.0.0")

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, domain.RemovalPermissionDenied, domain.NewRemovalFailure(domain.Decode("a.b-1.0.0"), err).Kind)
}

func TestKeepFileLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keep.txt")
	content := "# mine\nms-python.python\n\ngolang.go\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	keep, err := fs.NewKeepFileLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"golang.go", "ms-python.python"}, keep.Sorted())
}

func TestKeepFileLoader_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.txt")

		_, err := fs.NewKeepFileLoader().Load(path)

		require.ErrorIs(t, err, domain.ErrKeepListNotFound)
		assert.Equal(t, path, metadata(t, err)["path"])
	})

	t.Run("directory", func(t *testing.T) {
		dir := t.TempDir()

		_, err := fs.NewKeepFileLoader().Load(dir)

		require.ErrorIs(t, err, domain.ErrKeepListReadFailed)
	})

	t.Run("unreadable file", func(t *testing.T) {
		skipIfRoot(t)

		path := filepath.Join(t.TempDir(), "keep.txt")
		require.NoError(t, os.WriteFile(path, []byte("a.b\n"), 0o000))

		_, err := fs.NewKeepFileLoader().Load(path)

		require.ErrorIs(t, err, domain.ErrKeepListPermission)
	})
}

func TestHasher_Fingerprint(t *testing.T) {
	h := fs.NewHasher()

	a := h.Fingerprint([]string{"a.b-1.0.0", "c.d-1.0.0"})
	b := h.Fingerprint([]string{"c.d-1.0.0", "a.b-1.0.0"})
	c := h.Fingerprint([]string{"a.b-1.0.0"})
	d := h.Fingerprint([]string{"a.b-1.0.0c.d-1.0.0"})

	assert.Len(t, a, 16)
	assert.Equal(t, a, b, "fingerprint must not depend on listing order")
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d, "names must be separated")
}

func TestHasher_FingerprintDoesNotMutateInput(t *testing.T) {
	names := []string{"z", "a"}
	_ = fs.NewHasher().Fingerprint(names)
	assert.Equal(t, []string{"z", "a"}, names)
}
