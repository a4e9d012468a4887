package config_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extprune/internal/adapters/config"
	"go.trai.ch/extprune/internal/core/domain"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func fixedHome(home string) func() (string, error) {
	return func() (string, error) { return home, nil }
}

func TestLoad(t *testing.T) {
	path := writeSettings(t, `
version: "1"
extensionsDir: /opt/editor/extensions
keepAllVersions: true
historyFile: /var/tmp/history.json
`)

	settings, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, &domain.Settings{
		ExtensionsDir:   "/opt/editor/extensions",
		KeepAllVersions: true,
		HistoryFile:     "/var/tmp/history.json",
	}, settings)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeSettings(t, "")

	settings, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, &domain.Settings{}, settings)
}

func TestLoad_ExpandsHome(t *testing.T) {
	path := writeSettings(t, `
extensionsDir: ~/.vscode-insiders/extensions
historyFile: "~"
`)
	loader := &config.Loader{HomeDir: fixedHome("/home/dev")}

	settings, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/home/dev", ".vscode-insiders", "extensions"), settings.ExtensionsDir)
	assert.Equal(t, "/home/dev", settings.HistoryFile)
}

func TestLoad_HomeUnavailable(t *testing.T) {
	path := writeSettings(t, "extensionsDir: ~/ext\n")
	loader := &config.Loader{HomeDir: func() (string, error) { return "", errors.New("no home") }}

	_, err := loader.Load(path)

	require.ErrorIs(t, err, domain.ErrHomeDirUnavailable)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))

		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := config.NewLoader().Load(t.TempDir())

		require.ErrorIs(t, err, domain.ErrSettingsReadFailed)
		assert.NotErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeSettings(t, "extensionsDir: [unterminated\n")

		_, err := config.NewLoader().Load(path)

		require.ErrorIs(t, err, domain.ErrSettingsParseFailed)
	})

	t.Run("wrong type", func(t *testing.T) {
		path := writeSettings(t, "keepAllVersions: sometimes\n")

		_, err := config.NewLoader().Load(path)

		require.ErrorIs(t, err, domain.ErrSettingsParseFailed)
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeSettings(t, "version: \"2\"\n")

		_, err := config.NewLoader().Load(path)

		require.ErrorIs(t, err, domain.ErrSettingsParseFailed)
	})
}
