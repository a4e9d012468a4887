// Package config provides the settings file loader for extprune.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/extprune/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	// HomeDir resolves "~" at the start of configured paths.
	HomeDir func() (string, error)
}

// NewLoader creates a new Loader that expands "~" against the user's home directory.
func NewLoader() *Loader {
	return &Loader{HomeDir: os.UserHomeDir}
}

// Load reads the settings file at path.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	var file Settingsfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}

	if file.Version != "" && file.Version != SchemaVersion {
		err := zerr.Wrap(domain.ErrSettingsParseFailed, "unsupported settings version")
		err = zerr.With(err, "path", path)
		return nil, zerr.With(err, "version", file.Version)
	}

	extensionsDir, err := l.expand(file.ExtensionsDir)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	historyFile, err := l.expand(file.HistoryFile)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return &domain.Settings{
		ExtensionsDir:   extensionsDir,
		KeepAllVersions: file.KeepAllVersions,
		HistoryFile:     historyFile,
	}, nil
}

func (l *Loader) expand(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}

	home, err := l.HomeDir()
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrHomeDirUnavailable, "failed to expand settings path"), "detail", err.Error())
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
// A missing file keeps fs.ErrNotExist in the chain so callers can treat it as optional.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is provided by the user or derived from the config dir
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "settings file not found"), "path", path)
		}
		err = zerr.With(zerr.Wrap(domain.ErrSettingsReadFailed, "failed to load settings"), "detail", err.Error())
		return zerr.With(err, "path", path)
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		err = zerr.With(zerr.Wrap(domain.ErrSettingsParseFailed, "failed to load settings"), "detail", parseErr.Error())
		return zerr.With(err, "path", path)
	}

	return nil
}
