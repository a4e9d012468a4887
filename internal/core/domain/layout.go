package domain

import "path/filepath"

const (
	// AppName is the directory name used under the user's config and cache dirs.
	AppName = "extprune"

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = "config.yaml"

	// HistoryFileName is the name of the run history file.
	HistoryFileName = "history.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultExtensionsDir returns the editor's extension directory under home.
// The editor uses the same location on macOS, Windows and Linux.
func DefaultExtensionsDir(home string) string {
	return filepath.Join(home, ".vscode", "extensions")
}

// DefaultSettingsPath returns the settings file location under configDir.
func DefaultSettingsPath(configDir string) string {
	return filepath.Join(configDir, AppName, SettingsFileName)
}

// DefaultHistoryPath returns the history file location under cacheDir.
func DefaultHistoryPath(cacheDir string) string {
	return filepath.Join(cacheDir, AppName, HistoryFileName)
}
