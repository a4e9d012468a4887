package config

// SchemaVersion is the only settings file version understood by the loader.
const SchemaVersion = "1"

// Settingsfile represents the structure of the config.yaml settings file.
type Settingsfile struct {
	Version         string `yaml:"version"`
	ExtensionsDir   string `yaml:"extensionsDir"`
	KeepAllVersions bool   `yaml:"keepAllVersions"`
	HistoryFile     string `yaml:"historyFile"`
}
