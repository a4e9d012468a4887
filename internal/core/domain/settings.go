package domain

// Settings holds values read from the optional settings file. Zero values mean
// "not set" and leave the built-in defaults in place.
type Settings struct {
	ExtensionsDir   string
	KeepAllVersions bool
	HistoryFile     string
}
