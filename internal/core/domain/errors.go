package domain

import "go.trai.ch/zerr"

var (
	// ErrKeepListNotFound is returned when the keep list file does not exist.
	ErrKeepListNotFound = zerr.New("keep list file not found")

	// ErrKeepListPermission is returned when the keep list file cannot be read due to permissions.
	ErrKeepListPermission = zerr.New("permission denied reading keep list file")

	// ErrKeepListReadFailed is returned when the keep list file cannot be read for any other reason.
	ErrKeepListReadFailed = zerr.New("failed to read keep list file")

	// ErrInventoryNotFound is returned when the extensions directory does not exist.
	ErrInventoryNotFound = zerr.New("extensions directory not found")

	// ErrInventoryNotDir is returned when the extensions path is not a directory.
	ErrInventoryNotDir = zerr.New("extensions path is not a directory")

	// ErrInventoryPermission is returned when the extensions directory cannot be listed due to permissions.
	ErrInventoryPermission = zerr.New("permission denied accessing extensions directory")

	// ErrInventoryReadFailed is returned when the extensions directory cannot be listed for any other reason.
	ErrInventoryReadFailed = zerr.New("failed to list extensions directory")

	// ErrRemovalFailed is returned when at least one removal attempt failed.
	ErrRemovalFailed = zerr.New("one or more extensions could not be removed")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrHomeDirUnavailable is returned when the default extensions directory cannot be resolved.
	ErrHomeDirUnavailable = zerr.New("failed to resolve home directory")

	// ErrHistoryReadFailed is returned when the run history cannot be read.
	ErrHistoryReadFailed = zerr.New("failed to read run history")

	// ErrHistoryUnmarshalFailed is returned when the run history cannot be decoded.
	ErrHistoryUnmarshalFailed = zerr.New("failed to unmarshal run history")

	// ErrHistoryMarshalFailed is returned when the run history cannot be encoded.
	ErrHistoryMarshalFailed = zerr.New("failed to marshal run history")

	// ErrHistoryWriteFailed is returned when the run history cannot be written.
	ErrHistoryWriteFailed = zerr.New("failed to write run history")

	// ErrNoHistory is returned when no run has been recorded for a directory.
	ErrNoHistory = zerr.New("no run recorded for extensions directory")
)
