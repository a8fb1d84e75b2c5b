package domain

import "go.trai.ch/zerr"

var (
	// ErrNotADirectory is returned when a candidate entry path is missing or not a directory.
	ErrNotADirectory = zerr.New("not a directory")

	// ErrMetadataMissing is returned when an entry has no readable info.plist.
	ErrMetadataMissing = zerr.New("failed to read entry metadata")

	// ErrMetadataInvalid is returned when info.plist does not decode to a dictionary.
	ErrMetadataInvalid = zerr.New("entry metadata is not a dictionary")

	// ErrWorkspacePathMissing is returned when info.plist lacks a string WorkspacePath key.
	ErrWorkspacePathMissing = zerr.New("entry metadata has no WorkspacePath")

	// ErrListFailed is returned when the DerivedData root cannot be listed.
	ErrListFailed = zerr.New("failed to list derived data root")

	// ErrDeleteFailed is returned when removing a cache directory fails.
	ErrDeleteFailed = zerr.New("failed to delete")

	// ErrLibraryUnavailable is returned when the user library directory cannot be resolved.
	ErrLibraryUnavailable = zerr.New("library directory is unavailable")

	// ErrSweepInProgress is returned when a zombie sweep is requested while another one runs.
	ErrSweepInProgress = zerr.New("a zombie sweep is already running")

	// ErrNoMatchingEntries is returned when a clean request names no known entry.
	ErrNoMatchingEntries = zerr.New("no matching derived data entries")

	// ErrNothingToClean is returned when clean is invoked without a target.
	ErrNothingToClean = zerr.New("nothing to clean, pass entry names, --all or --module-cache")

	// ErrOperationFailed marks a command failure that was already reported to the user.
	ErrOperationFailed = zerr.New("operation failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrInvalidDuration is returned when a duration setting cannot be parsed or is not positive.
	ErrInvalidDuration = zerr.New("invalid duration, expected a positive Go duration such as 10m")

	// ErrInvalidParallelism is returned when the parallelism setting is not positive.
	ErrInvalidParallelism = zerr.New("parallelism must be greater than zero")

	// ErrConfigDirUnavailable is returned when the user config directory cannot be resolved.
	ErrConfigDirUnavailable = zerr.New("failed to resolve user config directory")

	// ErrPrefsReadFailed is returned when the preferences file cannot be read.
	ErrPrefsReadFailed = zerr.New("failed to read preferences")

	// ErrPrefsParseFailed is returned when the preferences file cannot be parsed.
	ErrPrefsParseFailed = zerr.New("failed to parse preferences")

	// ErrPrefsWriteFailed is returned when the preferences file cannot be written.
	ErrPrefsWriteFailed = zerr.New("failed to write preferences")

	// ErrWatcherStartFailed is returned when the cache root watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start cache root watcher")
)
