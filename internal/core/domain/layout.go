package domain

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

const (
	// DeveloperDirName is the Xcode developer directory under the user library.
	DeveloperDirName = "Developer"

	// XcodeDirName is the Xcode directory under Developer.
	XcodeDirName = "Xcode"

	// DerivedDataDirName is the name of the DerivedData root.
	DerivedDataDirName = "DerivedData"

	// ModuleCacheDirName is the shared module cache inside the DerivedData root.
	ModuleCacheDirName = "ModuleCache.noindex"

	// MetadataFileName is the per-entry metadata document written by Xcode.
	MetadataFileName = "info.plist"

	// WorkspacePathKey is the metadata key holding the originating project path.
	WorkspacePathKey = "WorkspacePath"

	// AppDirName is the directory used under the user config and cache directories.
	AppDirName = "xclean"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "config.yaml"

	// PrefsFileName is the name of the preferences file.
	PrefsFileName = "preferences.yaml"

	// DebugLogFile is the name of the debug log file.
	DebugLogFile = "debug.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DerivedDataPath returns the DerivedData root for the given user library directory.
// It joins Developer, Xcode and DerivedData.
func DerivedDataPath(library string) string {
	return filepath.Join(library, DeveloperDirName, XcodeDirName, DerivedDataDirName)
}

// ModuleCachePath returns the module cache root inside a DerivedData root.
func ModuleCachePath(derivedData string) string {
	return filepath.Join(derivedData, ModuleCacheDirName)
}

// MetadataPath returns the path of an entry's info.plist.
func MetadataPath(entryDir string) string {
	return filepath.Join(entryDir, MetadataFileName)
}

// DefaultConfigPath returns the default path for the configuration file.
// It joins the user config directory, xclean and config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, ErrConfigDirUnavailable.Error())
	}
	return filepath.Join(dir, AppDirName, ConfigFileName), nil
}

// DefaultPrefsPath returns the default path for the preferences file.
// It joins the user config directory, xclean and preferences.yaml.
func DefaultPrefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", zerr.Wrap(err, ErrConfigDirUnavailable.Error())
	}
	return filepath.Join(dir, AppDirName, PrefsFileName), nil
}

// DefaultDebugLogPath returns the default path for the debug log.
// It joins the user cache directory, xclean and debug.log, falling back to the
// temp directory when no cache directory is available.
func DefaultDebugLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppDirName, DebugLogFile)
}
