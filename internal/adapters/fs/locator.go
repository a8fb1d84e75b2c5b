package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports"
	"go.trai.ch/zerr"
)

// LibraryDirName is the per-user library directory on macOS.
const LibraryDirName = "Library"

var _ ports.RootLocator = (*Locator)(nil)

// Locator resolves the DerivedData root. It is recomputed on every call.
type Locator struct {
	override string
	homeDir  func() (string, error)
}

// NewLocator creates a Locator. A non-empty override is used as the DerivedData
// root verbatim; otherwise the root is derived from the user's home directory.
func NewLocator(override string) *Locator {
	return &Locator{
		override: override,
		homeDir:  os.UserHomeDir,
	}
}

// DerivedDataRoot returns the DerivedData root for the current user.
func (l *Locator) DerivedDataRoot() (string, error) {
	if l.override != "" {
		return filepath.Clean(l.override), nil
	}

	home, err := l.homeDir()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrLibraryUnavailable.Error())
	}
	if home == "" {
		return "", domain.ErrLibraryUnavailable
	}
	return domain.DerivedDataPath(filepath.Join(home, LibraryDirName)), nil
}
