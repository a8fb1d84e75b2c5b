// Package ports defines the core interfaces for the application.
package ports

// FileSystem is the filesystem surface used by discovery and cleanup.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether path exists, following symlinks.
	Exists(path string) bool
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool
	// ListDirs returns the absolute paths of the immediate subdirectories of path.
	ListDirs(path string) ([]string, error)
	// RemoveAll removes path and everything below it.
	RemoveAll(path string) error
}

// Sizer computes the disk usage of a directory tree.
type Sizer interface {
	// SizeOf returns the summed size of every regular file below path.
	// It returns false when path is missing or not a directory.
	SizeOf(path string) (uint64, bool)
}

// RootLocator resolves the DerivedData root for the current user.
type RootLocator interface {
	// DerivedDataRoot returns the DerivedData root, or an error when the user
	// library directory cannot be resolved.
	DerivedDataRoot() (string, error)
}
