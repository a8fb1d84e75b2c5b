package ports

// MetadataReader reads the info.plist Xcode writes into every DerivedData entry.
//
//go:generate mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type MetadataReader interface {
	// ReadWorkspacePath returns the WorkspacePath recorded for the entry in dir.
	ReadWorkspacePath(dir string) (string, error)
}
