// Package plist reads the info.plist metadata Xcode stores in each DerivedData entry.
package plist

import (
	"os"

	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports"
	"go.trai.ch/zerr"
	"howett.net/plist"
)

var _ ports.MetadataReader = (*Reader)(nil)

// Reader implements ports.MetadataReader. XML, binary and OpenStep property
// lists are accepted.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadWorkspacePath returns the WorkspacePath string from dir/info.plist.
func (r *Reader) ReadWorkspacePath(dir string) (string, error) {
	path := domain.MetadataPath(dir)

	//nolint:gosec // Path is built from the DerivedData root listing
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrMetadataMissing.Error()), "path", path)
	}

	var doc map[string]any
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrMetadataInvalid.Error()), "path", path)
	}

	workspace, ok := doc[domain.WorkspacePathKey].(string)
	if !ok {
		return "", zerr.With(domain.ErrWorkspacePathMissing, "path", path)
	}
	return workspace, nil
}
