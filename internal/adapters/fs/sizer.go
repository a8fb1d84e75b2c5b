package fs

import (
	"os"

	"go.trai.ch/xclean/internal/core/ports"
)

var _ ports.Sizer = (*Sizer)(nil)

// Sizer implements ports.Sizer by summing apparent file sizes.
type Sizer struct {
	walker *Walker
}

// NewSizer creates a new Sizer backed by the given walker.
func NewSizer(walker *Walker) *Sizer {
	return &Sizer{walker: walker}
}

// SizeOf returns the total size of all regular files below path, hidden files
// included. It returns false when path does not exist or is not a directory.
func (s *Sizer) SizeOf(path string) (uint64, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return 0, false
	}

	var total uint64
	for _, fi := range s.walker.RegularFiles(path) {
		if n := fi.Size(); n > 0 {
			total += uint64(n)
		}
	}
	return total, true
}
