// Package zombie identifies DerivedData entries whose project no longer exists.
package zombie

import (
	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports"
)

// Classifier decides whether an entry is a zombie. It holds no state and is
// safe for concurrent use.
type Classifier struct {
	fs ports.FileSystem
}

// NewClassifier creates a Classifier that checks project paths on fs.
func NewClassifier(fs ports.FileSystem) *Classifier {
	return &Classifier{fs: fs}
}

// IsZombie reports whether entry records a project path that does not exist.
// Entries without a project path are never zombies.
func (c *Classifier) IsZombie(entry *domain.Entry) bool {
	path := entry.ProjectPath()
	return path != "" && !c.fs.Exists(path)
}

// Filter returns the zombies among entries, preserving their order.
func (c *Classifier) Filter(entries []*domain.Entry) []*domain.Entry {
	var zombies []*domain.Entry
	for _, e := range entries {
		if c.IsZombie(e) {
			zombies = append(zombies, e)
		}
	}
	return zombies
}
