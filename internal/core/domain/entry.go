// Package domain contains the core types for Xcode DerivedData entries.
package domain

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// projectExtensions are stripped from the project path to build a display name.
var projectExtensions = []string{".xcworkspace", ".xcodeproj", ".swiftpm", ".playground"}

// Entry is one Xcode DerivedData cache directory and the project it was built for.
//
// Root and ProjectPath never change after construction. Size and Loading are
// assigned together, exactly once, by CompleteSizing.
type Entry struct {
	id          uint64
	root        string
	projectPath string
	name        string

	mu      sync.RWMutex
	size    uint64
	loading bool
}

// NewEntry creates an entry that is still waiting for its size.
func NewEntry(root, projectPath string) *Entry {
	return &Entry{
		id:          xxhash.Sum64String(root),
		root:        root,
		projectPath: projectPath,
		name:        DisplayName(root, projectPath),
		loading:     true,
	}
}

// ID returns a key derived from the root path. Entries built for the same
// directory in different passes share it.
func (e *Entry) ID() uint64 {
	return e.id
}

// Root returns the absolute path of the cache directory.
func (e *Entry) Root() string {
	return e.root
}

// ProjectPath returns the WorkspacePath recorded in the entry metadata.
// It may be empty, or point to a project that no longer exists.
func (e *Entry) ProjectPath() string {
	return e.projectPath
}

// Name returns the human-readable name of the entry.
func (e *Entry) Name() string {
	return e.name
}

// Size returns the total size in bytes, or 0 while the entry is loading.
func (e *Entry) Size() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.size
}

// Loading reports whether the size computation is still running.
func (e *Entry) Loading() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loading
}

// Sizing returns size and loading as one consistent read.
func (e *Entry) Sizing() (size uint64, loading bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.size, e.loading
}

// CompleteSizing records the final size and clears the loading flag.
// Only the first call has an effect; it returns false for every later call.
func (e *Entry) CompleteSizing(size uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loading {
		return false
	}
	e.size = size
	e.loading = false
	return true
}

// DisplayName derives the name shown for an entry: the project file name
// without its Xcode extension, or the cache directory name when the entry
// records no project.
func DisplayName(root, projectPath string) string {
	if projectPath == "" {
		return filepath.Base(root)
	}

	base := filepath.Base(projectPath)
	for _, ext := range projectExtensions {
		if trimmed, ok := strings.CutSuffix(base, ext); ok && trimmed != "" {
			return trimmed
		}
	}
	return base
}
