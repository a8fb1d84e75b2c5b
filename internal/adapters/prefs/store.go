// Package prefs implements the user preference store as a small YAML file.
package prefs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Preferences = (*Store)(nil)

// document is the on-disk layout of preferences.yaml.
type document struct {
	AutoClean bool       `yaml:"autoClean"`
	LastStart *time.Time `yaml:"lastStart,omitempty"`
}

// Store implements ports.Preferences. Values are cached in memory and every
// change is written through to disk.
type Store struct {
	path string

	mu  sync.RWMutex
	doc document
}

// Open loads the preferences at path. A missing file yields the defaults.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	//nolint:gosec // Path is the per-user preferences file
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPrefsReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, &s.doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPrefsParseFailed.Error()), "path", path)
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// AutoClean reports whether the periodic zombie sweep is enabled.
func (s *Store) AutoClean() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.AutoClean
}

// SetAutoClean enables or disables the periodic zombie sweep.
func (s *Store) SetAutoClean(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc
	next.AutoClean = enabled
	return s.commitLocked(next)
}

// LastStart returns the previously recorded interactive launch.
func (s *Store) LastStart() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc.LastStart == nil {
		return time.Time{}, false
	}
	return *s.doc.LastStart, true
}

// SetLastStart records an interactive launch.
func (s *Store) SetLastStart(t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc
	ts := t.UTC()
	next.LastStart = &ts
	return s.commitLocked(next)
}

// commitLocked writes doc to disk through a temp file and a rename, then
// updates the cache. Must be called with s.mu held.
func (s *Store) commitLocked(doc document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return zerr.Wrap(err, domain.ErrPrefsWriteFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPrefsWriteFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPrefsWriteFailed.Error()), "path", dir)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrPrefsWriteFailed.Error()), "path", tmpName)
	}
	if err := tmp.Chmod(domain.PrivateFilePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrPrefsWriteFailed.Error()), "path", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPrefsWriteFailed.Error()), "path", tmpName)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPrefsWriteFailed.Error()), "path", s.path)
	}

	s.doc = doc
	return nil
}
