// Package discovery enumerates the DerivedData root and builds validated
// entries whose sizes are computed in the background.
package discovery

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

// Completion describes how a finished size scan is delivered. Notify runs on
// Executor right after the entry's size and loading flag were assigned. A nil
// Executor runs the completion on the scanning goroutine.
type Completion struct {
	Executor ports.Dispatcher
	Notify   func(*domain.Entry)
}

// Service discovers DerivedData entries. Roots are resolved on every call and
// nothing is cached between passes.
type Service struct {
	fs       ports.FileSystem
	metadata ports.MetadataReader
	sizer    ports.Sizer
	locator  ports.RootLocator
	logger   ports.Logger

	sem      *semaphore.Weighted
	scans    singleflight.Group
	inflight sync.WaitGroup
}

// NewService creates a Service that runs at most parallelism size scans at once.
func NewService(
	fs ports.FileSystem,
	metadata ports.MetadataReader,
	sizer ports.Sizer,
	locator ports.RootLocator,
	logger ports.Logger,
	parallelism int,
) *Service {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Service{
		fs:       fs,
		metadata: metadata,
		sizer:    sizer,
		locator:  locator,
		logger:   logger,
		sem:      semaphore.NewWeighted(int64(parallelism)),
	}
}

// DerivedDataRoot returns the DerivedData root, or false when the user library
// directory cannot be resolved.
func (s *Service) DerivedDataRoot() (string, bool) {
	root, err := s.locator.DerivedDataRoot()
	if err != nil {
		s.logger.Debug(fmt.Sprintf("cannot resolve DerivedData root: %v", err))
		return "", false
	}
	return root, true
}

// ModuleCacheRoot returns the module cache root inside the DerivedData root.
func (s *Service) ModuleCacheRoot() (string, bool) {
	root, ok := s.DerivedDataRoot()
	if !ok {
		return "", false
	}
	return domain.ModuleCachePath(root), true
}

// TryCreate validates dir as a DerivedData entry. On success the size scan is
// started in the background and the entry is returned while still loading.
//
// Validation fails when dir is not a directory, or when its info.plist is
// missing, malformed or lacks a WorkspacePath string. A WorkspacePath that no
// longer exists is accepted.
func (s *Service) TryCreate(ctx context.Context, dir string, done Completion) (*domain.Entry, bool) {
	entry, ok := s.inspect(dir)
	if !ok {
		return nil, false
	}
	s.startSizing(ctx, entry, done)
	return entry, true
}

// ListAll builds an entry for every valid immediate subdirectory of the
// DerivedData root. Invalid candidates and the module cache are skipped.
// The result has no particular order.
func (s *Service) ListAll(ctx context.Context, done Completion) []*domain.Entry {
	entries := s.Scan()
	for _, entry := range entries {
		s.startSizing(ctx, entry, done)
	}
	return entries
}

// Scan validates entries the way ListAll does but reads metadata only. No
// size scan is started, so the returned entries stay loading.
func (s *Service) Scan() []*domain.Entry {
	root, ok := s.DerivedDataRoot()
	if !ok {
		return nil
	}

	dirs, err := s.fs.ListDirs(root)
	if err != nil {
		s.logger.Debug(fmt.Sprintf("nothing to discover: %v", err))
		return nil
	}

	entries := make([]*domain.Entry, 0, len(dirs))
	for _, dir := range dirs {
		if filepath.Base(dir) == domain.ModuleCacheDirName {
			continue
		}
		if entry, ok := s.inspect(dir); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Discover runs a full discovery pass.
func (s *Service) Discover(ctx context.Context, done Completion) []*domain.Entry {
	return s.ListAll(ctx, done)
}

// Wait blocks until every size scan started so far has been delivered to its
// executor.
func (s *Service) Wait() {
	s.inflight.Wait()
}

func (s *Service) inspect(dir string) (*domain.Entry, bool) {
	if !s.fs.IsDir(dir) {
		s.logger.Debug(fmt.Sprintf("skipping %s: %v", dir, domain.ErrNotADirectory))
		return nil, false
	}

	projectPath, err := s.metadata.ReadWorkspacePath(dir)
	if err != nil {
		s.logger.Debug(fmt.Sprintf("skipping %s: %v", dir, err))
		return nil, false
	}

	return domain.NewEntry(dir, projectPath), true
}

func (s *Service) startSizing(ctx context.Context, entry *domain.Entry, done Completion) {
	ctx = context.WithoutCancel(ctx)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		size := s.measure(ctx, entry.Root())
		complete := func() {
			if entry.CompleteSizing(size) && done.Notify != nil {
				done.Notify(entry)
			}
		}

		if done.Executor == nil {
			complete()
			return
		}
		done.Executor.Dispatch(complete)
	}()
}

// measure sizes root on the bounded pool. Concurrent requests for the same
// root, for instance from overlapping passes, share one scan.
func (s *Service) measure(ctx context.Context, root string) uint64 {
	v, _, _ := s.scans.Do(root, func() (any, error) {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			return uint64(0), err
		}
		defer s.sem.Release(1)

		size, ok := s.sizer.SizeOf(root)
		if !ok {
			s.logger.Debug("size scan found nothing at " + root)
		}
		return size, nil
	})

	size, _ := v.(uint64)
	return size
}
