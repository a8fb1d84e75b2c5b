package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"go.trai.ch/xclean/internal/adapters/linear"
	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/engine/dispatch"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// headless runs fn against a session whose callbacks run on a dispatch loop
// owned by this call. Once fn succeeds the remaining size scans are drained.
func (a *App) headless(ctx context.Context, fn func(ctx context.Context, s *session, out *linear.Presenter) error) error {
	loop := dispatch.NewLoop()
	s, err := a.newSession(loop)
	if err != nil {
		return err
	}

	out := linear.NewPresenter(a.stdout, a.stderr)
	unsubscribe := s.coordinator.Subscribe(out)
	defer unsubscribe()

	g, ctx := errgroup.WithContext(ctx)
	loopCtx, stopLoop := context.WithCancel(ctx)
	defer stopLoop()

	g.Go(func() error {
		return loop.Run(loopCtx)
	})

	g.Go(func() error {
		defer stopLoop()
		if err := fn(ctx, s, out); err != nil {
			return err
		}
		return s.settle(ctx)
	})

	return g.Wait()
}

// refresh runs a discovery pass and returns its snapshot once every entry has
// been sized.
func refresh(ctx context.Context, s *session, out *linear.Presenter) (domain.Snapshot, error) {
	if err := await(ctx, s.coordinator.Reload(ctx)); err != nil {
		return domain.Snapshot{}, reported(err)
	}
	if err := s.settle(ctx); err != nil {
		return domain.Snapshot{}, err
	}
	return out.Snapshot(), nil
}

// ListOptions configuration for the List method.
type ListOptions struct {
	Zombies bool
}

// List prints every entry with its size.
func (a *App) List(ctx context.Context, opts ListOptions) error {
	return a.headless(ctx, func(ctx context.Context, s *session, out *linear.Presenter) error {
		snapshot, err := refresh(ctx, s, out)
		if err != nil {
			return err
		}

		entries := snapshot.Entries
		if opts.Zombies {
			entries = snapshot.ZombieEntries()
		}
		out.Table(entries, snapshot.IsZombie)
		return nil
	})
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// All removes the whole DerivedData root.
	All bool
	// ModuleCache removes the shared module cache.
	ModuleCache bool
	// Targets selects entries by display name, directory name or path.
	Targets []string
}

// Clean removes the selected cache directories and reports the space freed.
func (a *App) Clean(ctx context.Context, opts CleanOptions) error {
	if !opts.All && !opts.ModuleCache && len(opts.Targets) == 0 {
		return domain.ErrNothingToClean
	}

	return a.headless(ctx, func(ctx context.Context, s *session, out *linear.Presenter) error {
		switch {
		case opts.All:
			return a.cleanAll(ctx, s, out)
		case len(opts.Targets) > 0:
			if err := a.cleanTargets(ctx, s, out, opts.Targets); err != nil {
				return err
			}
		}

		if opts.ModuleCache {
			return a.cleanModuleCache(ctx, s, out)
		}
		return nil
	})
}

func (a *App) cleanAll(ctx context.Context, s *session, out *linear.Presenter) error {
	snapshot, err := refresh(ctx, s, out)
	if err != nil {
		return err
	}

	if err := await(ctx, s.coordinator.DeleteAll(ctx)); err != nil {
		return reported(err)
	}
	out.Removed(len(snapshot.Entries), snapshot.TotalBytes())
	return nil
}

func (a *App) cleanTargets(ctx context.Context, s *session, out *linear.Presenter, targets []string) error {
	snapshot, err := refresh(ctx, s, out)
	if err != nil {
		return err
	}

	picked, err := match(snapshot.Entries, targets)
	if err != nil {
		return err
	}

	var (
		removed int
		freed   uint64
		failed  []error
	)
	for _, entry := range picked {
		if err := await(ctx, s.coordinator.DeleteOne(ctx, entry)); err != nil {
			failed = append(failed, err)
			continue
		}
		removed++
		freed += entry.Size()
	}

	if removed > 0 {
		out.Removed(removed, freed)
	}
	if len(failed) > 0 {
		return reported(errors.Join(failed...))
	}
	return nil
}

func (a *App) cleanModuleCache(ctx context.Context, s *session, out *linear.Presenter) error {
	var freed uint64
	if root, ok := s.discovery.ModuleCacheRoot(); ok {
		freed, _ = a.sizer.SizeOf(root)
	}

	if err := await(ctx, s.coordinator.DeleteModuleCache(ctx)); err != nil {
		return reported(err)
	}
	out.Done(fmt.Sprintf("Removed the module cache, freed %s", humanize.Bytes(freed)))
	return nil
}

// Sweep removes every zombie entry once.
func (a *App) Sweep(ctx context.Context) error {
	return a.headless(ctx, func(ctx context.Context, s *session, out *linear.Presenter) error {
		snapshot, err := refresh(ctx, s, out)
		if err != nil {
			return err
		}

		zombies := snapshot.ZombieEntries()
		if len(zombies) == 0 {
			out.Done("No zombie entries found")
			return nil
		}

		var freed uint64
		for _, entry := range zombies {
			freed += entry.Size()
		}

		result, _ := s.coordinator.SweepZombies(ctx)
		if err := await(ctx, result); err != nil {
			return reported(err)
		}
		out.Removed(len(zombies), freed)
		return nil
	})
}

// PrefsOptions configuration for the Prefs method. A nil field is left unchanged.
type PrefsOptions struct {
	AutoClean *bool
}

// Prefs updates the requested preferences and prints the stored values.
func (a *App) Prefs(_ context.Context, opts PrefsOptions) error {
	if opts.AutoClean != nil {
		if err := a.prefs.SetAutoClean(*opts.AutoClean); err != nil {
			return err
		}
	}

	lastStart, started := a.prefs.LastStart()
	linear.NewPresenter(a.stdout, a.stderr).Preferences(a.prefs.AutoClean(), lastStart, started)
	return nil
}

// match resolves clean targets to entries. A target matches an entry by
// display name (case-insensitive), by directory name, or by the entry or
// project path. Every target must match at least one entry.
func match(entries []*domain.Entry, targets []string) ([]*domain.Entry, error) {
	var picked []*domain.Entry
	seen := make(map[uint64]bool)

	for _, target := range targets {
		found := false
		for _, entry := range entries {
			if !matches(entry, target) {
				continue
			}
			found = true
			if !seen[entry.ID()] {
				seen[entry.ID()] = true
				picked = append(picked, entry)
			}
		}
		if !found {
			return nil, zerr.With(domain.ErrNoMatchingEntries, "name", target)
		}
	}

	return picked, nil
}

func matches(entry *domain.Entry, target string) bool {
	if strings.EqualFold(entry.Name(), target) || filepath.Base(entry.Root()) == target {
		return true
	}
	if !filepath.IsAbs(target) {
		return false
	}
	path := filepath.Clean(target)
	return entry.Root() == path || entry.ProjectPath() == path
}
