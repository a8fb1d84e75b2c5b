package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"go.trai.ch/xclean/internal/adapters/tui"
	"go.trai.ch/xclean/internal/adapters/watcher"
	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports"
	"go.trai.ch/xclean/internal/engine/cleanup"
	"go.trai.ch/xclean/internal/engine/dispatch"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// FirstRunHint is shown the first time the interface is opened.
const FirstRunHint = "Welcome to xclean. d deletes the selected entry, z sweeps zombies, ? shows all keys."

// UI runs the interactive interface until the user quits or ctx is done. The
// periodic sweep and the cache root watcher run alongside it.
func (a *App) UI(ctx context.Context) error {
	restore, err := a.redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	dispatcher := tui.NewDispatcher()
	s, err := a.newSession(dispatcher)
	if err != nil {
		return err
	}

	model := tui.NewModel(ctx, a.stdout, s.coordinator, a.prefs)
	if _, started := a.prefs.LastStart(); !started {
		model.Hint = FirstRunHint
	}
	if err := a.prefs.SetLastStart(time.Now()); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to record launch: %v", err))
	}

	unsubscribe := s.coordinator.Subscribe(model)
	defer unsubscribe()

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	renderer := tui.NewRenderer(model, dispatcher, opts...)

	g, ctx := errgroup.WithContext(ctx)
	bgCtx, stopBackground := context.WithCancel(ctx)
	defer stopBackground()

	// Renderer Routine
	g.Go(func() error {
		defer stopBackground()
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		if err := renderer.Wait(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return zerr.Wrap(err, "interactive interface failed")
		}
		return nil
	})

	// Background Routines
	g.Go(func() error {
		return cleanup.NewSweeper(s.coordinator, a.prefs, a.logger, s.cfg.SweepInterval).Run(bgCtx)
	})
	g.Go(func() error {
		return a.watchRoot(bgCtx, s)
	})

	s.coordinator.Reload(ctx)

	return g.Wait()
}

// Watch runs headless: it keeps the entry list current, sweeps zombies on the
// configured interval while auto-clean is on, and logs what happens until ctx
// is done.
func (a *App) Watch(ctx context.Context) error {
	loop := dispatch.NewLoop()
	s, err := a.newSession(loop)
	if err != nil {
		return err
	}

	root, _ := s.discovery.DerivedDataRoot()
	unsubscribe := s.coordinator.Subscribe(&activityLog{logger: a.logger, root: root})
	defer unsubscribe()

	state := "off"
	if a.prefs.AutoClean() {
		state = "on"
	}
	a.logger.Info(fmt.Sprintf("watching %s, auto-clean %s, sweep every %s", root, state, s.cfg.SweepInterval))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return loop.Run(ctx)
	})
	g.Go(func() error {
		return cleanup.NewSweeper(s.coordinator, a.prefs, a.logger, s.cfg.SweepInterval).Run(ctx)
	})
	g.Go(func() error {
		return a.watchRoot(ctx, s)
	})

	if a.prefs.AutoClean() {
		s.coordinator.SweepZombies(ctx)
	} else {
		s.coordinator.Reload(ctx)
	}

	return g.Wait()
}

// watchRoot reloads the entry list whenever the top level of the DerivedData
// root changes. A missing root is not watched.
func (a *App) watchRoot(ctx context.Context, s *session) error {
	root, ok := s.discovery.DerivedDataRoot()
	if !ok || !a.fs.IsDir(root) {
		a.logger.Warn("not watching for changes: the DerivedData root does not exist")
		return nil
	}

	if err := a.watcher.Start(ctx, root); err != nil {
		a.logger.Warn(fmt.Sprintf("not watching for changes: %v", err))
		return nil
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	debouncer := watcher.NewDebouncer(s.cfg.WatchDebounce, func(paths []string) {
		a.logger.Debug(fmt.Sprintf("%d changes below %s, reloading", len(paths), root))
		s.coordinator.Reload(ctx)
	})
	defer debouncer.Stop()

	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}
	return nil
}

// redirectLogs sends log output to the debug log file while the interface
// owns the terminal. The returned function restores stderr.
func (a *App) redirectLogs() (func(), error) {
	lc, ok := a.logger.(logConfigurer)
	if !ok {
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(a.logPath), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create log directory"), "path", a.logPath)
	}
	//nolint:gosec // Path is the per-user debug log
	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.PrivateFilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open debug log"), "path", a.logPath)
	}

	lc.SetOutput(f)
	return func() {
		lc.SetOutput(a.stderr)
		_ = f.Close()
	}, nil
}

// activityLog reports coordinator state changes through the logger.
type activityLog struct {
	logger ports.Logger
	root   string
}

var _ ports.Presenter = (*activityLog)(nil)

func (l *activityLog) OnSnapshot(snapshot domain.Snapshot) {
	if snapshot.Loading {
		return
	}
	l.logger.Info(fmt.Sprintf("%d entries in %s", len(snapshot.Entries), l.root))
}

func (l *activityLog) OnEntrySized(entry *domain.Entry) {
	l.logger.Debug(fmt.Sprintf("%s is %s", entry.Name(), humanize.Bytes(entry.Size())))
}

func (l *activityLog) OnDeleteFailed(op domain.Operation, err error) {
	l.logger.Error(zerr.Wrap(err, op.String()+" failed"))
}

func (l *activityLog) OnUnavailable(op domain.Operation) {
	l.logger.Warn(op.String() + " skipped: the DerivedData location is unavailable")
}
