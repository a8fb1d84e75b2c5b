// Package app implements the application layer for xclean.
package app

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/xclean/internal/adapters/detector"
	"go.trai.ch/xclean/internal/adapters/fs"
	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports"
	"go.trai.ch/xclean/internal/engine/cleanup"
	"go.trai.ch/xclean/internal/engine/discovery"
	"go.trai.ch/xclean/internal/engine/zombie"
	"go.trai.ch/zerr"
)

// logConfigurer is implemented by loggers whose format and destination can
// change at runtime.
type logConfigurer interface {
	SetOutput(w io.Writer)
	SetJSON(enable bool)
	SetDebug(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	fs           ports.FileSystem
	sizer        ports.Sizer
	metadata     ports.MetadataReader
	prefs        ports.Preferences
	watcher      ports.Watcher
	tracer       ports.Tracer
	logger       ports.Logger

	stdout     io.Writer
	stderr     io.Writer
	teaOptions []tea.ProgramOption
	configPath string
	logPath    string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fileSystem ports.FileSystem,
	sizer ports.Sizer,
	metadata ports.MetadataReader,
	prefs ports.Preferences,
	watcher ports.Watcher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		fs:           fileSystem,
		sizer:        sizer,
		metadata:     metadata,
		prefs:        prefs,
		watcher:      watcher,
		tracer:       tracer,
		logger:       log,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		logPath:      domain.DefaultDebugLogPath(),
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput replaces the streams used for command output.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithDebugLog sets the file that receives logs while the TUI owns the terminal.
func (a *App) WithDebugLog(path string) *App {
	a.logPath = path
	return a
}

// GlobalOptions holds the settings shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Debug      bool
	JSON       bool
}

// Configure applies the global options. It must be called before any command runs.
func (a *App) Configure(opts GlobalOptions) {
	a.configPath = opts.ConfigPath

	if lc, ok := a.logger.(logConfigurer); ok {
		lc.SetJSON(opts.JSON)
		lc.SetDebug(opts.Debug)
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	OutputMode string
}

// Run is the default action: the interactive interface on a terminal, the
// entry list everywhere else.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	if mode == detector.ModeTUI {
		return a.UI(ctx)
	}
	return a.List(ctx, ListOptions{})
}

// session is the engine assembled for one command. Callbacks are delivered on
// executor.
type session struct {
	cfg         domain.Config
	executor    ports.Dispatcher
	discovery   *discovery.Service
	coordinator *cleanup.Coordinator
}

func (a *App) newSession(executor ports.Dispatcher) (*session, error) {
	cfg, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	svc := discovery.NewService(a.fs, a.metadata, a.sizer, fs.NewLocator(cfg.DerivedData), a.logger, cfg.Parallelism)
	classifier := zombie.NewClassifier(a.fs)

	return &session{
		cfg:         cfg,
		executor:    executor,
		discovery:   svc,
		coordinator: cleanup.NewCoordinator(svc, a.fs, classifier, a.tracer, a.logger, executor),
	}, nil
}

// settle waits until every size scan started so far has been delivered on the
// executor.
func (s *session) settle(ctx context.Context) error {
	settled := make(chan struct{})
	go func() {
		s.discovery.Wait()
		s.executor.Dispatch(func() { close(settled) })
	}()

	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// await returns the outcome of a coordinator operation.
func await(ctx context.Context, result <-chan error) error {
	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// reported marks err as already shown to the user by a presenter.
func reported(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(domain.ErrOperationFailed, err)
}
