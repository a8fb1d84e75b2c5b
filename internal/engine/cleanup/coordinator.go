// Package cleanup deletes DerivedData entries off the interactive execution
// context and republishes a fresh discovery pass afterwards.
package cleanup

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports"
	"go.trai.ch/xclean/internal/engine/discovery"
	"go.trai.ch/xclean/internal/engine/zombie"
)

// Discoverer is the part of the discovery service the coordinator needs.
type Discoverer interface {
	DerivedDataRoot() (string, bool)
	ModuleCacheRoot() (string, bool)
	Discover(ctx context.Context, done discovery.Completion) []*domain.Entry
	Scan() []*domain.Entry
}

type subscriber struct {
	id        uint64
	presenter ports.Presenter
}

// mutation is the filesystem change an operation performs before the refresh.
type mutation func(ctx context.Context, span ports.Span) error

// pass is the outcome of one operation. seq orders passes by when their
// listing was taken.
type pass struct {
	seq     uint64
	entries []*domain.Entry
	zombies []*domain.Entry
	err     error
}

// Coordinator serializes presenter updates on the executor and runs every
// filesystem change in the background.
//
// Public methods never call the executor synchronously, so they may be called
// from functions the executor is running.
type Coordinator struct {
	discovery Discoverer
	fs        ports.FileSystem
	zombies   *zombie.Classifier
	tracer    ports.Tracer
	logger    ports.Logger
	executor  ports.Dispatcher

	mu          sync.Mutex
	subscribers []subscriber
	nextID      uint64

	// Only touched on the executor.
	running   int
	current   []*domain.Entry
	zombieSet []*domain.Entry
	published uint64

	passes   atomic.Uint64
	sweeping atomic.Bool
}

// NewCoordinator creates a Coordinator that delivers presenter callbacks and
// sizing completions on executor.
func NewCoordinator(
	discoverer Discoverer,
	fs ports.FileSystem,
	zombies *zombie.Classifier,
	tracer ports.Tracer,
	logger ports.Logger,
	executor ports.Dispatcher,
) *Coordinator {
	return &Coordinator{
		discovery: discoverer,
		fs:        fs,
		zombies:   zombies,
		tracer:    tracer,
		logger:    logger,
		executor:  executor,
	}
}

// Subscribe registers p for state changes. The returned function removes it
// again and may be called more than once.
func (c *Coordinator) Subscribe(p ports.Presenter) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers = append(c.subscribers, subscriber{id: id, presenter: p})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, s := range c.subscribers {
				if s.id == id {
					c.subscribers = append(c.subscribers[:i:i], c.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

// Reload runs a discovery pass and publishes the result.
func (c *Coordinator) Reload(ctx context.Context) <-chan error {
	return c.start(ctx, domain.OpReload, nil, nil)
}

// DeleteOne removes the entry's directory tree and reloads.
func (c *Coordinator) DeleteOne(ctx context.Context, entry *domain.Entry) <-chan error {
	root := entry.Root()
	return c.start(ctx, domain.OpDeleteOne, func(_ context.Context, span ports.Span) error {
		span.SetAttribute("path", root)
		return c.fs.RemoveAll(root)
	}, nil)
}

// DeleteAll removes the whole DerivedData root in one call and reloads.
func (c *Coordinator) DeleteAll(ctx context.Context) <-chan error {
	return c.start(ctx, domain.OpDeleteAll, func(_ context.Context, span ports.Span) error {
		root, ok := c.discovery.DerivedDataRoot()
		if !ok {
			return domain.ErrLibraryUnavailable
		}
		span.SetAttribute("path", root)
		return c.fs.RemoveAll(root)
	}, nil)
}

// DeleteModuleCache removes the module cache root and reloads.
func (c *Coordinator) DeleteModuleCache(ctx context.Context) <-chan error {
	return c.start(ctx, domain.OpDeleteModuleCache, func(_ context.Context, span ports.Span) error {
		root, ok := c.discovery.ModuleCacheRoot()
		if !ok {
			return domain.ErrLibraryUnavailable
		}
		span.SetAttribute("path", root)
		return c.fs.RemoveAll(root)
	}, nil)
}

// SweepZombies removes every entry whose project no longer exists and reloads.
// At most one sweep runs at a time, counted until its refreshed list is
// published. When one is already running the request is dropped, false is
// returned and the channel yields domain.ErrSweepInProgress.
func (c *Coordinator) SweepZombies(ctx context.Context) (<-chan error, bool) {
	if !c.sweeping.CompareAndSwap(false, true) {
		dropped := make(chan error, 1)
		dropped <- domain.ErrSweepInProgress
		return dropped, false
	}

	sweep := func(_ context.Context, span ports.Span) error {
		if _, ok := c.discovery.DerivedDataRoot(); !ok {
			return domain.ErrLibraryUnavailable
		}

		zombies := c.zombies.Filter(c.discovery.Scan())
		span.SetAttribute("zombies", len(zombies))

		var errs []error
		for _, entry := range zombies {
			c.logger.Debug("removing zombie " + entry.Root())
			if err := c.fs.RemoveAll(entry.Root()); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	return c.start(ctx, domain.OpSweepZombies, sweep, func() { c.sweeping.Store(false) }), true
}

// start runs the operation in the background. A non-nil release runs on the
// executor once the operation's result was published.
func (c *Coordinator) start(ctx context.Context, op domain.Operation, mutate mutation, release func()) <-chan error {
	ctx = context.WithoutCancel(ctx)
	result := make(chan error, 1)

	go func() {
		c.executor.Dispatch(c.begin)

		p := c.run(ctx, op, mutate)

		c.executor.Dispatch(func() {
			c.finish(op, p)
			if release != nil {
				release()
			}
			result <- p.err
		})
	}()

	return result
}

func (c *Coordinator) run(ctx context.Context, op domain.Operation, mutate mutation) pass {
	ctx, span := c.tracer.Start(ctx, "cleanup."+op.String())
	defer span.End()

	var p pass
	if mutate != nil {
		if p.err = mutate(ctx, span); p.err != nil {
			span.RecordError(p.err)
		}
	}

	p.seq = c.passes.Add(1)
	p.entries = c.discovery.Discover(ctx, discovery.Completion{
		Executor: c.executor,
		Notify:   c.entrySized,
	})
	p.zombies = c.zombies.Filter(p.entries)
	span.SetAttribute("entries", len(p.entries))

	return p
}

func (c *Coordinator) begin() {
	c.running++
	c.publish()
}

func (c *Coordinator) finish(op domain.Operation, p pass) {
	c.running--

	switch err := p.err; {
	case err == nil:
		c.logger.Debug(fmt.Sprintf("%s finished with %d entries", op, len(p.entries)))
	case errors.Is(err, domain.ErrLibraryUnavailable):
		c.logger.Debug(fmt.Sprintf("%s skipped: %v", op, err))
		for _, presenter := range c.presenters() {
			presenter.OnUnavailable(op)
		}
	default:
		c.logger.Debug(fmt.Sprintf("%s failed: %v", op, err))
		for _, presenter := range c.presenters() {
			presenter.OnDeleteFailed(op, err)
		}
	}

	// A pass that listed before the last published one is stale.
	if p.seq > c.published {
		c.published = p.seq
		c.current = p.entries
		c.zombieSet = p.zombies
	} else {
		c.logger.Debug(fmt.Sprintf("%s listing is stale, keeping the newer one", op))
	}
	c.publish()
}

func (c *Coordinator) publish() {
	snapshot := domain.NewSnapshot(c.current, c.running > 0).WithZombies(c.zombieSet)
	for _, p := range c.presenters() {
		p.OnSnapshot(snapshot)
	}
}

func (c *Coordinator) entrySized(entry *domain.Entry) {
	for _, p := range c.presenters() {
		p.OnEntrySized(entry)
	}
}

func (c *Coordinator) presenters() []ports.Presenter {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]ports.Presenter, len(c.subscribers))
	for i, s := range c.subscribers {
		out[i] = s.presenter
	}
	return out
}
