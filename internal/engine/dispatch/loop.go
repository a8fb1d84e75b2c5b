// Package dispatch provides a single-consumer execution context that stands in
// for a UI event loop when xclean runs without the TUI.
package dispatch

import (
	"context"
	"sync"

	"go.trai.ch/xclean/internal/core/ports"
)

var _ ports.Dispatcher = (*Loop)(nil)

// Loop runs dispatched functions one at a time, in FIFO order, on the
// goroutine that calls Run. Dispatch never blocks.
type Loop struct {
	mu    sync.Mutex
	queue []func()
	wake  chan struct{}
}

// NewLoop creates an empty Loop.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
	}
}

// Dispatch enqueues fn. It is safe to call from any goroutine, including from
// inside a function the loop is running.
func (l *Loop) Dispatch(fn func()) {
	if fn == nil {
		return
	}

	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run executes queued functions until ctx is done. Functions still queued at
// that point are dropped.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.Drain()

		select {
		case <-ctx.Done():
			return nil
		case <-l.wake:
		}
	}
}

// Drain runs queued functions on the calling goroutine until the queue is
// empty and returns how many ran. It must not be called concurrently with Run.
func (l *Loop) Drain() int {
	n := 0
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return n
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		fn()
		n++
	}
}

// Len returns the number of queued functions.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}
