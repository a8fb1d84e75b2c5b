package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/xclean/internal/core/ports"
)

var _ ports.Dispatcher = (*Dispatcher)(nil)

// Dispatcher runs functions inside the program's Update. Dispatch blocks until
// a program is bound and has accepted the message, so it must only be called
// from background goroutines.
type Dispatcher struct {
	once    sync.Once
	ready   chan struct{}
	program *tea.Program
}

// NewDispatcher creates an unbound Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		ready: make(chan struct{}),
	}
}

// Bind attaches the program. Only the first call has an effect.
func (d *Dispatcher) Bind(program *tea.Program) {
	d.once.Do(func() {
		d.program = program
		close(d.ready)
	})
}

// Dispatch sends fn to the program. After the program exits, fn is dropped.
func (d *Dispatcher) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	<-d.ready
	d.program.Send(dispatchMsg{fn: fn})
}
