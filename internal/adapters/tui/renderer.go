package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Renderer runs the Bubble Tea program for a Model.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates the program for model and binds it to dispatcher.
func NewRenderer(model *Model, dispatcher *Dispatcher, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	dispatcher.Bind(program)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the program in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the program to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the program has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// Program returns the underlying tea.Program.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
