// Package tui provides the interactive terminal interface for xclean.
package tui

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports"
	"go.trai.ch/xclean/internal/ui/output"
)

// Controller is the set of cleanup commands the interface can issue. Every
// method must return without waiting for the interface's event loop.
type Controller interface {
	Reload(ctx context.Context) <-chan error
	DeleteOne(ctx context.Context, entry *domain.Entry) <-chan error
	DeleteAll(ctx context.Context) <-chan error
	DeleteModuleCache(ctx context.Context) <-chan error
	SweepZombies(ctx context.Context) (<-chan error, bool)
}

// NewModel creates a model that sends commands to controller.
func NewModel(
	ctx context.Context,
	w io.Writer,
	controller Controller,
	prefs ports.Preferences,
) *Model {
	if w == nil {
		w = os.Stderr
	}
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = spinnerStyle

	return &Model{
		Snapshot:   domain.Snapshot{Loading: true},
		Zombies:    make(map[uint64]bool),
		AutoClean:  prefs.AutoClean(),
		ctx:        ctx,
		controller: controller,
		prefs:      prefs,
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    s,
	}
}
