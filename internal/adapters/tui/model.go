package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports"
)

var _ ports.Presenter = (*Model)(nil)

// chromeHeight is the number of lines around the entry list.
const chromeHeight = 7

// dispatchMsg carries a function to run inside Update.
type dispatchMsg struct {
	fn func()
}

type autoCleanMsg struct {
	enabled bool
	err     error
}

// Model is the Bubble Tea model of the interface. It is also the presenter:
// coordinator callbacks arrive as dispatchMsg and run inside Update, so they
// mutate the model on the event loop.
type Model struct {
	Snapshot    domain.Snapshot
	Zombies     map[uint64]bool
	SelectedIdx int
	ListOffset  int
	ListHeight  int
	Width       int
	AutoClean   bool
	Banner      string
	Hint        string

	// Pending holds the operation awaiting confirmation while Confirming is set.
	Pending    domain.Operation
	Confirming bool

	ctx        context.Context
	controller Controller
	prefs      ports.Preferences

	keys    keyMap
	help    help.Model
	spinner spinner.Model
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchMsg:
		msg.fn()

	case autoCleanMsg:
		if msg.err != nil {
			m.Banner = msg.err.Error()
			break
		}
		m.AutoClean = msg.enabled

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.help.Width = msg.Width
		m.ListHeight = max(msg.Height-chromeHeight, 1)
		m.ensureVisible()

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.Confirming {
		m.Confirming = false
		if key.Matches(msg, m.keys.Confirm) {
			m.run(m.Pending)
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.SelectedIdx > 0 {
			m.SelectedIdx--
			m.ensureVisible()
		}
	case key.Matches(msg, m.keys.Down):
		if m.SelectedIdx < len(m.Snapshot.Entries)-1 {
			m.SelectedIdx++
			m.ensureVisible()
		}
	case key.Matches(msg, m.keys.Dismiss):
		m.Banner = ""
		m.Hint = ""
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Reload):
		m.controller.Reload(m.ctx)
	case key.Matches(msg, m.keys.AutoClean):
		return m.toggleAutoClean()
	case key.Matches(msg, m.keys.Delete):
		if !m.Snapshot.Loading && m.selected() != nil {
			m.run(domain.OpDeleteOne)
		}
	case key.Matches(msg, m.keys.DeleteAll):
		if !m.Snapshot.Loading && !m.Snapshot.NoData() {
			m.confirm(domain.OpDeleteAll)
		}
	case key.Matches(msg, m.keys.ModuleCache):
		if !m.Snapshot.Loading {
			m.confirm(domain.OpDeleteModuleCache)
		}
	case key.Matches(msg, m.keys.Sweep):
		if !m.Snapshot.Loading {
			m.run(domain.OpSweepZombies)
		}
	}

	return nil
}

func (m *Model) confirm(op domain.Operation) {
	m.Pending = op
	m.Confirming = true
}

func (m *Model) run(op domain.Operation) {
	switch op {
	case domain.OpDeleteOne:
		if entry := m.selected(); entry != nil {
			m.controller.DeleteOne(m.ctx, entry)
		}
	case domain.OpDeleteAll:
		m.controller.DeleteAll(m.ctx)
	case domain.OpDeleteModuleCache:
		m.controller.DeleteModuleCache(m.ctx)
	case domain.OpSweepZombies:
		if _, ok := m.controller.SweepZombies(m.ctx); !ok {
			m.Banner = "A zombie sweep is already running"
		}
	case domain.OpReload:
		m.controller.Reload(m.ctx)
	}
}

func (m *Model) toggleAutoClean() tea.Cmd {
	enabled := !m.AutoClean
	prefs := m.prefs
	return func() tea.Msg {
		return autoCleanMsg{enabled: enabled, err: prefs.SetAutoClean(enabled)}
	}
}

func (m *Model) selected() *domain.Entry {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Snapshot.Entries) {
		return m.Snapshot.Entries[m.SelectedIdx]
	}
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

// OnSnapshot replaces the list and keeps the selection on the same entry
// when it survived the reload.
func (m *Model) OnSnapshot(snapshot domain.Snapshot) {
	var selectedID uint64
	previous := m.selected()
	if previous != nil {
		selectedID = previous.ID()
	}

	m.Snapshot = snapshot
	m.Zombies = make(map[uint64]bool, len(snapshot.Zombies))
	for i, e := range snapshot.Entries {
		if snapshot.IsZombie(e) {
			m.Zombies[e.ID()] = true
		}
		if previous != nil && e.ID() == selectedID {
			m.SelectedIdx = i
		}
	}

	m.SelectedIdx = min(m.SelectedIdx, max(len(snapshot.Entries)-1, 0))
	m.ensureVisible()
}

// OnEntrySized does nothing; rows read sizes when rendered.
func (m *Model) OnEntrySized(*domain.Entry) {}

// OnDeleteFailed shows the error in the banner.
func (m *Model) OnDeleteFailed(op domain.Operation, err error) {
	m.Banner = fmt.Sprintf("%s failed: %v", op, err)
}

// OnUnavailable shows that op was skipped.
func (m *Model) OnUnavailable(op domain.Operation) {
	m.Banner = fmt.Sprintf("%s skipped: the DerivedData location is unavailable", op)
}
