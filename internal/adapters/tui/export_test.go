package tui

import tea "github.com/charmbracelet/bubbletea"

// DispatchMsg wraps fn the way Dispatcher does.
func DispatchMsg(fn func()) tea.Msg {
	return dispatchMsg{fn: fn}
}
