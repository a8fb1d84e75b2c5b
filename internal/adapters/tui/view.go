package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/ui/style"
)

const (
	defaultWidth  = 80
	sizeColumn    = 10
	minNameColumn = 12
)

// View renders the UI.
func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DERIVED DATA") + "\n\n")
	s.WriteString(m.list())
	s.WriteString("\n" + m.summary() + "\n")

	switch {
	case m.Confirming:
		s.WriteString(confirmStyle.Render(confirmPrompt(m.Pending)) + "\n")
	case m.Banner != "":
		s.WriteString(bannerStyle.Render(style.Cross+" "+m.Banner) + "\n")
	case m.Hint != "":
		s.WriteString(hintStyle.Render(m.Hint) + "\n")
	}

	s.WriteString(m.help.View(m.keys))
	return s.String()
}

func (m *Model) list() string {
	entries := m.Snapshot.Entries
	if len(entries) == 0 {
		if m.Snapshot.Loading {
			return m.spinner.View() + " Scanning DerivedData…\n"
		}
		return mutedStyle.Render("No DerivedData entries found.") + "\n"
	}

	start, end := 0, len(entries)
	if m.ListHeight > 0 {
		start = min(m.ListOffset, len(entries))
		end = min(m.ListOffset+m.ListHeight, len(entries))
	}

	var s strings.Builder
	for i := start; i < end; i++ {
		s.WriteString(m.row(i, entries[i]) + "\n")
	}
	return s.String()
}

func (m *Model) row(index int, entry *domain.Entry) string {
	width := m.Width
	if width <= 0 {
		width = defaultWidth
	}
	nameWidth := max(width-sizeColumn-4, minNameColumn)

	cursor := "  "
	nameStyle := rowStyle
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render(style.Pointer + " ")
		nameStyle = selectedStyle
	}

	name := entry.Name()
	if m.Zombies[entry.ID()] {
		name += " " + zombieStyle.Render(style.Zombie)
	}

	var size string
	if s, loading := entry.Sizing(); loading {
		size = m.spinner.View()
	} else {
		size = sizeStyle.Render(humanize.Bytes(s))
	}

	return cursor +
		nameStyle.Width(nameWidth).MaxWidth(nameWidth).Render(name) +
		lipgloss.NewStyle().Width(sizeColumn).Align(lipgloss.Right).Render(size)
}

func (m *Model) summary() string {
	n := len(m.Snapshot.Entries)
	parts := []string{
		fmt.Sprintf("%d entries", n),
		humanize.Bytes(m.Snapshot.TotalBytes()) + " total",
	}
	if pending := m.Snapshot.Pending(); pending > 0 {
		parts = append(parts, fmt.Sprintf("%d sizing", pending))
	}
	if len(m.Zombies) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", len(m.Zombies), style.Zombie))
	}
	if m.AutoClean {
		parts = append(parts, "auto-clean on")
	} else {
		parts = append(parts, "auto-clean off")
	}
	if m.Snapshot.Loading {
		parts = append(parts, m.spinner.View()+" working")
	}
	return mutedStyle.Render(strings.Join(parts, " · "))
}

func confirmPrompt(op domain.Operation) string {
	switch op {
	case domain.OpDeleteAll:
		return style.Warning + " Delete ALL DerivedData? (y/N)"
	case domain.OpDeleteModuleCache:
		return style.Warning + " Delete the module cache? (y/N)"
	default:
		return style.Warning + " " + op.String() + "? (y/N)"
	}
}
