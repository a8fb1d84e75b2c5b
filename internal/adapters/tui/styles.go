package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/xclean/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	rowStyle = lipgloss.NewStyle()

	zombieStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	sizeStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	mutedStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(style.Iris)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Red).
			Foreground(style.White)

	confirmStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Yellow)

	hintStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Italic(true)
)
