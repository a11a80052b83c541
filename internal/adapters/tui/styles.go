package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cook/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Ember).
			Foreground(style.Cream)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Burnt).
				Foreground(style.Cream)

	barDoneStyle = lipgloss.NewStyle().
			Foreground(style.Ember)

	barFailedStyle = lipgloss.NewStyle().
			Foreground(style.Burnt)

	barTodoStyle = lipgloss.NewStyle().
			Foreground(style.Ash)

	countStyle = lipgloss.NewStyle().
			Bold(true)

	eventStyle = lipgloss.NewStyle().
			Foreground(style.Ash)

	pauseStyle = lipgloss.NewStyle().
			Foreground(style.Simmer).
			Bold(true)
)
