package controller

import (
	"svcctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the console.
func NewProgram(m *model.Model) *tea.Program {
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen())
}
