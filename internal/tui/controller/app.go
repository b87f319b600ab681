package controller

import (
	"svcctl/internal/store"
	"svcctl/internal/tui/model"
	"svcctl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel wraps the model to handle updates and views
type AppModel struct {
	model *model.Model
}

// NewAppModel creates a new app wrapper
func NewAppModel(m *model.Model) AppModel {
	return AppModel{model: m}
}

// Init implements tea.Model. It loads the services and starts listening
// for store changes and log entries.
func (a AppModel) Init() tea.Cmd {
	m := a.model
	var cmds []tea.Cmd
	if m.Store != nil {
		cmds = append(cmds, m.Store.Refresh(m.T.T("overview.toast.failed.services")))
	}
	cmds = append(cmds, waitForChanges(m), ListenForLogEntries(m.LogChannel))
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (a AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := Update(msg, a.model)
	a.model = updated
	return a, cmd
}

// View implements tea.Model
func (a AppModel) View() string {
	return view.Render(a.model)
}

func waitForChanges(m *model.Model) tea.Cmd {
	if m.Changes == nil {
		return nil
	}
	return store.WaitForChange(m.Changes)
}
