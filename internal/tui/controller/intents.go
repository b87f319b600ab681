package controller

import (
	"svcctl/internal/api"
	"svcctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const intentsSubsystem = "IntentDialog"

// openIntentDialog switches the list's modal to the intent picker and
// starts loading the intents.
func openIntentDialog(m *model.Model, list *model.ServiceList) (*model.Model, tea.Cmd) {
	loadID := m.NextRequestID()
	d := model.NewIntentDialog(loadID, m.IntentPageSize, m.T.T("overview.popup.searchIntents"))
	list.OpenModal(model.IntentConnect{Dialog: d})

	isCommon := list.IsCommon
	load := m.Store.LoadAvailableIntentsList(
		func(intents []api.Intent) tea.Msg {
			return model.IntentsLoadedMsg{IsCommon: isCommon, LoadID: loadID, Intents: intents}
		},
		m.T.T("overview.toast.failed.availableIntents"),
	)
	return m, tea.Batch(d.Filter.Focus(), d.Spinner.Tick, load)
}

func handleIntentsLoaded(m *model.Model, msg model.IntentsLoadedMsg) (*model.Model, tea.Cmd) {
	d, ok := m.List(msg.IsCommon).Dialog()
	if !ok || d.LoadID != msg.LoadID {
		LogDebug(m, intentsSubsystem, "Dropping intents for closed dialog %d", msg.LoadID)
		return m, nil
	}
	d.SetIntents(msg.Intents)
	return m, nil
}

// handleIntentChosen asks the store to connect the target service. Only
// success closes the dialog; after a failure the confirmation stays up so
// the user can retry or back out.
func handleIntentChosen(m *model.Model, msg model.IntentChosenMsg) (*model.Model, tea.Cmd) {
	list := m.List(msg.IsCommon)
	if model.KindOf(list.Modal) != model.ModalIntentConnect || m.Store == nil {
		return m, nil
	}
	m.Store.SelectService(list.Target)
	return m, m.Store.RequestServiceIntentConnection(
		model.MutationSuccessMsg{IsCommon: list.IsCommon, Target: list.Target, Close: []model.ModalKind{model.ModalIntentConnect}},
		m.T.T("overview.service.toast.connectedToIntentSuccessfully"),
		m.T.T("overview.service.toast.failed.failedToConnectToIntent"),
		msg.Intent,
	)
}

func handleIntentDialogKey(m *model.Model, list *model.ServiceList, d *model.IntentDialog, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if d.Confirming {
		switch {
		case key.Matches(msg, m.Keys.Esc), msg.String() == "n":
			d.CloseConfirmation()
		case key.Matches(msg, m.Keys.Left), key.Matches(msg, m.Keys.Right):
			d.ConfirmFocus = 1 - d.ConfirmFocus
		case msg.String() == "y":
			return m, chooseIntent(list, d)
		case key.Matches(msg, m.Keys.Enter):
			if d.ConfirmFocus == 0 {
				return m, chooseIntent(list, d)
			}
			d.CloseConfirmation()
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		list.CloseModal()
		return m, nil
	case "up":
		d.MoveCursor(-1)
		return m, nil
	case "down":
		d.MoveCursor(1)
		return m, nil
	case "enter":
		d.Confirm()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.PrevPage):
		d.PrevPage()
	case key.Matches(msg, m.Keys.NextPage):
		d.NextPage()
	case key.Matches(msg, m.Keys.SortIntents):
		d.CycleSort()
	default:
		before := d.Filter.Value()
		var cmd tea.Cmd
		d.Filter, cmd = d.Filter.Update(msg)
		if d.Filter.Value() != before {
			d.FilterChanged()
		}
		return m, cmd
	}
	return m, nil
}

func chooseIntent(list *model.ServiceList, d *model.IntentDialog) tea.Cmd {
	msg := model.IntentChosenMsg{IsCommon: list.IsCommon, Intent: d.Chosen.Intent}
	return func() tea.Msg { return msg }
}
