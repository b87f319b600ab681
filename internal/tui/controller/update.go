package controller

import (
	"svcctl/internal/store"
	"svcctl/internal/tui/model"
	"svcctl/internal/tui/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update is the central message routing function of the console.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg.(type) {
	case spinner.TickMsg, model.NewLogEntryMsg, model.ClearToastMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case store.ServicesChangedMsg:
		m.SyncServices()
		return m, waitForChanges(m)

	case store.MutationResultMsg:
		cmds := []tea.Cmd{m.SetToast(msg.Toast)}
		if msg.OnSuccess != nil {
			var cmd tea.Cmd
			m, cmd = Update(msg.OnSuccess, m)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case store.ToastMsg:
		return m, m.SetToast(msg.Toast)

	case model.ClearToastMsg:
		m.ClearToast(msg.Seq)
		return m, nil

	case model.MutationSuccessMsg:
		m.List(msg.IsCommon).CloseModalIf(msg.Target, msg.Close...)
		return m, nil

	case model.ReadinessResultMsg:
		return handleReadinessResult(m, msg)

	case model.IntentsLoadedMsg:
		return handleIntentsLoaded(m, msg)

	case model.IntentChosenMsg:
		return handleIntentChosen(m, msg)

	case spinner.TickMsg:
		return handleSpinnerTick(m, msg)

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, msg.Entry.String())
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
			m.LogViewport.GotoBottom()
		}
		return m, ListenForLogEntries(m.LogChannel)

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func handleSpinnerTick(m *model.Model, msg spinner.TickMsg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, list := range []*model.ServiceList{m.Private, m.Common} {
		d, ok := list.Dialog()
		if !ok || d.Loaded {
			continue
		}
		var cmd tea.Cmd
		d.Spinner, cmd = d.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	tableHeight := msg.Height - view.ChromeHeight
	m.Private.SetSize(msg.Width, tableHeight)
	m.Common.SetSize(msg.Width, tableHeight)

	w, h := view.LogOverlaySize(msg.Width, msg.Height)
	m.LogViewport.Width = w
	m.LogViewport.Height = h
	m.Help.Width = msg.Width
	return m, nil
}
