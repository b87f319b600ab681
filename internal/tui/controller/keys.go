package controller

import (
	"strings"

	"svcctl/internal/store"
	"svcctl/internal/tui/model"
	"svcctl/internal/tui/view"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const keySubsystem = "KeyHandler"

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, msg)
	case model.ModeHelpOverlay:
		if key.Matches(msg, m.Keys.Help) || key.Matches(msg, m.Keys.Esc) {
			m.CurrentAppMode = model.ModeMain
		}
		return m, nil
	}

	list := m.ActiveList()
	if list.Modal != nil {
		if d, ok := list.Dialog(); ok {
			return handleIntentDialogKey(m, list, d, msg)
		}
		return handleModalKey(m, list, msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)
	case key.Matches(msg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
	case key.Matches(msg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
		m.LogViewport.GotoBottom()
	case key.Matches(msg, m.Keys.Tab):
		m.ShowCommon = !m.ShowCommon
	case key.Matches(msg, m.Keys.Delete):
		openDeleteConfirm(m, list)
	case key.Matches(msg, m.Keys.ChangeState):
		return changeState(m, list)
	case key.Matches(msg, m.Keys.Readiness):
		return startReadinessCheck(m, list)
	case key.Matches(msg, m.Keys.Sort):
		list.CycleSort()
	case key.Matches(msg, m.Keys.ReverseSort):
		list.ReverseSort()
	case key.Matches(msg, m.Keys.Refresh):
		if m.Store != nil {
			return m, m.Store.Refresh(m.T.T("overview.toast.failed.services"))
		}
	case key.Matches(msg, m.Keys.Copy):
		return copySelectedID(m, list)
	default:
		var cmd tea.Cmd
		list.Table, cmd = list.Table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	if m.Unsubscribe != nil {
		m.Unsubscribe()
		m.Unsubscribe = nil
	}
	return m, tea.Quit
}

func handleModalKey(m *model.Model, list *model.ServiceList, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Esc):
		list.CloseModal()
	case key.Matches(msg, m.Keys.Left):
		list.MoveButtonFocus(-1)
	case key.Matches(msg, m.Keys.Right):
		list.MoveButtonFocus(1)
	case key.Matches(msg, m.Keys.Enter):
		b, ok := list.FocusedButton()
		if ok && b.Enabled {
			return handleModalAction(m, list, b.Action)
		}
	}
	return m, nil
}

func handleLogOverlayKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.ToggleLog), key.Matches(msg, m.Keys.Esc):
		m.CurrentAppMode = model.ModeMain
		return m, nil
	case key.Matches(msg, m.Keys.Copy):
		if err := writeClipboard(strings.Join(m.ActivityLog, "\n")); err != nil {
			LogDebug(m, keySubsystem, "Failed to copy logs: %v", err)
			return m, m.SetToast(store.Toast{Kind: store.ToastError, Message: m.T.T("overview.services.copyFailed")})
		}
		return m, m.SetToast(store.Toast{Kind: store.ToastSuccess, Message: m.T.T("overview.log.copied")})
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)
	default:
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	}
}

func copySelectedID(m *model.Model, list *model.ServiceList) (*model.Model, tea.Cmd) {
	svc, ok := list.SelectedService()
	if !ok {
		return m, nil
	}
	if err := writeClipboard(svc.ID); err != nil {
		LogDebug(m, keySubsystem, "Failed to copy service id: %v", err)
		return m, m.SetToast(store.Toast{Kind: store.ToastError, Message: m.T.T("overview.services.copyFailed")})
	}
	return m, m.SetToast(store.Toast{Kind: store.ToastSuccess, Message: m.T.Tf("overview.services.copied", svc.ID)})
}
