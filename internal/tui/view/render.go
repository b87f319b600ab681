package view

import (
	"svcctl/internal/store"
	"svcctl/internal/tui/components"
	"svcctl/internal/tui/design"
	"svcctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// ChromeHeight is the number of rows around the services table: the tab
// row, a spacer, the help row and the status bar.
const ChromeHeight = 4

// Render draws the whole console.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return ""
	}

	width, height := m.Width, m.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	bodyHeight := height - ChromeHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	list := m.ActiveList()
	body := renderListBody(m, list)

	switch {
	case m.CurrentAppMode == model.ModeLogOverlay:
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, renderLogOverlay(m))
	case m.CurrentAppMode == model.ModeHelpOverlay:
		help := design.ModalStyle.Render(m.Help.FullHelpView(m.Keys.FullHelp()))
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, help)
	case list.Modal != nil:
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, renderModal(m, list))
	default:
		body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderTabs(m),
		"",
		body,
		design.HelpStyle.Render(m.Help.ShortHelpView(m.Keys.ShortHelp())),
		renderStatusBar(m, list, width),
	)
}

func renderTabs(m *model.Model) string {
	tab := func(label string, active bool) string {
		if active {
			return design.TabActiveStyle.Render(label)
		}
		return design.TabStyle.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tab(m.T.T("overview.services.private"), !m.ShowCommon),
		tab(m.T.T("overview.services.common"), m.ShowCommon),
	)
}

func renderListBody(m *model.Model, list *model.ServiceList) string {
	if m.Store != nil && !m.Store.Loaded() {
		return design.TextSecondaryStyle.Render(m.T.T("overview.services.loading") + "…")
	}
	if len(list.Services) == 0 {
		return design.TextSecondaryStyle.Render(m.T.T("overview.services.empty"))
	}
	return list.Table.View()
}

func renderStatusBar(m *model.Model, list *model.ServiceList, width int) string {
	bar := components.NewStatusBar(width).
		WithLeftText(m.T.Tf("overview.services.count", len(list.Services))).
		WithRightText(m.T.T("overview.help.hint"))
	if m.Toast != nil {
		kind := components.MessageSuccess
		if m.Toast.Kind == store.ToastError {
			kind = components.MessageError
		}
		bar.WithMessage(m.Toast.Message, kind)
	}
	return bar.Render()
}
