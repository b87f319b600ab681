package view

import (
	"strings"

	"svcctl/internal/tui/components"
	"svcctl/internal/tui/design"
	"svcctl/internal/tui/model"
	"svcctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const intentColumnWidth = 26

func renderIntentDialog(m *model.Model, d *model.IntentDialog) string {
	t := m.T.T
	inner := design.ModalMaxWidth - design.ModalStyle.GetHorizontalFrameSize()

	sections := []string{design.InputFocusedStyle.Width(inner - 2).Render(d.Filter.View())}

	switch {
	case !d.Loaded:
		sections = append(sections, d.Spinner.View()+" "+t("overview.popup.loadingIntents"))
	case d.Empty():
		sections = append(sections, design.TextSecondaryStyle.Render(t("overview.popup.noIntentsAvailable")))
	default:
		sections = append(sections, renderIntentTable(m, d, inner))
		if d.Paginator.TotalPages > 1 {
			sections = append(sections, lipgloss.PlaceHorizontal(inner, lipgloss.Center, d.Paginator.View()))
		}
	}

	if d.Confirming {
		question := t("overview.popup.connectionQuestion") + "\n" + design.TextStyle.Bold(true).Render(d.Chosen.Intent)
		buttons := components.RenderButtons([]components.Button{
			{Label: t("global.yes"), Focused: d.ConfirmFocus == 0},
			{Label: t("global.no"), Focused: d.ConfirmFocus == 1},
		})
		sections = append(sections, "", question, lipgloss.PlaceHorizontal(inner, lipgloss.Right, buttons))
	} else {
		sections = append(sections, "", design.TextSecondaryStyle.Render(t("overview.popup.intentHint")))
	}

	return components.NewModal(t("overview.popup.connectServiceToIntent")).
		WithBody(strings.Join(sections, "\n")).
		WithWidth(design.ModalMaxWidth).
		Render()
}

func renderIntentTable(m *model.Model, d *model.IntentDialog, width int) string {
	header := m.T.T("overview.popup.intent")
	switch d.Sort {
	case model.IntentSortAsc:
		header += " ↑"
	case model.IntentSortDesc:
		header += " ↓"
	}

	descWidth := width - intentColumnWidth - 7
	items := d.PageItems()
	rows := make([][]string, 0, len(items))
	for _, in := range items {
		rows = append(rows, []string{
			utils.TruncateString(in.Intent, intentColumnWidth),
			utils.TruncateString(in.Description, descWidth),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(design.ColorBorder)).
		Headers(header, m.T.T("overview.description")).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return s.Bold(true)
			case row == d.Cursor:
				return s.Foreground(design.ColorBackground).Background(design.ColorPrimary)
			}
			return s
		}).
		String()
}
