package components

import (
	"strings"

	"svcctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Button is one entry of a modal's button row.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
	Danger   bool
}

// RenderButtons lays buttons out on a single row separated by one space.
func RenderButtons(buttons []Button) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		style := design.ButtonStyle
		switch {
		case b.Disabled:
			style = design.ButtonDisabledStyle
		case b.Focused && b.Danger:
			style = design.ButtonDangerFocusedStyle
		case b.Focused:
			style = design.ButtonFocusedStyle
		}
		parts = append(parts, style.Render(b.Label))
	}
	return strings.Join(parts, " ")
}

// buttonRows packs buttons into rows no wider than width, breaking only
// between buttons.
func buttonRows(buttons []Button, width int) []string {
	var rows []string
	var current []Button
	for _, b := range buttons {
		candidate := append(append([]Button(nil), current...), b)
		if len(current) > 0 && lipgloss.Width(RenderButtons(candidate)) > width {
			rows = append(rows, RenderButtons(current))
			current = []Button{b}
			continue
		}
		current = candidate
	}
	if len(current) > 0 {
		rows = append(rows, RenderButtons(current))
	}
	return rows
}

// Modal is a bordered dialog box with a title, a body and a button row.
type Modal struct {
	Title   string
	Body    string
	Buttons []Button
	Width   int
}

// NewModal creates a modal with the minimum width
func NewModal(title string) *Modal {
	return &Modal{Title: title, Width: design.ModalMinWidth}
}

// WithBody sets the modal content
func (m *Modal) WithBody(body string) *Modal {
	m.Body = body
	return m
}

// WithButtons sets the button row
func (m *Modal) WithButtons(buttons ...Button) *Modal {
	m.Buttons = buttons
	return m
}

// WithWidth sets the outer width. Render widens it to fit the button row
// and clamps it to the modal bounds.
func (m *Modal) WithWidth(width int) *Modal {
	m.Width = width
	return m
}

// Render returns the styled modal
func (m *Modal) Render() string {
	frame := design.ModalStyle.GetHorizontalFrameSize()
	width := m.Width
	if len(m.Buttons) > 0 {
		width = max(width, lipgloss.Width(RenderButtons(m.Buttons))+frame)
	}
	if width < design.ModalMinWidth {
		width = design.ModalMinWidth
	}
	if width > design.ModalMaxWidth {
		width = design.ModalMaxWidth
	}
	inner := width - frame

	var sections []string
	if m.Title != "" {
		sections = append(sections, design.ModalTitleStyle.Render(m.Title))
	}
	if m.Body != "" {
		sections = append(sections, lipgloss.NewStyle().Width(inner).Render(m.Body))
	}
	if len(m.Buttons) > 0 {
		sections = append(sections, "")
		for _, row := range buttonRows(m.Buttons, inner) {
			sections = append(sections, lipgloss.PlaceHorizontal(inner, lipgloss.Right, row))
		}
	}

	return design.ModalStyle.
		Width(width - design.ModalStyle.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
