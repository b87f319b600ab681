package view

import (
	"strings"

	"svcctl/internal/tui/design"
	"svcctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// LogOverlaySize returns the viewport size of the activity log overlay for
// a terminal of width x height.
func LogOverlaySize(width, height int) (int, int) {
	w := int(float64(width)*0.8) - design.LogOverlayStyle.GetHorizontalFrameSize()
	h := int(float64(height)*0.7) - design.LogOverlayStyle.GetVerticalFrameSize() - 1
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	return w, h
}

// PrepareLogContent colors log lines by their level marker.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}

func renderLogOverlay(m *model.Model) string {
	title := design.ModalTitleStyle.Render(SafeIcon(IconScroll) + m.T.T("overview.log.title") + "  (↑/↓ scroll  •  y copy  •  Esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	return design.LogOverlayStyle.Render(content)
}
