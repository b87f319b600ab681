package controller

import (
	"svcctl/internal/tui/model"
	"svcctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const controllerSubsystem = "Controller"

// LogDebug logs a debug-level message when the model runs in debug mode.
func LogDebug(m *model.Model, subsystem string, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(subsystem, format, a...)
	}
}

// ListenForLogEntries reads one entry from ch. The handler re-arms it.
func ListenForLogEntries(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return model.NewLogEntryMsg{Entry: entry}
	}
}
