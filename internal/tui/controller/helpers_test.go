package controller

import (
	"testing"
	"time"

	"svcctl/internal/i18n"
	"svcctl/internal/mockapi"
	"svcctl/internal/store"
	"svcctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

// newTestModel returns a console model over the seeded mock backend with
// the services already loaded.
func newTestModel(t *testing.T) (*model.Model, *mockapi.Backend) {
	t.Helper()
	backend := mockapi.NewBackend(mockapi.Options{})
	mockapi.Seed(backend)
	s := store.New(backend, store.Options{Timeout: time.Second})
	t.Cleanup(s.Close)
	require.Nil(t, s.Refresh("failed")())

	m := model.New(model.Config{
		Store:          s,
		Translator:     i18n.MustNew("en"),
		IntentPageSize: 8,
		ToastDuration:  time.Hour,
	})
	t.Cleanup(func() {
		if m.Unsubscribe != nil {
			m.Unsubscribe()
		}
	})
	m, _ = Update(tea.WindowSizeMsg{Width: 120, Height: 30}, m)
	m.SyncServices()
	return m, backend
}

// execute runs cmd and returns the messages it produces, flattening
// batches. Commands that block past a short deadline (ticks, blinks,
// subscriptions) are abandoned.
func execute(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, execute(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// find returns the first message of type T.
func find[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	var zero T
	require.Failf(t, "message not found", "no %T in %#v", zero, msgs)
	return zero
}

// press feeds a key and returns the resulting command.
func press(m *model.Model, keys ...string) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = Update(keyMsg(k), m)
	}
	return m, cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// deliver runs cmd and feeds every message it produced back into Update.
func deliver(m *model.Model, cmd tea.Cmd) *model.Model {
	for _, msg := range execute(cmd) {
		m, _ = Update(msg, m)
	}
	return m
}

// cursorTo moves the active list's cursor onto service id.
func cursorTo(t *testing.T, m *model.Model, id string) {
	t.Helper()
	list := m.ActiveList()
	for i, svc := range list.Services {
		if svc.ID == id {
			list.Table.SetCursor(i)
			return
		}
	}
	t.Fatalf("service %s not in list", id)
}
