package view

import (
	"testing"
	"time"

	"svcctl/internal/api"
	"svcctl/internal/i18n"
	"svcctl/internal/mockapi"
	"svcctl/internal/store"
	"svcctl/internal/tui/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *model.Model {
	t.Helper()
	backend := mockapi.NewBackend(mockapi.Options{})
	mockapi.Seed(backend)
	s := store.New(backend, store.Options{Timeout: time.Second})
	t.Cleanup(s.Close)
	require.Nil(t, s.Refresh("failed")())

	m := model.New(model.Config{Store: s, Translator: i18n.MustNew("en"), ToastDuration: time.Hour})
	m.Width, m.Height = 120, 30
	m.Private.SetSize(m.Width, m.Height-ChromeHeight)
	m.Common.SetSize(m.Width, m.Height-ChromeHeight)
	m.SyncServices()
	return m
}

func TestRender_ServiceTable(t *testing.T) {
	m := newTestModel(t)

	out := Render(m)
	assert.Contains(t, out, "Billing lookup")
	assert.Contains(t, out, "Parking permits")
	assert.NotContains(t, out, "Weather")
	assert.Contains(t, out, "3 services")

	m.ShowCommon = true
	out = Render(m)
	assert.Contains(t, out, "Weather")
	assert.NotContains(t, out, "Billing lookup")
}

func TestRender_EmptyAndLoading(t *testing.T) {
	backend := mockapi.NewBackend(mockapi.Options{})
	s := store.New(backend, store.Options{})
	defer s.Close()
	m := model.New(model.Config{Store: s})

	assert.Contains(t, Render(m), "Loading services")

	require.Nil(t, s.Refresh("failed")())
	m.SyncServices()
	assert.Contains(t, Render(m), "No services")
}

func TestRender_Modals(t *testing.T) {
	pending := &api.Trigger{ID: "t1", Intent: "parking_permit_apply", Status: api.TriggerStatusPending}

	tests := []struct {
		name     string
		modal    model.Modal
		contains []string
		missing  []string
	}{
		{
			name:     "delete",
			modal:    model.DeleteConfirm{},
			contains: []string{"Are you sure you want to delete this service?", "Cancel", "Delete", "Billing lookup"},
		},
		{
			name:     "deactivate",
			modal:    model.StateChange{Change: model.StateChangeDeactivate},
			contains: []string{"Set the service inactive?", "Set to draft", "Deactivate"},
		},
		{
			name:     "set ready",
			modal:    model.StateChange{Change: model.StateChangeSetReady},
			contains: []string{"Set state"},
			missing:  []string{"Set to draft"},
		},
		{
			name:     "readiness loading",
			modal:    model.ReadinessCheck{Loading: true},
			contains: []string{"Checking the intent connection"},
		},
		{
			name:     "readiness pending",
			modal:    model.ReadinessCheck{}.Resolve(pending, true),
			contains: []string{"pending", "Cancel request", "parking_permit_apply"},
			missing:  []string{"Set to draft"},
		},
		{
			name:     "readiness failed",
			modal:    model.ReadinessCheck{}.Resolve(nil, false),
			contains: []string{"not connected", "Connect to intent"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m.Private.Target = "svc-billing"
			m.Private.OpenModal(tt.modal)

			out := Render(m)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRender_IntentDialog(t *testing.T) {
	m := newTestModel(t)
	d := model.NewIntentDialog(1, 4, "Search intents")
	m.Private.OpenModal(model.IntentConnect{Dialog: d})

	out := Render(m)
	assert.Contains(t, out, "Connect service to intent")
	assert.Contains(t, out, "Loading intents")

	d.SetIntents(nil)
	out = Render(m)
	assert.Contains(t, out, "No intents available")
	assert.NotContains(t, out, "Description")

	d.SetIntents([]api.Intent{
		{Intent: "billing_status", Description: "Ask about an invoice"},
		{Intent: "weather_today", Description: "Weather today"},
	})
	out = Render(m)
	assert.Contains(t, out, "billing_status")
	assert.Contains(t, out, "weather_today")
	assert.Contains(t, out, "ctrl+s sort")

	require.True(t, d.Confirm())
	out = Render(m)
	assert.Contains(t, out, "Connect the service to this intent?")
	assert.Contains(t, out, "Yes")
	assert.Contains(t, out, "No")
}

func TestRender_LocalizedModals(t *testing.T) {
	m := newTestModel(t)
	m.T = i18n.MustNew("et")
	m.Private.Target = "svc-billing"

	m.Private.OpenModal(model.ReadinessCheck{}.Resolve(nil, false))
	out := Render(m)
	for _, label := range []string{"Tühista", "Muuda mustandiks", "Ühenda kavatsusega"} {
		assert.Contains(t, out, label)
	}

	d := model.NewIntentDialog(1, 4, "Otsi")
	d.SetIntents([]api.Intent{{Intent: "billing_status"}})
	m.Private.OpenModal(model.IntentConnect{Dialog: d})
	out = Render(m)
	assert.Contains(t, out, "ctrl+s sordi")
	assert.NotContains(t, out, "ctrl+s sort ")
}

func TestRender_Toast(t *testing.T) {
	m := newTestModel(t)
	m.SetToast(store.Toast{Kind: store.ToastError, Message: "Failed to delete the service"})
	assert.Contains(t, Render(m), "Failed to delete the service")
}

func TestRender_LogOverlay(t *testing.T) {
	m := newTestModel(t)
	model.AddRawLineToActivityLog(m, "12:00:00 [INFO] Store: Loaded 6 services")
	m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog))
	m.CurrentAppMode = model.ModeLogOverlay

	out := Render(m)
	assert.Contains(t, out, "Activity log")
	assert.Contains(t, out, "Loaded 6 services")
}

func TestRender_Quitting(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeQuitting
	assert.Empty(t, Render(m))
}

func TestLogOverlaySize(t *testing.T) {
	w, h := LogOverlaySize(100, 40)
	assert.Greater(t, w, 10)
	assert.Greater(t, h, 3)

	w, h = LogOverlaySize(0, 0)
	assert.Equal(t, 10, w)
	assert.Equal(t, 3, h)
}
