package model

import (
	"testing"

	"svcctl/internal/api"
	"svcctl/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServices() []api.Service {
	return []api.Service{
		{ID: "b", Name: "Billing", State: api.StateActive, Intent: "billing_status"},
		{ID: "p", Name: "Permits", State: api.StateInactive},
		{ID: "h", Name: "Holidays", State: api.StateDraft},
	}
}

func TestServiceList_SetServices(t *testing.T) {
	l := NewServiceList(false, i18n.MustNew("en"))
	l.SetServices(testServices())

	assert.Len(t, l.Table.Rows(), 3)
	assert.Equal(t, "Active", l.Table.Rows()[0][2])
	svc, ok := l.SelectedService()
	require.True(t, ok)
	assert.Equal(t, "b", svc.ID)
}

func TestServiceList_KeepsCursorOnRefresh(t *testing.T) {
	l := NewServiceList(false, i18n.MustNew("en"))
	l.SetServices(testServices())
	l.Table.SetCursor(2)

	reordered := []api.Service{testServices()[2], testServices()[0]}
	l.SetServices(reordered)
	svc, ok := l.SelectedService()
	require.True(t, ok)
	assert.Equal(t, "h", svc.ID)
}

func TestServiceList_Sort(t *testing.T) {
	l := NewServiceList(false, i18n.MustNew("en"))
	l.SetServices(testServices())

	l.CycleSort()
	assert.Equal(t, SortByName, l.SortColumn)
	assert.Equal(t, []string{"Billing", "Holidays", "Permits"}, names(l))

	l.ReverseSort()
	assert.Equal(t, []string{"Permits", "Holidays", "Billing"}, names(l))

	l.CycleSort()
	assert.Equal(t, SortByState, l.SortColumn)
	assert.Equal(t, []string{"Permits", "Holidays", "Billing"}, names(l))
}

func names(l *ServiceList) []string {
	var out []string
	for _, svc := range l.Services {
		out = append(out, svc.Name)
	}
	return out
}

func TestServiceList_ModalSlot(t *testing.T) {
	l := NewServiceList(false, i18n.MustNew("en"))
	l.OpenModal(DeleteConfirm{})
	l.ButtonFocus = 1

	l.OpenModal(StateChange{Change: StateChangeSetReady})
	assert.Equal(t, ModalStateChange, KindOf(l.Modal))
	assert.Equal(t, 0, l.ButtonFocus)

	assert.False(t, l.CloseModalIf("", ModalDeleteConfirm))
	assert.True(t, l.CloseModalIf("", ModalReadinessCheck, ModalStateChange))
	assert.Nil(t, l.Modal)
	assert.False(t, l.CloseModalIf("", ModalNone))
}

func TestServiceList_CloseModalIfChecksTarget(t *testing.T) {
	l := NewServiceList(false, i18n.MustNew("en"))
	l.Target = "svc-b"
	l.OpenModal(DeleteConfirm{})

	assert.False(t, l.CloseModalIf("svc-a", ModalDeleteConfirm))
	assert.Equal(t, ModalDeleteConfirm, KindOf(l.Modal))
	assert.True(t, l.CloseModalIf("svc-b", ModalDeleteConfirm))
}

func TestServiceList_ButtonFocusSkipsDisabled(t *testing.T) {
	l := NewServiceList(false, i18n.MustNew("en"))
	l.OpenModal(ReadinessCheck{Outcome: ReadinessPending})

	l.MoveButtonFocus(1)
	b, ok := l.FocusedButton()
	require.True(t, ok)
	assert.Equal(t, ActionCancel, b.Action)

	l.OpenModal(StateChange{Change: StateChangeDeactivate})
	l.MoveButtonFocus(-1)
	b, _ = l.FocusedButton()
	assert.Equal(t, ActionConfirm, b.Action)
}
