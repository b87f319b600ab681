package model

import (
	"testing"

	"svcctl/internal/api"

	"github.com/stretchr/testify/assert"
)

func actions(buttons []Button) []Action {
	out := make([]Action, 0, len(buttons))
	for _, b := range buttons {
		out = append(out, b.Action)
	}
	return out
}

func TestButtons(t *testing.T) {
	pending := &api.Trigger{ID: "t1", Status: api.TriggerStatusPending}
	accepted := &api.Trigger{ID: "t2", Status: "active"}

	tests := []struct {
		name  string
		modal Modal
		want  []Action
	}{
		{"none", nil, nil},
		{"delete", DeleteConfirm{}, []Action{ActionCancel, ActionDelete}},
		{"deactivate", StateChange{Change: StateChangeDeactivate}, []Action{ActionCancel, ActionSetToDraft, ActionConfirm}},
		{"set ready", StateChange{Change: StateChangeSetReady}, []Action{ActionCancel, ActionConfirm}},
		{"activate", StateChange{Change: StateChangeActivate}, []Action{ActionCancel, ActionConfirm}},
		{"readiness loading", ReadinessCheck{Loading: true}, []Action{ActionCancel}},
		{"readiness pending", ReadinessCheck{}.Resolve(pending, true), []Action{ActionCancel, ActionCancelRequest}},
		{"readiness accepted", ReadinessCheck{}.Resolve(accepted, true), []Action{ActionCancel, ActionSetToDraft, ActionActivate}},
		{"readiness no trigger", ReadinessCheck{}.Resolve(nil, true), []Action{ActionCancel, ActionSetToDraft, ActionConnectToIntent}},
		{"readiness failed", ReadinessCheck{}.Resolve(accepted, false), []Action{ActionCancel, ActionSetToDraft, ActionConnectToIntent}},
		{"intent connect", IntentConnect{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Buttons(tt.modal)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, actions(got))
		})
	}
}

func TestButtons_PendingNeverActivates(t *testing.T) {
	m := ReadinessCheck{}.Resolve(&api.Trigger{ID: "t1", Status: api.TriggerStatusPending}, true)
	assert.Equal(t, ReadinessPending, m.Outcome)
	assert.False(t, HasAction(m, ActionActivate))
	assert.True(t, HasAction(m, ActionCancelRequest))
}

func TestButtons_CancelRequestNeedsTrigger(t *testing.T) {
	m := ReadinessCheck{Outcome: ReadinessPending}
	assert.False(t, HasAction(m, ActionCancelRequest))
}

func TestStateChangeKind_Labels(t *testing.T) {
	assert.Equal(t, "overview.popup.deactivate", StateChangeDeactivate.ConfirmLabelKey())
	assert.Equal(t, "overview.popup.setState", StateChangeSetReady.ConfirmLabelKey())
	assert.Equal(t, "overview.popup.activate", StateChangeActivate.ConfirmLabelKey())
	assert.False(t, StateChangeDeactivate.Activate())
	assert.False(t, StateChangeSetReady.Activate())
	assert.True(t, StateChangeActivate.Activate())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ModalNone, KindOf(nil))
	assert.Equal(t, ModalDeleteConfirm, KindOf(DeleteConfirm{}))
	assert.Equal(t, ModalIntentConnect, KindOf(IntentConnect{}))
}
