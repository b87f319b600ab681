package model

// Action is what a modal button does when pressed.
type Action int

const (
	ActionCancel Action = iota
	ActionDelete
	ActionConfirm
	ActionSetToDraft
	ActionCancelRequest
	ActionActivate
	ActionConnectToIntent
)

// String returns the action name used in logs.
func (a Action) String() string {
	switch a {
	case ActionCancel:
		return "cancel"
	case ActionDelete:
		return "delete"
	case ActionConfirm:
		return "confirm"
	case ActionSetToDraft:
		return "set-to-draft"
	case ActionCancelRequest:
		return "cancel-request"
	case ActionActivate:
		return "activate"
	case ActionConnectToIntent:
		return "connect-to-intent"
	default:
		return "unknown"
	}
}

// Button is one entry of a modal's button row.
type Button struct {
	Action   Action
	LabelKey string
	Enabled  bool
	Danger   bool
}

func button(action Action, labelKey string) Button {
	return Button{Action: action, LabelKey: labelKey, Enabled: true}
}

// Buttons returns the button row of a modal, left to right. The intent
// picker draws its own controls and has none.
func Buttons(m Modal) []Button {
	cancel := button(ActionCancel, "overview.cancel")

	switch m := m.(type) {
	case DeleteConfirm:
		del := button(ActionDelete, "overview.delete")
		del.Danger = true
		return []Button{cancel, del}

	case StateChange:
		out := []Button{cancel}
		if m.Change == StateChangeDeactivate {
			out = append(out, button(ActionSetToDraft, "overview.popup.setToDraft"))
		}
		return append(out, button(ActionConfirm, m.Change.ConfirmLabelKey()))

	case ReadinessCheck:
		if m.Loading {
			return []Button{cancel}
		}
		switch m.Outcome {
		case ReadinessPending:
			cancelRequest := button(ActionCancelRequest, "overview.popup.cancelRequest")
			cancelRequest.Enabled = m.Trigger != nil
			return []Button{cancel, cancelRequest}
		case ReadinessSetActive:
			next := button(ActionConnectToIntent, "overview.popup.connectToIntent")
			if m.Trigger != nil {
				next = button(ActionActivate, "overview.popup.activateService")
			}
			return []Button{cancel, button(ActionSetToDraft, "overview.popup.setToDraft"), next}
		default:
			return []Button{
				cancel,
				button(ActionSetToDraft, "overview.popup.setToDraft"),
				button(ActionConnectToIntent, "overview.popup.connectToIntent"),
			}
		}
	}
	return nil
}

// HasAction reports whether m offers an enabled button for action.
func HasAction(m Modal, action Action) bool {
	for _, b := range Buttons(m) {
		if b.Action == action && b.Enabled {
			return true
		}
	}
	return false
}
