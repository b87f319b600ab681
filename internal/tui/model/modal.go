package model

import "svcctl/internal/api"

// ModalKind identifies which modal a list currently shows.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalDeleteConfirm
	ModalStateChange
	ModalReadinessCheck
	ModalIntentConnect
)

// Modal is the single modal slot of a service list. A nil Modal means no
// modal is open, so two modals can never be visible at once.
type Modal interface {
	Kind() ModalKind
}

// KindOf returns the kind of m, ModalNone for nil.
func KindOf(m Modal) ModalKind {
	if m == nil {
		return ModalNone
	}
	return m.Kind()
}

// DeleteConfirm asks before deleting the selected service.
type DeleteConfirm struct{}

func (DeleteConfirm) Kind() ModalKind { return ModalDeleteConfirm }

// StateChangeKind is the transition a StateChange modal confirms.
type StateChangeKind int

const (
	StateChangeDeactivate StateChangeKind = iota
	StateChangeSetReady
	StateChangeActivate
)

// QuestionKey is the i18n key of the modal's question.
func (k StateChangeKind) QuestionKey() string {
	switch k {
	case StateChangeDeactivate:
		return "overview.popup.setInactive"
	case StateChangeSetReady:
		return "overview.popup.setReady"
	default:
		return "overview.popup.activateQuestion"
	}
}

// ConfirmLabelKey is the i18n key of the confirm button.
func (k StateChangeKind) ConfirmLabelKey() string {
	switch k {
	case StateChangeDeactivate:
		return "overview.popup.deactivate"
	case StateChangeSetReady:
		return "overview.popup.setState"
	default:
		return "overview.popup.activate"
	}
}

// Activate reports the activate flag the confirm button sends.
func (k StateChangeKind) Activate() bool {
	return k == StateChangeActivate
}

// StateChange confirms a lifecycle transition.
type StateChange struct {
	Change StateChangeKind
}

func (StateChange) Kind() ModalKind { return ModalStateChange }

// ReadinessOutcome is the resolved state of a readiness check.
type ReadinessOutcome int

const (
	ReadinessPending ReadinessOutcome = iota
	ReadinessSetActive
	ReadinessNotConnected
)

// MessageKey is the i18n key describing the outcome.
func (o ReadinessOutcome) MessageKey() string {
	switch o {
	case ReadinessPending:
		return "overview.popup.connectionPending"
	case ReadinessSetActive:
		return "overview.popup.setActive"
	default:
		return "overview.popup.intentNotConnected"
	}
}

// ReadinessCheck shows the connection status of the selected service.
// Results carrying another RequestID are stale and dropped.
type ReadinessCheck struct {
	RequestID uint64
	Loading   bool
	Outcome   ReadinessOutcome
	Trigger   *api.Trigger
}

func (ReadinessCheck) Kind() ModalKind { return ModalReadinessCheck }

// Resolve returns the check with the outcome derived from a result.
func (r ReadinessCheck) Resolve(trigger *api.Trigger, ok bool) ReadinessCheck {
	r.Loading = false
	r.Trigger = trigger
	switch {
	case !ok:
		r.Outcome = ReadinessNotConnected
		r.Trigger = nil
	case trigger != nil && trigger.IsPending():
		r.Outcome = ReadinessPending
	default:
		r.Outcome = ReadinessSetActive
	}
	return r
}

// IntentConnect hosts the intent picker.
type IntentConnect struct {
	Dialog *IntentDialog
}

func (IntentConnect) Kind() ModalKind { return ModalIntentConnect }
