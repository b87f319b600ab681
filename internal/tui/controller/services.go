package controller

import (
	"svcctl/internal/api"
	"svcctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const servicesSubsystem = "ServiceList"

// selectRow makes the row under the cursor the target of the next modal
// and the store's selected service.
func selectRow(m *model.Model, list *model.ServiceList) (api.Service, bool) {
	svc, ok := list.SelectedService()
	if !ok {
		return api.Service{}, false
	}
	list.Target = svc.ID
	if m.Store != nil {
		m.Store.SelectService(svc.ID)
	}
	return svc, true
}

func openDeleteConfirm(m *model.Model, list *model.ServiceList) {
	if _, ok := selectRow(m, list); ok {
		list.OpenModal(model.DeleteConfirm{})
	}
}

// changeState opens the modal matching the service's current state. An
// inactive private service needs an intent connection first, so it goes
// through the readiness check.
func changeState(m *model.Model, list *model.ServiceList) (*model.Model, tea.Cmd) {
	svc, ok := selectRow(m, list)
	if !ok {
		return m, nil
	}
	switch svc.State {
	case api.StateActive:
		list.OpenModal(model.StateChange{Change: model.StateChangeDeactivate})
	case api.StateDraft:
		list.OpenModal(model.StateChange{Change: model.StateChangeSetReady})
	default:
		if svc.IsCommon {
			list.OpenModal(model.StateChange{Change: model.StateChangeActivate})
			return m, nil
		}
		return startReadinessCheck(m, list)
	}
	return m, nil
}

func startReadinessCheck(m *model.Model, list *model.ServiceList) (*model.Model, tea.Cmd) {
	if _, ok := selectRow(m, list); !ok || m.Store == nil {
		return m, nil
	}

	requestID := m.NextRequestID()
	list.OpenModal(model.ReadinessCheck{RequestID: requestID, Loading: true})

	isCommon := list.IsCommon
	return m, m.Store.CheckServiceIntentConnection(
		func(trigger *api.Trigger) tea.Msg {
			return model.ReadinessResultMsg{IsCommon: isCommon, RequestID: requestID, Trigger: trigger, OK: true}
		},
		func() tea.Msg {
			return model.ReadinessResultMsg{IsCommon: isCommon, RequestID: requestID}
		},
	)
}

func handleReadinessResult(m *model.Model, msg model.ReadinessResultMsg) (*model.Model, tea.Cmd) {
	list := m.List(msg.IsCommon)
	current, ok := list.Readiness()
	if !ok || !current.Loading || current.RequestID != msg.RequestID {
		LogDebug(m, servicesSubsystem, "Dropping stale readiness result %d", msg.RequestID)
		return m, nil
	}
	list.Modal = current.Resolve(msg.Trigger, msg.OK)
	list.ButtonFocus = 0
	return m, nil
}

// handleModalAction runs a modal button. Buttons the modal does not
// currently offer are ignored.
func handleModalAction(m *model.Model, list *model.ServiceList, action model.Action) (*model.Model, tea.Cmd) {
	if !model.HasAction(list.Modal, action) {
		return m, nil
	}
	if action == model.ActionCancel {
		list.CloseModal()
		return m, nil
	}
	if m.Store == nil {
		return m, nil
	}

	LogDebug(m, servicesSubsystem, "Modal action %s on %s", action, list.Target)
	m.Store.SelectService(list.Target)
	closing := func(kinds ...model.ModalKind) model.MutationSuccessMsg {
		return model.MutationSuccessMsg{IsCommon: list.IsCommon, Target: list.Target, Close: kinds}
	}
	t := m.T.T

	switch action {
	case model.ActionDelete:
		return m, m.Store.DeleteSelectedService(
			closing(model.ModalDeleteConfirm),
			t("overview.service.toast.deleted"),
			t("overview.service.toast.failed.delete"),
		)

	case model.ActionConfirm:
		sc := list.Modal.(model.StateChange)
		return m, m.Store.ChangeServiceState(
			closing(model.ModalStateChange),
			t("overview.service.toast.updated"),
			t("overview.service.toast.failed.state"),
			sc.Change.Activate(), false,
		)

	case model.ActionSetToDraft:
		return m, m.Store.ChangeServiceState(
			closing(model.ModalStateChange, model.ModalReadinessCheck),
			t("overview.service.toast.updated"),
			t("overview.service.toast.failed.state"),
			false, true,
		)

	case model.ActionActivate:
		return m, m.Store.ChangeServiceState(
			closing(model.ModalReadinessCheck, model.ModalStateChange),
			t("overview.service.toast.updated"),
			t("overview.service.toast.failed.state"),
			true, false,
		)

	case model.ActionCancelRequest:
		r, _ := list.Readiness()
		return m, m.Store.CancelConnectionRequest(
			closing(model.ModalReadinessCheck),
			t("overview.service.toast.cancelledConnection"),
			t("overview.service.toast.failed.cancelledConnection"),
			*r.Trigger,
		)

	case model.ActionConnectToIntent:
		return openIntentDialog(m, list)
	}
	return m, nil
}
