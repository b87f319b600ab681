package store

import (
	"context"
	"errors"

	"svcctl/internal/api"
	"svcctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastKind distinguishes success and failure notifications.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
)

// Toast is a short user-facing notification.
type Toast struct {
	Kind    ToastKind
	Message string
}

// MutationResultMsg finishes every mutation command. OnSuccess is the
// caller's success message and is nil when the mutation failed.
type MutationResultMsg struct {
	Toast     Toast
	OnSuccess tea.Msg
}

// ToastMsg reports a failed load that has no success follow-up.
type ToastMsg struct {
	Toast Toast
}

// ServicesChangedMsg tells views to re-read ListServices.
type ServicesChangedMsg struct{}

var errNoSelection = errors.New("no service selected")

// WaitForChange blocks on a subscription channel and reports the next
// change. It returns nil once the channel is closed, which ends the loop.
func WaitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return ServicesChangedMsg{}
	}
}

// Refresh reloads the service list and toasts failureMsg if that fails.
func (s *Store) Refresh(failureMsg string) tea.Cmd {
	return func() tea.Msg {
		if err := s.reload(); err != nil {
			logging.Error(storeSubsystem, err, "Failed to load services")
			return ToastMsg{Toast: Toast{Kind: ToastError, Message: failureMsg}}
		}
		return nil
	}
}

// mutate runs fn against the backend, refreshes the snapshot on success and
// reports the outcome.
func (s *Store) mutate(name string, onSuccess tea.Msg, successMsg, failureMsg string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := s.requestContext()
		defer cancel()

		if err := fn(ctx); err != nil {
			logging.Error(storeSubsystem, err, "%s failed", name)
			return MutationResultMsg{Toast: Toast{Kind: ToastError, Message: failureMsg}}
		}
		logging.Info(storeSubsystem, "%s succeeded", name)

		if err := s.reloadAfterMutation(); err != nil {
			logging.Warn(storeSubsystem, "Refresh after %s failed: %v", name, err)
		}
		return MutationResultMsg{
			Toast:     Toast{Kind: ToastSuccess, Message: successMsg},
			OnSuccess: onSuccess,
		}
	}
}

// DeleteSelectedService deletes the selected service.
func (s *Store) DeleteSelectedService(onSuccess tea.Msg, successMsg, failureMsg string) tea.Cmd {
	id := s.selectedID()
	return s.mutate("delete service "+id, onSuccess, successMsg, failureMsg, func(ctx context.Context) error {
		if id == "" {
			return errNoSelection
		}
		return s.backend.DeleteService(ctx, id)
	})
}

// ChangeServiceState moves the selected service to the state implied by
// activate and draft (see api.NextState).
func (s *Store) ChangeServiceState(onSuccess tea.Msg, successMsg, failureMsg string, activate, draft bool) tea.Cmd {
	id := s.selectedID()
	change := api.StateChange{Activate: activate, Draft: draft}
	return s.mutate("change state of "+id, onSuccess, successMsg, failureMsg, func(ctx context.Context) error {
		if id == "" {
			return errNoSelection
		}
		_, err := s.backend.ChangeServiceState(ctx, id, change)
		return err
	})
}

// RequestServiceIntentConnection asks the backend to connect the selected
// service to intentID.
func (s *Store) RequestServiceIntentConnection(onSuccess tea.Msg, successMsg, failureMsg string, intentID string) tea.Cmd {
	id := s.selectedID()
	return s.mutate("connect "+id+" to "+intentID, onSuccess, successMsg, failureMsg, func(ctx context.Context) error {
		if id == "" {
			return errNoSelection
		}
		_, err := s.backend.RequestIntentConnection(ctx, id, intentID)
		return err
	})
}

// CancelConnectionRequest withdraws a pending connection request.
func (s *Store) CancelConnectionRequest(onSuccess tea.Msg, successMsg, failureMsg string, trigger api.Trigger) tea.Cmd {
	return s.mutate("cancel request "+trigger.ID, onSuccess, successMsg, failureMsg, func(ctx context.Context) error {
		return s.backend.CancelConnectionRequest(ctx, trigger)
	})
}

// CheckServiceIntentConnection queries the selected service's connection
// trigger. Starting a new check cancels the previous one; a cancelled check
// produces no message.
func (s *Store) CheckServiceIntentConnection(onSuccess func(*api.Trigger) tea.Msg, onFailure func() tea.Msg) tea.Cmd {
	id := s.selectedID()

	s.checkMu.Lock()
	if s.checkCancel != nil {
		s.checkCancel()
	}
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	s.checkCancel = cancel
	s.checkSeq++
	seq := s.checkSeq
	s.checkMu.Unlock()

	return func() tea.Msg {
		defer func() {
			s.checkMu.Lock()
			if s.checkSeq == seq {
				s.checkCancel = nil
			}
			s.checkMu.Unlock()
			cancel()
		}()

		if id == "" {
			return onFailure()
		}

		trigger, err := s.backend.CheckIntentConnection(ctx, id)
		if err != nil {
			if errors.Is(ctx.Err(), context.Canceled) {
				logging.Debug(storeSubsystem, "Superseded readiness check for %s dropped", id)
				return nil
			}
			logging.Warn(storeSubsystem, "Readiness check for %s failed: %v", id, err)
			return onFailure()
		}
		return onSuccess(trigger)
	}
}

// LoadAvailableIntentsList fetches connectable intents.
func (s *Store) LoadAvailableIntentsList(onSuccess func([]api.Intent) tea.Msg, failureMsg string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := s.requestContext()
		defer cancel()

		intents, err := s.backend.ListAvailableIntents(ctx)
		if err != nil {
			logging.Error(storeSubsystem, err, "Failed to load available intents")
			return ToastMsg{Toast: Toast{Kind: ToastError, Message: failureMsg}}
		}
		return onSuccess(intents)
	}
}
