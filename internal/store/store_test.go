package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"svcctl/internal/api"
	"svcctl/internal/mockapi"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closedMsg struct{}

func newTestStore(t *testing.T) (*Store, *mockapi.Backend) {
	t.Helper()
	backend := mockapi.NewBackend(mockapi.Options{})
	mockapi.Seed(backend)
	s := New(backend, Options{Timeout: time.Second})
	t.Cleanup(s.Close)
	require.Nil(t, s.Refresh("load failed")())
	return s, backend
}

func TestStore_ListServicesFiltersByCommonFlag(t *testing.T) {
	s, backend := newTestStore(t)
	all, err := backend.ListServices(context.Background())
	require.NoError(t, err)

	for _, isCommon := range []bool{false, true} {
		var want []api.Service
		for _, svc := range all {
			if svc.IsCommon == isCommon {
				want = append(want, svc)
			}
		}
		assert.Equal(t, want, s.ListServices(isCommon))
	}
	assert.True(t, s.Loaded())
}

func TestStore_RefreshFailureToasts(t *testing.T) {
	backend := mockapi.NewBackend(mockapi.Options{})
	backend.InjectError(mockapi.OpListServices, errors.New("down"))
	s := New(backend, Options{})
	defer s.Close()

	msg := s.Refresh("load failed")()
	assert.Equal(t, ToastMsg{Toast: Toast{Kind: ToastError, Message: "load failed"}}, msg)
	assert.False(t, s.Loaded())
}

func TestStore_DeleteSelectedService(t *testing.T) {
	s, _ := newTestStore(t)
	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	s.SelectService("svc-holidays")
	msg := s.DeleteSelectedService(closedMsg{}, "deleted", "delete failed")()

	assert.Equal(t, MutationResultMsg{
		Toast:     Toast{Kind: ToastSuccess, Message: "deleted"},
		OnSuccess: closedMsg{},
	}, msg)
	for _, svc := range s.ListServices(false) {
		assert.NotEqual(t, "svc-holidays", svc.ID)
	}
	assert.Equal(t, ServicesChangedMsg{}, WaitForChange(ch)())
}

func TestStore_MutationFailureHasNoSuccessMessage(t *testing.T) {
	s, backend := newTestStore(t)
	backend.InjectError(mockapi.OpDeleteService, errors.New("boom"))

	s.SelectService("svc-holidays")
	msg := s.DeleteSelectedService(closedMsg{}, "deleted", "delete failed")()

	result, ok := msg.(MutationResultMsg)
	require.True(t, ok)
	assert.Nil(t, result.OnSuccess)
	assert.Equal(t, Toast{Kind: ToastError, Message: "delete failed"}, result.Toast)
}

func TestStore_MutationWithoutSelectionFails(t *testing.T) {
	s, _ := newTestStore(t)

	result := s.ChangeServiceState(closedMsg{}, "ok", "failed", true, false)().(MutationResultMsg)
	assert.Nil(t, result.OnSuccess)
	assert.Equal(t, "failed", result.Toast.Message)
}

func TestStore_ChangeServiceState(t *testing.T) {
	s, _ := newTestStore(t)

	s.SelectService("svc-billing")
	result := s.ChangeServiceState(closedMsg{}, "updated", "failed", false, true)().(MutationResultMsg)
	require.NotNil(t, result.OnSuccess)

	svc, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, api.StateDraft, svc.State)
}

func TestStore_RequestAndCancelConnection(t *testing.T) {
	s, _ := newTestStore(t)
	s.SelectService("svc-permits")

	result := s.RequestServiceIntentConnection(closedMsg{}, "requested", "failed", "parking_permit_apply")().(MutationResultMsg)
	require.Equal(t, ToastSuccess, result.Toast.Kind)

	var got *api.Trigger
	msg := s.CheckServiceIntentConnection(
		func(t *api.Trigger) tea.Msg { got = t; return closedMsg{} },
		func() tea.Msg { return nil },
	)()
	require.Equal(t, closedMsg{}, msg)
	require.NotNil(t, got)
	assert.True(t, got.IsPending())

	result = s.CancelConnectionRequest(closedMsg{}, "cancelled", "failed", *got)().(MutationResultMsg)
	assert.Equal(t, Toast{Kind: ToastSuccess, Message: "cancelled"}, result.Toast)
}

func TestStore_CheckFailureCallsOnFailure(t *testing.T) {
	s, backend := newTestStore(t)
	backend.InjectError(mockapi.OpCheckConnect, errors.New("down"))
	s.SelectService("svc-permits")

	msg := s.CheckServiceIntentConnection(
		func(*api.Trigger) tea.Msg { return "success" },
		func() tea.Msg { return "failure" },
	)()
	assert.Equal(t, "failure", msg)
}

// blockingBackend holds CheckIntentConnection until its context ends.
type blockingBackend struct {
	*mockapi.Backend
	started chan struct{}
}

func (b *blockingBackend) CheckIntentConnection(ctx context.Context, serviceID string) (*api.Trigger, error) {
	b.started <- struct{}{}
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestStore_NewCheckSupersedesPrevious(t *testing.T) {
	backend := &blockingBackend{Backend: mockapi.NewBackend(mockapi.Options{}), started: make(chan struct{}, 1)}
	mockapi.Seed(backend.Backend)
	s := New(backend, Options{Timeout: time.Minute})
	defer s.Close()
	require.Nil(t, s.Refresh("failed")())
	s.SelectService("svc-permits")

	first := s.CheckServiceIntentConnection(
		func(*api.Trigger) tea.Msg { return "first-success" },
		func() tea.Msg { return "first-failure" },
	)

	var wg sync.WaitGroup
	var firstMsg tea.Msg
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstMsg = first()
	}()
	<-backend.started

	// Creating the second command cancels the first request.
	_ = s.CheckServiceIntentConnection(
		func(*api.Trigger) tea.Msg { return "second-success" },
		func() tea.Msg { return "second-failure" },
	)
	wg.Wait()

	assert.Nil(t, firstMsg)
}

// gatedBackend holds the first gated ListServices call after it has read
// the snapshot, until release is closed.
type gatedBackend struct {
	*mockapi.Backend
	gate    atomic.Bool
	started chan struct{}
	release chan struct{}
}

func (b *gatedBackend) ListServices(ctx context.Context) ([]api.Service, error) {
	services, err := b.Backend.ListServices(ctx)
	if b.gate.CompareAndSwap(true, false) {
		b.started <- struct{}{}
		<-b.release
	}
	return services, err
}

func TestStore_MutationDoesNotJoinOlderRefresh(t *testing.T) {
	backend := &gatedBackend{
		Backend: mockapi.NewBackend(mockapi.Options{}),
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	mockapi.Seed(backend.Backend)
	s := New(backend, Options{Timeout: time.Minute})
	defer s.Close()
	require.Nil(t, s.Refresh("failed")())

	backend.gate.Store(true)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Refresh("failed")()
	}()
	<-backend.started

	s.SelectService("svc-holidays")
	result := s.DeleteSelectedService(closedMsg{}, "deleted", "failed")().(MutationResultMsg)
	require.Equal(t, ToastSuccess, result.Toast.Kind)

	close(backend.release)
	wg.Wait()

	for _, svc := range s.ListServices(false) {
		assert.NotEqual(t, "svc-holidays", svc.ID, "deleted service still in snapshot")
	}
}

func TestStore_LoadAvailableIntentsList(t *testing.T) {
	s, backend := newTestStore(t)

	msg := s.LoadAvailableIntentsList(func(intents []api.Intent) tea.Msg { return len(intents) }, "failed")()
	assert.Equal(t, 10, msg)

	backend.InjectError(mockapi.OpListIntents, errors.New("down"))
	msg = s.LoadAvailableIntentsList(func(intents []api.Intent) tea.Msg { return len(intents) }, "failed")()
	assert.Equal(t, ToastMsg{Toast: Toast{Kind: ToastError, Message: "failed"}}, msg)
}

func TestStore_CloseEndsSubscriptions(t *testing.T) {
	backend := mockapi.NewBackend(mockapi.Options{})
	s := New(backend, Options{})
	ch, _ := s.Subscribe()

	s.Close()
	assert.Nil(t, WaitForChange(ch)())
}
