package mockapi

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"svcctl/internal/api"

	"github.com/google/uuid"
)

// Operation names accepted by Backend.InjectError.
const (
	OpListServices   = "ListServices"
	OpDeleteService  = "DeleteService"
	OpChangeState    = "ChangeServiceState"
	OpCheckConnect   = "CheckIntentConnection"
	OpRequestConnect = "RequestIntentConnection"
	OpCancelConnect  = "CancelConnectionRequest"
	OpListIntents    = "ListAvailableIntents"
)

// Options configures NewBackend.
type Options struct {
	// AutoApproveAfter turns pending triggers into active ones once they are
	// older than this. Zero keeps them pending until Approve is called.
	AutoApproveAfter time.Duration
	// Latency is added to every call to make loading states visible.
	Latency time.Duration
	// Now is used for trigger timestamps; defaults to time.Now.
	Now func() time.Time
}

// Backend is an in-memory api.Backend safe for concurrent use.
type Backend struct {
	opts Options

	mu       sync.Mutex
	services map[string]*api.Service
	order    []string
	intents  []api.Intent
	triggers map[string]*api.Trigger // by trigger id
	latest   map[string]string       // service id -> latest trigger id
	failures map[string]error
}

var _ api.Backend = (*Backend)(nil)

// NewBackend creates an empty backend.
func NewBackend(opts Options) *Backend {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Backend{
		opts:     opts,
		services: make(map[string]*api.Service),
		triggers: make(map[string]*api.Trigger),
		latest:   make(map[string]string),
		failures: make(map[string]error),
	}
}

// AddService stores svc, replacing any service with the same id.
func (b *Backend) AddService(svc api.Service) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.services[svc.ID]; !exists {
		b.order = append(b.order, svc.ID)
	}
	stored := svc
	b.services[svc.ID] = &stored
}

// SetIntents replaces the list of connectable intents.
func (b *Backend) SetIntents(intents []api.Intent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.intents = append([]api.Intent(nil), intents...)
}

// InjectError makes the next call of op fail with err.
func (b *Backend) InjectError(op string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[op] = err
}

// Approve marks a pending trigger as active and links the intent to its service.
func (b *Backend) Approve(triggerID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.triggers[triggerID]
	if !ok {
		return api.ErrTriggerNotFound
	}
	b.approveLocked(t)
	return nil
}

func (b *Backend) approveLocked(t *api.Trigger) {
	t.Status = "active"
	if svc, ok := b.services[t.Service]; ok {
		svc.Intent = t.Intent
	}
}

// enter applies latency and consumes an injected failure for op.
func (b *Backend) enter(ctx context.Context, op string) error {
	if b.opts.Latency > 0 {
		select {
		case <-time.After(b.opts.Latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err, ok := b.failures[op]; ok {
		delete(b.failures, op)
		return err
	}
	return nil
}

// ListServices implements api.Backend.
func (b *Backend) ListServices(ctx context.Context) ([]api.Service, error) {
	if err := b.enter(ctx, OpListServices); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]api.Service, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, *b.services[id])
	}
	return out, nil
}

// DeleteService implements api.Backend.
func (b *Backend) DeleteService(ctx context.Context, id string) error {
	if err := b.enter(ctx, OpDeleteService); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.services[id]; !ok {
		return fmt.Errorf("%w: %s", api.ErrServiceNotFound, id)
	}
	delete(b.services, id)
	for i, existing := range b.order {
		if existing == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	if triggerID, ok := b.latest[id]; ok {
		delete(b.triggers, triggerID)
		delete(b.latest, id)
	}
	return nil
}

// ChangeServiceState implements api.Backend. Activating a private service
// requires a settled intent connection.
func (b *Backend) ChangeServiceState(ctx context.Context, id string, change api.StateChange) (*api.Service, error) {
	if err := b.enter(ctx, OpChangeState); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	svc, ok := b.services[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", api.ErrServiceNotFound, id)
	}

	next := api.NextState(svc.State, change)
	if next == api.StateActive && !svc.IsCommon {
		t := b.latestTriggerLocked(id)
		switch {
		case t == nil:
			return nil, api.ErrIntentNotConnected
		case t.IsPending():
			return nil, api.ErrConnectionPending
		}
	}

	svc.State = next
	out := *svc
	return &out, nil
}

// CheckIntentConnection implements api.Backend.
func (b *Backend) CheckIntentConnection(ctx context.Context, serviceID string) (*api.Trigger, error) {
	if err := b.enter(ctx, OpCheckConnect); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.services[serviceID]; !ok {
		return nil, fmt.Errorf("%w: %s", api.ErrServiceNotFound, serviceID)
	}
	t := b.latestTriggerLocked(serviceID)
	if t == nil {
		return nil, nil
	}
	out := *t
	return &out, nil
}

// RequestIntentConnection implements api.Backend. The new trigger replaces
// any earlier one for the service.
func (b *Backend) RequestIntentConnection(ctx context.Context, serviceID, intent string) (*api.Trigger, error) {
	if err := b.enter(ctx, OpRequestConnect); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.services[serviceID]; !ok {
		return nil, fmt.Errorf("%w: %s", api.ErrServiceNotFound, serviceID)
	}
	if previous, ok := b.latest[serviceID]; ok {
		delete(b.triggers, previous)
	}

	t := &api.Trigger{
		ID:          uuid.NewString(),
		Service:     serviceID,
		Intent:      intent,
		Status:      api.TriggerStatusPending,
		RequestedAt: b.opts.Now(),
	}
	b.triggers[t.ID] = t
	b.latest[serviceID] = t.ID

	out := *t
	return &out, nil
}

// CancelConnectionRequest implements api.Backend. Only pending requests can
// be cancelled.
func (b *Backend) CancelConnectionRequest(ctx context.Context, trigger api.Trigger) error {
	if err := b.enter(ctx, OpCancelConnect); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.triggers[trigger.ID]
	if !ok {
		return fmt.Errorf("%w: %s", api.ErrTriggerNotFound, trigger.ID)
	}
	b.refreshLocked(t)
	if !t.IsPending() {
		return fmt.Errorf("%w: %s is %s", api.ErrTriggerSettled, t.ID, t.Status)
	}
	delete(b.triggers, t.ID)
	if b.latest[t.Service] == t.ID {
		delete(b.latest, t.Service)
	}
	return nil
}

// ListAvailableIntents implements api.Backend, sorted by intent id.
func (b *Backend) ListAvailableIntents(ctx context.Context) ([]api.Intent, error) {
	if err := b.enter(ctx, OpListIntents); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	out := append([]api.Intent{}, b.intents...)
	sort.Slice(out, func(i, j int) bool { return out[i].Intent < out[j].Intent })
	return out, nil
}

func (b *Backend) latestTriggerLocked(serviceID string) *api.Trigger {
	id, ok := b.latest[serviceID]
	if !ok {
		return nil
	}
	t := b.triggers[id]
	b.refreshLocked(t)
	return t
}

func (b *Backend) refreshLocked(t *api.Trigger) {
	if t == nil || !t.IsPending() || b.opts.AutoApproveAfter <= 0 {
		return
	}
	if b.opts.Now().Sub(t.RequestedAt) >= b.opts.AutoApproveAfter {
		b.approveLocked(t)
	}
}
