package api

import (
	"context"
	"time"
)

// ServiceState is the lifecycle state of a service.
type ServiceState string

const (
	StateActive   ServiceState = "active"
	StateInactive ServiceState = "inactive"
	StateDraft    ServiceState = "draft"
)

// Service is a managed service as returned by the backend.
type Service struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	IsCommon    bool         `json:"isCommon"`
	State       ServiceState `json:"state"`
	Intent      string       `json:"intent,omitempty"` // Connected intent id, empty when none
}

// Intent is a connectable target a service can be linked to.
type Intent struct {
	Intent      string `json:"intent"`
	Description string `json:"description,omitempty"`
}

// TriggerStatusPending marks a connection request that has not been accepted yet.
const TriggerStatusPending = "pending"

// Trigger records a service-to-intent connection attempt.
type Trigger struct {
	ID          string    `json:"id"`
	Service     string    `json:"service"`
	Intent      string    `json:"intent"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requestedAt"`
}

// IsPending reports whether the connection request is still awaiting approval.
func (t Trigger) IsPending() bool {
	return t.Status == TriggerStatusPending
}

// StateChange is the body of POST /services/{id}/state.
type StateChange struct {
	Activate bool `json:"activate"`
	Draft    bool `json:"draft"`
}

// ConnectionRequest is the body of POST /services/{id}/connection.
type ConnectionRequest struct {
	Intent string `json:"intent"`
}

// Backend is the service backend consumed by the client-side store.
// CheckIntentConnection returns a nil trigger when the service has never
// requested a connection.
type Backend interface {
	ListServices(ctx context.Context) ([]Service, error)
	DeleteService(ctx context.Context, id string) error
	ChangeServiceState(ctx context.Context, id string, change StateChange) (*Service, error)
	CheckIntentConnection(ctx context.Context, serviceID string) (*Trigger, error)
	RequestIntentConnection(ctx context.Context, serviceID, intent string) (*Trigger, error)
	CancelConnectionRequest(ctx context.Context, trigger Trigger) error
	ListAvailableIntents(ctx context.Context) ([]Intent, error)
}

// NextState applies the backend's lifecycle rule: draft wins, then activate,
// otherwise active and draft services become inactive and inactive services
// fall back to draft.
func NextState(current ServiceState, change StateChange) ServiceState {
	switch {
	case change.Draft:
		return StateDraft
	case change.Activate:
		return StateActive
	case current == StateInactive:
		return StateDraft
	default:
		return StateInactive
	}
}
