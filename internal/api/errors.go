package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrServiceNotFound is returned when a service id is unknown to the backend.
	ErrServiceNotFound = errors.New("service not found")
	// ErrTriggerNotFound is returned when a connection trigger id is unknown.
	ErrTriggerNotFound = errors.New("trigger not found")
	// ErrIntentNotConnected is returned when a private service is activated
	// without a connected intent.
	ErrIntentNotConnected = errors.New("service is not connected to an intent")
	// ErrConnectionPending is returned when an action requires a settled
	// connection but the request is still pending.
	ErrConnectionPending = errors.New("intent connection is pending")
	// ErrTriggerSettled is returned when cancelling a request that is no
	// longer pending.
	ErrTriggerSettled = errors.New("connection request is no longer pending")
)

// StatusError is returned by Client for non-2xx responses.
type StatusError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// IsNotFound reports whether err is a 404 from the backend or one of the
// not-found sentinels.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusNotFound
	}
	return errors.Is(err, ErrServiceNotFound) || errors.Is(err, ErrTriggerNotFound)
}
