// Package api defines the service backend contract used by svcctl.
//
// It contains the domain types exchanged with the backend (Service, Intent,
// Trigger), the Backend interface the client-side store depends on, and
// Client, the HTTP implementation of that interface.
//
// The HTTP contract:
//
//	GET    /services                  list services
//	DELETE /services/{id}             delete a service
//	POST   /services/{id}/state       change lifecycle state
//	GET    /services/{id}/connection  current intent connection trigger (204 if none)
//	POST   /services/{id}/connection  request an intent connection
//	POST   /triggers/{id}/cancel      cancel a pending connection request
//	GET    /intents/available         intents a service may connect to
//
// Errors returned by the backend surface as *StatusError so callers can
// branch on the HTTP status with errors.As.
package api
