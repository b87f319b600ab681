// Package mockapi provides an in-memory service backend and an HTTP server
// exposing it with the contract documented in package api.
//
// The console uses it directly in --demo mode; `svcctl mock-server` serves
// it over HTTP so the real client can be exercised end to end.
package mockapi
