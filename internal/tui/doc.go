// Package tui provides the terminal console for svcctl.
//
// The console is a Bubble Tea program that lists private and common
// services, drives their lifecycle through modal dialogs and connects
// services to intents.
//
// # Architecture
//
// The TUI follows a Model-View-Controller (MVC) pattern:
//
//   - Model: service lists, the open modal and the intent dialog
//   - View: pure rendering of the model
//   - Controller: key handling and store commands
//
// # Packages
//
// Model (internal/tui/model/):
//   - ServiceList holds one tab's rows, sort and modal
//   - Modal is a tagged variant; nil means no modal is open
//   - IntentDialog holds filter, sort, paging and confirmation state
//
// View (internal/tui/view/):
//   - Renders tabs, tables, modals, the log overlay and the status bar
//
// Controller (internal/tui/controller/):
//   - Routes keys to the active list, modal or overlay
//   - Issues store commands and applies their results
//   - Drops readiness and intent results whose request id is stale
//
// Shared building blocks live in components/ (buttons, modal frame,
// status bar), design/ (colors and styles) and utils/.
//
// # Usage
//
//	m := model.New(model.Config{Store: s, Translator: tr, LogChannel: logs})
//	p := controller.NewProgram(m)
//	_, err := p.Run()
package tui
