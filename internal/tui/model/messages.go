package model

import (
	"svcctl/internal/api"
	"svcctl/pkg/logging"
)

// MutationSuccessMsg is delivered after a store mutation succeeded. It
// closes the issuing list's modal when that modal is one of Close and is
// still open for Target.
type MutationSuccessMsg struct {
	IsCommon bool
	Target   string
	Close    []ModalKind
}

// ReadinessResultMsg resolves the readiness check RequestID. OK is false
// when the check failed.
type ReadinessResultMsg struct {
	IsCommon  bool
	RequestID uint64
	Trigger   *api.Trigger
	OK        bool
}

// IntentsLoadedMsg delivers the intents requested by dialog load LoadID.
type IntentsLoadedMsg struct {
	IsCommon bool
	LoadID   uint64
	Intents  []api.Intent
}

// IntentChosenMsg is emitted when the user confirms an intent.
type IntentChosenMsg struct {
	IsCommon bool
	Intent   string
}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearToastMsg hides toast Seq if it is still showing.
type ClearToastMsg struct {
	Seq uint64
}
