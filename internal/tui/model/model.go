package model

import (
	"time"

	"svcctl/internal/i18n"
	"svcctl/internal/store"
	"svcctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

const (
	MaxActivityLogLines  = 1000
	DefaultToastDuration = 3 * time.Second
)

// Config carries everything New needs.
type Config struct {
	Store          *store.Store
	Translator     *i18n.Translator
	LogChannel     <-chan logging.LogEntry
	IntentPageSize int
	ToastDuration  time.Duration
	ShowCommon     bool
	DebugMode      bool
}

// Model is the state of the console.
type Model struct {
	Width  int
	Height int

	CurrentAppMode AppMode
	DebugMode      bool

	Store *store.Store
	T     *i18n.Translator
	Keys  KeyMap
	Help  help.Model

	Private *ServiceList
	Common  *ServiceList
	// ShowCommon selects which list has focus.
	ShowCommon bool

	IntentPageSize int
	ToastDuration  time.Duration

	Toast    *store.Toast
	ToastSeq uint64

	ActivityLog      []string
	ActivityLogDirty bool
	LogViewport      viewport.Model
	LogChannel       <-chan logging.LogEntry

	Changes     <-chan struct{}
	Unsubscribe func()

	requestSeq uint64
}

// New builds the initial model and subscribes to store changes.
func New(cfg Config) *Model {
	if cfg.ToastDuration <= 0 {
		cfg.ToastDuration = DefaultToastDuration
	}
	if cfg.IntentPageSize <= 0 {
		cfg.IntentPageSize = DefaultIntentPageSize
	}
	tr := cfg.Translator
	if tr == nil {
		tr = i18n.MustNew("en")
	}

	m := &Model{
		CurrentAppMode: ModeMain,
		DebugMode:      cfg.DebugMode,
		Store:          cfg.Store,
		T:              tr,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		Private:        NewServiceList(false, tr),
		Common:         NewServiceList(true, tr),
		ShowCommon:     cfg.ShowCommon,
		IntentPageSize: cfg.IntentPageSize,
		ToastDuration:  cfg.ToastDuration,
		LogViewport:    viewport.New(80, 20),
		LogChannel:     cfg.LogChannel,
	}
	if cfg.Store != nil {
		m.Changes, m.Unsubscribe = cfg.Store.Subscribe()
	}
	return m
}

// ActiveList is the list that receives keys.
func (m *Model) ActiveList() *ServiceList {
	return m.List(m.ShowCommon)
}

// List returns the private or the common list.
func (m *Model) List(isCommon bool) *ServiceList {
	if isCommon {
		return m.Common
	}
	return m.Private
}

// NextRequestID returns a fresh id for readiness checks and intent loads.
func (m *Model) NextRequestID() uint64 {
	m.requestSeq++
	return m.requestSeq
}

// SyncServices copies the store snapshot into both lists.
func (m *Model) SyncServices() {
	if m.Store == nil {
		return
	}
	m.Private.SetServices(m.Store.ListServices(false))
	m.Common.SetServices(m.Store.ListServices(true))
}

// SetToast shows t and returns the command that hides it again.
func (m *Model) SetToast(t store.Toast) tea.Cmd {
	m.ToastSeq++
	seq := m.ToastSeq
	m.Toast = &t
	return tea.Tick(m.ToastDuration, func(time.Time) tea.Msg {
		return ClearToastMsg{Seq: seq}
	})
}

// ClearToast hides the toast if seq is still the latest one.
func (m *Model) ClearToast(seq uint64) {
	if seq == m.ToastSeq {
		m.Toast = nil
	}
}

// AddRawLineToActivityLog appends a formatted log line, keeping at most
// MaxActivityLogLines.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}
