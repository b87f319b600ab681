package model

import (
	"sort"

	"svcctl/internal/api"
	"svcctl/internal/i18n"
	"svcctl/internal/tui/design"

	"github.com/charmbracelet/bubbles/table"
)

// SortColumn is the service table column rows are ordered by.
type SortColumn int

const (
	SortNone SortColumn = iota // backend order
	SortByName
	SortByState
	SortByIntent
)

// Next cycles through the sortable columns.
func (c SortColumn) Next() SortColumn {
	return (c + 1) % 4
}

// ServiceList is one services table, either private or common services,
// together with its modal slot.
type ServiceList struct {
	IsCommon bool
	Services []api.Service
	Table    table.Model

	SortColumn SortColumn
	SortDesc   bool

	Modal       Modal
	ButtonFocus int
	// Target is the service the open modal acts on.
	Target string

	tr *i18n.Translator
}

// NewServiceList creates an empty list.
func NewServiceList(isCommon bool, tr *i18n.Translator) *ServiceList {
	l := &ServiceList{IsCommon: isCommon, tr: tr}
	l.Table = table.New(
		table.WithColumns(l.columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
		table.WithStyles(design.TableStyles()),
	)
	return l
}

func (l *ServiceList) columns(width int) []table.Column {
	// name, description, state, intent
	usable := width - 8
	if usable < 40 {
		usable = 40
	}
	state := 10
	name := usable / 4
	intent := usable / 4
	desc := usable - name - intent - state
	return []table.Column{
		{Title: l.tr.T("overview.name"), Width: name},
		{Title: l.tr.T("overview.description"), Width: desc},
		{Title: l.tr.T("overview.state"), Width: state},
		{Title: l.tr.T("overview.intent"), Width: intent},
	}
}

// SetSize fits the table into width x height cells.
func (l *ServiceList) SetSize(width, height int) {
	l.Table.SetColumns(l.columns(width))
	l.Table.SetWidth(width)
	if height < 3 {
		height = 3
	}
	l.Table.SetHeight(height)
}

// SetServices replaces the rows, keeping the cursor on the same service
// when it still exists.
func (l *ServiceList) SetServices(services []api.Service) {
	current, hadCurrent := l.SelectedService()

	l.Services = make([]api.Service, len(services))
	copy(l.Services, services)
	l.applySort()

	cursor := 0
	if hadCurrent {
		for i, svc := range l.Services {
			if svc.ID == current.ID {
				cursor = i
				break
			}
		}
	}
	l.Table.SetCursor(cursor)
}

func (l *ServiceList) applySort() {
	less := func(a, b api.Service) bool {
		switch l.SortColumn {
		case SortByName:
			return a.Name < b.Name
		case SortByState:
			return a.State < b.State
		case SortByIntent:
			return a.Intent < b.Intent
		}
		return false
	}
	if l.SortColumn != SortNone {
		sort.SliceStable(l.Services, func(i, j int) bool {
			if l.SortDesc {
				return less(l.Services[j], l.Services[i])
			}
			return less(l.Services[i], l.Services[j])
		})
	}

	rows := make([]table.Row, 0, len(l.Services))
	for _, svc := range l.Services {
		rows = append(rows, table.Row{
			svc.Name,
			svc.Description,
			l.tr.T("overview.state." + string(svc.State)),
			svc.Intent,
		})
	}
	l.Table.SetRows(rows)
}

// CycleSort moves to the next sort column.
func (l *ServiceList) CycleSort() {
	l.SortColumn = l.SortColumn.Next()
	l.SetServices(l.Services)
}

// ReverseSort flips the sort direction.
func (l *ServiceList) ReverseSort() {
	l.SortDesc = !l.SortDesc
	l.SetServices(l.Services)
}

// SelectedService returns the service under the cursor.
func (l *ServiceList) SelectedService() (api.Service, bool) {
	i := l.Table.Cursor()
	if i < 0 || i >= len(l.Services) {
		return api.Service{}, false
	}
	return l.Services[i], true
}

// OpenModal replaces whatever modal is open.
func (l *ServiceList) OpenModal(m Modal) {
	l.Modal = m
	l.ButtonFocus = 0
}

// CloseModal closes the open modal.
func (l *ServiceList) CloseModal() {
	l.Modal = nil
	l.ButtonFocus = 0
}

// CloseModalIf closes the modal when it is one of kinds and targets the
// service target.
func (l *ServiceList) CloseModalIf(target string, kinds ...ModalKind) bool {
	if l.Target != target {
		return false
	}
	current := KindOf(l.Modal)
	for _, k := range kinds {
		if k == current && current != ModalNone {
			l.CloseModal()
			return true
		}
	}
	return false
}

// Readiness returns the open readiness modal, if any.
func (l *ServiceList) Readiness() (ReadinessCheck, bool) {
	r, ok := l.Modal.(ReadinessCheck)
	return r, ok
}

// Dialog returns the open intent dialog, if any.
func (l *ServiceList) Dialog() (*IntentDialog, bool) {
	ic, ok := l.Modal.(IntentConnect)
	if !ok || ic.Dialog == nil {
		return nil, false
	}
	return ic.Dialog, true
}

// MoveButtonFocus moves the focus over the enabled buttons, wrapping around.
func (l *ServiceList) MoveButtonFocus(delta int) {
	buttons := Buttons(l.Modal)
	n := len(buttons)
	if n == 0 {
		return
	}
	for i := 0; i < n; i++ {
		l.ButtonFocus = ((l.ButtonFocus+delta)%n + n) % n
		if buttons[l.ButtonFocus].Enabled {
			return
		}
	}
}

// FocusedButton returns the focused button of the open modal.
func (l *ServiceList) FocusedButton() (Button, bool) {
	buttons := Buttons(l.Modal)
	if l.ButtonFocus < 0 || l.ButtonFocus >= len(buttons) {
		return Button{}, false
	}
	return buttons[l.ButtonFocus], true
}
