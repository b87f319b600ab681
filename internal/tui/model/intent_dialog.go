package model

import (
	"sort"
	"strings"

	"svcctl/internal/api"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// DefaultIntentPageSize is used when the configured page size is not positive.
const DefaultIntentPageSize = 8

// IntentSort is the ordering applied to the intent column.
type IntentSort int

const (
	IntentSortNone IntentSort = iota
	IntentSortAsc
	IntentSortDesc
)

// Next cycles none, ascending, descending.
func (s IntentSort) Next() IntentSort {
	return (s + 1) % 3
}

// IntentDialog is the state of the intent picker. Intents are fetched once
// per dialog; filtering, sorting and paging happen locally.
type IntentDialog struct {
	LoadID  uint64
	Loaded  bool
	Intents []api.Intent

	Filter    textinput.Model
	Sort      IntentSort
	Paginator paginator.Model
	Spinner   spinner.Model

	// Cursor indexes the current page.
	Cursor int

	Confirming   bool
	Chosen       api.Intent
	ConfirmFocus int // 0 yes, 1 no
}

// NewIntentDialog creates a dialog waiting for load loadID.
func NewIntentDialog(loadID uint64, pageSize int, placeholder string) *IntentDialog {
	if pageSize <= 0 {
		pageSize = DefaultIntentPageSize
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Prompt = "/ "

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = pageSize
	p.SetTotalPages(0)

	s := spinner.New()
	s.Spinner = spinner.Dot

	return &IntentDialog{
		LoadID:    loadID,
		Filter:    ti,
		Paginator: p,
		Spinner:   s,
	}
}

// SetIntents stores the load result and resets paging.
func (d *IntentDialog) SetIntents(intents []api.Intent) {
	d.Intents = intents
	d.Loaded = true
	d.resetPage()
}

// Empty reports a finished load that returned nothing.
func (d *IntentDialog) Empty() bool {
	return d.Loaded && len(d.Intents) == 0
}

// Visible returns the intents matching the filter, in the current sort
// order. Matching is a case-insensitive substring test over the intent id
// and its description.
func (d *IntentDialog) Visible() []api.Intent {
	query := strings.ToLower(strings.TrimSpace(d.Filter.Value()))

	out := make([]api.Intent, 0, len(d.Intents))
	for _, in := range d.Intents {
		if query == "" ||
			strings.Contains(strings.ToLower(in.Intent), query) ||
			strings.Contains(strings.ToLower(in.Description), query) {
			out = append(out, in)
		}
	}

	switch d.Sort {
	case IntentSortAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Intent < out[j].Intent })
	case IntentSortDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Intent > out[j].Intent })
	}
	return out
}

// PageItems returns the visible intents on the current page.
func (d *IntentDialog) PageItems() []api.Intent {
	visible := d.Visible()
	start, end := d.Paginator.GetSliceBounds(len(visible))
	return visible[start:end]
}

// Selected returns the intent under the cursor.
func (d *IntentDialog) Selected() (api.Intent, bool) {
	items := d.PageItems()
	if d.Cursor < 0 || d.Cursor >= len(items) {
		return api.Intent{}, false
	}
	return items[d.Cursor], true
}

// MoveCursor moves within the current page, clamping at its ends.
func (d *IntentDialog) MoveCursor(delta int) {
	n := len(d.PageItems())
	d.Cursor += delta
	if d.Cursor >= n {
		d.Cursor = n - 1
	}
	if d.Cursor < 0 {
		d.Cursor = 0
	}
}

// NextPage moves to the following page, if any.
func (d *IntentDialog) NextPage() {
	d.Paginator.NextPage()
	d.Cursor = 0
}

// PrevPage moves to the previous page, if any.
func (d *IntentDialog) PrevPage() {
	d.Paginator.PrevPage()
	d.Cursor = 0
}

// CycleSort advances the sort order and returns to the first page.
func (d *IntentDialog) CycleSort() {
	d.Sort = d.Sort.Next()
	d.resetPage()
}

// FilterChanged must be called after the filter input changed.
func (d *IntentDialog) FilterChanged() {
	d.resetPage()
}

// Confirm opens the yes/no confirmation for the intent under the cursor.
func (d *IntentDialog) Confirm() bool {
	in, ok := d.Selected()
	if !ok {
		return false
	}
	d.Chosen = in
	d.Confirming = true
	d.ConfirmFocus = 0
	return true
}

// CloseConfirmation dismisses the yes/no confirmation.
func (d *IntentDialog) CloseConfirmation() {
	d.Confirming = false
	d.Chosen = api.Intent{}
}

func (d *IntentDialog) resetPage() {
	d.Paginator.SetTotalPages(len(d.Visible()))
	d.Paginator.Page = 0
	d.Cursor = 0
}
