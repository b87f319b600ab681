package model

import (
	"fmt"
	"testing"

	"svcctl/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIntents() []api.Intent {
	return []api.Intent{
		{Intent: "parking_permit_apply", Description: "Apply for a parking permit"},
		{Intent: "billing_status", Description: "Check the billing status"},
		{Intent: "bill_payment_deadline", Description: "When is the bill due"},
		{Intent: "weather_today", Description: "Today's forecast"},
	}
}

func TestIntentDialog_BeforeLoad(t *testing.T) {
	d := NewIntentDialog(1, 0, "search")
	assert.False(t, d.Loaded)
	assert.False(t, d.Empty())
	assert.Equal(t, DefaultIntentPageSize, d.Paginator.PerPage)
	_, ok := d.Selected()
	assert.False(t, ok)
}

func TestIntentDialog_EmptyResult(t *testing.T) {
	d := NewIntentDialog(1, 8, "search")
	d.SetIntents(nil)
	assert.True(t, d.Empty())
	assert.Empty(t, d.PageItems())
}

func TestIntentDialog_AllRowsWithoutFilter(t *testing.T) {
	d := NewIntentDialog(1, 8, "search")
	d.SetIntents(testIntents())
	assert.Len(t, d.Visible(), 4)
	assert.Len(t, d.PageItems(), 4)
}

func TestIntentDialog_FilterIsCaseInsensitiveSubstring(t *testing.T) {
	d := NewIntentDialog(1, 8, "search")
	d.SetIntents(testIntents())

	d.Filter.SetValue("BIL")
	d.FilterChanged()
	var got []string
	for _, in := range d.Visible() {
		got = append(got, in.Intent)
	}
	assert.Equal(t, []string{"billing_status", "bill_payment_deadline"}, got)

	d.Filter.SetValue("forecast")
	d.FilterChanged()
	require.Len(t, d.Visible(), 1)
	assert.Equal(t, "weather_today", d.Visible()[0].Intent)
}

func TestIntentDialog_SortCycle(t *testing.T) {
	d := NewIntentDialog(1, 8, "search")
	d.SetIntents(testIntents())

	d.CycleSort()
	assert.Equal(t, IntentSortAsc, d.Sort)
	assert.Equal(t, "bill_payment_deadline", d.Visible()[0].Intent)

	d.CycleSort()
	assert.Equal(t, IntentSortDesc, d.Sort)
	assert.Equal(t, "weather_today", d.Visible()[0].Intent)

	d.CycleSort()
	assert.Equal(t, IntentSortNone, d.Sort)
	assert.Equal(t, "parking_permit_apply", d.Visible()[0].Intent)
}

func TestIntentDialog_Paging(t *testing.T) {
	var intents []api.Intent
	for i := 0; i < 10; i++ {
		intents = append(intents, api.Intent{Intent: fmt.Sprintf("intent_%02d", i)})
	}
	d := NewIntentDialog(1, 4, "search")
	d.SetIntents(intents)

	assert.Equal(t, 3, d.Paginator.TotalPages)
	assert.Len(t, d.PageItems(), 4)

	d.MoveCursor(2)
	d.NextPage()
	assert.Equal(t, 0, d.Cursor)
	sel, ok := d.Selected()
	require.True(t, ok)
	assert.Equal(t, "intent_04", sel.Intent)

	d.NextPage()
	d.NextPage()
	assert.Len(t, d.PageItems(), 2)

	d.MoveCursor(10)
	assert.Equal(t, 1, d.Cursor)

	// Filtering returns to the first page.
	d.Filter.SetValue("0")
	d.FilterChanged()
	assert.Equal(t, 0, d.Paginator.Page)

	d.PrevPage()
	assert.Equal(t, 0, d.Paginator.Page)
}

func TestIntentDialog_Confirm(t *testing.T) {
	d := NewIntentDialog(1, 8, "search")
	assert.False(t, d.Confirm())

	d.SetIntents(testIntents())
	d.MoveCursor(1)
	require.True(t, d.Confirm())
	assert.True(t, d.Confirming)
	assert.Equal(t, "billing_status", d.Chosen.Intent)

	d.CloseConfirmation()
	assert.False(t, d.Confirming)
	assert.Empty(t, d.Chosen.Intent)
}
