package mockapi

import "svcctl/internal/api"

// Seed fills b with a small demo dataset covering every lifecycle state and
// both service kinds.
func Seed(b *Backend) {
	for _, svc := range []api.Service{
		{ID: "svc-billing", Name: "Billing lookup", Description: "Invoice status by reference number", State: api.StateActive, Intent: "billing_status"},
		{ID: "svc-permits", Name: "Parking permits", Description: "Issue and renew parking permits", State: api.StateInactive},
		{ID: "svc-holidays", Name: "Public holidays", Description: "National holiday calendar", State: api.StateDraft},
		{ID: "svc-weather", Name: "Weather", Description: "Forecast for a city", IsCommon: true, State: api.StateActive},
		{ID: "svc-time", Name: "Current time", Description: "Time in a given timezone", IsCommon: true, State: api.StateInactive},
		{ID: "svc-rates", Name: "Exchange rates", Description: "Daily reference rates", IsCommon: true, State: api.StateDraft},
	} {
		b.AddService(svc)
	}

	b.SetIntents([]api.Intent{
		{Intent: "billing_status", Description: "Ask about an invoice"},
		{Intent: "bill_payment_deadline", Description: "When is my bill due"},
		{Intent: "parking_permit_apply", Description: "Apply for a parking permit"},
		{Intent: "parking_permit_renew", Description: "Renew a parking permit"},
		{Intent: "holiday_next", Description: "Next public holiday"},
		{Intent: "weather_today", Description: "Weather today"},
		{Intent: "weather_tomorrow", Description: "Weather tomorrow"},
		{Intent: "exchange_rate", Description: "Currency exchange rate"},
		{Intent: "greeting", Description: "Small talk greeting"},
		{Intent: "contact_support", Description: "Talk to a human"},
	})
}
