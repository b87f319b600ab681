package cmd

import (
	"time"

	"svcctl/internal/api"
	"svcctl/internal/config"
	"svcctl/internal/mockapi"
)

// Demo backends are slow enough to show loading states and approve
// connection requests after a short while.
const (
	demoLatency     = 300 * time.Millisecond
	demoAutoApprove = 10 * time.Second
)

// newBackend returns the HTTP client for cfg, or a seeded in-memory
// backend when demo is set.
func newBackend(cfg config.SvcctlConfig, demo bool) (api.Backend, error) {
	if demo {
		b := mockapi.NewBackend(mockapi.Options{
			Latency:          demoLatency,
			AutoApproveAfter: demoAutoApprove,
		})
		mockapi.Seed(b)
		return b, nil
	}
	return api.NewClient(api.ClientOptions{
		BaseURL:  cfg.API.BaseURL,
		RetryMax: cfg.API.RetryMax,
	})
}
