package config

import "time"

// SvcctlConfig is the top-level configuration structure for svcctl.
type SvcctlConfig struct {
	API        APIConfig        `yaml:"api"`
	UI         UIConfig         `yaml:"ui"`
	MockServer MockServerConfig `yaml:"mockServer"`
	LogLevel   string           `yaml:"logLevel,omitempty"`
}

// APIConfig controls how the console reaches the service backend.
type APIConfig struct {
	BaseURL  string        `yaml:"baseURL,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`  // Per-request deadline applied by the store
	RetryMax int           `yaml:"retryMax,omitempty"` // Retries for idempotent requests
}

// UIConfig holds console presentation settings.
type UIConfig struct {
	Locale         string        `yaml:"locale,omitempty"`
	IntentPageSize int           `yaml:"intentPageSize,omitempty"`
	ToastDuration  time.Duration `yaml:"toastDuration,omitempty"`
	ShowCommon     bool          `yaml:"showCommon,omitempty"` // Start on the common services tab
}

// MockServerConfig configures `svcctl mock-server`.
type MockServerConfig struct {
	Listen string `yaml:"listen,omitempty"`
	Seed   *bool  `yaml:"seed,omitempty"` // nil means "use default"
}

// SeedEnabled reports whether the mock backend starts with demo data.
func (m MockServerConfig) SeedEnabled() bool {
	return m.Seed == nil || *m.Seed
}
