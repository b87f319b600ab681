package config

import "time"

const (
	DefaultBaseURL        = "http://127.0.0.1:8089"
	DefaultTimeout        = 10 * time.Second
	DefaultRetryMax       = 2
	DefaultLocale         = "en"
	DefaultIntentPageSize = 8
	DefaultToastDuration  = 3 * time.Second
	DefaultMockListen     = "127.0.0.1:8089"
)

// GetDefaultConfig returns the configuration used when no file overrides it.
func GetDefaultConfig() SvcctlConfig {
	return SvcctlConfig{
		API: APIConfig{
			BaseURL:  DefaultBaseURL,
			Timeout:  DefaultTimeout,
			RetryMax: DefaultRetryMax,
		},
		UI: UIConfig{
			Locale:         DefaultLocale,
			IntentPageSize: DefaultIntentPageSize,
			ToastDuration:  DefaultToastDuration,
		},
		MockServer: MockServerConfig{
			Listen: DefaultMockListen,
		},
		LogLevel: "info",
	}
}
