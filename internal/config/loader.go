package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/svcctl"
	projectConfigDir = ".svcctl"
	configFileName   = "config.yaml"
)

// LoadConfig layers the default, user, project and (optional) explicit
// configuration files. A missing user or project file is not an error; a
// missing explicit file is.
func LoadConfig(explicitPath string) (SvcctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = overlayIfExists(config, userConfigPath); err != nil {
		return SvcctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = overlayIfExists(config, projectConfigPath); err != nil {
		return SvcctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if explicitPath != "" {
		explicit, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return SvcctlConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, explicit)
	}

	return config, nil
}

func overlayIfExists(base SvcctlConfig, path string) (SvcctlConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a SvcctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (SvcctlConfig, error) {
	var config SvcctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return SvcctlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return SvcctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// the overlay leave the base untouched.
func mergeConfigs(base, overlay SvcctlConfig) SvcctlConfig {
	merged := base

	if overlay.API.BaseURL != "" {
		merged.API.BaseURL = overlay.API.BaseURL
	}
	if overlay.API.Timeout > 0 {
		merged.API.Timeout = overlay.API.Timeout
	}
	if overlay.API.RetryMax > 0 {
		merged.API.RetryMax = overlay.API.RetryMax
	}

	if overlay.UI.Locale != "" {
		merged.UI.Locale = overlay.UI.Locale
	}
	if overlay.UI.IntentPageSize > 0 {
		merged.UI.IntentPageSize = overlay.UI.IntentPageSize
	}
	if overlay.UI.ToastDuration > 0 {
		merged.UI.ToastDuration = overlay.UI.ToastDuration
	}
	if overlay.UI.ShowCommon {
		merged.UI.ShowCommon = true
	}

	if overlay.MockServer.Listen != "" {
		merged.MockServer.Listen = overlay.MockServer.Listen
	}
	if overlay.MockServer.Seed != nil {
		merged.MockServer.Seed = overlay.MockServer.Seed
	}

	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
