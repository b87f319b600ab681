package cmd

import (
	"os"

	"svcctl/internal/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	apiURL    string
	debugMode bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "svcctl",
	Short: "Manage services and their intent connections",
	Long: `svcctl is a terminal console for a service backend. It lists private
and common services, drives their lifecycle (activate, deactivate, set ready,
set to draft, delete) and connects services to intents.

Run 'svcctl console' for the interactive UI, or 'svcctl mock-server' to serve
an in-memory backend for local development.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, failed requests)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "svcctl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default layers ~/.config/svcctl/config.yaml and ./.svcctl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "base URL of the service backend (overrides api.baseURL)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newConsoleCmd())
	rootCmd.AddCommand(newServicesCmd())
	rootCmd.AddCommand(newIntentsCmd())
	rootCmd.AddCommand(newMockServerCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

// loadConfig layers the config files and applies the persistent flags.
func loadConfig() (config.SvcctlConfig, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return cfg, err
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if debugMode {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}
