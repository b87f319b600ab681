package cmd

import (
	"fmt"

	"svcctl/internal/i18n"
	"svcctl/internal/store"
	"svcctl/internal/tui/controller"
	"svcctl/internal/tui/model"
	"svcctl/pkg/logging"

	"github.com/spf13/cobra"
)

func newConsoleCmd() *cobra.Command {
	var (
		showCommon bool
		demo       bool
	)

	c := &cobra.Command{
		Use:   "console",
		Short: "Open the interactive service console",
		Long: `Opens the terminal console. The services table lists private services
by default; press tab to switch to common services.

Keys: d delete, s change state, c check the intent connection, o/O sort,
R refresh, y copy the service id, L activity log, ? help, q quit.

With --demo the console runs against an in-memory backend seeded with
sample services, so no server is needed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("common") {
				cfg.UI.ShowCommon = showCommon
			}

			logChannel := logging.InitForTUI(logging.ParseLevel(cfg.LogLevel))
			defer logging.CloseTUIChannel()

			backend, err := newBackend(cfg, demo)
			if err != nil {
				return err
			}
			tr, err := i18n.New(cfg.UI.Locale)
			if err != nil {
				return fmt.Errorf("failed to load translations: %w", err)
			}

			s := store.New(backend, store.Options{Timeout: cfg.API.Timeout})
			defer s.Close()

			m := model.New(model.Config{
				Store:          s,
				Translator:     tr,
				LogChannel:     logChannel,
				IntentPageSize: cfg.UI.IntentPageSize,
				ToastDuration:  cfg.UI.ToastDuration,
				ShowCommon:     cfg.UI.ShowCommon,
				DebugMode:      cfg.LogLevel == "debug",
			})
			logging.Info("CLI", "Starting console against %s", describeBackend(cfg.API.BaseURL, demo))

			if _, err := controller.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("console failed: %w", err)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&showCommon, "common", false, "start on the common services list")
	c.Flags().BoolVar(&demo, "demo", false, "use an in-memory demo backend")
	return c
}

func describeBackend(baseURL string, demo bool) string {
	if demo {
		return "the demo backend"
	}
	return baseURL
}
