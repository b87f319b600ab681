package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"svcctl/internal/mockapi"
	"svcctl/pkg/logging"

	"github.com/spf13/cobra"
)

func newMockServerCmd() *cobra.Command {
	var (
		listen      string
		noSeed      bool
		autoApprove bool
	)

	c := &cobra.Command{
		Use:   "mock-server",
		Short: "Serve an in-memory service backend over HTTP",
		Long: `Starts an HTTP server implementing the service backend API with an
in-memory store. It is meant for local development of the console:

  svcctl mock-server &
  svcctl console --api-url http://127.0.0.1:8089`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logging.InitForCLI(logging.ParseLevel(cfg.LogLevel), os.Stderr)

			if listen == "" {
				listen = cfg.MockServer.Listen
			}
			opts := mockapi.Options{}
			if autoApprove {
				opts.AutoApproveAfter = demoAutoApprove
			}
			backend := mockapi.NewBackend(opts)
			if cfg.MockServer.SeedEnabled() && !noSeed {
				mockapi.Seed(backend)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return mockapi.NewServer(backend).ListenAndServe(ctx, listen)
		},
	}

	c.Flags().StringVar(&listen, "listen", "", "listen address (overrides mockServer.listen)")
	c.Flags().BoolVar(&noSeed, "no-seed", false, "start without demo data")
	c.Flags().BoolVar(&autoApprove, "auto-approve", true, "approve connection requests after a delay")
	return c
}
