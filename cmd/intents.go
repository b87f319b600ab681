package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"svcctl/internal/api"
	"svcctl/pkg/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newIntentsCmd() *cobra.Command {
	var demo bool

	c := &cobra.Command{
		Use:   "intents",
		Short: "List intents services can connect to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logging.InitForCLI(logging.ParseLevel(cfg.LogLevel), os.Stderr)

			backend, err := newBackend(cfg, demo)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.API.Timeout)
			defer cancel()

			intents, err := backend.ListAvailableIntents(ctx)
			if err != nil {
				return fmt.Errorf("failed to list intents: %w", err)
			}
			return printIntents(cmd.OutOrStdout(), intents)
		},
	}

	c.Flags().BoolVar(&demo, "demo", false, "use an in-memory demo backend")
	return c
}

func printIntents(w io.Writer, intents []api.Intent) error {
	if len(intents) == 0 {
		_, err := fmt.Fprintln(w, "No intents available")
		return err
	}

	rows := make([][]string, 0, len(intents))
	for _, in := range intents {
		rows = append(rows, []string{in.Intent, in.Description})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("INTENT", "DESCRIPTION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true)
			}
			return s
		})
	_, err := fmt.Fprintln(w, t.String())
	return err
}
