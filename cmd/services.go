package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"svcctl/internal/api"
	"svcctl/internal/tui/design"
	"svcctl/pkg/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newServicesCmd() *cobra.Command {
	var (
		common bool
		demo   bool
	)

	c := &cobra.Command{
		Use:   "services",
		Short: "List services",
		Long:  `Lists the private services, or the common services with --common.`,
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

			services, err := backend.ListServices(ctx)
			if err != nil {
				return fmt.Errorf("failed to list services: %w", err)
			}
			return printServices(cmd.OutOrStdout(), services, common)
		},
	}

	c.Flags().BoolVar(&common, "common", false, "list common services")
	c.Flags().BoolVar(&demo, "demo", false, "use an in-memory demo backend")
	return c
}

func printServices(w io.Writer, services []api.Service, common bool) error {
	var rows [][]string
	for _, svc := range services {
		if svc.IsCommon != common {
			continue
		}
		rows = append(rows, []string{svc.ID, svc.Name, string(svc.State), svc.Intent})
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No services")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "STATE", "INTENT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Bold(true)
			}
			if col == 2 {
				return design.GetStateStyle(api.ServiceState(rows[row][2])).Padding(0, 1)
			}
			return s
		})
	_, err := fmt.Fprintln(w, t.String())
	return err
}
