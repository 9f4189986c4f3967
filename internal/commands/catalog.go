package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/catalog"
	"github.com/cleared-dev/ledgerlab/internal/output"
)

func newCompaniesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "companies",
		Short: "List the practice companies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.Companies(cmd.OutOrStdout(), catalog.Default().Companies())
		},
	}
}

func newChartCommand(a *app) *cobra.Command {
	var exportDir string

	cmd := &cobra.Command{
		Use:   "chart [company]",
		Short: "Show a company's chart of accounts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := a.cfg.Simulation.Company
			if len(args) > 0 {
				id = args[0]
			}
			if id == "" {
				return errors.New("no company given")
			}

			cat := catalog.Default()
			co, err := cat.Company(id)
			if err != nil {
				return err
			}
			chart, err := cat.Chart(id)
			if err != nil {
				return err
			}

			if exportDir != "" {
				if err := chart.Save(exportDir); err != nil {
					return fmt.Errorf("exporting chart: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s chart to %s\n", co.Name, exportDir)
				return nil
			}
			return output.Chart(cmd.OutOrStdout(), co.Name, chart)
		},
	}

	cmd.Flags().StringVar(&exportDir, "export", "", "write the chart as CSV into this directory")

	return cmd
}
