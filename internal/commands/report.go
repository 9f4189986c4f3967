package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/output"
)

var reportKinds = []string{"trial", "income", "balance", "cashflow", "ledger", "journal", "progress"}

func newReportCommand(a *app) *cobra.Command {
	var account, search string

	cmd := &cobra.Command{
		Use:       "report <trial|income|balance|cashflow|ledger|journal|progress>",
		Short:     "Print a report for the current simulation",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: reportKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession("")
			if err != nil {
				return err
			}
			co, err := s.Company()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch args[0] {
			case "trial":
				rows, err := s.TrialBalance()
				if err != nil {
					return err
				}
				return output.TrialBalance(out, co.Name, rows)
			case "income":
				is, err := s.IncomeStatement()
				if err != nil {
					return err
				}
				return output.IncomeStatement(out, co.Name, is)
			case "balance":
				bs, err := s.BalanceSheet()
				if err != nil {
					return err
				}
				return output.BalanceSheet(out, co.Name, bs)
			case "cashflow":
				cf, err := s.CashFlow()
				if err != nil {
					return err
				}
				return output.CashFlow(out, co.Name, cf)
			case "ledger":
				l, err := s.Ledger()
				if err != nil {
					return err
				}
				return output.Ledger(out, co.Name, l.Filter(account, search))
			case "journal":
				entries, err := s.Entries()
				if err != nil {
					return err
				}
				return journal.WriteEntries(out, entries)
			case "progress":
				return output.Progress(out, s.Progress().Report(), s.State().Progress.AccuracyRate)
			}
			return fmt.Errorf("unknown report %q", args[0])
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "ledger: only this account code")
	cmd.Flags().StringVar(&search, "search", "", "ledger: filter by name, code or line description")

	return cmd
}

func newResetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := resetSave(a); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved game cleared.")
			return nil
		},
	}
}
