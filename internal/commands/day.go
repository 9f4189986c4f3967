package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/output"
	"github.com/cleared-dev/ledgerlab/internal/session"
)

func newDayCommand(a *app) *cobra.Command {
	var company string
	var next bool

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show today's transactions, or finish the day with --next",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(company)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if next {
				if n := len(s.Pending()); n > 0 {
					fmt.Fprintf(out, "Skipping %d unrecorded transaction(s).\n", n)
				}
				earned, err := s.CompleteDay()
				if err != nil {
					return err
				}
				for _, ach := range earned {
					fmt.Fprintf(out, "Achievement unlocked: %s %s\n", ach.Icon, ach.Title)
				}
				if s.Over() {
					fmt.Fprintln(out, "Simulation complete.")
					return nil
				}
			}

			if _, err := s.GenerateDay(); err != nil {
				return err
			}
			return output.Transactions(out, s.Day(), s.Pending(), s.State().Settings.ShowHints)
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "start a new simulation with this company")
	cmd.Flags().BoolVar(&next, "next", false, "complete the current day and move to the next")

	return cmd
}

func newPostCommand(a *app) *cobra.Command {
	var description string
	var debits, credits []string

	cmd := &cobra.Command{
		Use:   "post [transaction-id]",
		Short: "Record a journal entry",
		Long: "Record a journal entry. With only a transaction id the suggested entry is posted;\n" +
			"otherwise lines are given as --debit CODE=AMOUNT and --credit CODE=AMOUNT.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession("")
			if err != nil {
				return err
			}

			var entry model.JournalEntry
			if len(args) > 0 && len(debits)+len(credits) == 0 {
				entry, err = s.Draft(args[0])
				if err != nil {
					return err
				}
			} else {
				entry.Description = description
				if len(args) > 0 {
					entry.TransactionID = args[0]
				}
				if entry.Lines, err = parseLines(debits, credits); err != nil {
					return err
				}
			}
			if description != "" {
				entry.Description = description
			}

			return submit(cmd, s, entry)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "entry description")
	cmd.Flags().StringArrayVar(&debits, "debit", nil, "debit line as CODE=AMOUNT (repeatable)")
	cmd.Flags().StringArrayVar(&credits, "credit", nil, "credit line as CODE=AMOUNT (repeatable)")

	return cmd
}

func submit(cmd *cobra.Command, s *session.Session, entry model.JournalEntry) error {
	out := cmd.OutOrStdout()
	res, err := s.Submit(entry)
	var verr *journal.ValidationError
	if errors.As(err, &verr) {
		if rerr := output.Rejection(out, verr); rerr != nil {
			return rerr
		}
		return err
	}
	if err != nil {
		return err
	}

	if err := output.Entry(out, res.Entry); err != nil {
		return err
	}
	for _, up := range res.LevelUps {
		fmt.Fprintf(out, "Level up! %s is now level %d\n", up.Skill, up.Level)
	}
	for _, ach := range res.Achievements {
		fmt.Fprintf(out, "Achievement unlocked: %s %s\n", ach.Icon, ach.Title)
	}
	return nil
}

func parseLines(debits, credits []string) ([]model.JournalLine, error) {
	var lines []model.JournalLine
	for _, d := range debits {
		code, amt, err := parseLine(d)
		if err != nil {
			return nil, err
		}
		lines = append(lines, model.DebitLine(code, amt))
	}
	for _, c := range credits {
		code, amt, err := parseLine(c)
		if err != nil {
			return nil, err
		}
		lines = append(lines, model.CreditLine(code, amt))
	}
	return lines, nil
}

func parseLine(s string) (string, decimal.Decimal, error) {
	code, amount, ok := strings.Cut(s, "=")
	if !ok {
		return "", decimal.Zero, fmt.Errorf("line %q: want CODE=AMOUNT", s)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("line %q: parsing amount: %w", s, err)
	}
	return strings.TrimSpace(code), d, nil
}
