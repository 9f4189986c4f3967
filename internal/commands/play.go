package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/session"
)

func newPlayCommand(a *app) *cobra.Command {
	var company string
	var days int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Journalize days automatically using the suggested entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(company)
			if err != nil {
				return err
			}
			return autoplay(cmd, s, days)
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "start a new simulation with this company")
	cmd.Flags().IntVar(&days, "days", 1, "number of days to play")

	return cmd
}

func autoplay(cmd *cobra.Command, s *session.Session, days int) error {
	out := cmd.OutOrStdout()
	for range days {
		day := s.Day()
		if _, err := s.GenerateDay(); err != nil {
			if errors.Is(err, session.ErrSimulationOver) {
				fmt.Fprintln(out, "Simulation complete.")
				return nil
			}
			return err
		}

		posted := 0
		for _, tx := range s.Pending() {
			draft, err := s.Draft(tx.ID)
			if err != nil {
				return err
			}
			res, err := s.Submit(draft)
			if err != nil {
				return fmt.Errorf("day %d, %s: %w", day, tx.ID, err)
			}
			posted++
			for _, ach := range res.Achievements {
				fmt.Fprintf(out, "Achievement unlocked: %s %s\n", ach.Icon, ach.Title)
			}
		}

		earned, err := s.CompleteDay()
		if err != nil {
			return err
		}
		for _, ach := range earned {
			fmt.Fprintf(out, "Achievement unlocked: %s %s\n", ach.Icon, ach.Title)
		}
		fmt.Fprintf(out, "Day %d: posted %d entr%s\n", day, posted, plural(posted))

		if s.Over() {
			fmt.Fprintln(out, "Simulation complete.")
			return nil
		}
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
