package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/catalog"
	"github.com/cleared-dev/ledgerlab/internal/config"
)

func newInitCommand(a *app) *cobra.Command {
	var company string
	var seed uint64

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a ledgerlab workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, company, seed); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized ledgerlab workspace at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "coffee", "company to practice with")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 seeds from the clock)")

	return cmd
}

func runInit(dir, company string, seed uint64) error {
	cat := catalog.Default()
	if _, err := cat.Company(company); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating directory logs: %w", err)
	}

	cfg := config.Default(company)
	cfg.Simulation.Seed = seed
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	chart, err := cat.Chart(company)
	if err != nil {
		return err
	}
	if err := chart.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	gitignore := "ledgerlab-save.json\nlogs/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}
