package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerlab/internal/activitylog"
	"github.com/cleared-dev/ledgerlab/internal/buildinfo"
	"github.com/cleared-dev/ledgerlab/internal/catalog"
	"github.com/cleared-dev/ledgerlab/internal/config"
	"github.com/cleared-dev/ledgerlab/internal/logging"
	"github.com/cleared-dev/ledgerlab/internal/session"
	"github.com/cleared-dev/ledgerlab/internal/store"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "ledgerlab",
		Short:   "Double-entry bookkeeping practice simulator",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.FileName, "path to "+config.FileName)
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	rootCmd.AddCommand(
		newInitCommand(a),
		newCompaniesCommand(a),
		newChartCommand(a),
		newDayCommand(a),
		newPostCommand(a),
		newPlayCommand(a),
		newReportCommand(a),
		newResetCommand(a),
	)

	return rootCmd
}

// setup loads the config, falling back to defaults when the file is absent,
// and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = config.Default("")
	case err != nil:
		return err
	}
	a.cfg = cfg

	if a.verbose {
		a.log, err = logging.NewDevelopment()
	} else {
		a.log, err = logging.New(cfg.Logging.Level)
	}
	return err
}

// resolve makes p relative to the config file's directory.
func (a *app) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(a.configPath), p)
}

// openSession restores the saved game, or starts one for company (or the
// configured company) when there is no save.
func (a *app) openSession(company string) (*session.Session, error) {
	st := store.New(a.resolve(a.cfg.Storage.SavePath), store.WithLogger(a.log.Named("store")))
	s, err := session.New(a.cfg, catalog.Default(), st, a.log.Named("session"), nil,
		session.WithActivityLog(activitylog.New(a.resolve(a.cfg.ActivityLog.Path))),
	)
	if err != nil {
		return nil, err
	}

	found, err := s.Resume()
	if err != nil {
		return nil, fmt.Errorf("resuming saved game: %w", err)
	}
	if company == "" && !found {
		company = a.cfg.Simulation.Company
	}
	if company != "" {
		if cur, err := s.Company(); err != nil || cur.ID != company {
			if err := s.SelectCompany(company); err != nil {
				return nil, err
			}
		}
	}
	if _, err := s.Company(); err != nil {
		return nil, fmt.Errorf("%w: pass --company or set simulation.company in %s", err, config.FileName)
	}
	return s, nil
}

func resetSave(a *app) error {
	return store.New(a.resolve(a.cfg.Storage.SavePath)).Clear()
}
