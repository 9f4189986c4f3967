// Package session drives one learner's simulation: it owns the active
// company, the day counter, the engines and the persisted GameState.
package session

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerlab/internal/activitylog"
	"github.com/cleared-dev/ledgerlab/internal/catalog"
	"github.com/cleared-dev/ledgerlab/internal/config"
	"github.com/cleared-dev/ledgerlab/internal/generator"
	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/progress"
)

var (
	// ErrNoCompany is returned by operations that need a selected company.
	ErrNoCompany = errors.New("no company selected")
	// ErrSimulationOver is returned once every simulated day is complete.
	ErrSimulationOver = errors.New("simulation period is over")
	// ErrUnknownTransaction is returned for a transaction id not generated in this session.
	ErrUnknownTransaction = errors.New("unknown transaction")
)

// Store persists the game state.
type Store interface {
	Save(state model.GameState) (model.GameState, error)
	Load() (model.GameState, error)
}

// Session is not safe for concurrent use.
type Session struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	store    Store
	log      *zap.Logger
	activity *activitylog.Log
	gen      *generator.Generator
	now      func() time.Time

	state     model.GameState
	books     *books
	tracker   *progress.Tracker
	generated map[int]bool
	mark      time.Time
}

// books are the per-company engines, rebuilt whenever the company changes.
type books struct {
	company catalog.Company
	chart   *catalog.Chart
	ledger  *ledger.Ledger
	journal *journal.Journal
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithActivityLog records session actions to l.
func WithActivityLog(l *activitylog.Log) Option {
	return func(s *Session) { s.activity = l }
}

// New creates a session with no company selected. A nil rng seeds one from
// cfg.Simulation.Seed.
func New(cfg *config.Config, cat *catalog.Catalog, store Store, log *zap.Logger, rng generator.Rand, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start, err := cfg.Start()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	if rng == nil {
		rng = generator.NewRand(cfg.Simulation.Seed)
	}

	s := &Session{
		cfg:     cfg,
		catalog: cat,
		store:   store,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.gen = generator.New(cat, rng, start, generator.WithLogger(log.Named("generator")))
	s.reset(model.DefaultGameState())
	return s, nil
}

func (s *Session) reset(state model.GameState) {
	s.state = state
	s.state.Settings.AutoSave = s.state.Settings.AutoSave && s.cfg.Storage.AutoSave
	s.tracker = progress.New(&s.state.Progress, progress.WithLogger(s.log.Named("progress")))
	s.generated = make(map[int]bool)
	for _, day := range s.state.GeneratedDays {
		s.generated[day] = true
	}
	for _, tx := range s.state.Transactions {
		if !tx.Scenario {
			s.generated[tx.Day] = true
		}
	}
	s.mark = s.now()
}

func (s *Session) openBooks(companyID string) (*books, error) {
	co, err := s.catalog.Company(companyID)
	if err != nil {
		return nil, err
	}
	chart, err := s.catalog.Chart(companyID)
	if err != nil {
		return nil, err
	}
	l := ledger.New(chart.All())
	j := journal.New(chart, l,
		journal.WithClock(s.now),
		journal.WithLogger(s.log.Named("journal").With(zap.String("company", companyID))),
	)
	return &books{company: co, chart: chart, ledger: l, journal: j}, nil
}

// SelectCompany starts a fresh simulation for companyID, discarding any
// progress in the current one.
func (s *Session) SelectCompany(companyID string) error {
	b, err := s.openBooks(companyID)
	if err != nil {
		return fmt.Errorf("selecting company: %w", err)
	}

	state := model.DefaultGameState()
	state.SessionID = newSessionID()
	state.SelectedCompany = companyID
	s.books = b
	s.reset(state)

	s.log.Info("company selected", zap.String("company", companyID), zap.String("session", state.SessionID))
	s.record(activitylog.ActionSelectCompany, b.company.Name, "")
	s.autoSave()
	return nil
}

func newSessionID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// Company returns the selected company.
func (s *Session) Company() (catalog.Company, error) {
	if s.books == nil {
		return catalog.Company{}, ErrNoCompany
	}
	return s.books.company, nil
}

// Chart returns the selected company's chart of accounts.
func (s *Session) Chart() (*catalog.Chart, error) {
	if s.books == nil {
		return nil, ErrNoCompany
	}
	return s.books.chart, nil
}

// Ledger returns the selected company's ledger.
func (s *Session) Ledger() (*ledger.Ledger, error) {
	if s.books == nil {
		return nil, ErrNoCompany
	}
	return s.books.ledger, nil
}

// Progress returns the learner's progress tracker.
func (s *Session) Progress() *progress.Tracker {
	return s.tracker
}

// Day returns the current simulated day.
func (s *Session) Day() int {
	return s.state.CurrentDay
}

// Over reports whether every simulated day has been completed.
func (s *Session) Over() bool {
	return s.state.CompletedDays >= s.cfg.Simulation.PeriodDays
}

// GenerateDay returns the current day's transactions, generating them the
// first time the day is requested.
func (s *Session) GenerateDay() ([]model.Transaction, error) {
	if s.books == nil {
		return nil, ErrNoCompany
	}
	if s.Over() {
		return nil, ErrSimulationOver
	}
	day := s.state.CurrentDay
	if s.generated[day] {
		return s.TransactionsForDay(day), nil
	}

	txs := s.gen.GenerateDailyTransactions(s.books.company.ID, day)
	s.state.Transactions = append(s.state.Transactions, txs...)
	s.generated[day] = true
	s.state.GeneratedDays = append(s.state.GeneratedDays, day)
	s.log.Info("day generated", zap.Int("day", day), zap.Int("transactions", len(txs)))
	s.record(activitylog.ActionGenerateDay, fmt.Sprintf("%d transactions", len(txs)), "")
	s.autoSave()
	return slices.Clone(txs), nil
}

// GenerateScenario adds an on-demand practice transaction for the current day.
func (s *Session) GenerateScenario(opt generator.ScenarioOption) (model.Transaction, error) {
	if s.books == nil {
		return model.Transaction{}, ErrNoCompany
	}
	opt.Day = s.state.CurrentDay
	tx, err := s.gen.GenerateScenario(s.books.company.ID, opt)
	if err != nil {
		return model.Transaction{}, err
	}
	s.state.Transactions = append(s.state.Transactions, tx)
	return tx, nil
}

// TransactionsForDay returns the transactions generated for day.
func (s *Session) TransactionsForDay(day int) []model.Transaction {
	var out []model.Transaction
	for _, tx := range s.state.Transactions {
		if tx.Day == day {
			out = append(out, tx)
		}
	}
	return out
}

// Transaction looks up a generated transaction by id.
func (s *Session) Transaction(txID string) (model.Transaction, error) {
	for _, tx := range s.state.Transactions {
		if tx.ID == txID {
			return tx, nil
		}
	}
	return model.Transaction{}, fmt.Errorf("%w: %s", ErrUnknownTransaction, txID)
}

// Draft returns a suggested entry for a generated transaction.
func (s *Session) Draft(txID string) (model.JournalEntry, error) {
	if s.books == nil {
		return model.JournalEntry{}, ErrNoCompany
	}
	tx, err := s.Transaction(txID)
	if err != nil {
		return model.JournalEntry{}, err
	}
	return journal.NewDraft(tx, s.books.chart), nil
}

// Pending returns the current day's transactions not yet journalized.
func (s *Session) Pending() []model.Transaction {
	var out []model.Transaction
	for _, tx := range s.TransactionsForDay(s.state.CurrentDay) {
		if !s.journalized(tx.ID) {
			out = append(out, tx)
		}
	}
	return out
}

func (s *Session) journalized(txID string) bool {
	return slices.ContainsFunc(s.state.JournalEntries, func(e model.JournalEntry) bool {
		return e.TransactionID == txID
	})
}

// Validate checks entry against the selected chart without posting it.
func (s *Session) Validate(entry model.JournalEntry) (journal.ValidationResult, error) {
	if s.books == nil {
		return journal.ValidationResult{}, ErrNoCompany
	}
	return s.books.journal.Validate(entry), nil
}
