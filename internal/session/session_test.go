package session

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerlab/internal/activitylog"
	"github.com/cleared-dev/ledgerlab/internal/catalog"
	"github.com/cleared-dev/ledgerlab/internal/config"
	"github.com/cleared-dev/ledgerlab/internal/generator"
	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/ledger"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/progress"
	"github.com/cleared-dev/ledgerlab/internal/store"
)

var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func stepClock() func() time.Time {
	t := base
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default("")
	cfg.Simulation.Seed = 42
	cfg.Storage.SavePath = filepath.Join(dir, "save.json")
	cfg.ActivityLog.Path = filepath.Join(dir, "logs", "activity-log.csv")
	return cfg
}

func newSession(t *testing.T, cfg *config.Config) *Session {
	t.Helper()
	s, err := New(cfg, catalog.Default(), store.New(cfg.Storage.SavePath), zap.NewNop(),
		generator.NewRand(cfg.Simulation.Seed),
		WithClock(stepClock()),
		WithActivityLog(activitylog.New(cfg.ActivityLog.Path)),
	)
	require.NoError(t, err)
	return s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// playDay journalizes every pending transaction with its suggested draft.
func playDay(t *testing.T, s *Session) []SubmitResult {
	t.Helper()
	_, err := s.GenerateDay()
	require.NoError(t, err)
	var out []SubmitResult
	for _, tx := range s.Pending() {
		draft, err := s.Draft(tx.ID)
		require.NoError(t, err)
		res, err := s.Submit(draft)
		require.NoError(t, err, tx.Type)
		out = append(out, res)
	}
	return out
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default("")
	cfg.Simulation.PeriodStart = "soon"
	_, err := New(cfg, catalog.Default(), store.New(filepath.Join(t.TempDir(), "s.json")), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "period_start")
}

func TestNoCompany(t *testing.T) {
	s := newSession(t, testConfig(t))

	_, err := s.GenerateDay()
	assert.ErrorIs(t, err, ErrNoCompany)
	_, err = s.Submit(model.JournalEntry{})
	assert.ErrorIs(t, err, ErrNoCompany)
	_, err = s.CompleteDay()
	assert.ErrorIs(t, err, ErrNoCompany)
	_, err = s.TrialBalance()
	assert.ErrorIs(t, err, ErrNoCompany)
	_, err = s.IncomeStatement()
	assert.ErrorIs(t, err, ErrNoCompany)
	_, err = s.BalanceSheet()
	assert.ErrorIs(t, err, ErrNoCompany)
	_, err = s.CashFlow()
	assert.ErrorIs(t, err, ErrNoCompany)
	_, err = s.Company()
	assert.ErrorIs(t, err, ErrNoCompany)
	_, err = s.Validate(model.JournalEntry{})
	assert.ErrorIs(t, err, ErrNoCompany)
}

func TestSelectCompany_Unknown(t *testing.T) {
	s := newSession(t, testConfig(t))
	err := s.SelectCompany("bakery")
	assert.ErrorIs(t, err, catalog.ErrUnknownCompany)
	_, err = s.Company()
	assert.ErrorIs(t, err, ErrNoCompany)
}

func TestSelectCompany_FreshState(t *testing.T) {
	s := newSession(t, testConfig(t))
	require.NoError(t, s.SelectCompany("coffee"))

	st := s.State()
	assert.Equal(t, "coffee", st.SelectedCompany)
	assert.Len(t, st.SessionID, 36)
	assert.Equal(t, 1, st.CurrentDay)
	assert.Len(t, st.Progress.Skills, len(progress.Skills))

	co, err := s.Company()
	require.NoError(t, err)
	assert.Equal(t, "Campus Coffee Shop", co.Name)
}

func TestGenerateDay_Idempotent(t *testing.T) {
	s := newSession(t, testConfig(t))
	require.NoError(t, s.SelectCompany("coffee"))

	txs, err := s.GenerateDay()
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "cash_sale", txs[0].Type)
	assert.Equal(t, "expense_payment", txs[1].Type)

	again, err := s.GenerateDay()
	require.NoError(t, err)
	assert.Equal(t, txs, again)
	assert.Len(t, s.State().Transactions, 2)
}

func TestGenerateDay_Deterministic(t *testing.T) {
	cfg := testConfig(t)
	a, b := newSession(t, cfg), newSession(t, cfg)
	require.NoError(t, a.SelectCompany("tutoring"))
	require.NoError(t, b.SelectCompany("tutoring"))

	ta, err := a.GenerateDay()
	require.NoError(t, err)
	tb, err := b.GenerateDay()
	require.NoError(t, err)
	assert.Equal(t, ta, tb)
}

func TestSubmit_PostsAndAwards(t *testing.T) {
	s := newSession(t, testConfig(t))
	require.NoError(t, s.SelectCompany("coffee"))

	results := playDay(t, s)
	require.Len(t, results, 2)
	assert.Equal(t, "JE001", results[0].Entry.ID)
	assert.Equal(t, "JE002", results[1].Entry.ID)
	assert.Equal(t, model.StatusPosted, results[0].Entry.Status)

	var earned []string
	for _, a := range results[0].Achievements {
		earned = append(earned, a.ID)
	}
	assert.Equal(t, []string{"first-entry", "balanced-books", "accuracy-master"}, earned)
	assert.Empty(t, results[1].Achievements)

	st := s.State()
	assert.Len(t, st.JournalEntries, 2)
	assert.Empty(t, s.Pending())
	assert.Equal(t, 20, st.Progress.Skills[progress.SkillJournalEntries].XP)
	assert.Equal(t, 10, st.Progress.Skills[progress.SkillCashTransactions].XP)
	assert.Equal(t, 20, st.Progress.Skills[progress.SkillPostingLedger].XP)
	assert.Equal(t, 100.0, st.Progress.AccuracyRate)

	rows, err := s.TrialBalance()
	require.NoError(t, err)
	debits, credits := ledger.Totals(rows)
	assert.True(t, debits.Equal(credits))

	bs, err := s.BalanceSheet()
	require.NoError(t, err)
	assert.True(t, bs.Balanced())

	is, err := s.IncomeStatement()
	require.NoError(t, err)
	assert.True(t, is.TotalRevenue.IsPositive())
	assert.True(t, bs.NetIncome.Equal(is.NetIncome))
}

func TestSubmit_RejectedLeavesBooksUnchanged(t *testing.T) {
	s := newSession(t, testConfig(t))
	require.NoError(t, s.SelectCompany("coffee"))
	before, err := s.TrialBalance()
	require.NoError(t, err)

	_, err = s.Submit(model.JournalEntry{Description: "bad", Lines: []model.JournalLine{
		model.DebitLine("1001", dec("100")),
		model.CreditLine("4001", dec("90")),
	}})
	var verr *journal.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, journal.BalanceCheck, verr.Violations[0].Kind)

	after, err := s.TrialBalance()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	st := s.State()
	assert.Empty(t, st.JournalEntries)
	assert.Equal(t, 1, st.Progress.MistakePatterns[string(journal.BalanceCheck)])
	assert.Equal(t, 99.0, st.Progress.AccuracyRate)
	assert.Empty(t, st.Progress.Achievements)
}

func TestSubmit_OneMistakePerRule(t *testing.T) {
	s := newSession(t, testConfig(t))
	require.NoError(t, s.SelectCompany("coffee"))

	_, err := s.Submit(model.JournalEntry{Lines: []model.JournalLine{
		model.DebitLine("9998", dec("10")),
		model.CreditLine("9999", dec("10")),
	}})
	require.Error(t, err)
	st := s.State()
	assert.Equal(t, map[string]int{string(journal.ValidAccounts): 1}, st.Progress.MistakePatterns)
}

func TestCompleteDay_ThroughPeriod(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.AutoSave = false
	s := newSession(t, cfg)
	require.NoError(t, s.SelectCompany("retail"))

	var earned []string
	for day := 1; day <= 30; day++ {
		got, err := s.CompleteDay()
		require.NoError(t, err, "day %d", day)
		for _, a := range got {
			earned = append(earned, a.ID)
		}
		if day == 7 {
			assert.Contains(t, earned, "week-one")
		}
	}
	assert.Contains(t, earned, "month-complete")
	assert.True(t, s.Over())
	assert.Equal(t, 30, s.Day())
	assert.Equal(t, 30, s.State().CompletedDays)

	_, err := s.CompleteDay()
	assert.ErrorIs(t, err, ErrSimulationOver)
	_, err = s.GenerateDay()
	assert.ErrorIs(t, err, ErrSimulationOver)
}

func TestRetailMonth_CashSaleCreditsCOGS(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.AutoSave = false
	s := newSession(t, cfg)
	require.NoError(t, s.SelectCompany("retail"))
	for !s.Over() {
		playDay(t, s)
		_, err := s.CompleteDay()
		require.NoError(t, err)
	}

	l, err := s.Ledger()
	require.NoError(t, err)
	cogs, err := l.BalanceOf("5001")
	require.NoError(t, err)
	assert.True(t, cogs.IsNegative(), "5001 balance %s", cogs)

	rows, err := s.TrialBalance()
	require.NoError(t, err)
	for _, r := range rows {
		if r.Code == "5001" {
			assert.True(t, r.Debit.IsZero() && r.Credit.IsZero(), "flipped balance reports zero")
		}
	}
	debits, credits := ledger.Totals(rows)
	assert.True(t, debits.GreaterThan(credits), "debits %s credits %s", debits, credits)

	bs, err := s.BalanceSheet()
	require.NoError(t, err)
	assert.False(t, bs.Balanced())
}

func TestSaveLoad_ReplaysJournal(t *testing.T) {
	cfg := testConfig(t)
	s := newSession(t, cfg)
	require.NoError(t, s.SelectCompany("coffee"))
	playDay(t, s)
	_, err := s.CompleteDay()
	require.NoError(t, err)
	require.NoError(t, s.Save())

	l, err := s.Ledger()
	require.NoError(t, err)
	cash, err := l.BalanceOf("1001")
	require.NoError(t, err)

	restored := newSession(t, cfg)
	found, err := restored.Resume()
	require.NoError(t, err)
	require.True(t, found)

	st := restored.State()
	assert.Equal(t, s.State().SessionID, st.SessionID)
	assert.Equal(t, 2, st.CurrentDay)
	assert.Equal(t, 1, st.CompletedDays)
	assert.Equal(t, "1.0", st.Version)
	assert.False(t, st.LastSaved.IsZero())

	rl, err := restored.Ledger()
	require.NoError(t, err)
	got, err := rl.BalanceOf("1001")
	require.NoError(t, err)
	assert.True(t, cash.Equal(got), "cash %s vs %s", cash, got)

	res := playDay(t, restored)
	if len(res) > 0 {
		assert.Equal(t, "JE003", res[0].Entry.ID)
	}
}

func TestResume_NoSave(t *testing.T) {
	s := newSession(t, testConfig(t))
	found, err := s.Resume()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoad_ErrorKeepsSession(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.AutoSave = false
	s := newSession(t, cfg)
	require.NoError(t, s.SelectCompany("coffee"))
	require.NoError(t, os.WriteFile(cfg.Storage.SavePath, []byte("{broken"), 0o644))

	err := s.Load()
	var perr *store.PersistenceError
	require.ErrorAs(t, err, &perr)

	co, err := s.Company()
	require.NoError(t, err)
	assert.Equal(t, "coffee", co.ID)
}

type failingStore struct{}

func (failingStore) Save(state model.GameState) (model.GameState, error) {
	return state, &store.PersistenceError{Op: "save", Path: "nowhere", Err: os.ErrPermission}
}

func (failingStore) Load() (model.GameState, error) {
	return model.DefaultGameState(), store.ErrNoSave
}

func TestSave_FailureKeepsState(t *testing.T) {
	cfg := testConfig(t)
	s, err := New(cfg, catalog.Default(), failingStore{}, zap.NewNop(), generator.NewRand(1))
	require.NoError(t, err)
	require.NoError(t, s.SelectCompany("coffee"), "autosave failures do not fail the operation")

	playDay(t, s)
	err = s.Save()
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.NotEmpty(t, s.State().JournalEntries)
	assert.True(t, s.State().LastSaved.IsZero())
}

func TestActivityLog(t *testing.T) {
	cfg := testConfig(t)
	s := newSession(t, cfg)
	require.NoError(t, s.SelectCompany("coffee"))
	playDay(t, s)

	entries, err := activitylog.Read(cfg.ActivityLog.Path)
	require.NoError(t, err)
	var actions []string
	for _, e := range entries {
		actions = append(actions, e.Action)
		assert.Equal(t, "coffee", e.Company)
	}
	assert.Equal(t, activitylog.ActionSelectCompany, actions[0])
	assert.Contains(t, actions, activitylog.ActionGenerateDay)
	assert.Contains(t, actions, activitylog.ActionPostEntry)
	assert.Contains(t, actions, activitylog.ActionAchievement)
	assert.Contains(t, actions, activitylog.ActionSave)
}

func TestGenerateScenario(t *testing.T) {
	s := newSession(t, testConfig(t))
	require.NoError(t, s.SelectCompany("coffee"))

	tx, err := s.GenerateScenario(generator.ScenarioOptions(99)[3])
	require.NoError(t, err)
	assert.Equal(t, 1, tx.Day)
	assert.Equal(t, "credit_sale", tx.Type)

	draft, err := s.Draft(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.ID, draft.TransactionID)

	res, err := s.Validate(draft)
	require.NoError(t, err)
	assert.True(t, res.Valid)
}

func TestGenerateScenario_SurvivesReload(t *testing.T) {
	cfg := testConfig(t)
	s := newSession(t, cfg)
	require.NoError(t, s.SelectCompany("coffee"))
	scenario, err := s.GenerateScenario(generator.ScenarioOptions(1)[0])
	require.NoError(t, err)
	require.NoError(t, s.Save())

	restored := newSession(t, cfg)
	found, err := restored.Resume()
	require.NoError(t, err)
	require.True(t, found)

	txs, err := restored.GenerateDay()
	require.NoError(t, err)
	var types []string
	for _, tx := range txs {
		assert.False(t, tx.Scenario)
		types = append(types, tx.Type)
	}
	assert.ElementsMatch(t, []string{"cash_sale", "expense_payment"}, types)

	day := restored.TransactionsForDay(1)
	assert.Len(t, day, len(txs)+1)
	assert.True(t, slices.ContainsFunc(day, func(tx model.Transaction) bool { return tx.ID == scenario.ID }))
	assert.Equal(t, []int{1}, restored.State().GeneratedDays)

	again, err := restored.GenerateDay()
	require.NoError(t, err)
	assert.Len(t, again, len(txs)+1, "day 1 is not generated twice")
}

func TestDraft_UnknownTransaction(t *testing.T) {
	s := newSession(t, testConfig(t))
	require.NoError(t, s.SelectCompany("coffee"))
	_, err := s.Draft("T01-000")
	assert.ErrorIs(t, err, ErrUnknownTransaction)
}
