package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/catalog"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

func TestAnalyze(t *testing.T) {
	a := Analyze(model.Transaction{Type: "cash_sale", AccountCodes: []string{"1001", "4001", "4002"}})
	assert.Len(t, a.LearningPoints, 3)
	assert.Equal(t, "Remember: Cash increases (debit) and Revenue increases (credit)", a.Hint)
	assert.Len(t, a.CommonMistakes, 3)
	assert.Equal(t, 3, a.AccountsAffected)
	assert.Equal(t, Beginner, a.Difficulty)
}

func TestAnalyze_UnknownType(t *testing.T) {
	a := Analyze(model.Transaction{Type: "owner_withdrawal", AccountCodes: []string{"3002", "1001"}})
	assert.Empty(t, a.LearningPoints)
	assert.Equal(t, "Analyze the transaction carefully.", a.Hint)
	assert.Empty(t, a.CommonMistakes)
	assert.Equal(t, Intermediate, a.Difficulty)
}

func TestDifficultyOf(t *testing.T) {
	assert.Equal(t, Beginner, DifficultyOf("expense_payment"))
	assert.Equal(t, Intermediate, DifficultyOf("collection"))
	assert.Equal(t, Advanced, DifficultyOf("payroll"))
	assert.Equal(t, Intermediate, DifficultyOf("rent_payment"))
}

func TestWeekPhase(t *testing.T) {
	assert.Equal(t, "Basic Cash Transactions", WeekPhase(7))
	assert.Equal(t, "Credit Transactions", WeekPhase(8))
	assert.Equal(t, "Complex Operations", WeekPhase(21))
	assert.Equal(t, "Month-End Activities", WeekPhase(22))
}

func TestTypeLabelAndFocus(t *testing.T) {
	assert.Equal(t, "Credit Sale", TypeLabel("credit_sale"))
	assert.Equal(t, "payroll", TypeLabel("payroll"))
	assert.Equal(t, "Asset vs. expense classification", Focus("cash_purchase"))
	assert.Equal(t, "General transaction analysis", Focus("payroll"))
}

func TestScenarioOptions(t *testing.T) {
	opts := ScenarioOptions(12)
	require.Len(t, opts, 5)
	for _, o := range opts {
		assert.Equal(t, 12, o.Day)
	}
	assert.Equal(t, "Daily Cash Sales", opts[0].Title)
	assert.Equal(t, "inventory_purchase", opts[4].Type)
}

func TestGenerateScenario(t *testing.T) {
	g := New(catalog.Default(), fixedRand{f: 0.5, n: 7}, start)

	tx, err := g.GenerateScenario("tutoring", ScenarioOptions(3)[4])
	require.NoError(t, err)
	assert.Equal(t, "inventory_purchase", tx.Type)
	assert.Equal(t, "T03-007", tx.ID)
	assert.True(t, tx.Amount.Equal(dec("275")), "amount = %s", tx.Amount)
	assert.Equal(t, []string{"1020", "2001"}, tx.AccountCodes)
	require.Len(t, tx.Lines, 2)
	assert.Nil(t, tx.Document)
	assert.True(t, tx.Scenario)

	sale, err := g.GenerateScenario("coffee", ScenarioOptions(3)[0])
	require.NoError(t, err)
	require.Len(t, sale.Lines, 2)
	require.NotNil(t, sale.Document)
	assert.Equal(t, TitleCashReceipt, sale.Document.Title)
}

func TestGenerateScenario_UnknownCompany(t *testing.T) {
	g := New(catalog.Default(), fixedRand{}, start)
	_, err := g.GenerateScenario("bakery", ScenarioOptions(1)[0])
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUnknownCompany)
}
