package generator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/catalog"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// fixedRand returns the same draw every time.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int   { return r.n % n }

var start = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newFixed(f float64, n int) *Generator {
	return New(catalog.Default(), fixedRand{f: f, n: n}, start)
}

func TestWeek(t *testing.T) {
	tests := []struct{ day, want int }{
		{1, 1}, {7, 1}, {8, 2}, {14, 2}, {15, 3}, {21, 3}, {22, 4}, {28, 4}, {29, 5}, {30, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Week(tt.day), "Week(%d)", tt.day)
	}
}

func TestShouldFire_TwiceWeekly(t *testing.T) {
	var days []int
	for day := 1; day <= 30; day++ {
		if ShouldFire(model.FrequencyTwiceWeekly, day) {
			days = append(days, day)
		}
	}
	assert.Equal(t, []int{2, 4, 9, 11, 16, 18, 23, 25, 30}, days)
}

func TestShouldFire_Frequencies(t *testing.T) {
	collect := func(f model.Frequency) []int {
		var days []int
		for day := 1; day <= 14; day++ {
			if ShouldFire(f, day) {
				days = append(days, day)
			}
		}
		return days
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 8, 9, 10, 11, 12}, collect(model.FrequencyDaily))
	assert.Equal(t, []int{1, 8}, collect(model.FrequencyWeekly))
	assert.Equal(t, []int{1, 8}, collect(model.FrequencyOnce))
	assert.Empty(t, collect("monthly"))
}

func TestGenerateDailyTransactions_CoffeeDayOne(t *testing.T) {
	g := newFixed(0.5, 42)
	txns := g.GenerateDailyTransactions("coffee", 1)
	require.Len(t, txns, 2)

	sale := txns[0]
	assert.Equal(t, "cash_sale", sale.Type)
	assert.Equal(t, "T01-042", sale.ID)
	assert.Equal(t, 1, sale.Day)
	assert.True(t, sale.Amount.Equal(dec("250")), "amount = %s", sale.Amount)
	assert.Equal(t, start, sale.Date)
	assert.Equal(t, "Daily coffee and food sales", sale.Description)
	require.Len(t, sale.Lines, 3)

	assert.Equal(t, "expense_payment", txns[1].Type)
}

func TestGenerateDailyTransactions_DayTwo(t *testing.T) {
	txns := newFixed(0.5, 0).GenerateDailyTransactions("coffee", 2)
	require.Len(t, txns, 2)
	assert.Equal(t, "cash_sale", txns[0].Type)
	assert.Equal(t, "cash_purchase", txns[1].Type)
	assert.Equal(t, start.AddDate(0, 0, 1), txns[1].Date)
}

func TestGenerateDailyTransactions_Empty(t *testing.T) {
	g := newFixed(0.5, 0)

	for _, day := range []int{29, 30} {
		txns := g.GenerateDailyTransactions("coffee", day)
		assert.NotNil(t, txns)
		assert.Empty(t, txns, "day %d", day)
	}

	txns := g.GenerateDailyTransactions("bakery", 1)
	assert.NotNil(t, txns)
	assert.Empty(t, txns)

	// Weekend days fire nothing in week one for the coffee shop.
	assert.Empty(t, g.GenerateDailyTransactions("coffee", 6))
}

func TestGenerateDailyTransactions_AmountBounds(t *testing.T) {
	low := newFixed(0, 0).GenerateDailyTransactions("coffee", 1)
	require.NotEmpty(t, low)
	assert.True(t, low[0].Amount.Equal(dec("150")), "got %s", low[0].Amount)

	high := newFixed(0.999999, 0).GenerateDailyTransactions("coffee", 1)
	require.NotEmpty(t, high)
	assert.True(t, high[0].Amount.Equal(dec("350")), "got %s", high[0].Amount)
}

func TestGenerateDailyTransactions_Deterministic(t *testing.T) {
	a := New(catalog.Default(), NewRand(42), start)
	b := New(catalog.Default(), NewRand(42), start)

	for _, co := range []string{"coffee", "tutoring", "retail"} {
		for day := 1; day <= 30; day++ {
			assert.Equal(t, a.GenerateDailyTransactions(co, day), b.GenerateDailyTransactions(co, day), "%s day %d", co, day)
		}
	}
}

func TestGenerateDailyTransactions_LinesBalance(t *testing.T) {
	g := New(catalog.Default(), NewRand(7), start)
	for _, co := range []string{"coffee", "tutoring", "retail"} {
		for day := 1; day <= 30; day++ {
			for _, tx := range g.GenerateDailyTransactions(co, day) {
				entry := model.JournalEntry{Lines: tx.Lines}
				require.NotEmpty(t, tx.Lines, "%s %s", co, tx.ID)
				assert.True(t, entry.TotalDebits().Equal(entry.TotalCredits()), "%s %s %s", co, tx.ID, tx.Type)
				assert.True(t, entry.TotalDebits().Equal(tx.Amount), "%s %s debits match amount", co, tx.ID)
				assert.True(t, tx.Amount.Equal(tx.Amount.Round(2)))
			}
		}
	}
}

func TestGenerateDailyTransactions_AmountsInRange(t *testing.T) {
	cat := catalog.Default()
	g := New(cat, NewRand(99), start)
	for day := 1; day <= 28; day++ {
		templates := cat.Templates("retail", Week(day))
		byType := make(map[string]model.Template)
		for _, tp := range templates {
			byType[tp.Type] = tp
		}
		for _, tx := range g.GenerateDailyTransactions("retail", day) {
			tp := byType[tx.Type]
			assert.True(t, tx.Amount.GreaterThanOrEqual(tp.Min), "%s below min", tx.ID)
			assert.True(t, tx.Amount.LessThanOrEqual(tp.Max), "%s above max", tx.ID)
		}
	}
}

func TestDate(t *testing.T) {
	g := New(catalog.Default(), fixedRand{}, time.Date(2025, 3, 1, 15, 4, 5, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), g.Date(5))
	assert.Equal(t, time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC), g.Date(30))
}
