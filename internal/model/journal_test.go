package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategoryForCode(t *testing.T) {
	tests := []struct {
		code string
		want Category
		ok   bool
	}{
		{"1001", CategoryAsset, true},
		{"2100", CategoryLiability, true},
		{"3002", CategoryEquity, true},
		{"4004", CategoryRevenue, true},
		{"5090", CategoryExpense, true},
		{"9000", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CategoryForCode(tt.code)
		assert.Equal(t, tt.want, got, "CategoryForCode(%q)", tt.code)
		assert.Equal(t, tt.ok, ok, "CategoryForCode(%q)", tt.code)
	}
}

func TestJournalEntryTotals(t *testing.T) {
	e := JournalEntry{Lines: []JournalLine{
		DebitLine("1001", decimal.RequireFromString("100.00")),
		CreditLine("4001", decimal.RequireFromString("70.00")),
		CreditLine("4002", decimal.RequireFromString("30.00")),
	}}
	assert.True(t, e.TotalDebits().Equal(decimal.NewFromInt(100)))
	assert.True(t, e.TotalCredits().Equal(decimal.NewFromInt(100)))
	assert.True(t, e.IsBalanced())
}

func TestJournalEntryIsBalancedTolerance(t *testing.T) {
	near := JournalEntry{Lines: []JournalLine{
		DebitLine("1001", decimal.RequireFromString("100.005")),
		CreditLine("4001", decimal.RequireFromString("100.00")),
	}}
	assert.True(t, near.IsBalanced())

	off := JournalEntry{Lines: []JournalLine{
		DebitLine("1001", decimal.RequireFromString("100.00")),
		CreditLine("4001", decimal.RequireFromString("90.00")),
	}}
	assert.False(t, off.IsBalanced())
}

func TestJournalLineAmount(t *testing.T) {
	d := DebitLine("1001", decimal.NewFromInt(5))
	c := CreditLine("4001", decimal.NewFromInt(7))
	assert.True(t, d.IsDebit())
	assert.False(t, c.IsDebit())
	assert.True(t, d.Amount().Equal(decimal.NewFromInt(5)))
	assert.True(t, c.Amount().Equal(decimal.NewFromInt(7)))
}

func TestDefaultGameState(t *testing.T) {
	gs := DefaultGameState()
	assert.Equal(t, 1, gs.CurrentDay)
	assert.Equal(t, 0, gs.CompletedDays)
	assert.Empty(t, gs.SelectedCompany)
	assert.InDelta(t, 100, gs.Progress.AccuracyRate, 0.001)
	assert.NotNil(t, gs.Progress.MistakePatterns)
	assert.True(t, gs.Settings.ShowHints)
	assert.True(t, gs.Settings.AutoSave)
	assert.Equal(t, "intermediate", gs.Settings.Difficulty)
}
