// Package statements derives financial statements from a trial balance.
// Accounts are classified by the leading digit of their code.
package statements

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

const (
	LabelNetIncome = "Net Income"
	LabelNetLoss   = "Net Loss"
)

// Line is one account shown on a statement.
type Line struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// IncomeStatement summarizes revenue and expense activity.
type IncomeStatement struct {
	Revenues      []Line          `json:"revenues"`
	Expenses      []Line          `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// Label is "Net Income" for a zero or positive result and "Net Loss" otherwise.
func (s IncomeStatement) Label() string {
	if s.NetIncome.IsNegative() {
		return LabelNetLoss
	}
	return LabelNetIncome
}

// BalanceSheet reports the accounting equation. Equity includes the
// period's net income since revenue and expense accounts are never closed.
type BalanceSheet struct {
	Assets           []Line          `json:"assets"`
	Liabilities      []Line          `json:"liabilities"`
	Equity           []Line          `json:"equity"`
	NetIncome        decimal.Decimal `json:"netIncome"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// LiabilitiesAndEquity is the right-hand side of the equation.
func (b BalanceSheet) LiabilitiesAndEquity() decimal.Decimal {
	return b.TotalLiabilities.Add(b.TotalEquity)
}

// Difference is assets minus liabilities and equity.
func (b BalanceSheet) Difference() decimal.Decimal {
	return b.TotalAssets.Sub(b.LiabilitiesAndEquity())
}

// Balanced reports whether assets equal liabilities plus equity within a cent.
func (b BalanceSheet) Balanced() bool {
	return b.Difference().Abs().LessThan(model.Tolerance)
}

// Income builds the income statement. Revenue accounts contribute
// credit minus debit, so contra-revenue reduces the total; expenses
// contribute debit minus credit.
func Income(rows []model.TrialBalanceRow) IncomeStatement {
	s := IncomeStatement{TotalRevenue: decimal.Zero, TotalExpenses: decimal.Zero}
	for _, r := range rows {
		switch category(r.Code) {
		case model.CategoryRevenue:
			s.Revenues, s.TotalRevenue = add(s.Revenues, s.TotalRevenue, r, creditNet(r))
		case model.CategoryExpense:
			s.Expenses, s.TotalExpenses = add(s.Expenses, s.TotalExpenses, r, debitNet(r))
		}
	}
	s.NetIncome = s.TotalRevenue.Sub(s.TotalExpenses)
	return s
}

// Balance builds the balance sheet.
func Balance(rows []model.TrialBalanceRow) BalanceSheet {
	b := BalanceSheet{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	for _, r := range rows {
		switch category(r.Code) {
		case model.CategoryAsset:
			b.Assets, b.TotalAssets = add(b.Assets, b.TotalAssets, r, debitNet(r))
		case model.CategoryLiability:
			b.Liabilities, b.TotalLiabilities = add(b.Liabilities, b.TotalLiabilities, r, creditNet(r))
		case model.CategoryEquity:
			b.Equity, b.TotalEquity = add(b.Equity, b.TotalEquity, r, creditNet(r))
		}
	}
	b.NetIncome = Income(rows).NetIncome
	b.TotalEquity = b.TotalEquity.Add(b.NetIncome)
	return b
}

func category(code string) model.Category {
	c, _ := model.CategoryForCode(code)
	return c
}

func debitNet(r model.TrialBalanceRow) decimal.Decimal  { return r.Debit.Sub(r.Credit) }
func creditNet(r model.TrialBalanceRow) decimal.Decimal { return r.Credit.Sub(r.Debit) }

func add(lines []Line, total decimal.Decimal, r model.TrialBalanceRow, amount decimal.Decimal) ([]Line, decimal.Decimal) {
	if amount.IsZero() {
		return lines, total
	}
	return append(lines, Line{Code: r.Code, Name: r.Name, Amount: amount}), total.Add(amount)
}

// Find returns the statement line for code.
func Find(lines []Line, code string) (Line, bool) {
	for _, l := range lines {
		if strings.EqualFold(l.Code, code) {
			return l, true
		}
	}
	return Line{}, false
}
