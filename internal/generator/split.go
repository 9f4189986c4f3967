package generator

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// SplitFunc turns a template's accounts and amount into journal lines.
type SplitFunc func(accounts []string, amount decimal.Decimal) []model.JournalLine

var (
	seventy = decimal.RequireFromString("0.7")
	sixty   = decimal.RequireFromString("0.6")
)

var splitRules = map[string]SplitFunc{
	"cash_sale":       cashSale,
	"credit_sale":     pair,
	"cash_purchase":   cashPurchase,
	"expense_payment": pair,
	"collection":      pair,
}

// Split returns the suggested journal lines for a transaction type. Types
// without a dedicated rule get a debit/credit pair on the first two accounts.
func Split(typ string, accounts []string, amount decimal.Decimal) []model.JournalLine {
	if rule, ok := splitRules[typ]; ok {
		return rule(accounts, amount)
	}
	return pair(accounts, amount)
}

// portion rounds amount*pct to cents and returns it with the remainder.
func portion(amount, pct decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	part := amount.Mul(pct).Round(2)
	return part, amount.Sub(part)
}

func pair(accounts []string, amount decimal.Decimal) []model.JournalLine {
	if len(accounts) < 2 {
		return nil
	}
	return []model.JournalLine{
		model.DebitLine(accounts[0], amount),
		model.CreditLine(accounts[1], amount),
	}
}

// cashSale debits cash in full and splits revenue 70/30.
func cashSale(accounts []string, amount decimal.Decimal) []model.JournalLine {
	if len(accounts) < 3 {
		return pair(accounts, amount)
	}
	major, minor := portion(amount, seventy)
	return []model.JournalLine{
		model.DebitLine(accounts[0], amount),
		model.CreditLine(accounts[1], major),
		model.CreditLine(accounts[2], minor),
	}
}

// cashPurchase splits the purchase 60/40 across two assets against cash.
func cashPurchase(accounts []string, amount decimal.Decimal) []model.JournalLine {
	if len(accounts) < 3 {
		return pair(accounts, amount)
	}
	major, minor := portion(amount, sixty)
	return []model.JournalLine{
		model.DebitLine(accounts[0], major),
		model.DebitLine(accounts[1], minor),
		model.CreditLine(accounts[2], amount),
	}
}
