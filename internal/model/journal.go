package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus represents the lifecycle state of a journal entry.
type EntryStatus string

const (
	StatusDraft  EntryStatus = "draft"
	StatusPosted EntryStatus = "posted"
)

// Tolerance is the largest debit/credit difference still treated as balanced.
var Tolerance = decimal.New(1, -2)

// JournalLine is one side of a journal entry. Exactly one of Debit or Credit
// is positive on a well-formed line.
type JournalLine struct {
	Account     string          `json:"account"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// DebitLine returns a line debiting account for amount.
func DebitLine(account string, amount decimal.Decimal) JournalLine {
	return JournalLine{Account: account, Debit: amount}
}

// CreditLine returns a line crediting account for amount.
func CreditLine(account string, amount decimal.Decimal) JournalLine {
	return JournalLine{Account: account, Credit: amount}
}

// IsDebit reports whether the line carries a debit amount.
func (l JournalLine) IsDebit() bool {
	return l.Debit.IsPositive()
}

// Amount returns whichever side of the line is set.
func (l JournalLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.Debit
	}
	return l.Credit
}

// JournalEntry is a dated set of lines recorded as one business event.
type JournalEntry struct {
	ID            string        `json:"id"`
	Date          time.Time     `json:"date"`
	Reference     string        `json:"reference"`
	Description   string        `json:"description"`
	Lines         []JournalLine `json:"lines"`
	Status        EntryStatus   `json:"status"`
	PostedAt      time.Time     `json:"postedAt,omitzero"`
	TransactionID string        `json:"transactionId,omitempty"`
}

// TotalDebits sums the debit side of the entry.
func (e JournalEntry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredits sums the credit side of the entry.
func (e JournalEntry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// IsBalanced reports whether debits and credits agree within Tolerance.
func (e JournalEntry) IsBalanced() bool {
	return e.TotalDebits().Sub(e.TotalCredits()).Abs().LessThan(Tolerance)
}

// TrialBalanceRow is one account's line in a trial balance.
type TrialBalanceRow struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}
