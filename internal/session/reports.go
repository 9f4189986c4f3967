package session

import (
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/statements"
)

// TrialBalance returns the selected company's trial balance.
func (s *Session) TrialBalance() ([]model.TrialBalanceRow, error) {
	if s.books == nil {
		return nil, ErrNoCompany
	}
	return s.books.ledger.TrialBalance(), nil
}

// IncomeStatement derives the income statement from the trial balance.
func (s *Session) IncomeStatement() (statements.IncomeStatement, error) {
	rows, err := s.TrialBalance()
	if err != nil {
		return statements.IncomeStatement{}, err
	}
	return statements.Income(rows), nil
}

// BalanceSheet derives the balance sheet from the trial balance.
func (s *Session) BalanceSheet() (statements.BalanceSheet, error) {
	rows, err := s.TrialBalance()
	if err != nil {
		return statements.BalanceSheet{}, err
	}
	return statements.Balance(rows), nil
}

// CashFlow returns the cash flow statement.
func (s *Session) CashFlow() (statements.CashFlowStatement, error) {
	if s.books == nil {
		return statements.CashFlowStatement{}, ErrNoCompany
	}
	return statements.CashFlow(), nil
}

// Entries returns the posted journal entries.
func (s *Session) Entries() ([]model.JournalEntry, error) {
	if s.books == nil {
		return nil, ErrNoCompany
	}
	return s.books.journal.Entries(), nil
}
