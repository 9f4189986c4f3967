package journal

import (
	"slices"
	"strings"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// AccountLookup resolves account codes to chart entries.
type AccountLookup interface {
	Get(code string) (model.Account, bool)
}

// NewDraft returns an unposted entry pre-filled from a generated transaction,
// with a suggested description on each line.
func NewDraft(tx model.Transaction, accounts AccountLookup) model.JournalEntry {
	lines := slices.Clone(tx.Lines)
	for i, l := range lines {
		if l.Description != "" {
			continue
		}
		if acct, ok := accounts.Get(l.Account); ok {
			lines[i].Description = SuggestDescription(acct, l.IsDebit())
		}
	}
	return model.JournalEntry{
		Date:          tx.Date,
		Description:   tx.Description,
		Lines:         lines,
		Status:        model.StatusDraft,
		TransactionID: tx.ID,
	}
}

// SuggestDescription proposes a line description for an account.
func SuggestDescription(acct model.Account, debit bool) string {
	switch acct.Code {
	case "1001":
		if debit {
			return "Cash received"
		}
		return "Cash paid"
	case "1010":
		if debit {
			return "Sale on account"
		}
		return "Payment received"
	case "1020":
		if debit {
			return "Inventory purchased"
		}
		return "Inventory sold"
	case "4001":
		return "Sales revenue earned"
	case "4002":
		return "Service revenue earned"
	case "5001":
		return "Cost of goods sold"
	case "5010":
		return "Wages paid to employees"
	case "5020":
		return "Rent expense incurred"
	case "5030":
		return "Utilities expense incurred"
	}
	return acct.Name + " transaction"
}

// DefaultDescription is the placeholder description for a freshly chosen
// account, based on its section of the chart.
func DefaultDescription(acct model.Account) string {
	cat, _ := model.CategoryForCode(acct.Code)
	switch cat {
	case model.CategoryLiability:
		if strings.Contains(acct.Name, "Payable") {
			return "Amount payable"
		}
		return acct.Name
	case model.CategoryEquity:
		return acct.Name
	case model.CategoryRevenue:
		return "Revenue earned"
	case model.CategoryExpense:
		return "Expense incurred"
	}
	switch {
	case strings.Contains(acct.Name, "Cash"):
		return "Cash transaction"
	case strings.Contains(acct.Name, "Receivable"):
		return "Amount receivable"
	case strings.Contains(acct.Name, "Inventory"):
		return "Inventory transaction"
	}
	return acct.Name
}
