package ledger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// ErrUnknownAccount is returned when an entry references an account the
// ledger does not carry.
var ErrUnknownAccount = errors.New("unknown account")

// Line is one posting in an account's history.
type Line struct {
	Date        time.Time       `json:"date"`
	EntryID     string          `json:"entryId"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// Account is a chart account with its running balance and history.
type Account struct {
	model.Account
	Balance decimal.Decimal
	Lines   []Line
}

// Ledger accumulates posted journal entries per account.
type Ledger struct {
	accounts []*Account
	byCode   map[string]*Account
}

// New seeds one ledger account per chart account at its opening balance.
func New(chart []model.Account) *Ledger {
	l := &Ledger{byCode: make(map[string]*Account, len(chart))}
	for _, a := range chart {
		acct := &Account{Account: a, Balance: a.OpeningBalance}
		l.accounts = append(l.accounts, acct)
		l.byCode[a.Code] = acct
	}
	return l
}

// CheckApply reports whether every line of entry targets a known account.
func (l *Ledger) CheckApply(entry model.JournalEntry) error {
	var missing []string
	for _, line := range entry.Lines {
		if _, ok := l.byCode[line.Account]; !ok && !slices.Contains(missing, line.Account) {
			missing = append(missing, line.Account)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownAccount, strings.Join(missing, ", "))
	}
	return nil
}

// Apply posts entry's lines. Callers must have passed CheckApply; lines for
// unknown accounts are skipped.
func (l *Ledger) Apply(entry model.JournalEntry) {
	for _, line := range entry.Lines {
		acct, ok := l.byCode[line.Account]
		if !ok {
			continue
		}
		if acct.NormalSide == model.NormalDebit {
			acct.Balance = acct.Balance.Add(line.Debit).Sub(line.Credit)
		} else {
			acct.Balance = acct.Balance.Add(line.Credit).Sub(line.Debit)
		}
		desc := line.Description
		if desc == "" {
			desc = entry.Description
		}
		acct.Lines = append(acct.Lines, Line{
			Date:        entry.Date,
			EntryID:     entry.ID,
			Reference:   entry.Reference,
			Description: desc,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Balance:     acct.Balance,
		})
	}
}

// Post checks and applies entry in one step.
func (l *Ledger) Post(entry model.JournalEntry) error {
	if err := l.CheckApply(entry); err != nil {
		return err
	}
	l.Apply(entry)
	return nil
}

// BalanceOf returns the current balance of an account, signed relative to
// its normal side.
func (l *Ledger) BalanceOf(code string) (decimal.Decimal, error) {
	acct, ok := l.byCode[code]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownAccount, code)
	}
	return acct.Balance, nil
}

// Account returns one ledger account.
func (l *Ledger) Account(code string) (*Account, bool) {
	acct, ok := l.byCode[code]
	return acct, ok
}

// Accounts returns ledger accounts in chart order.
func (l *Ledger) Accounts() []*Account {
	return l.accounts
}

// TrialBalance lists every account sorted by code. A positive balance is
// shown on the account's normal side. A balance that has gone negative
// relative to its normal side is shown as zero on both sides.
func (l *Ledger) TrialBalance() []model.TrialBalanceRow {
	rows := make([]model.TrialBalanceRow, 0, len(l.accounts))
	for _, a := range l.accounts {
		row := model.TrialBalanceRow{Code: a.Code, Name: a.Name, Debit: decimal.Zero, Credit: decimal.Zero}
		if a.Balance.IsPositive() {
			if a.NormalSide == model.NormalDebit {
				row.Debit = a.Balance
			} else {
				row.Credit = a.Balance
			}
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b model.TrialBalanceRow) int {
		return strings.Compare(a.Code, b.Code)
	})
	return rows
}

// Totals sums the debit and credit columns of a trial balance.
func Totals(rows []model.TrialBalanceRow) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, r := range rows {
		debits = debits.Add(r.Debit)
		credits = credits.Add(r.Credit)
	}
	return debits, credits
}

// Filter returns accounts matching code (exact, empty for all) whose code,
// name or any line description contains search, case-insensitively.
func (l *Ledger) Filter(code, search string) []*Account {
	needle := strings.ToLower(strings.TrimSpace(search))
	var out []*Account
	for _, a := range l.accounts {
		if code != "" && a.Code != code {
			continue
		}
		if needle != "" && !a.matches(needle) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (a *Account) matches(needle string) bool {
	if strings.Contains(strings.ToLower(a.Name), needle) || strings.Contains(a.Code, needle) {
		return true
	}
	return slices.ContainsFunc(a.Lines, func(l Line) bool {
		return strings.Contains(strings.ToLower(l.Description), needle)
	})
}

// Summary counts ledger activity.
type Summary struct {
	TotalAccounts        int
	AccountsWithActivity int
	TotalTransactions    int
}

// Summary reports how many accounts have postings and how many lines were posted.
func (l *Ledger) Summary() Summary {
	s := Summary{TotalAccounts: len(l.accounts)}
	for _, a := range l.accounts {
		if len(a.Lines) > 0 {
			s.AccountsWithActivity++
		}
		s.TotalTransactions += len(a.Lines)
	}
	return s
}
