package journal

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Kind identifies which rule a journal entry broke.
type Kind string

const (
	BalanceCheck    Kind = "balance_check"
	MinimumLines    Kind = "minimum_lines"
	ValidAccounts   Kind = "valid_accounts"
	PositiveAmounts Kind = "positive_amounts"
	LineShape       Kind = "line_shape"
)

var kindMessages = map[Kind]string{
	BalanceCheck:    "Debits must equal credits",
	MinimumLines:    "At least two accounts required",
	ValidAccounts:   "All accounts must be valid",
	PositiveAmounts: "All amounts must be positive",
	LineShape:       "Each line needs exactly one of debit or credit",
}

// Message returns the learner-facing text for a rule.
func (k Kind) Message() string {
	if m, ok := kindMessages[k]; ok {
		return m
	}
	return string(k)
}

// Violation describes a single broken rule. Line is the zero-based line
// index, or -1 when the rule applies to the whole entry.
type Violation struct {
	Kind    Kind
	Line    int
	Account string
	Detail  string
}

func (v Violation) Error() string {
	msg := v.Kind.Message()
	if v.Detail != "" {
		msg += ": " + v.Detail
	}
	if v.Line >= 0 {
		return fmt.Sprintf("line %d: %s", v.Line+1, msg)
	}
	return msg
}

// ValidationResult is the outcome of validating an entry.
type ValidationResult struct {
	Valid      bool
	Violations []Violation
}

// Kinds returns the distinct rules violated, in first-seen order.
func (r ValidationResult) Kinds() []Kind {
	var kinds []Kind
	for _, v := range r.Violations {
		if !slices.Contains(kinds, v.Kind) {
			kinds = append(kinds, v.Kind)
		}
	}
	return kinds
}

// Has reports whether the result contains a violation of kind.
func (r ValidationResult) Has(kind Kind) bool {
	return slices.ContainsFunc(r.Violations, func(v Violation) bool { return v.Kind == kind })
}

// ValidationError is returned when posting is refused.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AccountChecker tests whether an account code exists in the chart of accounts.
type AccountChecker interface {
	Exists(code string) bool
}

// Validate applies every rule to entry independently and collects all
// violations.
func Validate(entry model.JournalEntry, accounts AccountChecker) ValidationResult {
	var vs []Violation

	debits, credits := entry.TotalDebits(), entry.TotalCredits()
	if debits.Sub(credits).Abs().GreaterThanOrEqual(model.Tolerance) {
		vs = append(vs, Violation{
			Kind:   BalanceCheck,
			Line:   -1,
			Detail: fmt.Sprintf("debits (%s) != credits (%s)", debits.StringFixed(2), credits.StringFixed(2)),
		})
	}

	if len(entry.Lines) < 2 {
		vs = append(vs, Violation{
			Kind:   MinimumLines,
			Line:   -1,
			Detail: fmt.Sprintf("entry has %d line(s)", len(entry.Lines)),
		})
	}

	for i, l := range entry.Lines {
		if !accounts.Exists(l.Account) {
			vs = append(vs, Violation{
				Kind:    ValidAccounts,
				Line:    i,
				Account: l.Account,
				Detail:  fmt.Sprintf("unknown account %q", l.Account),
			})
		}

		if l.Debit.IsNegative() || l.Credit.IsNegative() || (l.Debit.IsZero() && l.Credit.IsZero()) {
			vs = append(vs, Violation{Kind: PositiveAmounts, Line: i, Account: l.Account})
		}

		if l.Debit.IsZero() == l.Credit.IsZero() {
			vs = append(vs, Violation{Kind: LineShape, Line: i, Account: l.Account})
		}
	}

	return ValidationResult{Valid: len(vs) == 0, Violations: vs}
}
