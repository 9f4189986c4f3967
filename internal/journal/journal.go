package journal

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerlab/internal/id"
	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Ledger receives posted entries. CheckApply must report every reason Apply
// could not take the entry; Apply itself never fails.
type Ledger interface {
	CheckApply(entry model.JournalEntry) error
	Apply(entry model.JournalEntry)
}

// Journal is the chronological record of posted entries for one company.
type Journal struct {
	accounts AccountChecker
	ledger   Ledger
	entries  []model.JournalEntry
	seq      int
	now      func() time.Time
	log      *zap.Logger
}

// Option configures a Journal.
type Option func(*Journal)

// WithClock overrides the time source used to stamp postings.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) { j.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(j *Journal) { j.log = l }
}

// New creates an empty Journal that posts into ledger.
func New(accounts AccountChecker, ledger Ledger, opts ...Option) *Journal {
	j := &Journal{
		accounts: accounts,
		ledger:   ledger,
		now:      time.Now,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Validate checks entry against the journal's chart of accounts.
func (j *Journal) Validate(entry model.JournalEntry) ValidationResult {
	return Validate(entry, j.accounts)
}

// Post validates entry and, if it passes, assigns its identity, appends it to
// the journal and applies it to the ledger. A refused entry leaves both
// untouched and is reported as a *ValidationError.
func (j *Journal) Post(entry model.JournalEntry) (model.JournalEntry, error) {
	res := j.Validate(entry)
	if !res.Valid {
		j.log.Info("entry refused", zap.Int("violations", len(res.Violations)))
		return model.JournalEntry{}, &ValidationError{Violations: res.Violations}
	}
	if err := j.ledger.CheckApply(entry); err != nil {
		return model.JournalEntry{}, &ValidationError{Violations: []Violation{{
			Kind:   ValidAccounts,
			Line:   -1,
			Detail: err.Error(),
		}}}
	}

	seq := j.seq + 1
	now := j.now()
	posted := entry
	posted.Lines = slices.Clone(entry.Lines)
	posted.ID = id.FormatEntryID(seq)
	if posted.Reference == "" {
		posted.Reference = id.FormatReference(seq)
	}
	if posted.Date.IsZero() {
		posted.Date = now
	}
	posted.Status = model.StatusPosted
	posted.PostedAt = now

	j.seq = seq
	j.entries = append(j.entries, posted)
	j.ledger.Apply(posted)

	j.log.Info("entry posted",
		zap.String("entry_id", posted.ID),
		zap.String("reference", posted.Reference),
		zap.String("amount", posted.TotalDebits().StringFixed(2)),
	)
	return posted, nil
}

// Restore replays previously posted entries, keeping their identities. It
// stops at the first entry that would not post today.
func (j *Journal) Restore(entries []model.JournalEntry) error {
	for _, e := range entries {
		if res := j.Validate(e); !res.Valid {
			return fmt.Errorf("restoring %s: %w", e.ID, &ValidationError{Violations: res.Violations})
		}
		if err := j.ledger.CheckApply(e); err != nil {
			return fmt.Errorf("restoring %s: %w", e.ID, err)
		}
		seq, err := id.ParseEntryID(e.ID)
		if err != nil {
			return fmt.Errorf("restoring entry: %w", err)
		}
		e.Status = model.StatusPosted
		j.entries = append(j.entries, e)
		j.ledger.Apply(e)
		j.seq = max(j.seq, seq)
	}
	return nil
}

// Entries returns a copy of all posted entries in posting order.
func (j *Journal) Entries() []model.JournalEntry {
	return slices.Clone(j.entries)
}

// Len returns the number of posted entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Entry returns a posted entry by ID.
func (j *Journal) Entry(entryID string) (model.JournalEntry, bool) {
	for _, e := range j.entries {
		if e.ID == entryID {
			return e, true
		}
	}
	return model.JournalEntry{}, false
}

// EntriesByAccount returns posted entries touching account code.
func (j *Journal) EntriesByAccount(code string) []model.JournalEntry {
	var out []model.JournalEntry
	for _, e := range j.entries {
		if slices.ContainsFunc(e.Lines, func(l model.JournalLine) bool { return l.Account == code }) {
			out = append(out, e)
		}
	}
	return out
}
