package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

// Header is the CSV header for journal exports. Each row is one line of an entry.
const Header = "entry_id,date,reference,entry_description,account,line_description,debit,credit,status,posted_at,transaction_id"

const (
	numFields      = 11
	dateFormat     = "2006-01-02"
	colEntryID     = 0
	colDate        = 1
	colRef         = 2
	colEntryDesc   = 3
	colAccount     = 4
	colLineDesc    = 5
	colDebit       = 6
	colCredit      = 7
	colStatus      = 8
	colPostedAt    = 9
	colTransaction = 10
)

// row is one flattened journal line with its entry header fields.
type row struct {
	entry model.JournalEntry
	line  model.JournalLine
}

// WriteEntries writes entries to w, one row per line, including the header.
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	n := 1
	for _, e := range entries {
		for _, l := range e.Lines {
			n++
			if err := cw.Write(marshalRow(row{entry: e, line: l})); err != nil {
				return fmt.Errorf("writing row %d: %w", n, err)
			}
		}
	}
	return cw.Error()
}

// ReadEntries reads a journal export, regrouping consecutive rows that share
// an entry ID.
func ReadEntries(r io.Reader) ([]model.JournalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.JournalEntry
	for i, rec := range records[1:] {
		rw, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if n := len(entries); n > 0 && entries[n-1].ID == rw.entry.ID {
			entries[n-1].Lines = append(entries[n-1].Lines, rw.line)
			continue
		}
		e := rw.entry
		e.Lines = []model.JournalLine{rw.line}
		entries = append(entries, e)
	}
	return entries, nil
}

func marshalRow(r row) []string {
	rec := make([]string, numFields)
	rec[colEntryID] = r.entry.ID
	rec[colDate] = r.entry.Date.Format(dateFormat)
	rec[colRef] = r.entry.Reference
	rec[colEntryDesc] = r.entry.Description
	rec[colAccount] = r.line.Account
	rec[colLineDesc] = r.line.Description

	if !r.line.Debit.IsZero() {
		rec[colDebit] = r.line.Debit.StringFixed(2)
	}
	if !r.line.Credit.IsZero() {
		rec[colCredit] = r.line.Credit.StringFixed(2)
	}

	rec[colStatus] = string(r.entry.Status)
	if !r.entry.PostedAt.IsZero() {
		rec[colPostedAt] = r.entry.PostedAt.UTC().Format(time.RFC3339)
	}
	rec[colTransaction] = r.entry.TransactionID
	return rec
}

func unmarshalRow(record []string) (row, error) {
	if len(record) != numFields {
		return row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return row{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var postedAt time.Time
	if record[colPostedAt] != "" {
		postedAt, err = time.Parse(time.RFC3339, record[colPostedAt])
		if err != nil {
			return row{}, fmt.Errorf("parsing posted_at %q: %w", record[colPostedAt], err)
		}
	}

	var debit, credit decimal.Decimal
	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return row{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}
	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return row{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	return row{
		entry: model.JournalEntry{
			ID:            record[colEntryID],
			Date:          date,
			Reference:     record[colRef],
			Description:   record[colEntryDesc],
			Status:        model.EntryStatus(record[colStatus]),
			PostedAt:      postedAt,
			TransactionID: record[colTransaction],
		},
		line: model.JournalLine{
			Account:     record[colAccount],
			Description: record[colLineDesc],
			Debit:       debit,
			Credit:      credit,
		},
	}, nil
}
