package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func postedEntries(t *testing.T) []model.JournalEntry {
	t.Helper()
	j, _ := newTestJournal()
	e1 := entry(
		model.JournalLine{Account: "1001", Description: "Cash received", Debit: dec("200.00")},
		model.JournalLine{Account: "4001", Description: "Coffee, \"large\"", Credit: dec("140.00")},
		model.JournalLine{Account: "4002", Credit: dec("60.00")},
	)
	e1.TransactionID = "T01-042"
	_, err := j.Post(e1)
	require.NoError(t, err)
	_, err = j.Post(entry(dr("5030", "99.95"), cr("1001", "99.95")))
	require.NoError(t, err)
	return j.Entries()
}

func TestRoundTrip(t *testing.T) {
	entries := postedEntries(t)

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries))

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "JE001", got[0].ID)
	assert.Equal(t, "REF1", got[0].Reference)
	assert.Equal(t, "T01-042", got[0].TransactionID)
	assert.Equal(t, model.StatusPosted, got[0].Status)
	assert.True(t, postedAt.Equal(got[0].PostedAt))
	assert.Equal(t, date(2025, 3, 1), got[0].Date)
	require.Len(t, got[0].Lines, 3)
	assert.Equal(t, "Coffee, \"large\"", got[0].Lines[1].Description)
	assert.True(t, got[0].Lines[1].Credit.Equal(dec("140")))
	assert.True(t, got[0].Lines[1].Debit.IsZero())

	require.Len(t, got[1].Lines, 2)
	assert.True(t, got[1].Lines[0].Debit.Equal(dec("99.95")))
}

func TestWriteEntries_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, postedEntries(t)[1:]))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "JE002,2025-03-01,REF2,test entry,5030,,99.95,,posted,2025-03-01T09:30:00Z,", lines[1])
}

func TestReadEntries_Empty(t *testing.T) {
	got, err := ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadEntries_HeaderOnly(t *testing.T) {
	got, err := ReadEntries(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadEntries_BadRows(t *testing.T) {
	tests := []string{
		"JE001,03/01/2025,REF1,x,1001,,1.00,,posted,,",
		"JE001,2025-03-01,REF1,x,1001,,abc,,posted,,",
		"JE001,2025-03-01,REF1,x,1001,,,xyz,posted,,",
		"JE001,2025-03-01,REF1,x,1001,,1.00,,posted,yesterday,",
	}
	for _, row := range tests {
		_, err := ReadEntries(strings.NewReader(Header + "\n" + row + "\n"))
		assert.Error(t, err, row)
	}
}

func TestReadEntries_WrongFieldCount(t *testing.T) {
	_, err := ReadEntries(strings.NewReader(Header + "\nJE001,2025-03-01\n"))
	assert.Error(t, err)
}
