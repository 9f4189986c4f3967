// Package activitylog keeps a CSV audit trail of learner actions.
package activitylog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Actions recorded by a session.
const (
	ActionSelectCompany = "select_company"
	ActionGenerateDay   = "generate_day"
	ActionPostEntry     = "post_entry"
	ActionRejectEntry   = "reject_entry"
	ActionCompleteDay   = "complete_day"
	ActionAchievement   = "achievement"
	ActionLevelUp       = "level_up"
	ActionSave          = "save"
	ActionLoad          = "load"
)

// Entry is one row in the activity log.
type Entry struct {
	Timestamp time.Time
	SessionID string
	Company   string
	Day       int
	Action    string
	Details   string
	EntryID   string
}

// Header is the CSV header for the activity log.
const Header = "timestamp,session_id,company,day,action,details,entry_id"

const (
	numFields    = 7
	colTimestamp = 0
	colSession   = 1
	colCompany   = 2
	colDay       = 3
	colAction    = 4
	colDetails   = 5
	colEntryID   = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.UTC().Format(time.RFC3339)
	row[colSession] = e.SessionID
	row[colCompany] = e.Company
	row[colDay] = fmt.Sprint(e.Day)
	row[colAction] = e.Action
	row[colDetails] = e.Details
	row[colEntryID] = e.EntryID
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	var day int
	if _, err := fmt.Sscan(record[colDay], &day); err != nil {
		return Entry{}, fmt.Errorf("parsing day %q: %w", record[colDay], err)
	}

	return Entry{
		Timestamp: ts,
		SessionID: record[colSession],
		Company:   record[colCompany],
		Day:       day,
		Action:    record[colAction],
		Details:   record[colDetails],
		EntryID:   record[colEntryID],
	}, nil
}

// Append writes entries to path, creating the file, its directory and the
// header if needed.
func Append(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from path. A missing file yields no entries.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Log appends to a fixed path. A Log with an empty path discards entries.
type Log struct {
	path string
	now  func() time.Time
}

// New returns a Log writing to path.
func New(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// Path returns the log file path.
func (l *Log) Path() string {
	return l.path
}

// Record stamps e with the current time if unset and appends it.
func (l *Log) Record(e Entry) error {
	if l == nil || l.path == "" {
		return nil
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = l.now()
	}
	return Append(l.path, []Entry{e})
}
