package id

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	entryPrefix     = "JE"
	referencePrefix = "REF"
)

// FormatEntryID returns an entry ID like "JE001".
func FormatEntryID(seq int) string {
	return fmt.Sprintf("%s%03d", entryPrefix, seq)
}

// FormatReference returns a posting reference like "REF1".
func FormatReference(seq int) string {
	return fmt.Sprintf("%s%d", referencePrefix, seq)
}

// FormatTransactionID returns a transaction ID like "T05-042".
// n is reduced modulo 1000.
func FormatTransactionID(day, n int) string {
	return fmt.Sprintf("T%02d-%03d", day, n%1000)
}

// ParseEntryID parses "JE012" into its sequence number.
func ParseEntryID(id string) (int, error) {
	digits, ok := strings.CutPrefix(id, entryPrefix)
	if !ok || digits == "" {
		return 0, fmt.Errorf("invalid entry ID format: %q", id)
	}
	seq, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid sequence in entry ID %q: %w", id, err)
	}
	if seq < 1 {
		return 0, fmt.Errorf("invalid sequence in entry ID %q", id)
	}
	return seq, nil
}

// ParseTransactionID parses "T05-042" into its day.
func ParseTransactionID(id string) (day int, err error) {
	rest, ok := strings.CutPrefix(id, "T")
	if !ok {
		return 0, fmt.Errorf("invalid transaction ID format: %q", id)
	}
	dayPart, _, ok := strings.Cut(rest, "-")
	if !ok {
		return 0, fmt.Errorf("invalid transaction ID format: %q", id)
	}
	day, err = strconv.Atoi(dayPart)
	if err != nil {
		return 0, fmt.Errorf("invalid day in transaction ID %q: %w", id, err)
	}
	return day, nil
}
