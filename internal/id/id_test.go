package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntryID(t *testing.T) {
	tests := []struct {
		seq  int
		want string
	}{
		{1, "JE001"},
		{42, "JE042"},
		{123, "JE123"},
		{1000, "JE1000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatEntryID(tt.seq))
	}
}

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "REF1", FormatReference(1))
	assert.Equal(t, "REF27", FormatReference(27))
}

func TestFormatTransactionID(t *testing.T) {
	tests := []struct {
		day, n int
		want   string
	}{
		{1, 0, "T01-000"},
		{5, 42, "T05-042"},
		{30, 999, "T30-999"},
		{12, 1234, "T12-234"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTransactionID(tt.day, tt.n))
	}
}

func TestParseEntryID(t *testing.T) {
	seq, err := ParseEntryID("JE012")
	require.NoError(t, err)
	assert.Equal(t, 12, seq)

	for _, bad := range []string{"", "JE", "XX001", "JEabc", "JE000"} {
		_, err := ParseEntryID(bad)
		assert.Error(t, err, "ParseEntryID(%q)", bad)
	}
}

func TestParseEntryIDRoundTrip(t *testing.T) {
	for _, seq := range []int{1, 9, 10, 99, 100, 999} {
		got, err := ParseEntryID(FormatEntryID(seq))
		require.NoError(t, err)
		assert.Equal(t, seq, got)
	}
}

func TestParseTransactionID(t *testing.T) {
	day, err := ParseTransactionID("T07-314")
	require.NoError(t, err)
	assert.Equal(t, 7, day)

	_, err = ParseTransactionID("07-314")
	assert.Error(t, err)
	_, err = ParseTransactionID("Tx-1")
	assert.Error(t, err)
}
