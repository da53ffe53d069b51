package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	year, month, err := ParseMonth("2024-07")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 7, month)

	year, month, err = ParseMonth(" 2024-12 ")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 12, month)
}

func TestParseMonthRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{
		"", "2024", "2024-13", "2024-00", "13-99", "July 2024", "2024-07-01", "abcd-ef",
	} {
		_, _, err := ParseMonth(in)
		assert.Error(t, err, "input %q should be rejected", in)
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-07", MonthKey(2024, 7))
	assert.Equal(t, "2024-12", MonthKey(2024, 12))
	assert.Equal(t, "0099-01", MonthKey(99, 1))
}

func TestParseMonthRoundTripsMonthKey(t *testing.T) {
	year, month, err := ParseMonth(MonthKey(2025, 3))
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 3, month)
}
