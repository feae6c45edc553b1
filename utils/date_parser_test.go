package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDateSupportedGrammars(t *testing.T) {
	want := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	for _, text := range []string{
		"12/31/2023",
		"31/12/2023",
		"2023-12-31",
		"2023/12/31",
		"20231231",
		"31 Dec 2023",
		"31 December 2023",
		"Dec 31, 2023",
		"December 31st, 2023",
		"31/Dec/2023",
		"31-Dec-23",
		"Date: 31/12/2023",
	} {
		got, ok := ExtractDate("paid on " + text + " thanks")
		require.True(t, ok, text)
		assert.Equal(t, want, got, text)
	}
}

func TestExtractDateDayMonthConvention(t *testing.T) {
	// Ambiguous numeric dates read as dd/MM; MM/dd applies only when dd/MM
	// is not a real calendar date.
	got, ok := ExtractDate("Date: 27/05/2016")

	require.True(t, ok)
	assert.Equal(t, time.Date(2016, time.May, 27, 0, 0, 0, 0, time.UTC), got)
}

func TestExtractDateInvalidCalendarDateSkipped(t *testing.T) {
	// 31/04/2023 matches the numeric grammar but April has 30 days; the
	// search must continue to the month-name grammar instead of aborting.
	got, ok := ExtractDate("delivered 31/04/2023, signed 30 Apr 2023")

	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.April, 30, 0, 0, 0, 0, time.UTC), got)
}

func TestExtractDateNotFound(t *testing.T) {
	_, ok := ExtractDate("no usable date in here")
	assert.False(t, ok)

	// Feb 29 outside a leap year fails calendar validation everywhere.
	_, ok = ExtractDate("29/02/2023")
	assert.False(t, ok)
}
