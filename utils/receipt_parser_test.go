package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anishgupta02/receipt-extraction-service/dto"
)

func TestParseReceiptText(t *testing.T) {
	raw := "STORE ABC\nSubtotal: 45.00\nTax: 3.60\nTotal: 48.60\nDate: 27/05/2016"

	parsed, err := ParseReceiptText(raw)

	require.NoError(t, err)
	require.True(t, parsed.HasAmount())
	require.True(t, parsed.HasDate())
	assert.Equal(t, "48.60", parsed.Amount.StringFixed(2))
	assert.Equal(t, time.Date(2016, time.May, 27, 0, 0, 0, 0, time.UTC), *parsed.Date)
	assert.Equal(t, dto.CategoryOther, parsed.Category)
	assert.Equal(t, "STORE ABC\nSubtotal: 45.00\nTax: 3.60\nTotal: 48.60\nDate: 27/05/2016", parsed.RawText)
}

func TestParseReceiptTextMissingDate(t *testing.T) {
	parsed, err := ParseReceiptText("Blue Tokai Cafe\nTotal: 4.50\nthank you")

	require.NoError(t, err)
	require.True(t, parsed.HasAmount())
	assert.False(t, parsed.HasDate(), "a missing date must not block amount extraction")
	assert.Equal(t, "4.50", parsed.Amount.StringFixed(2))
	assert.Equal(t, dto.CategoryDining, parsed.Category)
}

func TestParseReceiptTextMissingAmount(t *testing.T) {
	// Only sub-unit figures: nothing plausible as a receipt total.
	parsed, err := ParseReceiptText("handwritten note, rate 0.75, nothing usable")

	require.NoError(t, err)
	assert.False(t, parsed.HasAmount())
	assert.False(t, parsed.HasDate())
	assert.Equal(t, dto.CategoryOther, parsed.Category)
}

func TestParseReceiptTextEmptyInput(t *testing.T) {
	_, err := ParseReceiptText("")

	assert.ErrorIs(t, err, dto.ErrEmptyText)
}

func TestParseReceiptTextWhitespaceOnly(t *testing.T) {
	// Whitespace-only input is messy text, not a contract violation: the
	// parser still returns a record, with every field absent.
	parsed, err := ParseReceiptText("   \n  ")

	require.NoError(t, err)
	assert.False(t, parsed.HasAmount())
	assert.False(t, parsed.HasDate())
	assert.Equal(t, dto.CategoryOther, parsed.Category)
	assert.Equal(t, "", parsed.RawText)
}
