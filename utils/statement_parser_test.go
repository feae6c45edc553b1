package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anishgupta02/receipt-extraction-service/dto"
)

func TestParseTabularStatementStrictGrammar(t *testing.T) {
	rows, err := ParseTabularStatement("2023-05-01 Coffee Dining 4.50 debit")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, "Coffee", rows[0].Description)
	assert.Equal(t, "Dining", rows[0].Category)
	assert.Equal(t, "4.50", rows[0].Amount.StringFixed(2))
	assert.Equal(t, dto.EntryDebit, rows[0].Type)
}

func TestParseTabularStatementDropsMalformedRows(t *testing.T) {
	raw := "Table 1\n" +
		"Date Description Category Amount Type\n" +
		"2023-05-01 Coffee Dining 4.50 debit\n" +
		"2023-05-02 Salary Income 1,200.00 credit\n" +
		"garbage line that is not a row\n" +
		"2023-05-03 Fuel Transport 30.00 debit\n" +
		"4\n"

	rows, err := ParseTabularStatement(raw)

	require.NoError(t, err)
	require.Len(t, rows, 3, "malformed row and header/footer lines are dropped, not fatal")
	assert.Equal(t, "Coffee", rows[0].Description)
	assert.Equal(t, "Salary", rows[1].Description)
	assert.Equal(t, "1200.00", rows[1].Amount.StringFixed(2))
	assert.Equal(t, dto.EntryCredit, rows[1].Type)
	assert.Equal(t, "Fuel", rows[2].Description)
}

func TestParseTabularStatementFallbackPass(t *testing.T) {
	// None of these match the strict grammar (multi-word descriptions,
	// dd/MM dates), but each has >= 5 tokens with a parseable leading date
	// and a trailing debit/credit marker.
	raw := "01/05/2023 Coffee at Blue Tokai Dining 4.50 debit\n" +
		"02/05/2023 Monthly metro pass Transport 120.00 debit"

	rows, err := ParseTabularStatement(raw)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, "Coffee at Blue Tokai", rows[0].Description)
	assert.Equal(t, "Dining", rows[0].Category)
	assert.Equal(t, "4.50", rows[0].Amount.StringFixed(2))
	assert.Equal(t, "Monthly metro pass", rows[1].Description)
}

func TestParseTabularStatementFallbackOnlyWhenStrictEmpty(t *testing.T) {
	raw := "2023-05-01 Coffee Dining 4.50 debit\n" +
		"01/05/2023 Coffee at Blue Tokai Dining 4.50 debit"

	rows, err := ParseTabularStatement(raw)

	require.NoError(t, err)
	require.Len(t, rows, 1, "fallback pass must not run once the strict grammar produced rows")
	assert.Equal(t, "Coffee", rows[0].Description)
}

func TestParseTabularStatementFallbackRejectsBadType(t *testing.T) {
	rows, err := ParseTabularStatement("01/05/2023 Coffee at Blue Tokai Dining 4.50 payment")

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseTabularStatementWhitespaceOnly(t *testing.T) {
	rows, err := ParseTabularStatement("   \n\t \n ")

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseTabularStatementEmptyInput(t *testing.T) {
	_, err := ParseTabularStatement("")

	assert.ErrorIs(t, err, dto.ErrEmptyText)
}
