package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmountPrefersTotalKeyword(t *testing.T) {
	text := "Thank you for shopping\nItems 3\nSubtotal: 45.00\ntotal: $123.45\nHave a nice day"

	got, ok := ExtractAmount(text)

	require.True(t, ok)
	assert.Equal(t, "123.45", got.StringFixed(2))
}

func TestExtractAmountKeywordTierFallback(t *testing.T) {
	text := "Receipt #991\nAmount: 77.20\nCashier 4"

	got, ok := ExtractAmount(text)

	require.True(t, ok)
	assert.Equal(t, "77.20", got.StringFixed(2))
}

func TestExtractAmountTaxReconciliation(t *testing.T) {
	text := "subtotal: 100.00\ntax: 8.00\n108.00"

	got, ok := ExtractAmount(text)

	require.True(t, ok)
	assert.Equal(t, "108.00", got.StringFixed(2), "tax-inclusive total must win over the pre-tax subtotal")
}

func TestExtractAmountTaxDoesNotOverrideWithoutMatch(t *testing.T) {
	// The total already includes tax; nothing equals total+tax, so the
	// selected total stands.
	text := "Subtotal: 45.00\nTax: 3.60\nTotal: 48.60"

	got, ok := ExtractAmount(text)

	require.True(t, ok)
	assert.Equal(t, "48.60", got.StringFixed(2))
}

func TestExtractAmountLargestStandaloneFallback(t *testing.T) {
	text := "3 12.50 7"

	got, ok := ExtractAmount(text)

	require.True(t, ok)
	assert.Equal(t, "12.50", got.StringFixed(2))
}

func TestExtractAmountStripsCurrencyAndCommas(t *testing.T) {
	text := "Total: £1,234.56"

	got, ok := ExtractAmount(text)

	require.True(t, ok)
	assert.Equal(t, "1234.56", got.StringFixed(2))
}

func TestExtractAmountNotFound(t *testing.T) {
	_, ok := ExtractAmount("no figures in this text at all")

	assert.False(t, ok)
}

func TestExtractAmountSubUnitFiguresRejectedInFallback(t *testing.T) {
	// 0.50 is below the plausibility floor and there is no keyword anchor.
	_, ok := ExtractAmount("0.50")

	assert.False(t, ok)
}

func TestExtractAmountNeverNegative(t *testing.T) {
	for _, text := range []string{
		"Total: 48.60",
		"refund -20.00 total: 15.00",
		"3 12.50 7",
	} {
		got, ok := ExtractAmount(text)
		require.True(t, ok, text)
		assert.False(t, got.IsNegative(), text)
	}
}

func TestParseMoney(t *testing.T) {
	got, ok := parseMoney("$ 1,234.50")
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("1234.50")))

	_, ok = parseMoney("")
	assert.False(t, ok)
}
