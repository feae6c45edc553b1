package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anishgupta02/receipt-extraction-service/dto"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	tx := dto.Transaction{
		ID:          "tx-1",
		Type:        "expense",
		Amount:      decimal.RequireFromString("48.60"),
		Category:    "Other",
		Date:        time.Date(2016, time.May, 27, 0, 0, 0, 0, time.UTC),
		Description: "Extracted from receipt",
		Source:      "receipt",
		CreatedAt:   time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC),
	}

	require.NoError(t, s.CreateTransaction(ctx, tx))

	got, err := s.ListTransactions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tx.ID, got[0].ID)
	assert.True(t, got[0].Amount.Equal(tx.Amount))
	assert.True(t, got[0].Date.Equal(tx.Date))
	assert.Equal(t, "receipt", got[0].Source)
}

func TestSQLiteStoreListOrdering(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	for i, day := range []int{1, 3, 2} {
		require.NoError(t, s.CreateTransaction(ctx, dto.Transaction{
			ID:        string(rune('a' + i)),
			Type:      "expense",
			Amount:    decimal.NewFromInt(int64(day)),
			Category:  "Other",
			Date:      time.Date(2023, time.May, day, 0, 0, 0, 0, time.UTC),
			Source:    "statement",
			CreatedAt: time.Now().UTC(),
		}))
	}

	got, err := s.ListTransactions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID) // 2023-05-03
	assert.Equal(t, "c", got[1].ID) // 2023-05-02
}
