package store

import (
	"context"

	"github.com/anishgupta02/receipt-extraction-service/dto"
)

// TransactionStore persists transactions recovered from receipts and
// statements. The parsing core never touches it; only the service layer
// writes through this interface after validation.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx dto.Transaction) error
	ListTransactions(ctx context.Context, limit int) ([]dto.Transaction, error)
	Close() error
}
