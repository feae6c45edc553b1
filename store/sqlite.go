package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/anishgupta02/receipt-extraction-service/dto"
)

//go:embed schema.sql
var schema string

// SQLiteStore is the local TransactionStore implementation. Amounts are
// stored as decimal strings, not floats.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens or creates the database at the given path and applies the
// schema. ":memory:" is accepted for tests.
func Open(dbPath string) (*SQLiteStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) CreateTransaction(ctx context.Context, tx dto.Transaction) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, type, amount, category, date, description, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.Type, tx.Amount.String(), tx.Category,
		tx.Date.Format(time.RFC3339), tx.Description, tx.Source,
		tx.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListTransactions(ctx context.Context, limit int) ([]dto.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, amount, category, date, description, source, created_at
		 FROM transactions ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []dto.Transaction
	for rows.Next() {
		var tx dto.Transaction
		var amount, date, createdAt string
		if err := rows.Scan(&tx.ID, &tx.Type, &amount, &tx.Category, &date, &tx.Description, &tx.Source, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if tx.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse stored amount %q: %w", amount, err)
		}
		if tx.Date, err = time.Parse(time.RFC3339, date); err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", date, err)
		}
		if tx.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parse stored created_at %q: %w", createdAt, err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
