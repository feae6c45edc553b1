package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the closed set of coarse spending labels assigned to a
// single receipt. Statement rows carry their own free-text category token.
type Category string

const (
	CategoryGroceries Category = "Groceries"
	CategoryDining    Category = "Dining"
	CategoryTransport Category = "Transport"
	CategoryRetail    Category = "Retail"
	CategoryGift      Category = "Gift"
	CategoryOther     Category = "Other"
)

// EntryType marks a statement row as money out or money in.
type EntryType string

const (
	EntryDebit  EntryType = "debit"
	EntryCredit EntryType = "credit"
)

// ParsedReceipt is the structured result recovered from one receipt's text.
// Amount and Date are nil when the extractors found nothing, so a missing
// value is never confused with a zero value. The record is built once and
// never mutated afterwards.
type ParsedReceipt struct {
	Amount   *decimal.Decimal `json:"amount"`
	Date     *time.Time       `json:"date"`
	Category Category         `json:"category"`
	RawText  string           `json:"raw_text"`
}

func (r ParsedReceipt) HasAmount() bool {
	return r.Amount != nil
}

func (r ParsedReceipt) HasDate() bool {
	return r.Date != nil
}

// StatementRow is one recovered transaction line from a tabular statement.
// Rows are independent of each other; the returned sequence preserves
// source line order.
type StatementRow struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Type        EntryType       `json:"type"`
}

// Transaction is the persisted form of a parsed receipt or statement row.
type Transaction struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"` // expense or income
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Source      string          `json:"source"` // receipt or statement
	CreatedAt   time.Time       `json:"created_at"`
}
