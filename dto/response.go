package dto

import "github.com/shopspring/decimal"

// ExtractionDetails tells the client which fields were recoverable when a
// receipt is rejected, so the UI can ask the user to fill in the rest.
type ExtractionDetails struct {
	AmountExtracted bool             `json:"amount_extracted"`
	DateExtracted   bool             `json:"date_extracted"`
	ExtractedAmount *decimal.Decimal `json:"extracted_amount,omitempty"`
}

// ReceiptRejectedResponse is the 422 body for a receipt whose amount or
// date could not be recovered. ExtractedText carries the normalized text
// for manual review.
type ReceiptRejectedResponse struct {
	Error         string            `json:"error"`
	ExtractedText string            `json:"extracted_text"`
	Details       ExtractionDetails `json:"details"`
}

// ReceiptUploadResponse is returned when a receipt parsed cleanly and the
// resulting transaction was persisted.
type ReceiptUploadResponse struct {
	Extracted   ParsedReceipt `json:"extracted"`
	Merchant    string        `json:"merchant,omitempty"`
	Transaction Transaction   `json:"transaction"`
}

// StatementUploadResponse summarizes a tabular statement import.
type StatementUploadResponse struct {
	Imported     int           `json:"imported"`
	Transactions []Transaction `json:"transactions"`
}

// TransactionListResponse wraps a page of stored transactions.
type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
	Count        int           `json:"count"`
}
