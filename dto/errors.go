package dto

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText is returned when a parser entry point receives an empty
	// string. Whitespace-only input is messy real-world text and is not a
	// contract violation; the empty string is.
	ErrEmptyText = errors.New("empty text input")

	// ErrUnsupportedFileType is returned for uploads that are neither a
	// supported image format nor a PDF.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrNoText is returned when the OCR/PDF extraction chain produced no
	// usable text at all.
	ErrNoText = errors.New("no text could be extracted from the document")

	// ErrNoRows is returned when a statement upload yielded zero valid rows.
	ErrNoRows = errors.New("no valid transactions found in statement")
)

// ExtractionError reports a receipt whose text was readable but did not
// yield the required fields. It carries the partial parse so the caller can
// return the raw text for manual review.
type ExtractionError struct {
	Reason string
	Parsed ParsedReceipt
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("receipt rejected: %s", e.Reason)
}

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
