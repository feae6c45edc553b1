package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/anishgupta02/receipt-extraction-service/dto"
	"github.com/anishgupta02/receipt-extraction-service/metrics"
	"github.com/anishgupta02/receipt-extraction-service/store"
	"github.com/anishgupta02/receipt-extraction-service/utils"
)

// StatementService imports a tabular bank/card statement PDF as a batch of
// transactions. Malformed rows are dropped by the parser; an upload that
// yields no valid rows at all is reported as dto.ErrNoRows.
type StatementService struct {
	ocr   OCRClient
	pdf   PDFProcessor
	store store.TransactionStore
}

func NewStatementService(ocr OCRClient, pdf PDFProcessor, txStore store.TransactionStore) *StatementService {
	return &StatementService{
		ocr:   ocr,
		pdf:   pdf,
		store: txStore,
	}
}

func (s *StatementService) ProcessStatement(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.StatementUploadResponse, error) {
	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".pdf" {
		return nil, dto.ErrUnsupportedFileType
	}

	data, err := readUpload(fileHeader)
	if err != nil {
		return nil, err
	}

	text, err := textFromPDF(s.ocr, s.pdf, data)
	if err != nil {
		return nil, err
	}

	rows, err := utils.ParseTabularStatement(text)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, dto.ErrNoRows
	}
	metrics.StatementRowsExtracted.Add(float64(len(rows)))

	created, err := s.storeRows(ctx, rows)
	if err != nil {
		return nil, err
	}

	log.Info().Int("imported", len(created)).Msg("statement processed")
	return &dto.StatementUploadResponse{
		Imported:     len(created),
		Transactions: created,
	}, nil
}

// storeRows persists statement rows in source order. Debits become
// expenses, credits become income.
func (s *StatementService) storeRows(ctx context.Context, rows []dto.StatementRow) ([]dto.Transaction, error) {
	created := make([]dto.Transaction, 0, len(rows))
	now := time.Now().UTC()
	for _, row := range rows {
		txType := "expense"
		if row.Type == dto.EntryCredit {
			txType = "income"
		}
		tx := dto.Transaction{
			ID:          uuid.NewString(),
			Type:        txType,
			Amount:      row.Amount,
			Category:    row.Category,
			Date:        row.Date,
			Description: row.Description,
			Source:      "statement",
			CreatedAt:   now,
		}
		if err := s.store.CreateTransaction(ctx, tx); err != nil {
			return nil, fmt.Errorf("failed to persist statement row: %w", err)
		}
		created = append(created, tx)
	}
	return created, nil
}
