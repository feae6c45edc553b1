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
	"github.com/shopspring/decimal"

	"github.com/anishgupta02/receipt-extraction-service/dto"
	"github.com/anishgupta02/receipt-extraction-service/metrics"
	"github.com/anishgupta02/receipt-extraction-service/store"
	"github.com/anishgupta02/receipt-extraction-service/utils"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
}

var minTransactionAmount = decimal.NewFromInt(1)

// ReceiptService turns an uploaded receipt (image or PDF) into a persisted
// expense transaction: extract text, parse it, validate the required
// fields, store the result.
type ReceiptService struct {
	ocr   OCRClient
	pdf   PDFProcessor
	store store.TransactionStore
}

func NewReceiptService(ocr OCRClient, pdf PDFProcessor, txStore store.TransactionStore) *ReceiptService {
	return &ReceiptService{
		ocr:   ocr,
		pdf:   pdf,
		store: txStore,
	}
}

// ProcessReceipt handles one receipt upload end to end. A receipt whose
// amount or date could not be recovered, or whose amount is below 1, is
// reported as *dto.ExtractionError carrying the partial parse so the
// handler can return the text for manual review.
func (s *ReceiptService) ProcessReceipt(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.ReceiptUploadResponse, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))

	var text, merchant string
	switch {
	case imageExtensions[ext]:
		data, err := readUpload(fileHeader)
		if err != nil {
			return nil, err
		}
		merchant = merchantFromUPIQR(data)
		text, err = s.ocr.ExtractTextFromUpload(fileHeader)
		if err != nil {
			metrics.ReceiptsProcessed.WithLabelValues("failed").Inc()
			return nil, fmt.Errorf("image OCR failed: %w", err)
		}
	case ext == ".pdf":
		data, err := readUpload(fileHeader)
		if err != nil {
			return nil, err
		}
		text, err = textFromPDF(s.ocr, s.pdf, data)
		if err != nil {
			metrics.ReceiptsProcessed.WithLabelValues("failed").Inc()
			return nil, err
		}
	default:
		return nil, dto.ErrUnsupportedFileType
	}

	if strings.TrimSpace(text) == "" {
		metrics.ReceiptsProcessed.WithLabelValues("failed").Inc()
		return nil, dto.ErrNoText
	}

	parsed, err := utils.ParseReceiptText(text)
	if err != nil {
		return nil, err
	}

	if !parsed.HasAmount() || !parsed.HasDate() {
		metrics.ReceiptsProcessed.WithLabelValues("rejected").Inc()
		return nil, &dto.ExtractionError{
			Reason: "could not extract amount or date from receipt",
			Parsed: parsed,
		}
	}
	if parsed.Amount.LessThan(minTransactionAmount) {
		metrics.ReceiptsProcessed.WithLabelValues("rejected").Inc()
		return nil, &dto.ExtractionError{
			Reason: "extracted amount is too low or invalid",
			Parsed: parsed,
		}
	}

	// The QR payee name is a stronger merchant signal than OCR text; use
	// it when keyword inference over the text came up empty.
	category := parsed.Category
	if category == dto.CategoryOther && merchant != "" {
		category = utils.InferCategory(merchant)
	}
	description := "Extracted from receipt"
	if merchant != "" {
		description = "Receipt from " + merchant
	}

	tx := dto.Transaction{
		ID:          uuid.NewString(),
		Type:        "expense",
		Amount:      *parsed.Amount,
		Category:    string(category),
		Date:        *parsed.Date,
		Description: description,
		Source:      "receipt",
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	metrics.ReceiptsProcessed.WithLabelValues("parsed").Inc()
	log.Info().
		Str("transaction_id", tx.ID).
		Str("amount", tx.Amount.String()).
		Str("category", tx.Category).
		Msg("receipt processed")

	return &dto.ReceiptUploadResponse{
		Extracted:   parsed,
		Merchant:    merchant,
		Transaction: tx,
	}, nil
}
