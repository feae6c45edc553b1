package utils

import (
	"github.com/rs/zerolog/log"

	"github.com/anishgupta02/receipt-extraction-service/dto"
)

// ParseReceiptText recovers a structured record from one receipt's raw
// OCR/PDF text. The extractors run independently against the same
// normalized text, so a missing date never blocks amount extraction; each
// missing field is reported as absent and the caller decides acceptability.
// The only error condition is an empty input string, which is a caller
// contract violation rather than messy real-world text.
func ParseReceiptText(rawText string) (dto.ParsedReceipt, error) {
	if rawText == "" {
		return dto.ParsedReceipt{}, dto.ErrEmptyText
	}

	normalized := NormalizeText(rawText)
	receipt := dto.ParsedReceipt{
		Category: InferCategory(normalized),
		RawText:  normalized,
	}

	if amount, ok := ExtractAmount(normalized); ok {
		receipt.Amount = &amount
	} else {
		log.Warn().Msg("could not extract amount from receipt text")
	}

	if date, ok := ExtractDate(normalized); ok {
		receipt.Date = &date
	} else {
		log.Warn().Msg("could not extract date from receipt text")
	}

	return receipt, nil
}
