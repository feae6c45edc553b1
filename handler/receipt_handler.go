package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/anishgupta02/receipt-extraction-service/dto"
	"github.com/anishgupta02/receipt-extraction-service/service"
)

type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
	}
}

// UploadReceipt handles POST /receipts/upload. A receipt whose amount or
// date could not be recovered gets a 422 carrying the extracted text, so
// the client can offer manual entry.
func (h *ReceiptHandler) UploadReceipt(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	resp, err := h.receiptService.ProcessReceipt(c.Request.Context(), fileHeader)
	if err != nil {
		var extractionErr *dto.ExtractionError
		switch {
		case errors.As(err, &extractionErr):
			c.JSON(http.StatusUnprocessableEntity, dto.ReceiptRejectedResponse{
				Error:         extractionErr.Reason,
				ExtractedText: extractionErr.Parsed.RawText,
				Details: dto.ExtractionDetails{
					AmountExtracted: extractionErr.Parsed.HasAmount(),
					DateExtracted:   extractionErr.Parsed.HasDate(),
					ExtractedAmount: extractionErr.Parsed.Amount,
				},
			})
		case errors.Is(err, dto.ErrUnsupportedFileType):
			sendError(c, http.StatusBadRequest, "Unsupported file type", err)
		case errors.Is(err, dto.ErrNoText):
			sendError(c, http.StatusUnprocessableEntity, "No text could be extracted", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to process receipt", err)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// sendError sends a structured error response.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		log.Error().Err(err).Msg(message)
	}
	c.JSON(statusCode, dto.ErrorResponse{
		Error:   message,
		Message: errMessage(err, message),
		Code:    statusCode,
	})
}

func errMessage(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}
