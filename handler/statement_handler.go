package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anishgupta02/receipt-extraction-service/dto"
	"github.com/anishgupta02/receipt-extraction-service/service"
)

type StatementHandler struct {
	statementService *service.StatementService
}

func NewStatementHandler(statementService *service.StatementService) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
	}
}

// UploadStatement handles POST /statements/upload.
func (h *StatementHandler) UploadStatement(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, "No file uploaded", err)
		return
	}

	resp, err := h.statementService.ProcessStatement(c.Request.Context(), fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrNoRows):
			sendError(c, http.StatusUnprocessableEntity, "No valid transactions found in statement", err)
		case errors.Is(err, dto.ErrUnsupportedFileType):
			sendError(c, http.StatusBadRequest, "Only PDF statements are supported", err)
		case errors.Is(err, dto.ErrNoText):
			sendError(c, http.StatusUnprocessableEntity, "No text could be extracted", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to process statement", err)
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
