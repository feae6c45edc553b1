package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/anishgupta02/receipt-extraction-service/dto"
	"github.com/anishgupta02/receipt-extraction-service/store"
)

const defaultListLimit = 50

type TransactionHandler struct {
	store store.TransactionStore
}

func NewTransactionHandler(txStore store.TransactionStore) *TransactionHandler {
	return &TransactionHandler{
		store: txStore,
	}
}

// ListTransactions handles GET /transactions.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			sendError(c, http.StatusBadRequest, "Invalid limit", err)
			return
		}
		limit = parsed
	}

	txs, err := h.store.ListTransactions(c.Request.Context(), limit)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: txs,
		Count:        len(txs),
	})
}
