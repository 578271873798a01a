package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/eduardopaniago/GestaoFrota/internal/adapter/http/dto/request"
	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
)

type TransactionHandler struct {
	store *usecase.LedgerStore
}

func NewTransactionHandler(store *usecase.LedgerStore) *TransactionHandler {
	return &TransactionHandler{store: store}
}

func (h *TransactionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().Transactions)
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	tx, err := h.store.AddTransaction(payload.ToEntity())
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteTransaction(c.Param("id")); err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TransactionHandler) MarkAsPaid(c *gin.Context) {
	tx, err := h.store.MarkTransactionAsPaid(c.Param("id"))
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (h *TransactionHandler) Postpone(c *gin.Context) {
	tx, err := h.store.PostponeDueDate(c.Param("id"))
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, tx)
}

// Pending lists the due, unpaid movements the notification bell shows.
func (h *TransactionHandler) Pending(c *gin.Context) {
	pending := h.store.PendingTransactions()
	if pending == nil {
		pending = []entities.Transaction{}
	}
	c.JSON(http.StatusOK, pending)
}
