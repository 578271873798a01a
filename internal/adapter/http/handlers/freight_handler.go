package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/eduardopaniago/GestaoFrota/internal/adapter/http/dto/request"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
)

type FreightHandler struct {
	store *usecase.LedgerStore
}

func NewFreightHandler(store *usecase.LedgerStore) *FreightHandler {
	return &FreightHandler{store: store}
}

// Quote prices a load without touching the ledger.
func (h *FreightHandler) Quote(c *gin.Context) {
	var payload request.FreightQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	quote, err := usecase.ComputeFreightQuote(payload.ToInput())
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, quote)
}

// Save books the quote as a revenue transaction.
func (h *FreightHandler) Save(c *gin.Context) {
	var payload request.SaveFreightRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	tx, err := h.store.SaveFreightQuote(payload.ToInput(), payload.ClientName, payload.TruckID)
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, tx)
}
