package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/eduardopaniago/GestaoFrota/internal/adapter/http/dto/request"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
)

type BudgetHandler struct {
	store *usecase.LedgerStore
}

func NewBudgetHandler(store *usecase.LedgerStore) *BudgetHandler {
	return &BudgetHandler{store: store}
}

func (h *BudgetHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().Budgets)
}

func (h *BudgetHandler) Create(c *gin.Context) {
	var payload request.BudgetRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	req, err := h.store.AddBudgetRequest(payload.Title, payload.ProductName, payload.Description)
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, req)
}

func (h *BudgetHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteBudgetRequest(c.Param("id")); err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BudgetHandler) AddOption(c *gin.Context) {
	var payload request.BudgetOptionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	opt, err := h.store.AddBudgetOption(c.Param("id"), payload.Supplier, payload.Amount, payload.Details)
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, opt)
}

func (h *BudgetHandler) DeleteOption(c *gin.Context) {
	if err := h.store.DeleteBudgetOption(c.Param("id"), c.Param("optionId")); err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BudgetHandler) SelectOption(c *gin.Context) {
	if err := h.store.SelectBudgetOption(c.Param("id"), c.Param("optionId")); err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
