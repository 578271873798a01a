package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
	"github.com/eduardopaniago/GestaoFrota/pkg"
)

type SettlementHandler struct {
	settlement *usecase.SettlementUseCase
}

func NewSettlementHandler(settlement *usecase.SettlementUseCase) *SettlementHandler {
	return &SettlementHandler{settlement: settlement}
}

// Charge collects a pending receivable. The body is forwarded to the
// payment provider after the ledger overwrites amount and reference.
func (h *SettlementHandler) Charge(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	result, err := h.settlement.ChargeReceivable(c.Request.Context(), c.Param("id"), json.RawMessage(body))
	if err != nil {
		abortWithError(c, mapSettlementError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

func mapSettlementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrInvalidChargePayload), errors.Is(err, usecase.ErrGatewayBadRequest):
		return pkg.NewDomainError("INVALID_CHARGE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Transaction not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotReceivable):
		return pkg.NewDomainError("NOT_RECEIVABLE", "Transaction is not a pending receivable", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("GATEWAY_DISABLED", "Payment gateway not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGatewayUnauthorized):
		return pkg.NewDomainError("GATEWAY_UNAUTHORIZED", "Payment gateway rejected the credentials", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayCustomerNotFound), errors.Is(err, usecase.ErrGatewayInvalidUsers):
		return pkg.NewDomainError("GATEWAY_REJECTED", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrChargeDeclined):
		return pkg.NewDomainError("CHARGE_DECLINED", "Charge was not approved", err, http.StatusPaymentRequired)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
