package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
	"github.com/eduardopaniago/GestaoFrota/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// mapLedgerError translates usecase sentinels into the API error shape.
func mapLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCategoryInUse),
		errors.Is(err, usecase.ErrCargoTypeInUse),
		errors.Is(err, usecase.ErrTruckInUse),
		errors.Is(err, usecase.ErrMaintenanceHasItems):
		return pkg.NewDomainError("REFERENCE_CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrTransactionNotFound),
		errors.Is(err, usecase.ErrMaintenanceNotFound),
		errors.Is(err, usecase.ErrBudgetNotFound),
		errors.Is(err, usecase.ErrOptionNotFound),
		errors.Is(err, usecase.ErrTruckNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
