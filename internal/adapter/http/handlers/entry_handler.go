package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/eduardopaniago/GestaoFrota/internal/adapter/http/dto/request"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
	"github.com/eduardopaniago/GestaoFrota/pkg"
)

type EntryHandler struct {
	analysis *usecase.EntryAnalysisUseCase
}

func NewEntryHandler(analysis *usecase.EntryAnalysisUseCase) *EntryHandler {
	return &EntryHandler{analysis: analysis}
}

// Analyze proposes a structured entry from free text. Nothing is booked.
func (h *EntryHandler) Analyze(c *gin.Context) {
	var payload request.AnalyzeEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	result, err := h.analysis.Analyze(c.Request.Context(), payload.Text, payload.Context)
	if err != nil {
		abortWithError(c, mapAnalysisError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// Confirm books a (possibly user-edited) suggestion.
func (h *EntryHandler) Confirm(c *gin.Context) {
	var payload request.ConfirmEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	tx, err := h.analysis.Confirm(payload.Suggestion)
	if err != nil {
		abortWithError(c, mapAnalysisError(err))
		return
	}
	c.JSON(http.StatusCreated, tx)
}

func mapAnalysisError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAnalysis):
		return pkg.NewDomainError("ANALYSIS_FAILED", "Entry analysis failed, enter the record manually", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
