package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/eduardopaniago/GestaoFrota/internal/adapter/http/dto/request"
	response "github.com/eduardopaniago/GestaoFrota/internal/adapter/http/dto/response"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
)

type SettingsHandler struct {
	store *usecase.LedgerStore
}

func NewSettingsHandler(store *usecase.LedgerStore) *SettingsHandler {
	return &SettingsHandler{store: store}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, response.SettingsFromSnapshot(h.store.Snapshot()))
}

func (h *SettingsHandler) SetCompanyName(c *gin.Context) {
	var payload request.CompanyNameRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	if err := h.store.SetCompanyName(payload.CompanyName); err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.SettingsFromSnapshot(h.store.Snapshot()))
}

func (h *SettingsHandler) SetUser(c *gin.Context) {
	var payload request.UserProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	if err := h.store.SetUser(payload.ToEntity()); err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.SettingsFromSnapshot(h.store.Snapshot()))
}

func (h *SettingsHandler) ClearUser(c *gin.Context) {
	if err := h.store.SetUser(nil); err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
