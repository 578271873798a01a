package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/eduardopaniago/GestaoFrota/internal/adapter/http/dto/request"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
)

type MaintenanceHandler struct {
	store *usecase.LedgerStore
}

func NewMaintenanceHandler(store *usecase.LedgerStore) *MaintenanceHandler {
	return &MaintenanceHandler{store: store}
}

func (h *MaintenanceHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().Maintenances)
}

func (h *MaintenanceHandler) Create(c *gin.Context) {
	var payload request.MaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	order, err := h.store.AddMaintenance(payload.ToEntity())
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *MaintenanceHandler) Update(c *gin.Context) {
	var payload request.MaintenanceUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	order, err := h.store.UpdateMaintenance(payload.ToEntity(c.Param("id")))
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *MaintenanceHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteMaintenance(c.Param("id")); err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MaintenanceHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.MaintenanceItems(c.Param("id")))
}

func (h *MaintenanceHandler) AddItem(c *gin.Context) {
	var payload request.MaintenanceItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	tx, err := h.store.AddMaintenanceItem(c.Param("id"), payload.Description, payload.Amount)
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, tx)
}
