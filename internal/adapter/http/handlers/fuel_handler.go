package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/eduardopaniago/GestaoFrota/internal/adapter/http/dto/request"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
)

type FuelHandler struct {
	store *usecase.LedgerStore
}

func NewFuelHandler(store *usecase.LedgerStore) *FuelHandler {
	return &FuelHandler{store: store}
}

func (h *FuelHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().FuelRecords)
}

func (h *FuelHandler) Create(c *gin.Context) {
	var payload request.FuelRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	rec, err := h.store.AddFuelRecord(usecase.FuelRecordInput{
		Date:          payload.Date,
		TruckID:       payload.TruckID,
		Mileage:       payload.Mileage,
		Liters:        payload.Liters,
		PricePerLiter: payload.PricePerLiter,
		Cost:          payload.Cost,
	})
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *FuelHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteFuelRecord(c.Param("id")); err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
