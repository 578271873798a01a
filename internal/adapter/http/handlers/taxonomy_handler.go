package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/eduardopaniago/GestaoFrota/internal/adapter/http/dto/request"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
)

// TaxonomyHandler serves the three reference collections: categories,
// cargo types and trucks.
type TaxonomyHandler struct {
	store *usecase.LedgerStore
}

func NewTaxonomyHandler(store *usecase.LedgerStore) *TaxonomyHandler {
	return &TaxonomyHandler{store: store}
}

func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().Categories)
}

func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	cat, err := h.store.AddCategory(payload.Name, payload.TransactionType())
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	if err := h.store.DeleteCategory(c.Param("id")); err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaxonomyHandler) ListCargoTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().CargoTypes)
}

func (h *TaxonomyHandler) CreateCargoType(c *gin.Context) {
	var payload request.CargoTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	ct, err := h.store.AddCargoType(payload.Name, payload.MeasureUnit())
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, ct)
}

func (h *TaxonomyHandler) DeleteCargoType(c *gin.Context) {
	if err := h.store.DeleteCargoType(c.Param("id")); err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TaxonomyHandler) ListTrucks(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().Trucks)
}

func (h *TaxonomyHandler) CreateTruck(c *gin.Context) {
	var payload request.TruckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	truck, err := h.store.AddTruck(payload.Plate, payload.Model)
	if err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusCreated, truck)
}

func (h *TaxonomyHandler) DeleteTruck(c *gin.Context) {
	if err := h.store.DeleteTruck(c.Param("id")); err != nil {
		abortWithError(c, mapLedgerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
