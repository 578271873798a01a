package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eduardopaniago/GestaoFrota/internal/adapter/export"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
	"github.com/eduardopaniago/GestaoFrota/pkg"
)

type ExportHandler struct {
	store *usecase.LedgerStore
}

func NewExportHandler(store *usecase.LedgerStore) *ExportHandler {
	return &ExportHandler{store: store}
}

func (h *ExportHandler) serveCSV(c *gin.Context, filename string, blob []byte, err error) {
	if err != nil {
		abortWithError(c, pkg.NewDomainError("EXPORT_FAILED", "Failed to build export", err, http.StatusInternalServerError))
		return
	}
	c.Header("Content-Disposition", export.ContentDisposition(filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", blob)
}

func (h *ExportHandler) IncomeStatementCSV(c *gin.Context) {
	year, month, ok := yearMonthQuery(c)
	if !ok {
		abortWithError(c, errInvalidPayload)
		return
	}
	filename, blob, err := export.IncomeStatementCSV(h.store.Snapshot(), year, month)
	h.serveCSV(c, filename, blob, err)
}

func (h *ExportHandler) FuelRecordsCSV(c *gin.Context) {
	day := time.Now().UTC().Format("2006-01-02")
	filename, blob, err := export.FuelRecordsCSV(h.store.Snapshot(), day)
	h.serveCSV(c, filename, blob, err)
}

func (h *ExportHandler) FleetRankingCSV(c *gin.Context) {
	year, _, ok := yearMonthQuery(c)
	if !ok {
		abortWithError(c, errInvalidPayload)
		return
	}
	filename, blob, err := export.FleetRankingCSV(h.store.Snapshot(), year)
	h.serveCSV(c, filename, blob, err)
}
