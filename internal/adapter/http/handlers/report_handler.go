package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	response "github.com/eduardopaniago/GestaoFrota/internal/adapter/http/dto/response"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
)

type ReportHandler struct {
	store *usecase.LedgerStore
}

func NewReportHandler(store *usecase.LedgerStore) *ReportHandler {
	return &ReportHandler{store: store}
}

// yearMonthQuery reads ?year= and ?month=. Year defaults to the current
// one; month 0 means the whole year.
func yearMonthQuery(c *gin.Context) (int, int, bool) {
	year := time.Now().UTC().Year()
	month := 0
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		year = v
	}
	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 12 {
			return 0, 0, false
		}
		month = v
	}
	return year, month, true
}

func (h *ReportHandler) IncomeStatement(c *gin.Context) {
	year, month, ok := yearMonthQuery(c)
	if !ok {
		abortWithError(c, errInvalidPayload)
		return
	}
	c.JSON(http.StatusOK, usecase.ComputeIncomeStatement(h.store.Snapshot(), year, month))
}

func (h *ReportHandler) MonthlyTrend(c *gin.Context) {
	year, _, ok := yearMonthQuery(c)
	if !ok {
		abortWithError(c, errInvalidPayload)
		return
	}
	c.JSON(http.StatusOK, usecase.ComputeMonthlyTrend(h.store.Snapshot(), year))
}

func (h *ReportHandler) CategoryTotals(c *gin.Context) {
	year, month, ok := yearMonthQuery(c)
	if !ok {
		abortWithError(c, errInvalidPayload)
		return
	}
	totals := usecase.ComputeCategoryTotals(h.store.Snapshot(), year, month)
	if totals == nil {
		totals = []usecase.CategoryTotal{}
	}
	c.JSON(http.StatusOK, totals)
}

func (h *ReportHandler) FleetReport(c *gin.Context) {
	year, _, ok := yearMonthQuery(c)
	if !ok {
		abortWithError(c, errInvalidPayload)
		return
	}
	report := usecase.ComputeTruckPerformance(h.store.Snapshot(), year)
	c.JSON(http.StatusOK, response.FleetReportResponse{
		Year:    year,
		Trucks:  report,
		Ranking: usecase.RankTruckPerformance(report),
		Totals:  usecase.ComputeFleetTotals(report),
	})
}

func (h *ReportHandler) FuelEfficiency(c *gin.Context) {
	c.JSON(http.StatusOK, usecase.ComputeFuelEfficiency(h.store.Snapshot()))
}
