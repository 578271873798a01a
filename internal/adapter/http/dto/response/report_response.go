package response

import "github.com/eduardopaniago/GestaoFrota/internal/usecase"

// FleetReportResponse bundles the yearly truck report the dashboard renders
// in one screen: fleet order, ranking and the totals row.
type FleetReportResponse struct {
	Year    int                        `json:"year"`
	Trucks  []usecase.TruckPerformance `json:"trucks"`
	Ranking []usecase.TruckPerformance `json:"ranking"`
	Totals  usecase.FleetTotals        `json:"totals"`
}
