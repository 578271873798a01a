package usecase

import (
	"sort"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

// IncomeStatement is the DRE for a period. Realized figures count only paid
// transactions; pending totals are listed separately and never mixed in.
type IncomeStatement struct {
	Year             int     `json:"year"`
	Month            int     `json:"month,omitempty"`
	Revenue          float64 `json:"revenue"`
	FixedCosts       float64 `json:"fixedCosts"`
	VariableExpenses float64 `json:"variableExpenses"`
	GrossProfit      float64 `json:"grossProfit"`
	NetProfit        float64 `json:"netProfit"`
	ProfitMargin     float64 `json:"profitMargin"`
	PendingRevenue   float64 `json:"pendingRevenue"`
	PendingExpenses  float64 `json:"pendingExpenses"`
}

// MonthlyResult is one point of the twelve-month trend.
type MonthlyResult struct {
	Month    int     `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Result   float64 `json:"result"`
}

// CategoryTotal is the realized amount accumulated by one category.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// inPeriod reports whether the transaction date falls in year/month.
// month 0 means the whole year.
func inPeriod(dateStr string, year, month int) bool {
	t, err := parseDay(dateStr)
	if err != nil {
		return false
	}
	if t.Year() != year {
		return false
	}
	return month == 0 || int(t.Month()) == month
}

// ComputeIncomeStatement builds the DRE from paid transactions in the
// period. Margin divides by revenue, guarded to zero.
func ComputeIncomeStatement(snap entities.Snapshot, year, month int) IncomeStatement {
	out := IncomeStatement{Year: year, Month: month}
	for _, tx := range snap.Transactions {
		if !inPeriod(tx.Date, year, month) {
			continue
		}
		if !tx.IsPaid {
			if tx.Type == entities.TransactionTypeRevenue {
				out.PendingRevenue += tx.Amount
			} else {
				out.PendingExpenses += tx.Amount
			}
			continue
		}
		switch tx.Type {
		case entities.TransactionTypeRevenue:
			out.Revenue += tx.Amount
		case entities.TransactionTypeFixedCost:
			out.FixedCosts += tx.Amount
		case entities.TransactionTypeVariableExpense:
			out.VariableExpenses += tx.Amount
		}
	}
	out.GrossProfit = out.Revenue - out.FixedCosts
	out.NetProfit = out.GrossProfit - out.VariableExpenses
	if out.Revenue > 0 {
		out.ProfitMargin = out.NetProfit / out.Revenue * 100
	}
	return out
}

// ComputeMonthlyTrend returns twelve realized revenue/expense points for a
// year. Expenses lump fixed costs and variable expenses together.
func ComputeMonthlyTrend(snap entities.Snapshot, year int) []MonthlyResult {
	out := make([]MonthlyResult, 12)
	for i := range out {
		out[i].Month = i + 1
	}
	for _, tx := range snap.Transactions {
		if !tx.IsPaid {
			continue
		}
		t, err := parseDay(tx.Date)
		if err != nil || t.Year() != year {
			continue
		}
		p := &out[int(t.Month())-1]
		if tx.Type == entities.TransactionTypeRevenue {
			p.Revenue += tx.Amount
		} else {
			p.Expenses += tx.Amount
		}
	}
	for i := range out {
		out[i].Result = out[i].Revenue - out[i].Expenses
	}
	return out
}

// ComputeCategoryTotals sums realized amounts per category for the period,
// in category declaration order, omitting untouched categories.
func ComputeCategoryTotals(snap entities.Snapshot, year, month int) []CategoryTotal {
	totals := map[string]float64{}
	for _, tx := range snap.Transactions {
		if tx.IsPaid && inPeriod(tx.Date, year, month) {
			totals[tx.CategoryID] += tx.Amount
		}
	}
	var out []CategoryTotal
	for _, cat := range snap.Categories {
		if total, ok := totals[cat.ID]; ok {
			out = append(out, CategoryTotal{Name: cat.Name, Total: total})
		}
	}
	return out
}

// CategoryAmount is one slice of a truck's expense breakdown.
type CategoryAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// TruckPerformance aggregates a truck's year: revenue, costs split into
// fuel and other variable expenses, and per-kilometer ratios.
type TruckPerformance struct {
	TruckID          string           `json:"truckId"`
	Plate            string           `json:"plate"`
	Model            string           `json:"model"`
	Revenue          float64          `json:"revenue"`
	FixedCosts       float64          `json:"fixedCosts"`
	FuelCost         float64          `json:"fuelCost"`
	VariableExpenses float64          `json:"variableExpenses"`
	TotalCost        float64          `json:"totalCost"`
	NetResult        float64          `json:"netResult"`
	TotalKm          float64          `json:"totalKm"`
	CostPerKm        float64          `json:"costPerKm"`
	RevenuePerKm     float64          `json:"revenuePerKm"`
	Breakdown        []CategoryAmount `json:"breakdown"`
}

// FleetTotals is the performance sum over every truck.
type FleetTotals struct {
	Revenue   float64 `json:"revenue"`
	TotalCost float64 `json:"totalCost"`
	NetResult float64 `json:"netResult"`
	TotalKm   float64 `json:"totalKm"`
}

// ComputeTruckPerformance builds the yearly per-truck report in fleet
// declaration order. Fuel cost comes from the fuel records; transactions
// paired to a fill are excluded from the variable bucket so the litre cost
// is never counted twice.
func ComputeTruckPerformance(snap entities.Snapshot, year int) []TruckPerformance {
	categoryName := map[string]string{}
	for _, cat := range snap.Categories {
		categoryName[cat.ID] = cat.Name
	}
	fuelBucket := "Combustível"
	if cat, ok := findCategoryByName(snap.Categories, "combustível"); ok {
		fuelBucket = cat.Name
	}

	out := make([]TruckPerformance, 0, len(snap.Trucks))
	for _, truck := range snap.Trucks {
		perf := TruckPerformance{TruckID: truck.ID, Plate: truck.Plate, Model: truck.Model}
		byCategory := map[string]float64{}

		for _, tx := range snap.Transactions {
			if tx.TruckID != truck.ID || !inPeriod(tx.Date, year, 0) {
				continue
			}
			if tx.Type == entities.TransactionTypeRevenue {
				perf.Revenue += tx.Amount
				if km, ok := tx.LegKilometers(); ok {
					perf.TotalKm += km
				}
				continue
			}
			if tx.FuelRecordID != "" {
				continue
			}
			if tx.Type == entities.TransactionTypeFixedCost {
				perf.FixedCosts += tx.Amount
			} else {
				perf.VariableExpenses += tx.Amount
			}
			name := categoryName[tx.CategoryID]
			if name == "" {
				name = "Outros"
			}
			byCategory[name] += tx.Amount
		}

		for _, rec := range snap.FuelRecords {
			if rec.TruckID == truck.ID && inPeriod(rec.Date, year, 0) {
				perf.FuelCost += rec.Cost
			}
		}
		if perf.FuelCost > 0 {
			byCategory[fuelBucket] += perf.FuelCost
		}

		perf.TotalCost = perf.FixedCosts + perf.FuelCost + perf.VariableExpenses
		perf.NetResult = perf.Revenue - perf.TotalCost
		if perf.TotalKm > 0 {
			perf.CostPerKm = perf.TotalCost / perf.TotalKm
			perf.RevenuePerKm = perf.Revenue / perf.TotalKm
		}

		names := make([]string, 0, len(byCategory))
		for name := range byCategory {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			perf.Breakdown = append(perf.Breakdown, CategoryAmount{Name: name, Amount: byCategory[name]})
		}
		out = append(out, perf)
	}
	return out
}

// RankTruckPerformance orders a performance report by net result, best
// first. The input slice is not modified.
func RankTruckPerformance(report []TruckPerformance) []TruckPerformance {
	ranked := append([]TruckPerformance(nil), report...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].NetResult > ranked[j].NetResult
	})
	return ranked
}

// ComputeFleetTotals sums a performance report.
func ComputeFleetTotals(report []TruckPerformance) FleetTotals {
	var out FleetTotals
	for _, perf := range report {
		out.Revenue += perf.Revenue
		out.TotalCost += perf.TotalCost
		out.NetResult += perf.NetResult
		out.TotalKm += perf.TotalKm
	}
	return out
}

// FuelEfficiency is consumption derived from a truck's fill history.
type FuelEfficiency struct {
	TruckID     string  `json:"truckId"`
	Plate       string  `json:"plate"`
	Model       string  `json:"model"`
	HasData     bool    `json:"hasData"`
	KmTraveled  float64 `json:"kmTraveled"`
	TotalLiters float64 `json:"totalLiters"`
	Average     float64 `json:"average"`
}

// ComputeFuelEfficiency derives km/L per truck from odometer deltas.
// Consumption between fills attributes each fill's litres to the distance
// ending at it, so the first record contributes mileage only. Fewer than
// two fills yields no data.
func ComputeFuelEfficiency(snap entities.Snapshot) []FuelEfficiency {
	out := make([]FuelEfficiency, 0, len(snap.Trucks))
	for _, truck := range snap.Trucks {
		eff := FuelEfficiency{TruckID: truck.ID, Plate: truck.Plate, Model: truck.Model}

		var recs []entities.FuelRecord
		for _, rec := range snap.FuelRecords {
			if rec.TruckID == truck.ID {
				recs = append(recs, rec)
			}
		}
		sort.SliceStable(recs, func(i, j int) bool { return recs[i].Date < recs[j].Date })

		if len(recs) >= 2 {
			eff.HasData = true
			eff.KmTraveled = recs[len(recs)-1].Mileage - recs[0].Mileage
			for _, rec := range recs[1:] {
				eff.TotalLiters += rec.Liters
			}
			if eff.TotalLiters > 0 {
				eff.Average = eff.KmTraveled / eff.TotalLiters
			}
		}
		out = append(out, eff)
	}
	return out
}
