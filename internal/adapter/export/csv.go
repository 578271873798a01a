// Package export renders ledger reports as CSV files the operators open in
// Excel. Semicolon-separated with a UTF-8 BOM, which is what Brazilian
// Excel locales expect.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
)

const bom = "\uFEFF"

func writeRows(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(bom)
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("writing csv: %w", err)
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// IncomeStatementCSV renders the realized DRE plus the per-category detail
// for the period. Month 0 covers the whole year.
func IncomeStatementCSV(snap entities.Snapshot, year, month int) (string, []byte, error) {
	dre := usecase.ComputeIncomeStatement(snap, year, month)
	period := fmt.Sprintf("%d", year)
	if month > 0 {
		period = fmt.Sprintf("%02d-%d", month, year)
	}

	rows := [][]string{
		{"DRE Realizado", period},
		{},
		{"Receita Bruta", money(dre.Revenue)},
		{"Custos Fixos", money(dre.FixedCosts)},
		{"Lucro Bruto", money(dre.GrossProfit)},
		{"Despesas Variáveis", money(dre.VariableExpenses)},
		{"Lucro Líquido", money(dre.NetProfit)},
		{"Margem (%)", money(dre.ProfitMargin)},
		{},
		{"Pendências (não inclusas no lucro)"},
		{"A Receber", money(dre.PendingRevenue)},
		{"A Pagar", money(dre.PendingExpenses)},
		{},
		{"Categoria", "Total"},
	}
	for _, ct := range usecase.ComputeCategoryTotals(snap, year, month) {
		rows = append(rows, []string{ct.Name, money(ct.Total)})
	}

	blob, err := writeRows(rows)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("DRE_Realizado_%s.csv", period), blob, nil
}

// FuelRecordsCSV renders every fill with its truck, newest layout the
// workshop is used to. The file name carries the export day.
func FuelRecordsCSV(snap entities.Snapshot, exportDay string) (string, []byte, error) {
	plateByTruck := map[string]string{}
	for _, t := range snap.Trucks {
		plateByTruck[t.ID] = t.Plate
	}

	rows := [][]string{
		{"Data", "Placa", "KM Atual", "Litros", "Preco/L", "Custo Total"},
	}
	for _, rec := range snap.FuelRecords {
		plate := plateByTruck[rec.TruckID]
		if plate == "" {
			plate = "-"
		}
		rows = append(rows, []string{
			rec.Date,
			plate,
			money(rec.Mileage),
			money(rec.Liters),
			fmt.Sprintf("%.3f", rec.PricePerLiter),
			money(rec.Cost),
		})
	}

	blob, err := writeRows(rows)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Abastecimentos_%s.csv", exportDay), blob, nil
}

// FleetRankingCSV renders the yearly truck ranking, best net result first.
func FleetRankingCSV(snap entities.Snapshot, year int) (string, []byte, error) {
	ranked := usecase.RankTruckPerformance(usecase.ComputeTruckPerformance(snap, year))

	rows := [][]string{
		{"Placa", "Modelo", "Faturamento", "Custos Fixos", "Despesas Variaveis", "Combustivel", "Custo Total", "Resultado Liquido", "KM Rodados", "Custo/KM"},
	}
	for _, perf := range ranked {
		rows = append(rows, []string{
			perf.Plate,
			perf.Model,
			money(perf.Revenue),
			money(perf.FixedCosts),
			money(perf.VariableExpenses),
			money(perf.FuelCost),
			money(perf.TotalCost),
			money(perf.NetResult),
			strconv.FormatFloat(perf.TotalKm, 'f', -1, 64),
			money(perf.CostPerKm),
		})
	}

	blob, err := writeRows(rows)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("Ranking_Frota_%d.csv", year), blob, nil
}

// ContentDisposition is the attachment header value for a generated file.
func ContentDisposition(filename string) string {
	return fmt.Sprintf("attachment; filename=%q", strings.ReplaceAll(filename, `"`, ""))
}
