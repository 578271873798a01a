package export

import (
	"strings"
	"testing"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

func exportSnapshot() entities.Snapshot {
	return entities.Snapshot{
		Categories: []entities.Category{
			{ID: "1", Name: "Fretes", Type: entities.TransactionTypeRevenue},
			{ID: "2", Name: "Seguro", Type: entities.TransactionTypeFixedCost},
		},
		Trucks: []entities.Truck{
			{ID: "t1", Plate: "ABC-1234", Model: "Volvo FH 540"},
		},
		Transactions: []entities.Transaction{
			{ID: "r1", Date: "2025-03-05", IsPaid: true, Amount: 10000, CategoryID: "1", Type: entities.TransactionTypeRevenue, TruckID: "t1",
				StartMileage: entities.Float64Ptr(0), EndMileage: entities.Float64Ptr(400)},
			{ID: "f1", Date: "2025-03-01", IsPaid: true, Amount: 2000, CategoryID: "2", Type: entities.TransactionTypeFixedCost},
			{ID: "p1", Date: "2025-03-12", IsPaid: false, Amount: 5000, CategoryID: "1", Type: entities.TransactionTypeRevenue},
			{ID: "p2", Date: "2025-03-15", IsPaid: false, Amount: 700, CategoryID: "2", Type: entities.TransactionTypeFixedCost},
		},
		FuelRecords: []entities.FuelRecord{
			{ID: "rec1", Date: "2025-03-02", TruckID: "t1", Mileage: 152000, Liters: 50, PricePerLiter: 5.89, Cost: 294.5},
		},
	}
}

func TestIncomeStatementCSV(t *testing.T) {
	t.Run("monthly", func(t *testing.T) {
		name, blob, err := IncomeStatementCSV(exportSnapshot(), 2025, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "DRE_Realizado_03-2025.csv" {
			t.Fatalf("unexpected file name %q", name)
		}

		body := string(blob)
		if !strings.HasPrefix(body, "\uFEFF") {
			t.Fatalf("expected UTF-8 BOM prefix")
		}
		for _, want := range []string{
			"DRE Realizado;03-2025",
			"Receita Bruta;10000.00",
			"Custos Fixos;2000.00",
			"Lucro Bruto;8000.00",
			"Margem (%);80.00",
			"Pendências (não inclusas no lucro)",
			"A Receber;5000.00",
			"A Pagar;700.00",
			"Fretes;10000.00",
			"Seguro;2000.00",
		} {
			if !strings.Contains(body, want) {
				t.Fatalf("expected %q in:\n%s", want, body)
			}
		}
	})

	t.Run("yearly", func(t *testing.T) {
		name, _, err := IncomeStatementCSV(exportSnapshot(), 2025, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "DRE_Realizado_2025.csv" {
			t.Fatalf("unexpected file name %q", name)
		}
	})
}

func TestFuelRecordsCSV(t *testing.T) {
	name, blob, err := FuelRecordsCSV(exportSnapshot(), "2025-03-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Abastecimentos_2025-03-10.csv" {
		t.Fatalf("unexpected file name %q", name)
	}

	body := string(blob)
	if !strings.Contains(body, "Data;Placa;KM Atual;Litros;Preco/L;Custo Total") {
		t.Fatalf("header missing in:\n%s", body)
	}
	if !strings.Contains(body, "2025-03-02;ABC-1234;152000.00;50.00;5.890;294.50") {
		t.Fatalf("fill row missing in:\n%s", body)
	}
}

func TestFleetRankingCSV(t *testing.T) {
	name, blob, err := FleetRankingCSV(exportSnapshot(), 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Ranking_Frota_2025.csv" {
		t.Fatalf("unexpected file name %q", name)
	}

	body := string(blob)
	if !strings.Contains(body, "Placa;Modelo;Faturamento;Custos Fixos;Despesas Variaveis;Combustivel;Custo Total;Resultado Liquido;KM Rodados;Custo/KM") {
		t.Fatalf("header missing in:\n%s", body)
	}
	if !strings.Contains(body, "ABC-1234;Volvo FH 540;10000.00;0.00;0.00;294.50;294.50;9705.50;400;0.74") {
		t.Fatalf("ranking row missing in:\n%s", body)
	}
}

func TestContentDisposition(t *testing.T) {
	got := ContentDisposition(`DRE_"2025".csv`)
	want := `attachment; filename="DRE_2025.csv"`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
