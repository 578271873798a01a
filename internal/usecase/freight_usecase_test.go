package usecase

import (
	"errors"
	"testing"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

func TestComputeFreightQuote(t *testing.T) {
	t.Run("validations", func(t *testing.T) {
		base := FreightQuoteInput{Mode: PricingPerTon, DistanceKm: 100, LoadAmount: 30, UnitPrice: 85, FuelPrice: 6}
		cases := []struct {
			name   string
			change func(*FreightQuoteInput)
		}{
			{"unknown mode", func(in *FreightQuoteInput) { in.Mode = "PER_KG" }},
			{"zero distance", func(in *FreightQuoteInput) { in.DistanceKm = 0 }},
			{"zero load", func(in *FreightQuoteInput) { in.LoadAmount = 0 }},
			{"zero unit price", func(in *FreightQuoteInput) { in.UnitPrice = 0 }},
			{"negative fuel price", func(in *FreightQuoteInput) { in.FuelPrice = -1 }},
			{"negative other expenses", func(in *FreightQuoteInput) { in.OtherExpenses = -1 }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				in := base
				tc.change(&in)
				if _, err := ComputeFreightQuote(in); !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
			})
		}
	})

	t.Run("per ton", func(t *testing.T) {
		quote, err := ComputeFreightQuote(FreightQuoteInput{
			Mode:          PricingPerTon,
			DistanceKm:    100,
			LoadAmount:    30,
			UnitPrice:     85,
			FuelPrice:     6,
			OtherExpenses: 150,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		approx(t, quote.SuggestedFreight, 2550, "suggested freight")
		approx(t, quote.LitersNeeded, 50, "liters needed")
		approx(t, quote.FuelCost, 300, "fuel cost")
		approx(t, quote.TotalCost, 450, "total cost")
		approx(t, quote.Profit, 2100, "profit")
		approx(t, quote.Margin, 2100.0/2550.0*100, "margin")
		approx(t, quote.CostPerKm, 4.5, "cost per km")
		approx(t, quote.RevenuePerKm, 25.5, "revenue per km")
	})

	t.Run("per cubic meter scales with distance", func(t *testing.T) {
		quote, err := ComputeFreightQuote(FreightQuoteInput{
			Mode:       PricingPerM3,
			DistanceKm: 40,
			LoadAmount: 12,
			UnitPrice:  1.5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		approx(t, quote.SuggestedFreight, 720, "suggested freight")
		approx(t, quote.LitersNeeded, 20, "liters needed")
		approx(t, quote.FuelCost, 0, "fuel cost")
		approx(t, quote.Profit, 720, "profit")
		approx(t, quote.Margin, 100, "margin")
	})
}

func TestSaveFreightQuote(t *testing.T) {
	in := FreightQuoteInput{
		Mode:       PricingPerTon,
		DistanceKm: 120,
		LoadAmount: 28,
		UnitPrice:  90,
		FuelPrice:  6,
	}

	t.Run("books a paid revenue movement", func(t *testing.T) {
		store, _ := newTestStore(t)
		tx, err := store.SaveFreightQuote(in, "Construtora Alfa", "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !tx.IsPaid || tx.Type != entities.TransactionTypeRevenue {
			t.Fatalf("expected paid revenue, got %+v", tx)
		}
		approx(t, tx.Amount, 2520, "amount")
		if tx.Description != "Frete: Construtora Alfa (Por Ton)" {
			t.Fatalf("unexpected description %q", tx.Description)
		}
		if tx.CategoryID != "1" {
			t.Fatalf("expected the freight category, got %q", tx.CategoryID)
		}
		if tx.TruckID != "t1" || tx.SubCategory != "Construtora Alfa" {
			t.Fatalf("unexpected booking fields: %+v", tx)
		}
		if tx.StartMileage == nil || tx.EndMileage == nil || *tx.EndMileage != 120 {
			t.Fatalf("expected leg 0..120, got %+v", tx)
		}
		approx(t, tx.Weight, 28, "weight")
		if tx.Volume != 0 {
			t.Fatalf("per-ton quote must not fill volume")
		}

		if got := store.Snapshot().Transactions; len(got) != 1 {
			t.Fatalf("expected transaction to be stored, got %d", len(got))
		}
	})

	t.Run("per m3 fills volume", func(t *testing.T) {
		store, _ := newTestStore(t)
		m3 := in
		m3.Mode = PricingPerM3
		tx, err := store.SaveFreightQuote(m3, "Construtora Beta", "t2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.Description != "Frete: Construtora Beta (Por m³)" {
			t.Fatalf("unexpected description %q", tx.Description)
		}
		approx(t, tx.Volume, 28, "volume")
		if tx.Weight != 0 {
			t.Fatalf("per-m³ quote must not fill weight")
		}
	})

	t.Run("unknown truck", func(t *testing.T) {
		store, _ := newTestStore(t)
		if _, err := store.SaveFreightQuote(in, "Cliente", "missing"); !errors.Is(err, ErrTruckNotFound) {
			t.Fatalf("expected ErrTruckNotFound, got %v", err)
		}
		if len(store.Snapshot().Transactions) != 0 {
			t.Fatalf("failed save must not book anything")
		}
	})

	t.Run("client name required", func(t *testing.T) {
		store, _ := newTestStore(t)
		if _, err := store.SaveFreightQuote(in, "   ", "t1"); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}
