package usecase

import (
	"errors"
	"testing"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

func TestAddCategory(t *testing.T) {
	store, _ := newTestStore(t)

	t.Run("trims name", func(t *testing.T) {
		cat, err := store.AddCategory("  Impostos  ", entities.TransactionTypeFixedCost)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cat.Name != "Impostos" {
			t.Fatalf("expected trimmed name, got %q", cat.Name)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := store.AddCategory("   ", entities.TransactionTypeRevenue); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		if _, err := store.AddCategory("Pneus", "OTHER"); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("blocked while referenced", func(t *testing.T) {
		store, _ := newTestStore(t)
		if _, err := store.AddTransaction(entities.Transaction{
			Date:       "2025-03-01",
			Amount:     100,
			CategoryID: "6",
			Type:       entities.TransactionTypeVariableExpense,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := store.DeleteCategory("6"); !errors.Is(err, ErrCategoryInUse) {
			t.Fatalf("expected ErrCategoryInUse, got %v", err)
		}
		if len(store.Snapshot().Categories) != 6 {
			t.Fatalf("blocked delete must not change categories")
		}
	})

	t.Run("unreferenced", func(t *testing.T) {
		store, _ := newTestStore(t)
		if err := store.DeleteCategory("6"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(store.Snapshot().Categories) != 5 {
			t.Fatalf("expected 5 categories after delete")
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		store, _ := newTestStore(t)
		if err := store.DeleteCategory("missing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCargoTypes(t *testing.T) {
	store, _ := newTestStore(t)

	ct, err := store.AddCargoType("Cascalho", entities.MeasureUnitWeight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.AddCargoType("Seixo", "LITERS"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for bad unit, got %v", err)
	}

	if err := store.DeleteCargoType(ct.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := store.AddTransaction(entities.Transaction{
		Date:        "2025-03-01",
		Amount:      100,
		CategoryID:  "1",
		Type:        entities.TransactionTypeRevenue,
		CargoTypeID: "c1",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.DeleteCargoType("c1"); !errors.Is(err, ErrCargoTypeInUse) {
		t.Fatalf("expected ErrCargoTypeInUse, got %v", err)
	}
}

func TestTrucks(t *testing.T) {
	t.Run("add validates", func(t *testing.T) {
		store, _ := newTestStore(t)
		if _, err := store.AddTruck("", "Volvo"); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if _, err := store.AddTruck("DEF-5678", ""); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("delete blocked by transaction", func(t *testing.T) {
		store, _ := newTestStore(t)
		if _, err := store.AddTransaction(entities.Transaction{
			Date:       "2025-03-01",
			Amount:     100,
			CategoryID: "1",
			Type:       entities.TransactionTypeRevenue,
			TruckID:    "t1",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.DeleteTruck("t1"); !errors.Is(err, ErrTruckInUse) {
			t.Fatalf("expected ErrTruckInUse, got %v", err)
		}
	})

	t.Run("delete blocked by fuel record", func(t *testing.T) {
		store, _ := newTestStore(t)
		if _, err := store.AddFuelRecord(FuelRecordInput{
			Date: "2025-03-01", TruckID: "t2", Mileage: 1000, Liters: 50, PricePerLiter: 5.89,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.DeleteTruck("t2"); !errors.Is(err, ErrTruckInUse) {
			t.Fatalf("expected ErrTruckInUse, got %v", err)
		}
	})

	t.Run("delete unreferenced", func(t *testing.T) {
		store, _ := newTestStore(t)
		if err := store.DeleteTruck("t2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(store.Snapshot().Trucks) != 1 {
			t.Fatalf("expected 1 truck left")
		}
	})
}
