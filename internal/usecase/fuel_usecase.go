package usecase

import (
	"fmt"
	"strings"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

// FuelRecordInput carries a tank fill. Cost of zero is derived as
// liters * pricePerLiter.
type FuelRecordInput struct {
	Date          string
	TruckID       string
	Mileage       float64
	Liters        float64
	PricePerLiter float64
	Cost          float64
}

// AddFuelRecord stores a fill and, when a fuel category exists, the paired
// expense transaction in the same commit, so either both land or neither.
func (s *LedgerStore) AddFuelRecord(in FuelRecordInput) (entities.FuelRecord, error) {
	if !validDay(in.Date) {
		return entities.FuelRecord{}, fmt.Errorf("%w: invalid fuel record date %q", ErrValidation, in.Date)
	}
	if in.TruckID == "" {
		return entities.FuelRecord{}, fmt.Errorf("%w: fuel record truck is required", ErrValidation)
	}
	if in.Liters <= 0 {
		return entities.FuelRecord{}, fmt.Errorf("%w: liters must be positive", ErrValidation)
	}
	if in.PricePerLiter <= 0 {
		return entities.FuelRecord{}, fmt.Errorf("%w: price per liter must be positive", ErrValidation)
	}
	if in.Mileage < 0 {
		return entities.FuelRecord{}, fmt.Errorf("%w: mileage cannot be negative", ErrValidation)
	}
	if in.Cost == 0 {
		in.Cost = in.Liters * in.PricePerLiter
	}

	rec := entities.FuelRecord{
		ID:            s.newID(),
		Date:          in.Date,
		TruckID:       in.TruckID,
		Mileage:       in.Mileage,
		Liters:        in.Liters,
		PricePerLiter: in.PricePerLiter,
		Cost:          in.Cost,
	}
	txID := s.newID()

	err := s.mutate([]string{KeyFuelRecords, KeyTransactions}, func(snap *entities.Snapshot) error {
		snap.FuelRecords = append(snap.FuelRecords, rec)

		// Without a fuel category the fill is stored alone and stays out
		// of the DRE.
		fuelCat, ok := findCategoryByName(snap.Categories, "combustível")
		if !ok {
			return nil
		}
		subCategory := "Posto"
		if truck, ok := findTruck(snap.Trucks, rec.TruckID); ok {
			subCategory = fmt.Sprintf("Posto (%s)", truck.Plate)
		}
		snap.Transactions = append(snap.Transactions, entities.Transaction{
			ID:            txID,
			Date:          rec.Date,
			ExecutionDate: rec.Date,
			DueDate:       rec.Date,
			IsPaid:        true,
			Amount:        rec.Cost,
			Description:   fmt.Sprintf("Abastecimento - %.2fL", rec.Liters),
			SubCategory:   subCategory,
			CategoryID:    fuelCat.ID,
			Type:          entities.TransactionTypeVariableExpense,
			TruckID:       rec.TruckID,
			FuelRecordID:  rec.ID,
			Mileage:       rec.Mileage,
			Liters:        rec.Liters,
			PricePerLiter: rec.PricePerLiter,
		})
		return nil
	})
	if err != nil {
		return entities.FuelRecord{}, err
	}
	return rec, nil
}

// DeleteFuelRecord removes a fill and cascades to every transaction linked
// to it.
func (s *LedgerStore) DeleteFuelRecord(id string) error {
	// Regular transactions carry an empty FuelRecordID; an empty id would
	// cascade over all of them.
	if id == "" {
		return fmt.Errorf("%w: fuel record id is required", ErrValidation)
	}
	return s.mutate([]string{KeyFuelRecords, KeyTransactions}, func(snap *entities.Snapshot) error {
		snap.FuelRecords = deleteByID(snap.FuelRecords, id, func(r entities.FuelRecord) string { return r.ID })
		kept := snap.Transactions[:0]
		for _, tx := range snap.Transactions {
			if tx.FuelRecordID != id {
				kept = append(kept, tx)
			}
		}
		snap.Transactions = kept
		return nil
	})
}

// findCategoryByName matches case-insensitively on a substring of the
// category name ("Combustível", "Combustível Diesel"...).
func findCategoryByName(categories []entities.Category, fragment string) (entities.Category, bool) {
	fragment = strings.ToLower(fragment)
	for _, cat := range categories {
		if strings.Contains(strings.ToLower(cat.Name), fragment) {
			return cat, true
		}
	}
	return entities.Category{}, false
}

func findTruck(trucks []entities.Truck, id string) (entities.Truck, bool) {
	for _, t := range trucks {
		if t.ID == id {
			return t, true
		}
	}
	return entities.Truck{}, false
}
