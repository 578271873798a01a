package usecase

import (
	"fmt"
	"strings"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

func (s *LedgerStore) AddCategory(name string, typ entities.TransactionType) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if !typ.Valid() {
		return entities.Category{}, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, typ)
	}

	cat := entities.Category{ID: s.newID(), Name: name, Type: typ}
	err := s.mutate([]string{KeyCategories}, func(snap *entities.Snapshot) error {
		snap.Categories = append(snap.Categories, cat)
		return nil
	})
	if err != nil {
		return entities.Category{}, err
	}
	return cat, nil
}

// DeleteCategory refuses while any transaction references the category.
// Deleting an unknown ID is a no-op, mirroring the other collections.
func (s *LedgerStore) DeleteCategory(id string) error {
	return s.mutate([]string{KeyCategories}, func(snap *entities.Snapshot) error {
		for _, tx := range snap.Transactions {
			if tx.CategoryID == id {
				return ErrCategoryInUse
			}
		}
		snap.Categories = deleteByID(snap.Categories, id, func(c entities.Category) string { return c.ID })
		return nil
	})
}

func (s *LedgerStore) AddCargoType(name string, unit entities.MeasureUnit) (entities.CargoTypeCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.CargoTypeCategory{}, fmt.Errorf("%w: cargo type name is required", ErrValidation)
	}
	if !unit.Valid() {
		return entities.CargoTypeCategory{}, fmt.Errorf("%w: unknown measure unit %q", ErrValidation, unit)
	}

	ct := entities.CargoTypeCategory{ID: s.newID(), Name: name, Unit: unit}
	err := s.mutate([]string{KeyCargoTypes}, func(snap *entities.Snapshot) error {
		snap.CargoTypes = append(snap.CargoTypes, ct)
		return nil
	})
	if err != nil {
		return entities.CargoTypeCategory{}, err
	}
	return ct, nil
}

func (s *LedgerStore) DeleteCargoType(id string) error {
	return s.mutate([]string{KeyCargoTypes}, func(snap *entities.Snapshot) error {
		for _, tx := range snap.Transactions {
			if tx.CargoTypeID == id {
				return ErrCargoTypeInUse
			}
		}
		snap.CargoTypes = deleteByID(snap.CargoTypes, id, func(c entities.CargoTypeCategory) string { return c.ID })
		return nil
	})
}

func (s *LedgerStore) AddTruck(plate, model string) (entities.Truck, error) {
	plate = strings.TrimSpace(plate)
	model = strings.TrimSpace(model)
	if plate == "" {
		return entities.Truck{}, fmt.Errorf("%w: truck plate is required", ErrValidation)
	}
	if model == "" {
		return entities.Truck{}, fmt.Errorf("%w: truck model is required", ErrValidation)
	}

	truck := entities.Truck{ID: s.newID(), Plate: plate, Model: model}
	err := s.mutate([]string{KeyTrucks}, func(snap *entities.Snapshot) error {
		snap.Trucks = append(snap.Trucks, truck)
		return nil
	})
	if err != nil {
		return entities.Truck{}, err
	}
	return truck, nil
}

// DeleteTruck refuses while the truck has transactions or fuel records.
func (s *LedgerStore) DeleteTruck(id string) error {
	return s.mutate([]string{KeyTrucks}, func(snap *entities.Snapshot) error {
		for _, tx := range snap.Transactions {
			if tx.TruckID == id {
				return ErrTruckInUse
			}
		}
		for _, rec := range snap.FuelRecords {
			if rec.TruckID == id {
				return ErrTruckInUse
			}
		}
		snap.Trucks = deleteByID(snap.Trucks, id, func(t entities.Truck) string { return t.ID })
		return nil
	})
}

func deleteByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
