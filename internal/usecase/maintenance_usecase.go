package usecase

import (
	"fmt"
	"strings"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

// AddMaintenance opens a workshop service order for a truck.
func (s *LedgerStore) AddMaintenance(order entities.MaintenanceOrder) (entities.MaintenanceOrder, error) {
	order.Title = strings.TrimSpace(order.Title)
	if order.Title == "" {
		return entities.MaintenanceOrder{}, fmt.Errorf("%w: maintenance title is required", ErrValidation)
	}
	if order.TruckID == "" {
		return entities.MaintenanceOrder{}, fmt.Errorf("%w: maintenance truck is required", ErrValidation)
	}
	if !order.Type.Valid() {
		return entities.MaintenanceOrder{}, fmt.Errorf("%w: unknown maintenance type %q", ErrValidation, order.Type)
	}
	if order.Status == "" {
		order.Status = entities.MaintenanceStatusPending
	}
	if !order.Status.Valid() {
		return entities.MaintenanceOrder{}, fmt.Errorf("%w: unknown maintenance status %q", ErrValidation, order.Status)
	}
	if order.DateStarted == "" {
		order.DateStarted = s.today()
	} else if !validDay(order.DateStarted) {
		return entities.MaintenanceOrder{}, fmt.Errorf("%w: invalid start date %q", ErrValidation, order.DateStarted)
	}

	order.ID = s.newID()
	err := s.mutate([]string{KeyMaintenances}, func(snap *entities.Snapshot) error {
		snap.Maintenances = append(snap.Maintenances, order)
		return nil
	})
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}
	return order, nil
}

// UpdateMaintenance replaces a service order in place. Moving the status to
// COMPLETED without a finish date stamps today.
func (s *LedgerStore) UpdateMaintenance(order entities.MaintenanceOrder) (entities.MaintenanceOrder, error) {
	if !order.Status.Valid() {
		return entities.MaintenanceOrder{}, fmt.Errorf("%w: unknown maintenance status %q", ErrValidation, order.Status)
	}
	if order.Status == entities.MaintenanceStatusCompleted && order.DateFinished == "" {
		order.DateFinished = s.today()
	}
	err := s.mutate([]string{KeyMaintenances}, func(snap *entities.Snapshot) error {
		for i, existing := range snap.Maintenances {
			if existing.ID == order.ID {
				snap.Maintenances[i] = order
				return nil
			}
		}
		return ErrMaintenanceNotFound
	})
	if err != nil {
		return entities.MaintenanceOrder{}, err
	}
	return order, nil
}

// DeleteMaintenance refuses while the order still has cost line items.
func (s *LedgerStore) DeleteMaintenance(id string) error {
	return s.mutate([]string{KeyMaintenances}, func(snap *entities.Snapshot) error {
		for _, tx := range snap.Transactions {
			if tx.MaintenanceID == id {
				return ErrMaintenanceHasItems
			}
		}
		snap.Maintenances = deleteByID(snap.Maintenances, id, func(m entities.MaintenanceOrder) string { return m.ID })
		return nil
	})
}

// AddMaintenanceItem records a cost line item (parts, labor) against an
// order as a variable-expense transaction, filed under the maintenance
// category when one exists.
func (s *LedgerStore) AddMaintenanceItem(maintenanceID, description string, amount float64) (entities.Transaction, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return entities.Transaction{}, fmt.Errorf("%w: item description is required", ErrValidation)
	}
	if amount <= 0 {
		return entities.Transaction{}, fmt.Errorf("%w: item amount must be positive", ErrValidation)
	}

	var out entities.Transaction
	err := s.mutate([]string{KeyTransactions}, func(snap *entities.Snapshot) error {
		order, ok := findMaintenance(snap.Maintenances, maintenanceID)
		if !ok {
			return ErrMaintenanceNotFound
		}
		cat, ok := findCategoryByName(snap.Categories, "manutenção")
		if !ok {
			if len(snap.Categories) == 0 {
				return fmt.Errorf("%w: no category available for maintenance items", ErrValidation)
			}
			cat = snap.Categories[0]
		}
		today := s.today()
		out = entities.Transaction{
			ID:            s.newID(),
			Date:          today,
			ExecutionDate: today,
			DueDate:       today,
			IsPaid:        true,
			Amount:        amount,
			Description:   description,
			SubCategory:   order.Title,
			CategoryID:    cat.ID,
			Type:          entities.TransactionTypeVariableExpense,
			TruckID:       order.TruckID,
			MaintenanceID: order.ID,
		}
		snap.Transactions = append(snap.Transactions, out)
		return nil
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return out, nil
}

// MaintenanceItems lists the cost line items linked to an order, in
// insertion order.
func (s *LedgerStore) MaintenanceItems(maintenanceID string) []entities.Transaction {
	snap := s.Snapshot()
	var out []entities.Transaction
	for _, tx := range snap.Transactions {
		if tx.MaintenanceID == maintenanceID {
			out = append(out, tx)
		}
	}
	return out
}

func findMaintenance(orders []entities.MaintenanceOrder, id string) (entities.MaintenanceOrder, bool) {
	for _, m := range orders {
		if m.ID == id {
			return m, true
		}
	}
	return entities.MaintenanceOrder{}, false
}
