package usecase

import (
	"fmt"
	"strings"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

// AddTransaction validates and appends a ledger movement. The caller-supplied
// ID is ignored; the store always assigns its own.
func (s *LedgerStore) AddTransaction(tx entities.Transaction) (entities.Transaction, error) {
	tx.Description = strings.TrimSpace(tx.Description)
	if tx.Amount == 0 {
		return entities.Transaction{}, fmt.Errorf("%w: transaction amount is required", ErrValidation)
	}
	if !tx.Type.Valid() {
		return entities.Transaction{}, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, tx.Type)
	}
	if tx.CategoryID == "" {
		return entities.Transaction{}, fmt.Errorf("%w: transaction category is required", ErrValidation)
	}
	if !validDay(tx.Date) {
		return entities.Transaction{}, fmt.Errorf("%w: invalid transaction date %q", ErrValidation, tx.Date)
	}
	if tx.ExecutionDate == "" {
		tx.ExecutionDate = tx.Date
	}
	if tx.DueDate != "" && !validDay(tx.DueDate) {
		return entities.Transaction{}, fmt.Errorf("%w: invalid due date %q", ErrValidation, tx.DueDate)
	}

	tx.ID = s.newID()
	err := s.mutate([]string{KeyTransactions}, func(snap *entities.Snapshot) error {
		snap.Transactions = append(snap.Transactions, tx)
		return nil
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return tx, nil
}

// DeleteTransaction removes a movement. Unknown IDs are a no-op.
func (s *LedgerStore) DeleteTransaction(id string) error {
	return s.mutate([]string{KeyTransactions}, func(snap *entities.Snapshot) error {
		snap.Transactions = deleteByID(snap.Transactions, id, func(t entities.Transaction) string { return t.ID })
		return nil
	})
}

// MarkTransactionAsPaid settles a pending movement, stamping the execution
// date with today.
func (s *LedgerStore) MarkTransactionAsPaid(id string) (entities.Transaction, error) {
	var out entities.Transaction
	err := s.mutate([]string{KeyTransactions}, func(snap *entities.Snapshot) error {
		for i, tx := range snap.Transactions {
			if tx.ID != id {
				continue
			}
			tx.IsPaid = true
			tx.ExecutionDate = s.today()
			snap.Transactions[i] = tx
			out = tx
			return nil
		}
		return ErrTransactionNotFound
	})
	return out, err
}

// PostponeDueDate pushes a pending movement's due date to tomorrow.
func (s *LedgerStore) PostponeDueDate(id string) (entities.Transaction, error) {
	var out entities.Transaction
	tomorrow := formatDay(s.now().AddDate(0, 0, 1))
	err := s.mutate([]string{KeyTransactions}, func(snap *entities.Snapshot) error {
		for i, tx := range snap.Transactions {
			if tx.ID != id {
				continue
			}
			tx.DueDate = tomorrow
			snap.Transactions[i] = tx
			out = tx
			return nil
		}
		return ErrTransactionNotFound
	})
	return out, err
}

// PendingTransactions lists unpaid movements whose due date has arrived, in
// insertion order. ISO day strings compare correctly as plain strings.
func (s *LedgerStore) PendingTransactions() []entities.Transaction {
	today := s.today()
	snap := s.Snapshot()
	var out []entities.Transaction
	for _, tx := range snap.Transactions {
		if !tx.IsPaid && tx.DueDate != "" && tx.DueDate <= today {
			out = append(out, tx)
		}
	}
	return out
}
