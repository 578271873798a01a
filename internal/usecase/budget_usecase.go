package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

// AddBudgetRequest opens a quotation round for a product.
func (s *LedgerStore) AddBudgetRequest(title, productName, description string) (entities.BudgetRequest, error) {
	title = strings.TrimSpace(title)
	productName = strings.TrimSpace(productName)
	if title == "" {
		return entities.BudgetRequest{}, fmt.Errorf("%w: budget title is required", ErrValidation)
	}
	if productName == "" {
		return entities.BudgetRequest{}, fmt.Errorf("%w: budget product name is required", ErrValidation)
	}

	req := entities.BudgetRequest{
		ID:          s.newID(),
		Title:       title,
		ProductName: productName,
		Description: strings.TrimSpace(description),
		Date:        s.now().UTC().Format(time.RFC3339),
		Options:     []entities.BudgetOption{},
	}
	err := s.mutate([]string{KeyBudgets}, func(snap *entities.Snapshot) error {
		snap.Budgets = append(snap.Budgets, req)
		return nil
	})
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	return req, nil
}

func (s *LedgerStore) DeleteBudgetRequest(id string) error {
	return s.mutate([]string{KeyBudgets}, func(snap *entities.Snapshot) error {
		snap.Budgets = deleteByID(snap.Budgets, id, func(b entities.BudgetRequest) string { return b.ID })
		return nil
	})
}

// AddBudgetOption attaches a supplier quote to a request.
func (s *LedgerStore) AddBudgetOption(requestID, supplier string, amount float64, details string) (entities.BudgetOption, error) {
	supplier = strings.TrimSpace(supplier)
	if supplier == "" {
		return entities.BudgetOption{}, fmt.Errorf("%w: supplier is required", ErrValidation)
	}
	if amount <= 0 {
		return entities.BudgetOption{}, fmt.Errorf("%w: option amount must be positive", ErrValidation)
	}

	opt := entities.BudgetOption{
		ID:       s.newID(),
		Supplier: supplier,
		Amount:   amount,
		Details:  strings.TrimSpace(details),
		Date:     s.now().UTC().Format(time.RFC3339),
	}
	err := s.mutate([]string{KeyBudgets}, func(snap *entities.Snapshot) error {
		for i, req := range snap.Budgets {
			if req.ID == requestID {
				snap.Budgets[i].Options = append(req.Options, opt)
				return nil
			}
		}
		return ErrBudgetNotFound
	})
	if err != nil {
		return entities.BudgetOption{}, err
	}
	return opt, nil
}

func (s *LedgerStore) DeleteBudgetOption(requestID, optionID string) error {
	return s.mutate([]string{KeyBudgets}, func(snap *entities.Snapshot) error {
		for i, req := range snap.Budgets {
			if req.ID != requestID {
				continue
			}
			snap.Budgets[i].Options = deleteByID(req.Options, optionID, func(o entities.BudgetOption) string { return o.ID })
			return nil
		}
		return ErrBudgetNotFound
	})
}

// SelectBudgetOption marks one option as the winning quote. Selection is
// exclusive within the request; siblings are cleared.
func (s *LedgerStore) SelectBudgetOption(requestID, optionID string) error {
	return s.mutate([]string{KeyBudgets}, func(snap *entities.Snapshot) error {
		for i, req := range snap.Budgets {
			if req.ID != requestID {
				continue
			}
			found := false
			for j, opt := range req.Options {
				selected := opt.ID == optionID
				snap.Budgets[i].Options[j].IsSelected = selected
				found = found || selected
			}
			if !found {
				return ErrOptionNotFound
			}
			return nil
		}
		return ErrBudgetNotFound
	})
}
