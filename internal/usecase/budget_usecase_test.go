package usecase

import (
	"errors"
	"testing"
)

func TestBudgetRequests(t *testing.T) {
	t.Run("add validates", func(t *testing.T) {
		store, _ := newTestStore(t)
		if _, err := store.AddBudgetRequest("", "Pneu 295/80", ""); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if _, err := store.AddBudgetRequest("Troca de pneus", "", ""); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("add stamps date and empty options", func(t *testing.T) {
		store, _ := newTestStore(t)
		req, err := store.AddBudgetRequest("Troca de pneus", "Pneu 295/80", "dianteiros")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Date != "2025-03-10T12:00:00Z" {
			t.Fatalf("unexpected date %q", req.Date)
		}
		if req.Options == nil || len(req.Options) != 0 {
			t.Fatalf("options must start as an empty list")
		}
	})

	t.Run("delete", func(t *testing.T) {
		store, _ := newTestStore(t)
		req, err := store.AddBudgetRequest("Troca de pneus", "Pneu 295/80", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.DeleteBudgetRequest(req.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(store.Snapshot().Budgets) != 0 {
			t.Fatalf("expected budget removed")
		}
	})
}

func TestBudgetOptions(t *testing.T) {
	newRequest := func(t *testing.T) (*LedgerStore, string) {
		t.Helper()
		store, _ := newTestStore(t)
		req, err := store.AddBudgetRequest("Troca de pneus", "Pneu 295/80", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return store, req.ID
	}

	t.Run("add validates", func(t *testing.T) {
		store, reqID := newRequest(t)
		if _, err := store.AddBudgetOption(reqID, "", 100, ""); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if _, err := store.AddBudgetOption(reqID, "Borracharia Silva", 0, ""); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if _, err := store.AddBudgetOption("missing", "Borracharia Silva", 100, ""); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("selection is exclusive", func(t *testing.T) {
		store, reqID := newRequest(t)
		a, err := store.AddBudgetOption(reqID, "Borracharia Silva", 2400, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := store.AddBudgetOption(reqID, "Pneus & Cia", 2250, "entrega em 2 dias")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := store.SelectBudgetOption(reqID, a.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.SelectBudgetOption(reqID, b.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		opts := store.Snapshot().Budgets[0].Options
		if opts[0].IsSelected {
			t.Fatalf("previous selection must be cleared")
		}
		if !opts[1].IsSelected {
			t.Fatalf("expected the second option selected")
		}
	})

	t.Run("selection does not touch other requests", func(t *testing.T) {
		store, firstID := newRequest(t)
		other, err := store.AddBudgetRequest("Revisão dos freios", "Pastilha dianteira", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		otherOpt, err := store.AddBudgetOption(other.ID, "Oficina do Zé", 800, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.SelectBudgetOption(other.ID, otherOpt.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		firstOpt, err := store.AddBudgetOption(firstID, "Borracharia Silva", 2400, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.SelectBudgetOption(firstID, firstOpt.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, req := range store.Snapshot().Budgets {
			if req.ID == other.ID && !req.Options[0].IsSelected {
				t.Fatalf("selection in another request must not clear this one")
			}
			if req.ID == firstID && !req.Options[0].IsSelected {
				t.Fatalf("expected the option of the first request selected")
			}
		}
	})

	t.Run("select unknown option", func(t *testing.T) {
		store, reqID := newRequest(t)
		if _, err := store.AddBudgetOption(reqID, "Borracharia Silva", 2400, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.SelectBudgetOption(reqID, "missing"); !errors.Is(err, ErrOptionNotFound) {
			t.Fatalf("expected ErrOptionNotFound, got %v", err)
		}
		if err := store.SelectBudgetOption("missing", "x"); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("delete option", func(t *testing.T) {
		store, reqID := newRequest(t)
		opt, err := store.AddBudgetOption(reqID, "Borracharia Silva", 2400, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.DeleteBudgetOption(reqID, opt.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(store.Snapshot().Budgets[0].Options) != 0 {
			t.Fatalf("expected option removed")
		}
	})
}
