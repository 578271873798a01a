package usecase

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/eduardopaniago/GestaoFrota/internal/adapter/persistence"
	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

func testClock() func() time.Time {
	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return fixed }
}

func testIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestStore(t *testing.T) (*LedgerStore, *persistence.MemoryStore) {
	t.Helper()
	kv := persistence.NewMemoryStore()
	store := NewLedgerStore(kv, WithClock(testClock()), WithIDGenerator(testIDs()))
	return store, kv
}

func TestNewLedgerStore_Seeds(t *testing.T) {
	store, _ := newTestStore(t)
	snap := store.Snapshot()

	if len(snap.Categories) != 6 {
		t.Fatalf("expected 6 seed categories, got %d", len(snap.Categories))
	}
	if len(snap.CargoTypes) != 5 {
		t.Fatalf("expected 5 seed cargo types, got %d", len(snap.CargoTypes))
	}
	if len(snap.Trucks) != 2 {
		t.Fatalf("expected 2 seed trucks, got %d", len(snap.Trucks))
	}
	if snap.CompanyName != DefaultCompanyName {
		t.Fatalf("expected default company name, got %q", snap.CompanyName)
	}
	if len(snap.Transactions) != 0 || len(snap.FuelRecords) != 0 {
		t.Fatalf("expected empty movement collections")
	}
}

func TestNewLedgerStore_CorruptKeyFallsBack(t *testing.T) {
	kv := persistence.NewMemoryStore()
	kv.Seed(KeyTrucks, []byte("not json"))
	kv.Seed(KeyCompanyName, []byte(`"Transportes União"`))

	store := NewLedgerStore(kv, WithClock(testClock()), WithIDGenerator(testIDs()))
	snap := store.Snapshot()

	if len(snap.Trucks) != 2 {
		t.Fatalf("corrupt trucks key should fall back to seed, got %d trucks", len(snap.Trucks))
	}
	if snap.CompanyName != "Transportes União" {
		t.Fatalf("valid keys should still load, got %q", snap.CompanyName)
	}
}

func TestLedgerStore_PersistsAndReloads(t *testing.T) {
	store, kv := newTestStore(t)

	cat, err := store.AddCategory("Impostos", entities.TransactionTypeFixedCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	blob, ok, err := kv.Load(KeyCategories)
	if err != nil || !ok {
		t.Fatalf("expected categories to be persisted, ok=%v err=%v", ok, err)
	}
	var stored []entities.Category
	if err := json.Unmarshal(blob, &stored); err != nil {
		t.Fatalf("persisted payload is not valid JSON: %v", err)
	}
	if len(stored) != 7 || stored[6].ID != cat.ID {
		t.Fatalf("expected 7 categories with new one last, got %+v", stored)
	}

	reloaded := NewLedgerStore(kv, WithClock(testClock()), WithIDGenerator(testIDs()))
	if got := reloaded.Snapshot().Categories; len(got) != 7 {
		t.Fatalf("expected reloaded store to see 7 categories, got %d", len(got))
	}
}

func TestLedgerStore_SnapshotIsACopy(t *testing.T) {
	store, _ := newTestStore(t)

	snap := store.Snapshot()
	snap.Categories[0].Name = "mutated"
	snap.CompanyName = "mutated"

	fresh := store.Snapshot()
	if fresh.Categories[0].Name == "mutated" || fresh.CompanyName == "mutated" {
		t.Fatalf("snapshot mutation leaked into the store")
	}
}

func TestLedgerStore_OnChange(t *testing.T) {
	store, _ := newTestStore(t)

	var calls []int
	store.OnChange(func(snap entities.Snapshot) {
		calls = append(calls, len(snap.Categories))
	})

	if _, err := store.AddCategory("Pneus", entities.TransactionTypeVariableExpense); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 1 || calls[0] != 7 {
		t.Fatalf("expected one callback with 7 categories, got %v", calls)
	}

	// A rejected mutation must not notify.
	if _, err := store.AddCategory("", entities.TransactionTypeRevenue); err == nil {
		t.Fatalf("expected validation error")
	}
	if len(calls) != 1 {
		t.Fatalf("failed mutation should not fire callbacks, got %v", calls)
	}
}

func TestLedgerStore_FailedMutationLeavesStateUntouched(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.DeleteCategory("4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Re-add and reference it, then try deleting again.
	cat, err := store.AddCategory("Combustível", entities.TransactionTypeVariableExpense)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.AddTransaction(entities.Transaction{
		Date:       "2025-03-01",
		Amount:     100,
		CategoryID: cat.ID,
		Type:       entities.TransactionTypeVariableExpense,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	blockedBefore := store.Snapshot()
	if err := store.DeleteCategory(cat.ID); err != ErrCategoryInUse {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}
	after := store.Snapshot()
	if len(after.Categories) != len(blockedBefore.Categories) {
		t.Fatalf("blocked delete changed state: %d -> %d categories", len(blockedBefore.Categories), len(after.Categories))
	}
}
