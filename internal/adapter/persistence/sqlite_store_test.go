package persistence

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "frotafin.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer store.Close()

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := store.Load("frotafin_transactions")
		if err != nil {
			t.Fatalf("missing key must not be an error, got %v", err)
		}
		if ok {
			t.Fatalf("expected miss")
		}
	})

	t.Run("round trip and upsert", func(t *testing.T) {
		if err := store.Save("frotafin_transactions", []byte(`[]`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Save("frotafin_transactions", []byte(`[{"id":"x"}]`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		blob, ok, err := store.Load("frotafin_transactions")
		if err != nil || !ok {
			t.Fatalf("expected hit, ok=%v err=%v", ok, err)
		}
		if string(blob) != `[{"id":"x"}]` {
			t.Fatalf("expected latest write, got %s", blob)
		}
	})
}
