package sync

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

func newPantryTestBackend(t *testing.T, handler http.HandlerFunc) *PantryBackend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend, err := NewPantryBackend("pantry-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	backend.baseURL = srv.URL
	backend.client = srv.Client()
	return backend
}

func TestNewPantryBackend_RequiresID(t *testing.T) {
	if _, err := NewPantryBackend(""); err == nil {
		t.Fatalf("expected error for empty pantry id")
	}
}

func TestPantryBackend_Upload(t *testing.T) {
	t.Run("posts the blob to the basket", func(t *testing.T) {
		var gotMethod, gotPath, gotBody string
		backend := newPantryTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
		})

		if err := backend.Upload(context.Background(), "frotafin", []byte(`{"trucks":[]}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodPost {
			t.Fatalf("expected POST (PUT merges keys), got %s", gotMethod)
		}
		if gotPath != "/pantry-123/basket/frotafin" {
			t.Fatalf("unexpected path %q", gotPath)
		}
		if gotBody != `{"trucks":[]}` {
			t.Fatalf("unexpected body %q", gotBody)
		}
	})

	t.Run("server error", func(t *testing.T) {
		backend := newPantryTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "quota exceeded", http.StatusPaymentRequired)
		})
		if err := backend.Upload(context.Background(), "frotafin", []byte(`{}`)); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPantryBackend_Download(t *testing.T) {
	t.Run("returns the basket contents", func(t *testing.T) {
		backend := newPantryTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"trucks":[]}`))
		})
		blob, err := backend.Download(context.Background(), "frotafin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(blob) != `{"trucks":[]}` {
			t.Fatalf("unexpected blob %s", blob)
		}
	})

	t.Run("missing basket", func(t *testing.T) {
		// Pantry answers 400, not 404, for a basket that never existed.
		backend := newPantryTestBackend(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "basket not found", http.StatusBadRequest)
		})
		if _, err := backend.Download(context.Background(), "frotafin"); !errors.Is(err, interfaces.ErrRemoteNotFound) {
			t.Fatalf("expected ErrRemoteNotFound, got %v", err)
		}
	})
}
