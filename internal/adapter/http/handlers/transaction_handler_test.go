package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/eduardopaniago/GestaoFrota/internal/adapter/persistence"
	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase"
)

func newTestLedger(t *testing.T) *usecase.LedgerStore {
	t.Helper()
	return usecase.NewLedgerStore(persistence.NewMemoryStore())
}

func transactionRouter(store *usecase.LedgerStore) *gin.Engine {
	h := NewTransactionHandler(store)
	r := gin.New()
	r.GET("/v1/transactions", h.List)
	r.POST("/v1/transactions", h.Create)
	r.GET("/v1/transactions/pending", h.Pending)
	r.DELETE("/v1/transactions/:id", h.Delete)
	r.PATCH("/v1/transactions/:id/pay", h.MarkAsPaid)
	r.PATCH("/v1/transactions/:id/postpone", h.Postpone)
	return r
}

func TestTransactionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		r := transactionRouter(newTestLedger(t))

		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		r := transactionRouter(newTestLedger(t))

		body := `{"date":"2025-03-01","amount":100,"categoryId":"1","type":"BONUS"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp["code"] != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %v", resp)
		}
	})

	t.Run("success", func(t *testing.T) {
		store := newTestLedger(t)
		r := transactionRouter(store)

		body := `{"date":"2025-03-01","amount":2550,"description":"Frete Alfa","categoryId":"1","type":"REVENUE","isPaid":true}`
		req := httptest.NewRequest(http.MethodPost, "/v1/transactions", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var tx entities.Transaction
		if err := json.Unmarshal(w.Body.Bytes(), &tx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.ID == "" || tx.Amount != 2550 {
			t.Fatalf("unexpected response: %+v", tx)
		}
		if len(store.Snapshot().Transactions) != 1 {
			t.Fatalf("transaction not stored")
		}
	})
}

func TestTransactionHandler_ListAndPending(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestLedger(t)
	r := transactionRouter(store)

	t.Run("pending starts empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/pending", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty JSON array, got %s", w.Body.String())
		}
	})

	t.Run("list returns stored movements", func(t *testing.T) {
		if _, err := store.AddTransaction(entities.Transaction{
			Date: "2025-03-01", Amount: 100, CategoryID: "6", Type: entities.TransactionTypeVariableExpense,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/transactions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var txs []entities.Transaction
		if err := json.Unmarshal(w.Body.Bytes(), &txs); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txs) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(txs))
		}
	})
}

func TestTransactionHandler_Pay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestLedger(t)
	r := transactionRouter(store)

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/v1/transactions/missing/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp["code"] != "NOT_FOUND" {
			t.Fatalf("expected NOT_FOUND, got %v", resp)
		}
	})

	t.Run("settles the movement", func(t *testing.T) {
		tx, err := store.AddTransaction(entities.Transaction{
			Date: "2025-03-01", DueDate: "2025-03-15", Amount: 800, CategoryID: "2", Type: entities.TransactionTypeFixedCost,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodPatch, "/v1/transactions/"+tx.ID+"/pay", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var paid entities.Transaction
		if err := json.Unmarshal(w.Body.Bytes(), &paid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !paid.IsPaid {
			t.Fatalf("expected paid transaction, got %+v", paid)
		}
	})
}

func TestTransactionHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestLedger(t)
	r := transactionRouter(store)

	tx, err := store.AddTransaction(entities.Transaction{
		Date: "2025-03-01", Amount: 100, CategoryID: "6", Type: entities.TransactionTypeVariableExpense,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/v1/transactions/"+tx.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if len(store.Snapshot().Transactions) != 0 {
		t.Fatalf("transaction not removed")
	}
}
