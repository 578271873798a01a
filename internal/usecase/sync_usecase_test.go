package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
	mock_interfaces "github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces/mocks"
)

func TestSyncUseCase_Upload(t *testing.T) {
	t.Run("no backend", func(t *testing.T) {
		store, _ := newTestStore(t)
		sync := NewSyncUseCase(store, nil, "chave", 0)
		if _, err := sync.Upload(context.Background()); !errors.Is(err, ErrSyncUnavailable) {
			t.Fatalf("expected ErrSyncUnavailable, got %v", err)
		}
	})

	t.Run("busy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newTestStore(t)
		backend := mock_interfaces.NewMockISyncBackend(ctrl)
		sync := NewSyncUseCase(store, backend, "chave", 0)
		sync.inFlight.Store(true)

		if _, err := sync.Upload(context.Background()); !errors.Is(err, ErrSyncBusy) {
			t.Fatalf("expected ErrSyncBusy, got %v", err)
		}
		if err := sync.Download(context.Background()); !errors.Is(err, ErrSyncBusy) {
			t.Fatalf("expected ErrSyncBusy, got %v", err)
		}
	})

	t.Run("pushes a sanitized snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newTestStore(t)
		if err := store.SetUser(&entities.UserProfile{Name: "Eduardo"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var uploaded []byte
		backend := mock_interfaces.NewMockISyncBackend(ctrl)
		backend.EXPECT().Name().Return("redis").AnyTimes()
		backend.EXPECT().Upload(gomock.Any(), "chave", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, blob []byte) error {
				uploaded = blob
				return nil
			})

		sync := NewSyncUseCase(store, backend, "chave", time.Second)
		stamp, err := sync.Upload(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stamp != "2025-03-10T12:00:00Z" {
			t.Fatalf("unexpected last-sync stamp %q", stamp)
		}
		if store.Snapshot().LastSync != stamp {
			t.Fatalf("last sync not recorded locally")
		}

		var payload map[string]json.RawMessage
		if err := json.Unmarshal(uploaded, &payload); err != nil {
			t.Fatalf("uploaded blob is not JSON: %v", err)
		}
		if _, ok := payload["user"]; ok {
			t.Fatalf("backups must never carry the user profile")
		}
		if _, ok := payload["lastSync"]; ok {
			t.Fatalf("backups must not carry the local sync stamp")
		}
		if string(payload["schemaVersion"]) != "1" {
			t.Fatalf("expected schemaVersion 1, got %s", payload["schemaVersion"])
		}
		for _, key := range requiredBackupKeys {
			if _, ok := payload[key]; !ok {
				t.Fatalf("backup missing %q", key)
			}
		}
	})

	t.Run("backend failure keeps last sync untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newTestStore(t)
		backend := mock_interfaces.NewMockISyncBackend(ctrl)
		backend.EXPECT().Name().Return("redis").AnyTimes()
		backend.EXPECT().Upload(gomock.Any(), "chave", gomock.Any()).Return(errors.New("connection refused"))

		sync := NewSyncUseCase(store, backend, "chave", time.Second)
		if _, err := sync.Upload(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
		if store.Snapshot().LastSync != "" {
			t.Fatalf("failed upload must not stamp last sync")
		}
	})
}

func TestSyncUseCase_Download(t *testing.T) {
	remoteBackup := func(t *testing.T) []byte {
		t.Helper()
		snap := entities.Snapshot{
			SchemaVersion: entities.SchemaVersion,
			Categories:    []entities.Category{{ID: "x1", Name: "Fretes ES", Type: entities.TransactionTypeRevenue}},
			CargoTypes:    []entities.CargoTypeCategory{},
			Trucks:        []entities.Truck{{ID: "tx", Plate: "GHI-7777", Model: "MB Axor"}},
			FuelRecords:   []entities.FuelRecord{},
			Transactions:  []entities.Transaction{},
			Budgets:       []entities.BudgetRequest{},
			Maintenances:  []entities.MaintenanceOrder{},
			CompanyName:   "Transportes Remoto",
		}
		blob, err := json.Marshal(snap)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return blob
	}

	t.Run("replaces local state, keeps local user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newTestStore(t)
		if err := store.SetUser(&entities.UserProfile{Name: "Eduardo"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		backend := mock_interfaces.NewMockISyncBackend(ctrl)
		backend.EXPECT().Name().Return("github").AnyTimes()
		backend.EXPECT().Download(gomock.Any(), "chave").Return(remoteBackup(t), nil)

		sync := NewSyncUseCase(store, backend, "chave", time.Second)
		if err := sync.Download(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap := store.Snapshot()
		if len(snap.Categories) != 1 || snap.Categories[0].Name != "Fretes ES" {
			t.Fatalf("categories not replaced: %+v", snap.Categories)
		}
		if len(snap.Trucks) != 1 || snap.Trucks[0].Plate != "GHI-7777" {
			t.Fatalf("trucks not replaced: %+v", snap.Trucks)
		}
		if snap.CompanyName != "Transportes Remoto" {
			t.Fatalf("company name not replaced: %q", snap.CompanyName)
		}
		if snap.User == nil || snap.User.Name != "Eduardo" {
			t.Fatalf("local user must survive a restore")
		}
		if snap.LastSync != "2025-03-10T12:00:00Z" {
			t.Fatalf("restore should stamp last sync, got %q", snap.LastSync)
		}
	})

	t.Run("rejects foreign payloads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newTestStore(t)
		backend := mock_interfaces.NewMockISyncBackend(ctrl)
		backend.EXPECT().Name().Return("pantry").AnyTimes()
		backend.EXPECT().Download(gomock.Any(), "chave").Return([]byte(`{"foo":1}`), nil)

		sync := NewSyncUseCase(store, backend, "chave", time.Second)
		if err := sync.Download(context.Background()); !errors.Is(err, ErrBackupPayload) {
			t.Fatalf("expected ErrBackupPayload, got %v", err)
		}
		if len(store.Snapshot().Categories) != 6 {
			t.Fatalf("rejected download must not touch local state")
		}
	})

	t.Run("rejects newer schema versions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store, _ := newTestStore(t)

		blob := remoteBackup(t)
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(blob, &raw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		raw["schemaVersion"] = json.RawMessage("99")
		blob, err := json.Marshal(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		backend := mock_interfaces.NewMockISyncBackend(ctrl)
		backend.EXPECT().Name().Return("dynamo").AnyTimes()
		backend.EXPECT().Download(gomock.Any(), "chave").Return(blob, nil)

		sync := NewSyncUseCase(store, backend, "chave", time.Second)
		if err := sync.Download(context.Background()); !errors.Is(err, ErrBackupVersion) {
			t.Fatalf("expected ErrBackupVersion, got %v", err)
		}
	})
}

func TestDecodeBackup_MissingCollections(t *testing.T) {
	_, err := decodeBackup([]byte(`{"categories":[],"cargoTypes":[],"trucks":[]}`))
	if !errors.Is(err, ErrBackupPayload) {
		t.Fatalf("expected ErrBackupPayload, got %v", err)
	}
}
