package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

// SyncUseCase pushes and pulls full snapshots through one configured
// backend. A single operation runs at a time; local state is replaced only
// after a downloaded payload fully validates.
type SyncUseCase struct {
	store    *LedgerStore
	backend  interfaces.ISyncBackend
	key      string
	timeout  time.Duration
	inFlight atomic.Bool
	log      zerolog.Logger
}

func NewSyncUseCase(store *LedgerStore, backend interfaces.ISyncBackend, key string, timeout time.Duration) *SyncUseCase {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &SyncUseCase{
		store:   store,
		backend: backend,
		key:     key,
		timeout: timeout,
		log:     log.With().Str("component", "sync").Logger(),
	}
}

// BackendName returns the configured backend's name, or "" when sync is
// disabled.
func (u *SyncUseCase) BackendName() string {
	if u.backend == nil {
		return ""
	}
	return u.backend.Name()
}

// Upload pushes the current snapshot. Returns the new last-sync stamp.
func (u *SyncUseCase) Upload(ctx context.Context) (string, error) {
	if u.backend == nil {
		return "", ErrSyncUnavailable
	}
	if !u.inFlight.CompareAndSwap(false, true) {
		return "", ErrSyncBusy
	}
	defer u.inFlight.Store(false)

	snap := u.store.Snapshot()
	snap.SchemaVersion = entities.SchemaVersion
	snap.User = nil
	snap.LastSync = ""
	blob, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encoding backup: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	if err := u.backend.Upload(ctx, u.key, blob); err != nil {
		return "", fmt.Errorf("uploading to %s: %w", u.backend.Name(), err)
	}

	stamp := u.store.TouchLastSync()
	u.log.Info().Str("backend", u.backend.Name()).Int("bytes", len(blob)).Msg("backup uploaded")
	return stamp, nil
}

// Download pulls the remote backup and replaces local state with it.
func (u *SyncUseCase) Download(ctx context.Context) error {
	if u.backend == nil {
		return ErrSyncUnavailable
	}
	if !u.inFlight.CompareAndSwap(false, true) {
		return ErrSyncBusy
	}
	defer u.inFlight.Store(false)

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	blob, err := u.backend.Download(ctx, u.key)
	if err != nil {
		return fmt.Errorf("downloading from %s: %w", u.backend.Name(), err)
	}

	backup, err := decodeBackup(blob)
	if err != nil {
		return err
	}
	u.store.RestoreBackup(backup)
	u.log.Info().Str("backend", u.backend.Name()).Int("bytes", len(blob)).Msg("backup restored")
	return nil
}

// requiredBackupKeys must all be present in a backup document. Their
// absence means a foreign or truncated payload, not an empty ledger.
var requiredBackupKeys = []string{
	"categories", "cargoTypes", "trucks", "fuelRecords",
	"transactions", "budgets", "maintenances",
}

// decodeBackup validates a remote payload. Backups written before the
// schemaVersion field exist are read as version 1.
func decodeBackup(blob []byte) (entities.Snapshot, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(blob, &probe); err != nil {
		return entities.Snapshot{}, fmt.Errorf("%w: not a JSON object: %v", ErrBackupPayload, err)
	}
	for _, key := range requiredBackupKeys {
		if _, ok := probe[key]; !ok {
			return entities.Snapshot{}, fmt.Errorf("%w: missing %q", ErrBackupPayload, key)
		}
	}

	var snap entities.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return entities.Snapshot{}, fmt.Errorf("%w: %v", ErrBackupPayload, err)
	}
	if snap.SchemaVersion > entities.SchemaVersion {
		return entities.Snapshot{}, fmt.Errorf("%w: got version %d, support up to %d",
			ErrBackupVersion, snap.SchemaVersion, entities.SchemaVersion)
	}
	return snap, nil
}
