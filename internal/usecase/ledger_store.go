package usecase

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

// Persistence keys. Kept byte-compatible with the legacy browser export so
// old backups restore without translation.
const (
	KeyCategories   = "frotafin_categories"
	KeyCargoTypes   = "frotafin_cargo_types"
	KeyTrucks       = "frotafin_trucks"
	KeyFuelRecords  = "frotafin_fuel"
	KeyTransactions = "frotafin_transactions"
	KeyBudgets      = "frotafin_budgets"
	KeyMaintenances = "frotafin_maintenances"
	KeyUser         = "frotafin_user"
	KeyCompanyName  = "frotafin_company_name"
	KeyLastSync     = "frotafin_last_sync"
)

var allKeys = []string{
	KeyCategories, KeyCargoTypes, KeyTrucks, KeyFuelRecords,
	KeyTransactions, KeyBudgets, KeyMaintenances,
	KeyUser, KeyCompanyName, KeyLastSync,
}

// LedgerStore is the single source of truth for the ledger. All mutations
// go through mutate, which works on a deep copy and swaps it in only after
// the change validates, so readers never observe a partial update.
type LedgerStore struct {
	mu       sync.RWMutex
	snap     entities.Snapshot
	kv       interfaces.IKeyValueStore
	now      func() time.Time
	newID    func() string
	onChange []func(entities.Snapshot)
	log      zerolog.Logger
}

type StoreOption func(*LedgerStore)

// WithClock fixes the store clock, used by tests that assert on dates.
func WithClock(now func() time.Time) StoreOption {
	return func(s *LedgerStore) { s.now = now }
}

// WithIDGenerator replaces the uuid generator, used by tests that assert on IDs.
func WithIDGenerator(gen func() string) StoreOption {
	return func(s *LedgerStore) { s.newID = gen }
}

func NewLedgerStore(kv interfaces.IKeyValueStore, opts ...StoreOption) *LedgerStore {
	s := &LedgerStore{
		kv:    kv,
		now:   time.Now,
		newID: uuid.NewString,
		log:   log.With().Str("component", "ledger_store").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.snap = s.load()
	return s
}

// load reads every collection independently. A missing or corrupt key falls
// back to its seed without touching the other collections.
func (s *LedgerStore) load() entities.Snapshot {
	snap := entities.Snapshot{
		Categories:   seedCategories(),
		CargoTypes:   seedCargoTypes(),
		Trucks:       seedTrucks(),
		FuelRecords:  []entities.FuelRecord{},
		Transactions: []entities.Transaction{},
		Budgets:      []entities.BudgetRequest{},
		Maintenances: []entities.MaintenanceOrder{},
		CompanyName:  DefaultCompanyName,
	}
	s.loadKey(KeyCategories, &snap.Categories)
	s.loadKey(KeyCargoTypes, &snap.CargoTypes)
	s.loadKey(KeyTrucks, &snap.Trucks)
	s.loadKey(KeyFuelRecords, &snap.FuelRecords)
	s.loadKey(KeyTransactions, &snap.Transactions)
	s.loadKey(KeyBudgets, &snap.Budgets)
	s.loadKey(KeyMaintenances, &snap.Maintenances)
	s.loadKey(KeyUser, &snap.User)
	s.loadKey(KeyCompanyName, &snap.CompanyName)
	s.loadKey(KeyLastSync, &snap.LastSync)
	return snap
}

func (s *LedgerStore) loadKey(key string, dst any) {
	blob, ok, err := s.kv.Load(key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to load collection, using default")
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(blob, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupt collection payload, using default")
	}
}

// Snapshot returns a deep copy of the current state.
func (s *LedgerStore) Snapshot() entities.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Clone()
}

// OnChange registers a callback invoked with a copy of the new state after
// every committed mutation. Callbacks run synchronously; keep them cheap.
func (s *LedgerStore) OnChange(fn func(entities.Snapshot)) {
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

// mutate applies fn to a copy of the state. On success the copy becomes the
// current state and the named collections are persisted; on error nothing
// changes. Persistence failures are logged but do not roll back the commit.
func (s *LedgerStore) mutate(keys []string, fn func(*entities.Snapshot) error) error {
	s.mu.Lock()
	next := s.snap.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.snap = next
	s.persistLocked(keys)
	callbacks := s.onChange
	changed := next.Clone()
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn(changed)
	}
	return nil
}

func (s *LedgerStore) persistLocked(keys []string) {
	for _, key := range keys {
		var payload any
		switch key {
		case KeyCategories:
			payload = s.snap.Categories
		case KeyCargoTypes:
			payload = s.snap.CargoTypes
		case KeyTrucks:
			payload = s.snap.Trucks
		case KeyFuelRecords:
			payload = s.snap.FuelRecords
		case KeyTransactions:
			payload = s.snap.Transactions
		case KeyBudgets:
			payload = s.snap.Budgets
		case KeyMaintenances:
			payload = s.snap.Maintenances
		case KeyUser:
			payload = s.snap.User
		case KeyCompanyName:
			payload = s.snap.CompanyName
		case KeyLastSync:
			payload = s.snap.LastSync
		default:
			continue
		}
		blob, err := json.Marshal(payload)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("failed to encode collection")
			continue
		}
		if err := s.kv.Save(key, blob); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("failed to persist collection")
		}
	}
}

func (s *LedgerStore) today() string {
	return formatDay(s.now())
}
