package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

func (s *LedgerStore) SetCompanyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: company name is required", ErrValidation)
	}
	return s.mutate([]string{KeyCompanyName}, func(snap *entities.Snapshot) error {
		snap.CompanyName = name
		return nil
	})
}

func (s *LedgerStore) SetUser(user *entities.UserProfile) error {
	return s.mutate([]string{KeyUser}, func(snap *entities.Snapshot) error {
		snap.User = user
		return nil
	})
}

// TouchLastSync stamps the time of the latest successful sync.
func (s *LedgerStore) TouchLastSync() string {
	stamp := s.now().UTC().Format(time.RFC3339)
	_ = s.mutate([]string{KeyLastSync}, func(snap *entities.Snapshot) error {
		snap.LastSync = stamp
		return nil
	})
	return stamp
}

// RestoreBackup replaces every collection with the downloaded snapshot in a
// single commit. The local user profile is kept; backups never carry one.
func (s *LedgerStore) RestoreBackup(backup entities.Snapshot) {
	stamp := s.now().UTC().Format(time.RFC3339)
	_ = s.mutate(allKeys, func(snap *entities.Snapshot) error {
		user := snap.User
		*snap = backup.Clone()
		snap.SchemaVersion = 0
		snap.User = user
		if snap.CompanyName == "" {
			snap.CompanyName = DefaultCompanyName
		}
		snap.LastSync = stamp
		ensureCollections(snap)
		return nil
	})
}

// ensureCollections keeps every collection non-nil so the persisted
// documents stay JSON arrays, never null.
func ensureCollections(snap *entities.Snapshot) {
	if snap.Categories == nil {
		snap.Categories = []entities.Category{}
	}
	if snap.CargoTypes == nil {
		snap.CargoTypes = []entities.CargoTypeCategory{}
	}
	if snap.Trucks == nil {
		snap.Trucks = []entities.Truck{}
	}
	if snap.FuelRecords == nil {
		snap.FuelRecords = []entities.FuelRecord{}
	}
	if snap.Transactions == nil {
		snap.Transactions = []entities.Transaction{}
	}
	if snap.Budgets == nil {
		snap.Budgets = []entities.BudgetRequest{}
	}
	if snap.Maintenances == nil {
		snap.Maintenances = []entities.MaintenanceOrder{}
	}
}
