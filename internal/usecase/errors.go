package usecase

import "errors"

// Validation failures are rejected before any mutation happens; wrap
// ErrValidation so handlers can map every variant to one HTTP status.
var ErrValidation = errors.New("validation failed")

// Referential-integrity guards. A delete blocked by dependents leaves the
// store untouched.
var (
	ErrCategoryInUse       = errors.New("category is referenced by transactions")
	ErrCargoTypeInUse      = errors.New("cargo type is referenced by transactions")
	ErrTruckInUse          = errors.New("truck has transactions or fuel records")
	ErrMaintenanceHasItems = errors.New("maintenance order has linked cost items")
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrMaintenanceNotFound = errors.New("maintenance order not found")
	ErrBudgetNotFound      = errors.New("budget request not found")
	ErrOptionNotFound      = errors.New("budget option not found")
	ErrTruckNotFound       = errors.New("truck not found")
)

// Sync failures. All recoverable; none corrupts local state.
var (
	ErrSyncUnavailable = errors.New("no sync backend configured")
	ErrSyncBusy        = errors.New("a sync operation is already in flight")
	ErrBackupPayload   = errors.New("remote backup payload is invalid")
	ErrBackupVersion   = errors.New("remote backup schema version is newer than this build")
)

// Settlement failures.
var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrNotReceivable        = errors.New("transaction is not a pending receivable")
)

// Analysis failures; the caller falls back to manual entry.
var ErrAnalysis = errors.New("entry analysis failed")
