package entities

// MaintenanceStatus is the lifecycle of a workshop service order.
type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "PENDING"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusCompleted  MaintenanceStatus = "COMPLETED"
)

// Valid reports whether s is a known maintenance status.
func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusPending, MaintenanceStatusInProgress, MaintenanceStatusCompleted:
		return true
	}
	return false
}

// MaintenanceType distinguishes scheduled upkeep from breakdown repair.
type MaintenanceType string

const (
	MaintenancePreventiva MaintenanceType = "PREVENTIVA"
	MaintenanceCorretiva  MaintenanceType = "CORRETIVA"
)

// Valid reports whether t is a known maintenance type.
func (t MaintenanceType) Valid() bool {
	return t == MaintenancePreventiva || t == MaintenanceCorretiva
}

// MaintenanceOrder is a workshop service order (OS) for a truck. It owns
// zero or more transactions through Transaction.MaintenanceID (cost line
// items); an order with linked transactions cannot be deleted.
type MaintenanceOrder struct {
	ID           string            `json:"id"`
	TruckID      string            `json:"truckId"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	ResultNotes  string            `json:"resultNotes,omitempty"`
	DateStarted  string            `json:"dateStarted"`
	DateFinished string            `json:"dateFinished,omitempty"`
	Status       MaintenanceStatus `json:"status"`
	Type         MaintenanceType   `json:"type"`
}
