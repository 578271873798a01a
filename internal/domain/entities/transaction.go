package entities

// Transaction is a single ledger movement (revenue or expense).
//
// References (CategoryID, TruckID, MaintenanceID, FuelRecordID, CargoTypeID)
// are weak back-references by ID; a missing target resolves to an
// "unknown/deleted" placeholder when rendered, never an error.
//
// IsPaid=false together with a DueDate marks the transaction "pending";
// it becomes a notification candidate once DueDate <= today.
//
// Dates are calendar days in ISO form (YYYY-MM-DD), which keeps the
// persisted documents interchangeable with the legacy localStorage backups.
type Transaction struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	ExecutionDate string          `json:"executionDate"`
	DueDate       string          `json:"dueDate,omitempty"`
	IsPaid        bool            `json:"isPaid"`
	Amount        float64         `json:"amount"`
	Description   string          `json:"description"`
	SubCategory   string          `json:"subCategory,omitempty"`
	CategoryID    string          `json:"categoryId"`
	Type          TransactionType `json:"type"`
	TruckID       string          `json:"truckId,omitempty"`
	MaintenanceID string          `json:"maintenanceId,omitempty"`
	FuelRecordID  string          `json:"fuelRecordId,omitempty"`

	// Fuel details copied from the paired fuel record.
	Mileage       float64 `json:"mileage,omitempty"`
	Liters        float64 `json:"liters,omitempty"`
	PricePerLiter float64 `json:"pricePerLiter,omitempty"`

	// Freight leg odometry and load.
	StartMileage   *float64 `json:"startMileage,omitempty"`
	EndMileage     *float64 `json:"endMileage,omitempty"`
	Weight         float64  `json:"weight,omitempty"`
	Volume         float64  `json:"volume,omitempty"`
	CargoTypeID    string   `json:"cargoTypeId,omitempty"`
	CargoTypeLabel string   `json:"cargoTypeLabel,omitempty"`
}

// LegKilometers returns the freight leg distance when both odometer
// readings are present, and false otherwise.
func (t Transaction) LegKilometers() (float64, bool) {
	if t.StartMileage == nil || t.EndMileage == nil {
		return 0, false
	}
	return *t.EndMileage - *t.StartMileage, true
}
