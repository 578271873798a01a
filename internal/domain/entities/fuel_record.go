package entities

// FuelRecord is a tank fill for a truck.
//
// Creating one always synthesizes a paired VARIABLE_EXPENSE transaction
// (linked back through Transaction.FuelRecordID) so the cost shows up in
// the DRE; deleting one cascades to that transaction.
//
// Dates are calendar days in ISO form (YYYY-MM-DD).
type FuelRecord struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	TruckID       string  `json:"truckId"`
	Mileage       float64 `json:"mileage"`
	Liters        float64 `json:"liters"`
	PricePerLiter float64 `json:"pricePerLiter"`
	Cost          float64 `json:"cost"`
}
