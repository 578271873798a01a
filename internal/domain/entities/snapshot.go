package entities

// SchemaVersion is the current version of the persisted/synced snapshot
// layout. The legacy backups carry no version field and are read as v1.
const SchemaVersion = 1

// Snapshot is the full in-memory state of the ledger. The store replaces
// it wholesale on every mutation; consumers always receive a clone, never
// the live value.
//
// The JSON shape matches the legacy per-key localStorage documents so old
// backups restore without translation.
type Snapshot struct {
	SchemaVersion int                 `json:"schemaVersion,omitempty"`
	Categories    []Category          `json:"categories"`
	CargoTypes    []CargoTypeCategory `json:"cargoTypes"`
	Trucks        []Truck             `json:"trucks"`
	FuelRecords   []FuelRecord        `json:"fuelRecords"`
	Transactions  []Transaction       `json:"transactions"`
	Budgets       []BudgetRequest     `json:"budgets"`
	Maintenances  []MaintenanceOrder  `json:"maintenances"`
	CompanyName   string              `json:"companyName"`
	User          *UserProfile        `json:"user,omitempty"`
	LastSync      string              `json:"lastSync,omitempty"`
}

// Clone returns a deep copy of the snapshot. Transactions hold pointer
// fields (odometer readings) and budget requests own nested option slices,
// so a field-by-field copy is required.
func (s Snapshot) Clone() Snapshot {
	// The [:0:0] form preserves nil-ness, so empty collections keep
	// serializing as [] instead of null after a clone.
	out := s
	out.Categories = append(s.Categories[:0:0], s.Categories...)
	out.CargoTypes = append(s.CargoTypes[:0:0], s.CargoTypes...)
	out.Trucks = append(s.Trucks[:0:0], s.Trucks...)
	out.FuelRecords = append(s.FuelRecords[:0:0], s.FuelRecords...)

	if s.Transactions != nil {
		out.Transactions = make([]Transaction, len(s.Transactions))
		for i, tx := range s.Transactions {
			out.Transactions[i] = cloneTransaction(tx)
		}
	}

	if s.Budgets != nil {
		out.Budgets = make([]BudgetRequest, len(s.Budgets))
		for i, b := range s.Budgets {
			nb := b
			nb.Options = append(b.Options[:0:0], b.Options...)
			out.Budgets[i] = nb
		}
	}

	out.Maintenances = append(s.Maintenances[:0:0], s.Maintenances...)

	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}

func cloneTransaction(tx Transaction) Transaction {
	nt := tx
	if tx.StartMileage != nil {
		v := *tx.StartMileage
		nt.StartMileage = &v
	}
	if tx.EndMileage != nil {
		v := *tx.EndMileage
		nt.EndMileage = &v
	}
	return nt
}

// Float64Ptr is a convenience for the optional odometer fields.
func Float64Ptr(v float64) *float64 { return &v }
