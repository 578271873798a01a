package entities

// Entry kinds the analyzer can produce.
const (
	EntryKindFuel    = "fuel"
	EntryKindFreight = "freight"
	EntryKindGeneral = "general"
)

// EntrySuggestion is the structured result of analyzing a free-text entry
// ("abasteci 50 litros a 5,89 placa ABC-1234..."). It is a proposal only:
// nothing is written to the ledger until the user confirms it.
//
// When IsComplete is false, AIFeedback carries a short question asking for
// the missing data and the raw suggestion is fed back as conversation
// context on the next round.
type EntrySuggestion struct {
	IsComplete    bool    `json:"isComplete"`
	AIFeedback    string  `json:"aiFeedback,omitempty"`
	Kind          string  `json:"type,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	Description   string  `json:"description,omitempty"`
	Date          string  `json:"date,omitempty"`
	TruckPlate    string  `json:"truckPlate,omitempty"`
	Mileage       float64 `json:"mileage,omitempty"`
	Liters        float64 `json:"liters,omitempty"`
	PricePerLiter float64 `json:"pricePerLiter,omitempty"`
	Client        string  `json:"client,omitempty"`
	CargoTypeName string  `json:"cargoTypeName,omitempty"`
	StartKm       float64 `json:"startKm,omitempty"`
	EndKm         float64 `json:"endKm,omitempty"`
	Weight        float64 `json:"weight,omitempty"`
	Volume        float64 `json:"volume,omitempty"`
	CategoryName  string  `json:"categoryName,omitempty"`
}
