package entities

// MeasureUnit is how a cargo type is quantified on freight legs.
type MeasureUnit string

const (
	MeasureUnitWeight MeasureUnit = "WEIGHT"
	MeasureUnitVolume MeasureUnit = "VOLUME"
)

// Valid reports whether u is a known measure unit.
func (u MeasureUnit) Valid() bool {
	return u == MeasureUnitWeight || u == MeasureUnitVolume
}

// CargoTypeCategory is a kind of cargo hauled by the fleet (brita, areia,
// massa asfáltica...). Cannot be deleted while referenced by a transaction.
type CargoTypeCategory struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Unit MeasureUnit `json:"unit"`
}
