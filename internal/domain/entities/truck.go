package entities

// Truck is a fleet vehicle. Cannot be deleted while referenced by a
// transaction or a fuel record.
type Truck struct {
	ID    string `json:"id"`
	Plate string `json:"plate"`
	Model string `json:"model"`
}
