package entities

// UserProfile is the locally stored account the sync features attach to.
// There is no authentication authority; this is display metadata only.
type UserProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}
