package response

import "github.com/eduardopaniago/GestaoFrota/internal/domain/entities"

type SettingsResponse struct {
	CompanyName string                `json:"companyName"`
	User        *entities.UserProfile `json:"user,omitempty"`
	LastSync    string                `json:"lastSync,omitempty"`
}

func SettingsFromSnapshot(snap entities.Snapshot) SettingsResponse {
	return SettingsResponse{
		CompanyName: snap.CompanyName,
		User:        snap.User,
		LastSync:    snap.LastSync,
	}
}
