package request

import "github.com/eduardopaniago/GestaoFrota/internal/domain/entities"

type CompanyNameRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
}

type UserProfileRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

func (r UserProfileRequest) ToEntity() *entities.UserProfile {
	return &entities.UserProfile{ID: r.ID, Name: r.Name, Email: r.Email, Picture: r.Picture}
}
