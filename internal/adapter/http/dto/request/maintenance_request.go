package request

import "github.com/eduardopaniago/GestaoFrota/internal/domain/entities"

type MaintenanceRequest struct {
	TruckID     string `json:"truckId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ResultNotes string `json:"resultNotes"`
	DateStarted string `json:"dateStarted"`
	Status      string `json:"status"`
	Type        string `json:"type" binding:"required"`
}

func (r MaintenanceRequest) ToEntity() entities.MaintenanceOrder {
	return entities.MaintenanceOrder{
		TruckID:     r.TruckID,
		Title:       r.Title,
		Description: r.Description,
		ResultNotes: r.ResultNotes,
		DateStarted: r.DateStarted,
		Status:      entities.MaintenanceStatus(r.Status),
		Type:        entities.MaintenanceType(r.Type),
	}
}

type MaintenanceUpdateRequest struct {
	TruckID      string `json:"truckId" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	ResultNotes  string `json:"resultNotes"`
	DateStarted  string `json:"dateStarted"`
	DateFinished string `json:"dateFinished"`
	Status       string `json:"status" binding:"required"`
	Type         string `json:"type" binding:"required"`
}

func (r MaintenanceUpdateRequest) ToEntity(id string) entities.MaintenanceOrder {
	return entities.MaintenanceOrder{
		ID:           id,
		TruckID:      r.TruckID,
		Title:        r.Title,
		Description:  r.Description,
		ResultNotes:  r.ResultNotes,
		DateStarted:  r.DateStarted,
		DateFinished: r.DateFinished,
		Status:       entities.MaintenanceStatus(r.Status),
		Type:         entities.MaintenanceType(r.Type),
	}
}

type MaintenanceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}
