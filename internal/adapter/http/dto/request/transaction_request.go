package request

import (
	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

// TransactionRequest is the write payload for ledger movements. The shape
// mirrors the stored entity minus the server-assigned ID.
type TransactionRequest struct {
	Date          string  `json:"date" binding:"required"`
	ExecutionDate string  `json:"executionDate"`
	DueDate       string  `json:"dueDate"`
	IsPaid        bool    `json:"isPaid"`
	Amount        float64 `json:"amount" binding:"required"`
	Description   string  `json:"description"`
	SubCategory   string  `json:"subCategory"`
	CategoryID    string  `json:"categoryId" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	TruckID       string  `json:"truckId"`
	MaintenanceID string  `json:"maintenanceId"`

	Mileage       float64 `json:"mileage"`
	Liters        float64 `json:"liters"`
	PricePerLiter float64 `json:"pricePerLiter"`

	StartMileage   *float64 `json:"startMileage"`
	EndMileage     *float64 `json:"endMileage"`
	Weight         float64  `json:"weight"`
	Volume         float64  `json:"volume"`
	CargoTypeID    string   `json:"cargoTypeId"`
	CargoTypeLabel string   `json:"cargoTypeLabel"`
}

func (r TransactionRequest) ToEntity() entities.Transaction {
	return entities.Transaction{
		Date:           r.Date,
		ExecutionDate:  r.ExecutionDate,
		DueDate:        r.DueDate,
		IsPaid:         r.IsPaid,
		Amount:         r.Amount,
		Description:    r.Description,
		SubCategory:    r.SubCategory,
		CategoryID:     r.CategoryID,
		Type:           entities.TransactionType(r.Type),
		TruckID:        r.TruckID,
		MaintenanceID:  r.MaintenanceID,
		Mileage:        r.Mileage,
		Liters:         r.Liters,
		PricePerLiter:  r.PricePerLiter,
		StartMileage:   r.StartMileage,
		EndMileage:     r.EndMileage,
		Weight:         r.Weight,
		Volume:         r.Volume,
		CargoTypeID:    r.CargoTypeID,
		CargoTypeLabel: r.CargoTypeLabel,
	}
}

type FuelRecordRequest struct {
	Date          string  `json:"date" binding:"required"`
	TruckID       string  `json:"truckId" binding:"required"`
	Mileage       float64 `json:"mileage"`
	Liters        float64 `json:"liters" binding:"required"`
	PricePerLiter float64 `json:"pricePerLiter" binding:"required"`
	Cost          float64 `json:"cost"`
}
