package request

import "github.com/eduardopaniago/GestaoFrota/internal/usecase"

type FreightQuoteRequest struct {
	Mode          string  `json:"mode" binding:"required"`
	DistanceKm    float64 `json:"distanceKm" binding:"required"`
	LoadAmount    float64 `json:"loadAmount" binding:"required"`
	UnitPrice     float64 `json:"unitPrice" binding:"required"`
	FuelPrice     float64 `json:"fuelPrice"`
	OtherExpenses float64 `json:"otherExpenses"`
}

func (r FreightQuoteRequest) ToInput() usecase.FreightQuoteInput {
	return usecase.FreightQuoteInput{
		Mode:          r.Mode,
		DistanceKm:    r.DistanceKm,
		LoadAmount:    r.LoadAmount,
		UnitPrice:     r.UnitPrice,
		FuelPrice:     r.FuelPrice,
		OtherExpenses: r.OtherExpenses,
	}
}

// SaveFreightRequest books a quote as a revenue transaction.
type SaveFreightRequest struct {
	FreightQuoteRequest
	ClientName string `json:"clientName" binding:"required"`
	TruckID    string `json:"truckId" binding:"required"`
}
