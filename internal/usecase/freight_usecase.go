package usecase

import (
	"fmt"
	"strings"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

// Freight pricing modes.
const (
	PricingPerTon = "PER_TON"
	PricingPerM3  = "PER_M3"
)

// Loaded truck consumption assumed by the quote calculator, in km/L.
const assumedConsumptionKmPerL = 2.0

// FreightQuoteInput describes a load to be priced.
type FreightQuoteInput struct {
	Mode          string  `json:"mode"`
	DistanceKm    float64 `json:"distanceKm"`
	LoadAmount    float64 `json:"loadAmount"`
	UnitPrice     float64 `json:"unitPrice"`
	FuelPrice     float64 `json:"fuelPrice"`
	OtherExpenses float64 `json:"otherExpenses"`
}

// FreightQuote is the priced result of a quote input.
type FreightQuote struct {
	SuggestedFreight float64 `json:"suggestedFreight"`
	LitersNeeded     float64 `json:"litersNeeded"`
	FuelCost         float64 `json:"fuelCost"`
	TotalCost        float64 `json:"totalCost"`
	Profit           float64 `json:"profit"`
	Margin           float64 `json:"margin"`
	CostPerKm        float64 `json:"costPerKm"`
	RevenuePerKm     float64 `json:"revenuePerKm"`
}

func (in FreightQuoteInput) validate() error {
	if in.Mode != PricingPerTon && in.Mode != PricingPerM3 {
		return fmt.Errorf("%w: unknown pricing mode %q", ErrValidation, in.Mode)
	}
	if in.DistanceKm <= 0 {
		return fmt.Errorf("%w: distance must be positive", ErrValidation)
	}
	if in.LoadAmount <= 0 {
		return fmt.Errorf("%w: load amount must be positive", ErrValidation)
	}
	if in.UnitPrice <= 0 {
		return fmt.Errorf("%w: unit price must be positive", ErrValidation)
	}
	if in.FuelPrice < 0 || in.OtherExpenses < 0 {
		return fmt.Errorf("%w: costs cannot be negative", ErrValidation)
	}
	return nil
}

// ComputeFreightQuote prices a load. Per-m³ freight scales with distance,
// per-ton freight is a flat rate on the load.
func ComputeFreightQuote(in FreightQuoteInput) (FreightQuote, error) {
	if err := in.validate(); err != nil {
		return FreightQuote{}, err
	}

	var quote FreightQuote
	switch in.Mode {
	case PricingPerM3:
		quote.SuggestedFreight = in.DistanceKm * in.LoadAmount * in.UnitPrice
	case PricingPerTon:
		quote.SuggestedFreight = in.UnitPrice * in.LoadAmount
	}

	quote.LitersNeeded = in.DistanceKm / assumedConsumptionKmPerL
	quote.FuelCost = quote.LitersNeeded * in.FuelPrice
	quote.TotalCost = quote.FuelCost + in.OtherExpenses
	quote.Profit = quote.SuggestedFreight - quote.TotalCost
	if quote.SuggestedFreight > 0 {
		quote.Margin = quote.Profit / quote.SuggestedFreight * 100
	}
	quote.CostPerKm = quote.TotalCost / in.DistanceKm
	quote.RevenuePerKm = quote.SuggestedFreight / in.DistanceKm
	return quote, nil
}

// SaveFreightQuote books a quote as a paid revenue transaction for a truck,
// filing it under the freight category when one exists. The leg is recorded
// as 0..distance so the per-km reports pick it up.
func (s *LedgerStore) SaveFreightQuote(in FreightQuoteInput, clientName, truckID string) (entities.Transaction, error) {
	quote, err := ComputeFreightQuote(in)
	if err != nil {
		return entities.Transaction{}, err
	}
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return entities.Transaction{}, fmt.Errorf("%w: client name is required", ErrValidation)
	}
	if truckID == "" {
		return entities.Transaction{}, fmt.Errorf("%w: truck is required", ErrValidation)
	}

	modeLabel := "Por Ton"
	if in.Mode == PricingPerM3 {
		modeLabel = "Por m³"
	}

	var out entities.Transaction
	err = s.mutate([]string{KeyTransactions}, func(snap *entities.Snapshot) error {
		if _, ok := findTruck(snap.Trucks, truckID); !ok {
			return ErrTruckNotFound
		}
		cat, ok := findCategoryByName(snap.Categories, "frete")
		if !ok {
			if len(snap.Categories) == 0 {
				return fmt.Errorf("%w: no category available for freight revenue", ErrValidation)
			}
			cat = snap.Categories[0]
		}

		today := s.today()
		out = entities.Transaction{
			ID:            s.newID(),
			Date:          today,
			ExecutionDate: today,
			DueDate:       today,
			IsPaid:        true,
			Amount:        quote.SuggestedFreight,
			Description:   fmt.Sprintf("Frete: %s (%s)", clientName, modeLabel),
			SubCategory:   clientName,
			CategoryID:    cat.ID,
			Type:          entities.TransactionTypeRevenue,
			TruckID:       truckID,
			StartMileage:  entities.Float64Ptr(0),
			EndMileage:    entities.Float64Ptr(in.DistanceKm),
		}
		if in.Mode == PricingPerTon {
			out.Weight = in.LoadAmount
		} else {
			out.Volume = in.LoadAmount
		}
		snap.Transactions = append(snap.Transactions, out)
		return nil
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return out, nil
}
