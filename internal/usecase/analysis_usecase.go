package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
	"github.com/eduardopaniago/GestaoFrota/internal/usecase/interfaces"
)

// AnalysisResult pairs the suggestion with the conversation context the
// client must echo back when the analyzer asks a follow-up question.
type AnalysisResult struct {
	Suggestion  entities.EntrySuggestion `json:"suggestion"`
	NextContext string                   `json:"nextContext,omitempty"`
}

// EntryAnalysisUseCase turns free text ("abasteci 50 litros a 5,89 no
// ABC-1234") into ledger records. Analyze proposes, Confirm writes.
type EntryAnalysisUseCase struct {
	store    *LedgerStore
	analyzer interfaces.IEntryAnalyzer
	log      zerolog.Logger
}

func NewEntryAnalysisUseCase(store *LedgerStore, analyzer interfaces.IEntryAnalyzer) *EntryAnalysisUseCase {
	return &EntryAnalysisUseCase{
		store:    store,
		analyzer: analyzer,
		log:      log.With().Str("component", "entry_analysis").Logger(),
	}
}

// Analyze sends the text plus the current catalog (category, truck and
// cargo names) to the analyzer. Nothing is written to the ledger.
func (u *EntryAnalysisUseCase) Analyze(ctx context.Context, text, previousContext string) (AnalysisResult, error) {
	if u.analyzer == nil {
		return AnalysisResult{}, fmt.Errorf("%w: analyzer not configured", ErrAnalysis)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return AnalysisResult{}, fmt.Errorf("%w: text is required", ErrValidation)
	}

	snap := u.store.Snapshot()
	req := interfaces.AnalyzeRequest{
		Text:            text,
		PreviousContext: previousContext,
		Today:           formatDay(u.store.now()),
	}
	for _, cat := range snap.Categories {
		req.CategoryNames = append(req.CategoryNames, cat.Name)
	}
	for _, truck := range snap.Trucks {
		req.TruckPlates = append(req.TruckPlates, truck.Plate)
	}
	for _, ct := range snap.CargoTypes {
		req.CargoTypeNames = append(req.CargoTypeNames, ct.Name)
	}

	suggestion, err := u.analyzer.Analyze(ctx, req)
	if err != nil {
		u.log.Warn().Err(err).Msg("analyzer failed")
		return AnalysisResult{}, fmt.Errorf("%w: %v", ErrAnalysis, err)
	}

	result := AnalysisResult{Suggestion: suggestion}
	if !suggestion.IsComplete {
		if blob, err := json.Marshal(suggestion); err == nil {
			result.NextContext = string(blob)
		}
	}
	return result, nil
}

// Confirm books a complete suggestion. Names coming back from the analyzer
// are resolved against the actual records, tolerating small typos.
func (u *EntryAnalysisUseCase) Confirm(sug entities.EntrySuggestion) (entities.Transaction, error) {
	if !sug.IsComplete {
		return entities.Transaction{}, fmt.Errorf("%w: suggestion is incomplete", ErrValidation)
	}
	if sug.Amount <= 0 && sug.Kind != entities.EntryKindFuel {
		return entities.Transaction{}, fmt.Errorf("%w: amount is required", ErrValidation)
	}

	snap := u.store.Snapshot()
	date := sug.Date
	if date == "" {
		date = formatDay(u.store.now())
	}

	if sug.Kind == entities.EntryKindFuel {
		return u.confirmFuel(snap, sug, date)
	}

	tx := entities.Transaction{
		Date:          date,
		ExecutionDate: date,
		DueDate:       date,
		IsPaid:        true,
		Amount:        sug.Amount,
		Description:   sug.Description,
	}
	if truck, ok := resolveTruckByPlate(snap.Trucks, sug.TruckPlate); ok {
		tx.TruckID = truck.ID
	}

	if sug.Kind == entities.EntryKindFreight {
		tx.Type = entities.TransactionTypeRevenue
		cat, ok := findCategoryByName(snap.Categories, "frete")
		if !ok {
			if len(snap.Categories) == 0 {
				return entities.Transaction{}, fmt.Errorf("%w: no category available", ErrValidation)
			}
			cat = snap.Categories[0]
		}
		tx.CategoryID = cat.ID
		tx.SubCategory = sug.Client
		if sug.StartKm > 0 || sug.EndKm > 0 {
			tx.StartMileage = entities.Float64Ptr(sug.StartKm)
			tx.EndMileage = entities.Float64Ptr(sug.EndKm)
		}
		tx.Weight = sug.Weight
		tx.Volume = sug.Volume
		if ct, ok := resolveByName(snap.CargoTypes, sug.CargoTypeName, func(c entities.CargoTypeCategory) string { return c.Name }); ok {
			tx.CargoTypeID = ct.ID
			tx.CargoTypeLabel = ct.Name
		}
		return u.store.AddTransaction(tx)
	}

	cat, ok := resolveByName(snap.Categories, sug.CategoryName, func(c entities.Category) string { return c.Name })
	if !ok {
		if len(snap.Categories) == 0 {
			return entities.Transaction{}, fmt.Errorf("%w: no category available", ErrValidation)
		}
		cat = snap.Categories[0]
	}
	tx.CategoryID = cat.ID
	tx.Type = cat.Type
	if tx.Type == "" {
		tx.Type = entities.TransactionTypeVariableExpense
	}
	return u.store.AddTransaction(tx)
}

func (u *EntryAnalysisUseCase) confirmFuel(snap entities.Snapshot, sug entities.EntrySuggestion, date string) (entities.Transaction, error) {
	truck, ok := resolveTruckByPlate(snap.Trucks, sug.TruckPlate)
	if !ok {
		if len(snap.Trucks) == 0 {
			return entities.Transaction{}, fmt.Errorf("%w: no truck available", ErrValidation)
		}
		truck = snap.Trucks[0]
	}
	cost := sug.Amount
	if cost == 0 {
		cost = sug.Liters * sug.PricePerLiter
	}
	rec, err := u.store.AddFuelRecord(FuelRecordInput{
		Date:          date,
		TruckID:       truck.ID,
		Mileage:       sug.Mileage,
		Liters:        sug.Liters,
		PricePerLiter: sug.PricePerLiter,
		Cost:          cost,
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	for _, tx := range u.store.Snapshot().Transactions {
		if tx.FuelRecordID == rec.ID {
			return tx, nil
		}
	}
	// No fuel category configured: the fill was stored without a ledger
	// movement.
	return entities.Transaction{FuelRecordID: rec.ID}, nil
}

// resolveTruckByPlate matches plates ignoring case and separators, then
// falls back to edit distance for one-typo plates.
func resolveTruckByPlate(trucks []entities.Truck, plate string) (entities.Truck, bool) {
	norm := normalizePlate(plate)
	if norm == "" {
		return entities.Truck{}, false
	}
	for _, t := range trucks {
		if normalizePlate(t.Plate) == norm {
			return t, true
		}
	}
	best, bestDist := entities.Truck{}, 3
	for _, t := range trucks {
		if d := levenshtein.ComputeDistance(normalizePlate(t.Plate), norm); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, bestDist < 3
}

func normalizePlate(plate string) string {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	return strings.ReplaceAll(plate, "-", "")
}

// resolveByName matches names case-insensitively, then tolerates small
// typos via edit distance.
func resolveByName[T any](items []T, name string, nameOf func(T) string) (T, bool) {
	var zero T
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zero, false
	}
	for _, item := range items {
		if strings.ToLower(nameOf(item)) == name {
			return item, true
		}
	}
	best, bestDist := zero, 4
	for _, item := range items {
		if d := levenshtein.ComputeDistance(strings.ToLower(nameOf(item)), name); d < bestDist {
			best, bestDist = item, d
		}
	}
	return best, bestDist < 4
}
