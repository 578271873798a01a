package interfaces

import (
	"context"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

// AnalyzeRequest carries the free text plus the catalog the model may
// reference. Today is the ISO date used to resolve relative dates.
type AnalyzeRequest struct {
	Text            string
	PreviousContext string
	Today           string
	CategoryNames   []string
	TruckPlates     []string
	CargoTypeNames  []string
}

// IEntryAnalyzer converts natural language into a structured entry
// suggestion. Any failure (transport, unparseable response) is an analysis
// error; the caller falls back to manual entry.
//
//go:generate mockgen -source=entry_analyzer_interface.go -destination=mocks/entry_analyzer_mock.go -package=mocks
type IEntryAnalyzer interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (entities.EntrySuggestion, error)
}
