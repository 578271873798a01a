package request

import "github.com/eduardopaniago/GestaoFrota/internal/domain/entities"

type AnalyzeEntryRequest struct {
	Text string `json:"text" binding:"required"`
	// Context echoes the nextContext from a previous incomplete analysis.
	Context string `json:"context"`
}

// ConfirmEntryRequest is the (possibly user-edited) suggestion being booked.
type ConfirmEntryRequest struct {
	Suggestion entities.EntrySuggestion `json:"suggestion" binding:"required"`
}
