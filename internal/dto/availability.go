package dto

// ── availability DTOs ──

// DeclareAvailabilityRequest single declaration payload.
type DeclareAvailabilityRequest struct {
	TournamentID string `json:"tournament_id" binding:"required,uuid"`
	Notes        string `json:"notes"         binding:"omitempty,max=500"`
}

// SaveAvailabilityBatchRequest batch save payload. PageTournamentIDs is the
// page-filter context: the exact tournament IDs the caller was shown.
// Selections outside that set are ignored, availabilities outside it are
// never touched.
type SaveAvailabilityBatchRequest struct {
	PageTournamentIDs     []string `json:"page_tournament_ids"     binding:"required,min=1,dive,uuid"`
	SelectedTournamentIDs []string `json:"selected_tournament_ids" binding:"dive,uuid"`
}

// AvailabilityResponse one declaration.
type AvailabilityResponse struct {
	ID           string              `json:"id"`
	TournamentID string              `json:"tournament_id"`
	UserID       string              `json:"user_id"`
	Notes        string              `json:"notes,omitempty"`
	SubmittedAt  string              `json:"submitted_at"`
	Tournament   *TournamentResponse `json:"tournament,omitempty"`
}

// AvailabilityBatchResponse outcome of a batch save.
type AvailabilityBatchResponse struct {
	Added   []string `json:"added"`   // tournament IDs newly declared
	Removed []string `json:"removed"` // tournament IDs withdrawn
}
