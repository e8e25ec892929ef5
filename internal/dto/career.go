package dto

// ── career archival DTOs ──

// ArchiveYearRequest archives one referee's calendar year.
type ArchiveYearRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Year   int    `json:"year"    binding:"required,min=1990,max=2100"`
	// ClearData deletes the year's source rows after successful archival.
	// Restricted to super admins.
	ClearData bool `json:"clear_data"`
}

// ArchiveYearResponse outcome of one archival run.
type ArchiveYearResponse struct {
	UserID            string  `json:"user_id"`
	Year              int     `json:"year"`
	Tournaments       int     `json:"tournaments"`
	Assignments       int     `json:"assignments"`
	Availabilities    int     `json:"availabilities"`
	CompletenessScore float64 `json:"data_completeness_score"`
	SourceRowsCleared bool    `json:"source_rows_cleared"`
}

// CareerHistoryResponse a referee's archived career summary.
type CareerHistoryResponse struct {
	UserID                string              `json:"user_id"`
	TournamentsByYear     map[string]int      `json:"tournaments_by_year"`
	AssignmentsByYear     map[string]int      `json:"assignments_by_year"`
	AvailabilitiesByYear  map[string]int      `json:"availabilities_by_year"`
	CareerStats           CareerStatsResponse `json:"career_stats"`
	DataCompletenessScore float64             `json:"data_completeness_score"`
	LastArchivedYear      int                 `json:"last_archived_year,omitempty"`
}

// CareerStatsResponse recomputed aggregates.
type CareerStatsResponse struct {
	TotalTournaments    int            `json:"total_tournaments"`
	TotalAssignments    int            `json:"total_assignments"`
	TotalAvailabilities int            `json:"total_availabilities"`
	FirstYear           int            `json:"first_year,omitempty"`
	LastYear            int            `json:"last_year,omitempty"`
	BestYear            int            `json:"best_year,omitempty"`
	RoleDistribution    map[string]int `json:"role_distribution,omitempty"`
}
