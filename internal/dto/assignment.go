package dto

// ── assignment DTOs ──

// AssignRequest assign one referee to a tournament.
type AssignRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role"    binding:"required,oneof='Direttore di Torneo' Arbitro Osservatore"`
	Notes  string `json:"notes"   binding:"omitempty,max=500"`
}

// AssignmentResponse one assignment.
type AssignmentResponse struct {
	ID           string              `json:"id"`
	TournamentID string              `json:"tournament_id"`
	User         *UserRef            `json:"user,omitempty"`
	Role         string              `json:"role"`
	IsConfirmed  bool                `json:"is_confirmed"`
	ConfirmedAt  string              `json:"confirmed_at,omitempty"`
	AssignedBy   string              `json:"assigned_by,omitempty"`
	AssignedAt   string              `json:"assigned_at"`
	Notes        string              `json:"notes,omitempty"`
	Tournament   *TournamentResponse `json:"tournament,omitempty"`
}

// RefereePoolsResponse the three disjoint candidate pools for a tournament.
type RefereePoolsResponse struct {
	Available []PoolEntry `json:"available"` // declared availability, not assigned
	Possible  []PoolEntry `json:"possible"`  // same zone, active, no declaration
	National  []PoolEntry `json:"national"`  // national-level referees from any zone
}

// PoolEntry one candidate referee.
type PoolEntry struct {
	UserRef
	MeetsRequiredLevel bool   `json:"meets_required_level"`
	AvailabilityNotes  string `json:"availability_notes,omitempty"`
}
