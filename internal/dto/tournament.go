package dto

// ── tournament DTOs ──

// TournamentListRequest tournament listing parameters. These same filters
// define the page context handed to the batch availability save.
type TournamentListRequest struct {
	PaginationRequest
	ZoneID   string `form:"zone_id"   binding:"omitempty,uuid"`
	Status   string `form:"status"    binding:"omitempty,oneof=draft open closed assigned completed cancelled"`
	TypeID   string `form:"type_id"   binding:"omitempty,uuid"`
	DateFrom string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to"   binding:"omitempty,datetime=2006-01-02"`
	Keyword  string `form:"keyword"   binding:"omitempty,max=50"`
}

// CreateTournamentRequest new tournament payload.
type CreateTournamentRequest struct {
	Name                 string `json:"name"                  binding:"required,min=3,max=200"`
	ClubID               string `json:"club_id"               binding:"required,uuid"`
	TournamentTypeID     string `json:"tournament_type_id"    binding:"required,uuid"`
	StartDate            string `json:"start_date"            binding:"required,datetime=2006-01-02"`
	EndDate              string `json:"end_date"              binding:"required,datetime=2006-01-02"`
	AvailabilityDeadline string `json:"availability_deadline" binding:"required"` // RFC 3339
	Notes                string `json:"notes"                 binding:"omitempty,max=2000"`
}

// UpdateTournamentRequest tournament update payload.
type UpdateTournamentRequest struct {
	Name                 *string `json:"name"                  binding:"omitempty,min=3,max=200"`
	ClubID               *string `json:"club_id"               binding:"omitempty,uuid"`
	TournamentTypeID     *string `json:"tournament_type_id"    binding:"omitempty,uuid"`
	StartDate            *string `json:"start_date"            binding:"omitempty,datetime=2006-01-02"`
	EndDate              *string `json:"end_date"              binding:"omitempty,datetime=2006-01-02"`
	AvailabilityDeadline *string `json:"availability_deadline"` // RFC 3339
	Notes                *string `json:"notes"                  binding:"omitempty,max=2000"`
}

// UpdateTournamentStatusRequest status transition payload.
type UpdateTournamentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft open closed assigned completed cancelled"`
}

// TournamentResponse tournament payload.
type TournamentResponse struct {
	ID                   string                  `json:"id"`
	Name                 string                  `json:"name"`
	Club                 *ClubResponse           `json:"club,omitempty"`
	Type                 *TournamentTypeResponse `json:"type,omitempty"`
	ZoneID               string                  `json:"zone_id,omitempty"`
	StartDate            string                  `json:"start_date"`
	EndDate              string                  `json:"end_date"`
	AvailabilityDeadline string                  `json:"availability_deadline"`
	Status               string                  `json:"status"`
	Notes                string                  `json:"notes,omitempty"`
}

// TournamentDetailResponse tournament with staffing state.
type TournamentDetailResponse struct {
	TournamentResponse
	Staffing StaffingResponse `json:"staffing"`
}

// StaffingResponse advisory staffing adequacy; never blocks assignment.
type StaffingResponse struct {
	Assigned     int    `json:"assigned"`
	Confirmed    int    `json:"confirmed"`
	MinReferees  int    `json:"min_referees"`
	MaxReferees  int    `json:"max_referees"`
	Adequacy     string `json:"adequacy"` // understaffed | adequate | overstaffed
	Availability int    `json:"availability_count"`
}

// TournamentTypeResponse tournament type payload.
type TournamentTypeResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ShortName     string `json:"short_name"`
	IsNational    bool   `json:"is_national"`
	Level         string `json:"level"`
	RequiredLevel string `json:"required_level"`
	MinReferees   int    `json:"min_referees"`
	MaxReferees   int    `json:"max_referees"`
	IsActive      bool   `json:"is_active"`
}

// ── tournament type admin DTOs ──

// CreateTournamentTypeRequest new tournament type payload.
type CreateTournamentTypeRequest struct {
	Name          string `json:"name"           binding:"required,min=3,max=100"`
	ShortName     string `json:"short_name"     binding:"required,min=1,max=20"`
	IsNational    bool   `json:"is_national"`
	Level         string `json:"level"          binding:"required,oneof=zonale nazionale"`
	RequiredLevel string `json:"required_level" binding:"required,oneof=aspirante primo_livello regionale nazionale internazionale"`
	MinReferees   int    `json:"min_referees"   binding:"required,min=1,max=20"`
	MaxReferees   int    `json:"max_referees"   binding:"required,min=1,max=20"`
}

// UpdateTournamentTypeRequest tournament type update payload.
type UpdateTournamentTypeRequest struct {
	Name          *string `json:"name"           binding:"omitempty,min=3,max=100"`
	ShortName     *string `json:"short_name"     binding:"omitempty,min=1,max=20"`
	IsNational    *bool   `json:"is_national"`
	Level         *string `json:"level"          binding:"omitempty,oneof=zonale nazionale"`
	RequiredLevel *string `json:"required_level" binding:"omitempty,oneof=aspirante primo_livello regionale nazionale internazionale"`
	MinReferees   *int    `json:"min_referees"   binding:"omitempty,min=1,max=20"`
	MaxReferees   *int    `json:"max_referees"   binding:"omitempty,min=1,max=20"`
	IsActive      *bool   `json:"is_active"`
}
