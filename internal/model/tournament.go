package model

import "time"

// ── tournament statuses ──

const (
	TournamentStatusDraft     = "draft"
	TournamentStatusOpen      = "open"
	TournamentStatusClosed    = "closed"
	TournamentStatusAssigned  = "assigned"
	TournamentStatusCompleted = "completed"
	TournamentStatusCancelled = "cancelled"
)

// Tournament — a competition hosted by a club; maps to tournaments.
type Tournament struct {
	TournamentID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"tournament_id"`
	Name                 string    `gorm:"type:varchar(200);not null"                     json:"name"`
	ClubID               string    `gorm:"type:uuid;not null"                             json:"club_id"`
	TournamentTypeID     string    `gorm:"type:uuid;not null"                             json:"tournament_type_id"`
	ZoneID               *string   `gorm:"type:uuid"                                      json:"zone_id,omitempty"` // cache of club.zone_id, see EffectiveZoneID
	StartDate            time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate              time.Time `gorm:"type:date;not null"                             json:"end_date"`
	AvailabilityDeadline time.Time `gorm:"not null"                                       json:"availability_deadline"`
	Status               string    `gorm:"type:varchar(20);not null;default:'draft'"      json:"status"`
	Notes                *string   `gorm:"type:text"                                      json:"notes,omitempty"`
	BaseModel

	Club *Club           `gorm:"foreignKey:ClubID;references:ClubID"                     json:"club,omitempty"`
	Type *TournamentType `gorm:"foreignKey:TournamentTypeID;references:TournamentTypeID" json:"type,omitempty"`
}

// TableName sets the table name.
func (Tournament) TableName() string { return "tournaments" }

// EffectiveZoneID is the single zone-derivation point: the hosting club's
// zone wins; the stored zone_id column is only a fallback cache for rows
// loaded without their club.
func (t *Tournament) EffectiveZoneID() string {
	if t.Club != nil {
		return t.Club.ZoneID
	}
	if t.ZoneID != nil {
		return *t.ZoneID
	}
	return ""
}

// IsNational reports whether the tournament's type is flagged national.
// False when the type is not loaded: callers that need this must preload.
func (t *Tournament) IsNational() bool {
	return t.Type != nil && t.Type.IsNational
}

// AcceptsAvailability reports whether the tournament status admits
// availability declarations at all.
func (t *Tournament) AcceptsAvailability() bool {
	return t.Status == TournamentStatusOpen
}
