package model

import "time"

// Availability — a referee's voluntary declaration for one tournament;
// maps to availabilities. The (user_id, tournament_id) pair is unique:
// re-declaring updates notes and submitted_at instead of duplicating.
// Rows are created and deleted only by the owning referee.
type Availability struct {
	AvailabilityID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"               json:"availability_id"`
	UserID         string    `gorm:"type:uuid;not null;uniqueIndex:uq_availability_user_tournament" json:"user_id"`
	TournamentID   string    `gorm:"type:uuid;not null;uniqueIndex:uq_availability_user_tournament" json:"tournament_id"`
	Notes          *string   `gorm:"type:varchar(500)"                                             json:"notes,omitempty"`
	SubmittedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                            json:"submitted_at"`
	BaseModel

	User       *User       `gorm:"foreignKey:UserID;references:UserID"                 json:"user,omitempty"`
	Tournament *Tournament `gorm:"foreignKey:TournamentID;references:TournamentID"     json:"tournament,omitempty"`
}

// TableName sets the table name.
func (Availability) TableName() string { return "availabilities" }
