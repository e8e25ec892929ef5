package model

import "time"

// ── assignment roles ──

const (
	RoleDirettore   = "Direttore di Torneo"
	RoleArbitro     = "Arbitro"
	RoleOsservatore = "Osservatore"
)

// ValidRole reports whether role is one of the three officiating roles.
func ValidRole(role string) bool {
	switch role {
	case RoleDirettore, RoleArbitro, RoleOsservatore:
		return true
	}
	return false
}

// Assignment — an admin's binding decision that a referee officiates a
// tournament in a given role; maps to assignments. The unique
// (user_id, tournament_id) pair is the concurrency safety net: a racing
// second writer fails the constraint instead of duplicating.
type Assignment struct {
	AssignmentID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"                json:"assignment_id"`
	UserID       string     `gorm:"type:uuid;not null;uniqueIndex:uq_assignment_user_tournament"  json:"user_id"`
	TournamentID string     `gorm:"type:uuid;not null;uniqueIndex:uq_assignment_user_tournament"  json:"tournament_id"`
	Role         string     `gorm:"type:varchar(30);not null;default:'Arbitro'"                   json:"role"`
	IsConfirmed  bool       `gorm:"not null;default:false"                                        json:"is_confirmed"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
	AssignedBy   *string    `gorm:"type:uuid"                                                     json:"assigned_by,omitempty"`
	AssignedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"                            json:"assigned_at"`
	Notes        *string    `gorm:"type:varchar(500)"                                             json:"notes,omitempty"`
	BaseModel

	User       *User       `gorm:"foreignKey:UserID;references:UserID"             json:"user,omitempty"`
	Tournament *Tournament `gorm:"foreignKey:TournamentID;references:TournamentID" json:"tournament,omitempty"`
}

// TableName sets the table name.
func (Assignment) TableName() string { return "assignments" }
