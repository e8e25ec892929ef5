package model

// ── user types ──

const (
	UserTypeReferee       = "referee"
	UserTypeAdmin         = "admin"
	UserTypeNationalAdmin = "national_admin"
	UserTypeSuperAdmin    = "super_admin"
)

// ── referee levels (ordered) ──

const (
	LevelAspirante      = "aspirante"
	LevelPrimoLivello   = "primo_livello"
	LevelRegionale      = "regionale"
	LevelNazionale      = "nazionale"
	LevelInternazionale = "internazionale"
	LevelArchivio       = "archivio"
)

// levelRank orders referee levels for required-level comparisons.
// Archivio ranks lowest: archived referees never satisfy a requirement.
var levelRank = map[string]int{
	LevelArchivio:       0,
	LevelAspirante:      1,
	LevelPrimoLivello:   2,
	LevelRegionale:      3,
	LevelNazionale:      4,
	LevelInternazionale: 5,
}

// LevelRank returns the ordering rank of a referee level, 0 for unknown.
func LevelRank(level string) int { return levelRank[level] }

// User — referee or admin account; maps to users.
// Only user_type=referee participates in availability and assignment;
// admin-type users are notification recipients, never assignees.
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string  `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	UserType     string  `gorm:"type:varchar(20);not null;default:'referee'"    json:"user_type"`
	RefereeCode  *string `gorm:"type:varchar(20)"                               json:"referee_code,omitempty"`
	Level        string  `gorm:"type:varchar(20);not null;default:'aspirante'"  json:"level"`
	ZoneID       *string `gorm:"type:uuid"                                      json:"zone_id,omitempty"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	Zone *Zone `gorm:"foreignKey:ZoneID;references:ZoneID" json:"zone,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }

// IsReferee reports whether the user may declare availability and be assigned.
func (u *User) IsReferee() bool { return u.UserType == UserTypeReferee }

// IsNationalReferee reports whether the referee holds a national-or-above level.
func (u *User) IsNationalReferee() bool {
	return u.IsReferee() && LevelRank(u.Level) >= levelRank[LevelNazionale]
}

// IsNationalScoped reports whether the user sees every zone: national and
// super admins always do, referees do once they reach national level.
func (u *User) IsNationalScoped() bool {
	switch u.UserType {
	case UserTypeNationalAdmin, UserTypeSuperAdmin:
		return true
	case UserTypeReferee:
		return u.IsNationalReferee()
	}
	return false
}
