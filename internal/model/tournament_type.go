package model

// ── tournament type levels ──

const (
	TournamentLevelZonale    = "zonale"
	TournamentLevelNazionale = "nazionale"
)

// TournamentType — category of tournament; maps to tournament_types.
// min/max referees are advisory staffing bounds, not enforced constraints.
type TournamentType struct {
	TournamentTypeID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"tournament_type_id"`
	Name             string `gorm:"type:varchar(100);not null"                     json:"name"`
	ShortName        string `gorm:"type:varchar(20);not null"                      json:"short_name"`
	IsNational       bool   `gorm:"not null;default:false"                         json:"is_national"`
	Level            string `gorm:"type:varchar(20);not null;default:'zonale'"     json:"level"`
	RequiredLevel    string `gorm:"type:varchar(20);not null;default:'aspirante'"  json:"required_level"`
	MinReferees      int    `gorm:"type:smallint;not null;default:1"               json:"min_referees"`
	MaxReferees      int    `gorm:"type:smallint;not null;default:1"               json:"max_referees"`
	IsActive         bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (TournamentType) TableName() string { return "tournament_types" }
