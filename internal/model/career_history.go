package model

import (
	"gorm.io/datatypes"
)

// CareerSchemaVersion versions the JSON buckets below; bump it when their
// shape changes and migrate on read.
const CareerSchemaVersion = 1

// YearBucket is one calendar year's archived counts. ByRole is only
// populated on the assignments bucket, so role distribution survives a
// source-row purge.
type YearBucket struct {
	SchemaVersion int            `json:"schema_version"`
	Count         int            `json:"count"`
	ByRole        map[string]int `json:"by_role,omitempty"`
}

// LevelChange records a level transition archived for a year.
type LevelChange struct {
	SchemaVersion int    `json:"schema_version"`
	FromLevel     string `json:"from_level"`
	ToLevel       string `json:"to_level"`
}

// CareerStats are the aggregates recomputed on every archival.
type CareerStats struct {
	SchemaVersion       int            `json:"schema_version"`
	TotalTournaments    int            `json:"total_tournaments"`
	TotalAssignments    int            `json:"total_assignments"`
	TotalAvailabilities int            `json:"total_availabilities"`
	FirstYear           int            `json:"first_year,omitempty"`
	LastYear            int            `json:"last_year,omitempty"`
	BestYear            int            `json:"best_year,omitempty"` // year with most assignments
	RoleDistribution    map[string]int `json:"role_distribution,omitempty"`
}

// RefereeCareerHistory — compact yearly archival summary of a referee's
// activity; maps to referee_career_histories, one row per referee.
// Buckets are keyed by the year as a string ("2024"); archiving a year
// overwrites only that year's entry.
type RefereeCareerHistory struct {
	CareerHistoryID       string                                     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"career_history_id"`
	UserID                string                                     `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	TournamentsByYear     datatypes.JSONType[map[string]YearBucket]  `gorm:"type:jsonb"                                     json:"tournaments_by_year"`
	AssignmentsByYear     datatypes.JSONType[map[string]YearBucket]  `gorm:"type:jsonb"                                     json:"assignments_by_year"`
	AvailabilitiesByYear  datatypes.JSONType[map[string]YearBucket]  `gorm:"type:jsonb"                                     json:"availabilities_by_year"`
	LevelChangesByYear    datatypes.JSONType[map[string]LevelChange] `gorm:"type:jsonb"                                     json:"level_changes_by_year"`
	CareerStats           datatypes.JSONType[CareerStats]            `gorm:"type:jsonb"                                     json:"career_stats"`
	DataCompletenessScore float64                                    `gorm:"not null;default:0"                             json:"data_completeness_score"`
	LastArchivedYear      *int                                       `json:"last_archived_year,omitempty"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (RefereeCareerHistory) TableName() string { return "referee_career_histories" }
