package model

// Club — golf club hosting tournaments; maps to clubs.
// Every club belongs to exactly one zone.
type Club struct {
	ClubID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"club_id"`
	Code     string  `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Name     string  `gorm:"type:varchar(150);not null"                     json:"name"`
	ZoneID   string  `gorm:"type:uuid;not null"                             json:"zone_id"`
	Email    *string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	IsActive bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	Zone *Zone `gorm:"foreignKey:ZoneID;references:ZoneID" json:"zone,omitempty"`
}

// TableName sets the table name.
func (Club) TableName() string { return "clubs" }
