package model

// Zone — administrative region; maps to zones.
// A zone flagged national represents the central referee committee (CRC)
// rather than a geographic area.
type Zone struct {
	ZoneID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"zone_id"`
	Code       string `gorm:"type:varchar(10);not null;uniqueIndex"          json:"code"`
	Name       string `gorm:"type:varchar(100);not null"                     json:"name"`
	IsNational bool   `gorm:"not null;default:false"                         json:"is_national"`
	IsActive   bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (Zone) TableName() string { return "zones" }
