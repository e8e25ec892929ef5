package model

import (
	"time"

	"gorm.io/datatypes"
)

// ── notification types ──

const (
	NotificationTypeAvailabilityReferee = "availability_referee" // memo to the acting referee
	NotificationTypeAvailabilityAdmin   = "availability_admin"   // summary to zone/national admins
	NotificationTypeAssignmentReferee   = "assignment_referee"   // convocation to the assigned referee
	NotificationTypeAssignmentAdmin     = "assignment_admin"     // summary to zone/national admins
	NotificationTypeClubLetter          = "club_letter"          // letter to the hosting club
)

// ── notification statuses ──

const (
	NotificationStatusPending = "pending"
	NotificationStatusSent    = "sent"
	NotificationStatusPartial = "partial"
	NotificationStatusFailed  = "failed"
)

// Notification — one outbound mail job per recipient; maps to notifications.
type Notification struct {
	NotificationID  string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	TournamentID    *string        `gorm:"type:uuid"                                      json:"tournament_id,omitempty"`
	RecipientUserID *string        `gorm:"type:uuid"                                      json:"recipient_user_id,omitempty"`
	RecipientEmail  string         `gorm:"type:varchar(255);not null"                     json:"recipient_email"`
	Type            string         `gorm:"type:varchar(30);not null"                      json:"type"`
	Subject         string         `gorm:"type:varchar(255);not null"                     json:"subject"`
	Body            string         `gorm:"type:text;not null"                             json:"body"`
	Status          string         `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	SentAt          *time.Time     `json:"sent_at,omitempty"`
	ErrorMessage    *string        `gorm:"type:varchar(500)"                              json:"error_message,omitempty"`
	Attachments     datatypes.JSON `gorm:"type:jsonb"                                     json:"attachments,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (Notification) TableName() string { return "notifications" }

// TournamentNotification — aggregate of one tournament's convocation send
// (club letter + referee convocations + institutional copies); maps to
// tournament_notifications, one row per tournament.
type TournamentNotification struct {
	TournamentNotificationID string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"tournament_notification_id"`
	TournamentID             string         `gorm:"type:uuid;not null;uniqueIndex"                 json:"tournament_id"`
	Status                   string         `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	TotalRecipients          int            `gorm:"not null;default:0"                             json:"total_recipients"`
	SentCount                int            `gorm:"not null;default:0"                             json:"sent_count"`
	FailedCount              int            `gorm:"not null;default:0"                             json:"failed_count"`
	Details                  datatypes.JSON `gorm:"type:jsonb"                                     json:"details,omitempty"`
	SentAt                   *time.Time     `json:"sent_at,omitempty"`
	BaseModel
}

// TableName sets the table name.
func (TournamentNotification) TableName() string { return "tournament_notifications" }
