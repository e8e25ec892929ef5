package dto

// ── notification DTOs ──

// NotificationListRequest listing parameters.
type NotificationListRequest struct {
	PaginationRequest
	TournamentID string `form:"tournament_id" binding:"omitempty,uuid"`
	Type         string `form:"type"          binding:"omitempty,oneof=availability_referee availability_admin assignment_referee assignment_admin club_letter"`
	Status       string `form:"status"        binding:"omitempty,oneof=pending sent partial failed"`
}

// NotificationResponse one dispatched (or failed) mail job.
type NotificationResponse struct {
	ID             string   `json:"id"`
	TournamentID   string   `json:"tournament_id,omitempty"`
	RecipientEmail string   `json:"recipient_email"`
	Type           string   `json:"type"`
	Subject        string   `json:"subject"`
	Status         string   `json:"status"`
	SentAt         string   `json:"sent_at,omitempty"`
	ErrorMessage   string   `json:"error_message,omitempty"`
	Attachments    []string `json:"attachments,omitempty"`
}

// SendConvocationRequest triggers the per-tournament convocation send
// (club letter + referee convocations + institutional copies).
type SendConvocationRequest struct {
	IncludeClubLetter bool     `json:"include_club_letter"`
	DocumentPaths     []string `json:"document_paths" binding:"omitempty,dive,max=300"`
}

// TournamentNotificationResponse aggregate state of a convocation send.
type TournamentNotificationResponse struct {
	ID              string `json:"id"`
	TournamentID    string `json:"tournament_id"`
	Status          string `json:"status"`
	TotalRecipients int    `json:"total_recipients"`
	SentCount       int    `json:"sent_count"`
	FailedCount     int    `json:"failed_count"`
	SentAt          string `json:"sent_at,omitempty"`
}
