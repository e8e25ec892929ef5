package dto

// ── pagination ──

// PaginationRequest common paging parameters.
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage returns the page number with its default.
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize returns the page size with its default.
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset computes the query offset.
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// ── shared brief shapes ──

// ZoneResponse zone summary.
type ZoneResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	IsNational bool   `json:"is_national"`
	IsActive   bool   `json:"is_active"`
}

// ClubResponse club summary.
type ClubResponse struct {
	ID       string        `json:"id"`
	Code     string        `json:"code"`
	Name     string        `json:"name"`
	ZoneID   string        `json:"zone_id"`
	Email    string        `json:"email,omitempty"`
	IsActive bool          `json:"is_active"`
	Zone     *ZoneResponse `json:"zone,omitempty"`
}

// UserRef a user as referenced from other payloads.
type UserRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	RefereeCode string `json:"referee_code,omitempty"`
	Level       string `json:"level,omitempty"`
	ZoneID      string `json:"zone_id,omitempty"`
}
