package dto

// ── zone / club admin DTOs ──

// CreateZoneRequest new zone payload.
type CreateZoneRequest struct {
	Code       string `json:"code"        binding:"required,min=2,max=10"`
	Name       string `json:"name"        binding:"required,min=2,max=100"`
	IsNational bool   `json:"is_national"`
}

// UpdateZoneRequest zone update payload.
type UpdateZoneRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=2,max=100"`
	IsActive *bool   `json:"is_active"`
}

// CreateClubRequest new club payload.
type CreateClubRequest struct {
	Code   string `json:"code"    binding:"required,min=2,max=20"`
	Name   string `json:"name"    binding:"required,min=2,max=150"`
	ZoneID string `json:"zone_id" binding:"required,uuid"`
	Email  string `json:"email"   binding:"omitempty,email"`
}

// UpdateClubRequest club update payload.
type UpdateClubRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=2,max=150"`
	ZoneID   *string `json:"zone_id"   binding:"omitempty,uuid"`
	Email    *string `json:"email"     binding:"omitempty,email"`
	IsActive *bool   `json:"is_active"`
}

// ClubListRequest club listing parameters.
type ClubListRequest struct {
	PaginationRequest
	ZoneID  string `form:"zone_id" binding:"omitempty,uuid"`
	Keyword string `form:"keyword" binding:"omitempty,max=50"`
}
