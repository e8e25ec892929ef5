package dto

// ── user DTOs ──

// UserListRequest referee/admin listing parameters.
type UserListRequest struct {
	PaginationRequest
	ZoneID   string `form:"zone_id"   binding:"omitempty,uuid"`
	UserType string `form:"user_type" binding:"omitempty,oneof=referee admin national_admin super_admin"`
	Level    string `form:"level"     binding:"omitempty,oneof=aspirante primo_livello regionale nazionale internazionale archivio"`
	Keyword  string `form:"keyword"   binding:"omitempty,max=50"`
	Active   *bool  `form:"active"`
}

// CreateUserRequest new account payload.
type CreateUserRequest struct {
	Name        string `json:"name"         binding:"required,min=2,max=100"`
	Email       string `json:"email"        binding:"required,email"`
	Password    string `json:"password"     binding:"required,min=8,max=64"`
	UserType    string `json:"user_type"    binding:"required,oneof=referee admin national_admin super_admin"`
	RefereeCode string `json:"referee_code" binding:"omitempty,max=20"`
	Level       string `json:"level"        binding:"omitempty,oneof=aspirante primo_livello regionale nazionale internazionale archivio"`
	ZoneID      string `json:"zone_id"      binding:"omitempty,uuid"`
}

// UpdateUserRequest account update payload; nil fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email"     binding:"omitempty,email"`
	Level    *string `json:"level"     binding:"omitempty,oneof=aspirante primo_livello regionale nazionale internazionale archivio"`
	ZoneID   *string `json:"zone_id"   binding:"omitempty,uuid"`
	IsActive *bool   `json:"is_active"`
}

// UserResponse account payload (sanitized).
type UserResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	UserType    string        `json:"user_type"`
	RefereeCode string        `json:"referee_code,omitempty"`
	Level       string        `json:"level"`
	IsActive    bool          `json:"is_active"`
	Zone        *ZoneResponse `json:"zone,omitempty"`
}
