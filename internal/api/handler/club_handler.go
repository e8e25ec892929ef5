package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/service"
	"golf-arbitri/backend/pkg/response"
)

// ClubHandler club directory HTTP handlers.
type ClubHandler struct {
	clubSvc service.ClubService
}

// NewClubHandler builds a ClubHandler.
func NewClubHandler(clubSvc service.ClubService) *ClubHandler {
	return &ClubHandler{clubSvc: clubSvc}
}

// ListClubs
// GET /api/v1/clubs
func (h *ClubHandler) ListClubs(c *gin.Context) {
	var req dto.ClubListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	clubs, total, err := h.clubSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, clubs, total, req.GetPage(), req.GetPageSize())
}

// GetClub
// GET /api/v1/clubs/:id
func (h *ClubHandler) GetClub(c *gin.Context) {
	club, err := h.clubSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrClubNotFound) {
			response.NotFound(c, 21101, "club not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, club)
}

// CreateClub
// POST /api/v1/clubs
func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req dto.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	club, err := h.clubSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrZoneNotFound):
			response.BadRequest(c, 21001, "zone not found")
		case errors.Is(err, service.ErrClubCodeTaken):
			response.Conflict(c, 21102, "club code already in use")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, club)
}

// UpdateClub
// PUT /api/v1/clubs/:id
func (h *ClubHandler) UpdateClub(c *gin.Context) {
	var req dto.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	club, err := h.clubSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClubNotFound):
			response.NotFound(c, 21101, "club not found")
		case errors.Is(err, service.ErrZoneNotFound):
			response.BadRequest(c, 21001, "zone not found")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, club)
}

// DeleteClub
// DELETE /api/v1/clubs/:id
func (h *ClubHandler) DeleteClub(c *gin.Context) {
	if err := h.clubSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrClubNotFound) {
			response.NotFound(c, 21101, "club not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
