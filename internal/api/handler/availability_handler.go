package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/service"
	"golf-arbitri/backend/pkg/response"
)

// AvailabilityHandler referee availability HTTP handlers.
type AvailabilityHandler struct {
	availabilitySvc service.AvailabilityService
}

// NewAvailabilityHandler builds an AvailabilityHandler.
func NewAvailabilityHandler(availabilitySvc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilitySvc: availabilitySvc}
}

// ListMine
// GET /api/v1/availabilities/me
func (h *AvailabilityHandler) ListMine(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.availabilitySvc.ListMine(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// Declare
// POST /api/v1/availabilities
func (h *AvailabilityHandler) Declare(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.DeclareAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	availability, err := h.availabilitySvc.Declare(c.Request.Context(), callerID, &req)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.Created(c, availability)
}

// Withdraw
// DELETE /api/v1/availabilities/:id
func (h *AvailabilityHandler) Withdraw(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.availabilitySvc.Withdraw(c.Request.Context(), callerID, c.Param("id")); err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.OK(c, nil)
}

// SaveBatch
// PUT /api/v1/availabilities/batch
func (h *AvailabilityHandler) SaveBatch(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SaveAvailabilityBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.availabilitySvc.SaveBatch(c.Request.Context(), callerID, &req)
	if err != nil {
		h.handleAvailabilityError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *AvailabilityHandler) handleAvailabilityError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAvailabilityNotFound):
		response.NotFound(c, 23001, "availability not found")
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, 23002, "availability belongs to another referee")
	case errors.Is(err, service.ErrNotEligible):
		response.BadRequest(c, 23003, "tournament no longer accepts declarations")
	case errors.Is(err, service.ErrDeadlinePassed):
		response.BadRequest(c, 23004, "availability deadline has passed")
	case errors.Is(err, service.ErrVisibilityDenied):
		response.Forbidden(c, 23005, "tournament is not visible to you")
	case errors.Is(err, service.ErrTournamentNotFound):
		response.NotFound(c, 22001, "tournament not found")
	case errors.Is(err, service.ErrBatchSaveFailed):
		response.Error(c, http.StatusInternalServerError, 23006, "batch save failed, no changes were applied")
	default:
		response.InternalError(c)
	}
}
