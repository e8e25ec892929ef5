package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/service"
	"golf-arbitri/backend/pkg/response"
)

// AssignmentHandler assignment HTTP handlers.
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler builds an AssignmentHandler.
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

// GetPools
// GET /api/v1/tournaments/:id/pools
func (h *AssignmentHandler) GetPools(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	pools, err := h.assignmentSvc.ComputePools(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, pools)
}

// Assign
// POST /api/v1/tournaments/:id/assignments
func (h *AssignmentHandler) Assign(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	assignment, err := h.assignmentSvc.Assign(c.Request.Context(), callerID, c.Param("id"), &req)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.Created(c, assignment)
}

// ListByTournament
// GET /api/v1/tournaments/:id/assignments
func (h *AssignmentHandler) ListByTournament(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.assignmentSvc.ListByTournament(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, list)
}

// ListMine
// GET /api/v1/assignments/me
func (h *AssignmentHandler) ListMine(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.assignmentSvc.ListMine(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, list)
}

// Confirm
// PUT /api/v1/assignments/:id/confirm
func (h *AssignmentHandler) Confirm(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	assignment, err := h.assignmentSvc.Confirm(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, assignment)
}

// Remove
// DELETE /api/v1/assignments/:id
func (h *AssignmentHandler) Remove(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.assignmentSvc.Remove(c.Request.Context(), callerID, c.Param("id")); err != nil {
		h.handleAssignmentError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *AssignmentHandler) handleAssignmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 24001, "assignment not found")
	case errors.Is(err, service.ErrDuplicateAssignment):
		response.Conflict(c, 24002, "referee is already assigned to this tournament")
	case errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, 24003, "unknown officiating role")
	case errors.Is(err, service.ErrAssigneeNotReferee):
		response.BadRequest(c, 24004, "only referee accounts can be assigned")
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, 24005, "assignment belongs to another referee")
	case errors.Is(err, service.ErrTournamentNotFound):
		response.NotFound(c, 22001, "tournament not found")
	case errors.Is(err, service.ErrVisibilityDenied):
		response.Forbidden(c, 22002, "tournament is outside your zone")
	case errors.Is(err, service.ErrUserNotFound):
		response.BadRequest(c, 20001, "user not found")
	default:
		response.InternalError(c)
	}
}
