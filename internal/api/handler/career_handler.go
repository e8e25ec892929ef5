package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/service"
	"golf-arbitri/backend/pkg/response"
)

// CareerHandler career archival HTTP handlers.
type CareerHandler struct {
	careerSvc service.CareerService
}

// NewCareerHandler builds a CareerHandler.
func NewCareerHandler(careerSvc service.CareerService) *CareerHandler {
	return &CareerHandler{careerSvc: careerSvc}
}

// ArchiveYear
// POST /api/v1/career/archive
func (h *CareerHandler) ArchiveYear(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ArchiveYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.careerSvc.ArchiveYear(c.Request.Context(), callerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 20001, "user not found")
		case errors.Is(err, service.ErrCareerNotReferee):
			response.BadRequest(c, 26001, "career archival applies to referees only")
		case errors.Is(err, service.ErrClearDataForbidden):
			response.Forbidden(c, 26002, "clearing source rows requires a super admin")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// GetHistory
// GET /api/v1/career/:userID
func (h *CareerHandler) GetHistory(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	history, err := h.careerSvc.GetHistory(c.Request.Context(), callerID, c.Param("userID"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCareerHistoryNotFound):
			response.NotFound(c, 26003, "no career history archived for this referee")
		case errors.Is(err, service.ErrNotOwner):
			response.Forbidden(c, 26004, "career history belongs to another referee")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, history)
}
