package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/service"
	"golf-arbitri/backend/pkg/response"
)

// NotificationHandler notification HTTP handlers.
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler builds a NotificationHandler.
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// List
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	var req dto.NotificationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	list, total, err := h.notificationSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// SendConvocation
// POST /api/v1/tournaments/:id/convocation
func (h *NotificationHandler) SendConvocation(c *gin.Context) {
	var req dto.SendConvocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	result, err := h.notificationSvc.SendConvocation(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotificationTournamentNotFound):
			response.NotFound(c, 22001, "tournament not found")
		case errors.Is(err, service.ErrNoConvocationRecipients):
			response.BadRequest(c, 25001, "tournament has no assigned referees to convoke")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}
