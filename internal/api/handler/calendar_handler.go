package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"golf-arbitri/backend/internal/service"
	"golf-arbitri/backend/pkg/response"
)

// CalendarHandler iCalendar feed HTTP handlers.
type CalendarHandler struct {
	calendarSvc service.CalendarService
}

// NewCalendarHandler builds a CalendarHandler.
func NewCalendarHandler(calendarSvc service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarSvc: calendarSvc}
}

// MyFeed serves the caller's confirmed assignments as an ICS calendar.
// GET /api/v1/calendar/me.ics
func (h *CalendarHandler) MyFeed(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	feed, err := h.calendarSvc.RefereeFeed(c.Request.Context(), callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=assignments.ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(feed))
}
