package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/service"
	"golf-arbitri/backend/pkg/response"
)

// ZoneHandler zone directory HTTP handlers.
type ZoneHandler struct {
	zoneSvc service.ZoneService
}

// NewZoneHandler builds a ZoneHandler.
func NewZoneHandler(zoneSvc service.ZoneService) *ZoneHandler {
	return &ZoneHandler{zoneSvc: zoneSvc}
}

// ListZones
// GET /api/v1/zones
func (h *ZoneHandler) ListZones(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	zones, err := h.zoneSvc.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, zones)
}

// GetZone
// GET /api/v1/zones/:id
func (h *ZoneHandler) GetZone(c *gin.Context) {
	zone, err := h.zoneSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrZoneNotFound) {
			response.NotFound(c, 21001, "zone not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, zone)
}

// CreateZone
// POST /api/v1/zones
func (h *ZoneHandler) CreateZone(c *gin.Context) {
	var req dto.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	zone, err := h.zoneSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrZoneCodeTaken) {
			response.Conflict(c, 21002, "zone code already in use")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, zone)
}

// UpdateZone
// PUT /api/v1/zones/:id
func (h *ZoneHandler) UpdateZone(c *gin.Context) {
	var req dto.UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	zone, err := h.zoneSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrZoneNotFound) {
			response.NotFound(c, 21001, "zone not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, zone)
}
