package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/service"
	"golf-arbitri/backend/pkg/response"
)

// TournamentHandler tournament and tournament-type HTTP handlers.
type TournamentHandler struct {
	tournamentSvc service.TournamentService
	typeSvc       service.TournamentTypeService
}

// NewTournamentHandler builds a TournamentHandler.
func NewTournamentHandler(tournamentSvc service.TournamentService, typeSvc service.TournamentTypeService) *TournamentHandler {
	return &TournamentHandler{tournamentSvc: tournamentSvc, typeSvc: typeSvc}
}

// ListTournaments
// GET /api/v1/tournaments
func (h *TournamentHandler) ListTournaments(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.TournamentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	tournaments, total, err := h.tournamentSvc.List(c.Request.Context(), callerID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, tournaments, total, req.GetPage(), req.GetPageSize())
}

// GetTournament
// GET /api/v1/tournaments/:id
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	detail, err := h.tournamentSvc.Get(c.Request.Context(), callerID, c.Param("id"))
	if err != nil {
		h.handleTournamentError(c, err)
		return
	}
	response.OK(c, detail)
}

// CreateTournament
// POST /api/v1/tournaments
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	tournament, err := h.tournamentSvc.Create(c.Request.Context(), callerID, &req)
	if err != nil {
		h.handleTournamentError(c, err)
		return
	}
	response.Created(c, tournament)
}

// UpdateTournament
// PUT /api/v1/tournaments/:id
func (h *TournamentHandler) UpdateTournament(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	tournament, err := h.tournamentSvc.Update(c.Request.Context(), callerID, c.Param("id"), &req)
	if err != nil {
		h.handleTournamentError(c, err)
		return
	}
	response.OK(c, tournament)
}

// UpdateTournamentStatus
// PUT /api/v1/tournaments/:id/status
func (h *TournamentHandler) UpdateTournamentStatus(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTournamentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	tournament, err := h.tournamentSvc.UpdateStatus(c.Request.Context(), callerID, c.Param("id"), &req)
	if err != nil {
		h.handleTournamentError(c, err)
		return
	}
	response.OK(c, tournament)
}

// DeleteTournament
// DELETE /api/v1/tournaments/:id
func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.tournamentSvc.Delete(c.Request.Context(), callerID, c.Param("id")); err != nil {
		h.handleTournamentError(c, err)
		return
	}
	response.OK(c, nil)
}

// ListTournamentTypes
// GET /api/v1/tournament-types
func (h *TournamentHandler) ListTournamentTypes(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	types, err := h.typeSvc.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, types)
}

// CreateTournamentType
// POST /api/v1/tournament-types
func (h *TournamentHandler) CreateTournamentType(c *gin.Context) {
	var req dto.CreateTournamentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	tt, err := h.typeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrBadRefereeBounds) {
			response.BadRequest(c, 22101, "max referees below min referees")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, tt)
}

// UpdateTournamentType
// PUT /api/v1/tournament-types/:id
func (h *TournamentHandler) UpdateTournamentType(c *gin.Context) {
	var req dto.UpdateTournamentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	tt, err := h.typeSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTypeNotFound):
			response.NotFound(c, 22102, "tournament type not found")
		case errors.Is(err, service.ErrBadRefereeBounds):
			response.BadRequest(c, 22101, "max referees below min referees")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, tt)
}

func (h *TournamentHandler) handleTournamentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTournamentNotFound):
		response.NotFound(c, 22001, "tournament not found")
	case errors.Is(err, service.ErrVisibilityDenied):
		response.Forbidden(c, 22002, "tournament is outside your zone")
	case errors.Is(err, service.ErrClubNotFound):
		response.BadRequest(c, 21101, "club not found")
	case errors.Is(err, service.ErrTypeNotFound):
		response.BadRequest(c, 22102, "tournament type not found")
	case errors.Is(err, service.ErrBadDateRange):
		response.BadRequest(c, 22003, "end date precedes start date")
	case errors.Is(err, service.ErrBadStatusTransition):
		response.BadRequest(c, 22004, "status transition not allowed")
	default:
		response.InternalError(c)
	}
}
