package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/model"
	"golf-arbitri/backend/internal/repository"
)

// ── tournament errors ──

var (
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrClubNotFound        = errors.New("club not found")
	ErrTypeNotFound        = errors.New("tournament type not found")
	ErrBadDateRange        = errors.New("end date precedes start date")
	ErrBadStatusTransition = errors.New("status transition not allowed")
)

// validStatusTransitions is the tournament lifecycle. Cancellation is open
// from every non-terminal status; a closed tournament can be reopened while
// declarations are still wanted.
var validStatusTransitions = map[string][]string{
	model.TournamentStatusDraft:    {model.TournamentStatusOpen, model.TournamentStatusCancelled},
	model.TournamentStatusOpen:     {model.TournamentStatusClosed, model.TournamentStatusCancelled},
	model.TournamentStatusClosed:   {model.TournamentStatusOpen, model.TournamentStatusAssigned, model.TournamentStatusCancelled},
	model.TournamentStatusAssigned: {model.TournamentStatusCompleted, model.TournamentStatusCancelled},
}

// TournamentService tournament lifecycle and listings. Every read is
// zone-scoped through the visibility rules; staffing numbers in the detail
// view are advisory only.
type TournamentService interface {
	List(ctx context.Context, callerID string, req *dto.TournamentListRequest) ([]dto.TournamentResponse, int64, error)
	Get(ctx context.Context, callerID string, id string) (*dto.TournamentDetailResponse, error)
	Create(ctx context.Context, callerID string, req *dto.CreateTournamentRequest) (*dto.TournamentResponse, error)
	Update(ctx context.Context, callerID string, id string, req *dto.UpdateTournamentRequest) (*dto.TournamentResponse, error)
	UpdateStatus(ctx context.Context, callerID string, id string, req *dto.UpdateTournamentStatusRequest) (*dto.TournamentResponse, error)
	Delete(ctx context.Context, callerID string, id string) error
}

type tournamentService struct {
	repo       *repository.Repository
	visibility VisibilityService
	logger     *zap.Logger
}

// NewTournamentService builds a TournamentService.
func NewTournamentService(repo *repository.Repository, visibility VisibilityService, logger *zap.Logger) TournamentService {
	return &tournamentService{repo: repo, visibility: visibility, logger: logger}
}

func (s *tournamentService) List(ctx context.Context, callerID string, req *dto.TournamentListRequest) ([]dto.TournamentResponse, int64, error) {
	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		return nil, 0, err
	}

	filter := repository.TournamentFilter{
		ZoneID:  req.ZoneID,
		Status:  req.Status,
		TypeID:  req.TypeID,
		Keyword: req.Keyword,
		Offset:  req.GetOffset(),
		Limit:   req.GetPageSize(),
	}
	if req.DateFrom != "" {
		if d, err := time.Parse("2006-01-02", req.DateFrom); err == nil {
			filter.DateFrom = &d
		}
	}
	if req.DateTo != "" {
		if d, err := time.Parse("2006-01-02", req.DateTo); err == nil {
			filter.DateTo = &d
		}
	}
	filter = s.visibility.TournamentScope(caller, filter)

	tournaments, total, err := s.repo.Tournament.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.TournamentResponse, 0, len(tournaments))
	for i := range tournaments {
		out = append(out, toTournamentResponse(&tournaments[i]))
	}
	return out, total, nil
}

func (s *tournamentService) Get(ctx context.Context, callerID string, id string) (*dto.TournamentDetailResponse, error) {
	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	tournament, err := s.repo.Tournament.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	if !s.visibility.CanSeeTournament(caller, tournament) {
		return nil, ErrVisibilityDenied
	}

	assigned, confirmed, err := s.repo.Assignment.CountByTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	availabilities, err := s.repo.Availability.ListByTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.TournamentDetailResponse{
		TournamentResponse: toTournamentResponse(tournament),
		Staffing: dto.StaffingResponse{
			Assigned:     int(assigned),
			Confirmed:    int(confirmed),
			Availability: len(availabilities),
		},
	}
	if tournament.Type != nil {
		detail.Staffing.MinReferees = tournament.Type.MinReferees
		detail.Staffing.MaxReferees = tournament.Type.MaxReferees
		detail.Staffing.Adequacy = adequacy(int(assigned), tournament.Type.MinReferees, tournament.Type.MaxReferees)
	}
	return detail, nil
}

func (s *tournamentService) Create(ctx context.Context, callerID string, req *dto.CreateTournamentRequest) (*dto.TournamentResponse, error) {
	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	club, err := s.repo.Club.GetByID(ctx, req.ClubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	// A zone admin only schedules tournaments at clubs of their own zone.
	if !caller.IsNationalScoped() {
		if caller.ZoneID == nil || *caller.ZoneID != club.ZoneID {
			return nil, ErrVisibilityDenied
		}
	}

	if _, err := s.repo.TournamentType.GetByID(ctx, req.TournamentTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, ErrBadDateRange
	}
	deadline, err := parseDeadline(req.AvailabilityDeadline)
	if err != nil {
		return nil, err
	}

	tournament := &model.Tournament{
		Name:                 req.Name,
		ClubID:               club.ClubID,
		TournamentTypeID:     req.TournamentTypeID,
		ZoneID:               &club.ZoneID,
		StartDate:            startDate,
		EndDate:              endDate,
		AvailabilityDeadline: deadline,
		Status:               model.TournamentStatusDraft,
	}
	if req.Notes != "" {
		tournament.Notes = &req.Notes
	}
	if err := s.repo.Tournament.Create(ctx, tournament); err != nil {
		return nil, err
	}

	s.logger.Info("tournament created",
		zap.String("tournament_id", tournament.TournamentID),
		zap.String("club_id", club.ClubID),
		zap.String("created_by", callerID),
	)

	created, err := s.repo.Tournament.GetByID(ctx, tournament.TournamentID)
	if err != nil {
		return nil, err
	}
	resp := toTournamentResponse(created)
	return &resp, nil
}

func (s *tournamentService) Update(ctx context.Context, callerID string, id string, req *dto.UpdateTournamentRequest) (*dto.TournamentResponse, error) {
	_, tournament, err := s.loadForWrite(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tournament.Name = *req.Name
	}
	if req.ClubID != nil {
		club, err := s.repo.Club.GetByID(ctx, *req.ClubID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClubNotFound
			}
			return nil, err
		}
		tournament.ClubID = club.ClubID
		tournament.ZoneID = &club.ZoneID
		tournament.Club = club
	}
	if req.TournamentTypeID != nil {
		if _, err := s.repo.TournamentType.GetByID(ctx, *req.TournamentTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrTypeNotFound
			}
			return nil, err
		}
		tournament.TournamentTypeID = *req.TournamentTypeID
	}
	if req.StartDate != nil {
		d, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return nil, err
		}
		tournament.StartDate = d
	}
	if req.EndDate != nil {
		d, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, err
		}
		tournament.EndDate = d
	}
	if tournament.EndDate.Before(tournament.StartDate) {
		return nil, ErrBadDateRange
	}
	if req.AvailabilityDeadline != nil {
		deadline, err := parseDeadline(*req.AvailabilityDeadline)
		if err != nil {
			return nil, err
		}
		tournament.AvailabilityDeadline = deadline
	}
	if req.Notes != nil {
		tournament.Notes = req.Notes
	}

	if err := s.repo.Tournament.Update(ctx, tournament); err != nil {
		return nil, err
	}
	updated, err := s.repo.Tournament.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toTournamentResponse(updated)
	return &resp, nil
}

func (s *tournamentService) UpdateStatus(ctx context.Context, callerID string, id string, req *dto.UpdateTournamentStatusRequest) (*dto.TournamentResponse, error) {
	_, tournament, err := s.loadForWrite(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if req.Status != tournament.Status {
		allowed := false
		for _, next := range validStatusTransitions[tournament.Status] {
			if next == req.Status {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, ErrBadStatusTransition
		}
		tournament.Status = req.Status
		if err := s.repo.Tournament.Update(ctx, tournament); err != nil {
			return nil, err
		}
		s.logger.Info("tournament status changed",
			zap.String("tournament_id", id),
			zap.String("status", req.Status),
			zap.String("changed_by", callerID),
		)
	}

	resp := toTournamentResponse(tournament)
	return &resp, nil
}

func (s *tournamentService) Delete(ctx context.Context, callerID string, id string) error {
	if _, _, err := s.loadForWrite(ctx, callerID, id); err != nil {
		return err
	}
	return s.repo.Tournament.Delete(ctx, id)
}

func (s *tournamentService) loadForWrite(ctx context.Context, callerID, id string) (*model.User, *model.Tournament, error) {
	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		return nil, nil, err
	}
	tournament, err := s.repo.Tournament.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTournamentNotFound
		}
		return nil, nil, err
	}
	if !s.visibility.CanSeeTournament(caller, tournament) {
		return nil, nil, ErrVisibilityDenied
	}
	return caller, tournament, nil
}

// ── helpers ──

// parseDeadline accepts RFC 3339 or a bare date, which means end of day.
func parseDeadline(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(24*time.Hour - time.Second), nil
}

func adequacy(assigned, min, max int) string {
	switch {
	case assigned < min:
		return "understaffed"
	case max > 0 && assigned > max:
		return "overstaffed"
	default:
		return "adequate"
	}
}

func toTournamentResponse(t *model.Tournament) dto.TournamentResponse {
	resp := dto.TournamentResponse{
		ID:                   t.TournamentID,
		Name:                 t.Name,
		ZoneID:               t.EffectiveZoneID(),
		StartDate:            t.StartDate.Format("2006-01-02"),
		EndDate:              t.EndDate.Format("2006-01-02"),
		AvailabilityDeadline: t.AvailabilityDeadline.Format(time.RFC3339),
		Status:               t.Status,
	}
	if t.Notes != nil {
		resp.Notes = *t.Notes
	}
	if t.Club != nil {
		club := toClubResponse(t.Club)
		resp.Club = &club
	}
	if t.Type != nil {
		typ := toTournamentTypeResponse(t.Type)
		resp.Type = &typ
	}
	return resp
}

func toClubResponse(c *model.Club) dto.ClubResponse {
	resp := dto.ClubResponse{
		ID:       c.ClubID,
		Code:     c.Code,
		Name:     c.Name,
		ZoneID:   c.ZoneID,
		IsActive: c.IsActive,
	}
	if c.Email != nil {
		resp.Email = *c.Email
	}
	if c.Zone != nil {
		zone := toZoneResponse(c.Zone)
		resp.Zone = &zone
	}
	return resp
}

func toTournamentTypeResponse(tt *model.TournamentType) dto.TournamentTypeResponse {
	return dto.TournamentTypeResponse{
		ID:            tt.TournamentTypeID,
		Name:          tt.Name,
		ShortName:     tt.ShortName,
		IsNational:    tt.IsNational,
		Level:         tt.Level,
		RequiredLevel: tt.RequiredLevel,
		MinReferees:   tt.MinReferees,
		MaxReferees:   tt.MaxReferees,
		IsActive:      tt.IsActive,
	}
}
