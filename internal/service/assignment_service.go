package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"golf-arbitri/backend/config"
	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/model"
	"golf-arbitri/backend/internal/repository"
)

// ── assignment errors ──

var (
	ErrDuplicateAssignment = errors.New("referee is already assigned to this tournament")
	ErrInvalidRole         = errors.New("unknown officiating role")
	ErrAssigneeNotReferee  = errors.New("only referee accounts can be assigned")
	ErrAssignmentNotFound  = errors.New("assignment not found")
)

// AssignmentService manages the admin's binding decisions: who officiates
// which tournament, in which role.
//
// Assignment does not require a prior availability declaration and is not
// gated by the availability deadline. The unique (user, tournament) pair in
// the database is the last line of defense against racing double writes.
type AssignmentService interface {
	// ComputePools returns the three disjoint candidate pools for a
	// tournament: available (declared), possible (same zone, no declaration)
	// and national (national-level referees from any zone). Referees already
	// assigned appear in none of them.
	ComputePools(ctx context.Context, callerID string, tournamentID string) (*dto.RefereePoolsResponse, error)
	// Assign creates one assignment and notifies the referee.
	Assign(ctx context.Context, callerID string, tournamentID string, req *dto.AssignRequest) (*dto.AssignmentResponse, error)
	// Confirm marks an assignment accepted by its referee. Idempotent:
	// confirming twice keeps the original confirmation time.
	Confirm(ctx context.Context, callerID string, assignmentID string) (*dto.AssignmentResponse, error)
	// Remove deletes an assignment. Silent toward the referee unless the
	// removal-notification feature flag is enabled.
	Remove(ctx context.Context, callerID string, assignmentID string) error
	ListByTournament(ctx context.Context, callerID string, tournamentID string) ([]dto.AssignmentResponse, error)
	// ListMine returns the caller's own assignments, newest first.
	ListMine(ctx context.Context, callerID string) ([]dto.AssignmentResponse, error)
}

type assignmentService struct {
	cfg        *config.Config
	repo       *repository.Repository
	visibility VisibilityService
	notifier   NotificationService
	logger     *zap.Logger
	now        func() time.Time
}

// NewAssignmentService builds an AssignmentService.
func NewAssignmentService(cfg *config.Config, repo *repository.Repository, visibility VisibilityService, notifier NotificationService, logger *zap.Logger) AssignmentService {
	return &assignmentService{
		cfg:        cfg,
		repo:       repo,
		visibility: visibility,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *assignmentService) ComputePools(ctx context.Context, callerID string, tournamentID string) (*dto.RefereePoolsResponse, error) {
	_, tournament, err := s.loadCallerAndTournament(ctx, callerID, tournamentID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	assigned := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		assigned[a.UserID] = true
	}

	availabilities, err := s.repo.Availability.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	requiredRank := model.LevelRank(requiredLevel(tournament))
	seen := make(map[string]bool, len(availabilities))

	pools := &dto.RefereePoolsResponse{
		Available: []dto.PoolEntry{},
		Possible:  []dto.PoolEntry{},
		National:  []dto.PoolEntry{},
	}

	// Available: declared availability, still unassigned.
	for _, a := range availabilities {
		u := a.User
		if u == nil || !u.IsReferee() || !u.IsActive {
			continue
		}
		seen[u.UserID] = true
		if assigned[u.UserID] {
			continue
		}
		entry := poolEntry(u, requiredRank)
		if a.Notes != nil {
			entry.AvailabilityNotes = *a.Notes
		}
		pools.Available = append(pools.Available, entry)
	}

	// Possible: active referees of the hosting zone with no declaration.
	if zoneID := tournament.EffectiveZoneID(); zoneID != "" {
		zoneReferees, err := s.repo.User.ListActiveRefereesByZone(ctx, zoneID)
		if err != nil {
			return nil, err
		}
		for i := range zoneReferees {
			u := &zoneReferees[i]
			if seen[u.UserID] || assigned[u.UserID] {
				continue
			}
			seen[u.UserID] = true
			pools.Possible = append(pools.Possible, poolEntry(u, requiredRank))
		}
	}

	// National: national-level referees from any zone not already listed.
	nationalReferees, err := s.repo.User.ListActiveNationalReferees(ctx)
	if err != nil {
		return nil, err
	}
	for i := range nationalReferees {
		u := &nationalReferees[i]
		if seen[u.UserID] || assigned[u.UserID] {
			continue
		}
		pools.National = append(pools.National, poolEntry(u, requiredRank))
	}

	return pools, nil
}

func (s *assignmentService) Assign(ctx context.Context, callerID string, tournamentID string, req *dto.AssignRequest) (*dto.AssignmentResponse, error) {
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	_, tournament, err := s.loadCallerAndTournament(ctx, callerID, tournamentID)
	if err != nil {
		return nil, err
	}

	assignee, err := s.repo.User.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !assignee.IsReferee() {
		return nil, ErrAssigneeNotReferee
	}

	assignment := &model.Assignment{
		UserID:       assignee.UserID,
		TournamentID: tournament.TournamentID,
		Role:         req.Role,
		AssignedBy:   &callerID,
		AssignedAt:   s.now(),
	}
	if req.Notes != "" {
		assignment.Notes = &req.Notes
	}
	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateAssignment
		}
		return nil, err
	}

	s.notifier.NotifyAssignment(ctx, assignee, tournament, req.Role)

	assignment.User = assignee
	assignment.Tournament = tournament
	return toAssignmentResponse(assignment), nil
}

func (s *assignmentService) Confirm(ctx context.Context, callerID string, assignmentID string) (*dto.AssignmentResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	// A referee confirms only their own assignment; admins confirm on a
	// referee's behalf.
	if caller.IsReferee() && assignment.UserID != callerID {
		return nil, ErrNotOwner
	}

	if assignment.IsConfirmed {
		return toAssignmentResponse(assignment), nil
	}

	now := s.now()
	assignment.IsConfirmed = true
	assignment.ConfirmedAt = &now
	if err := s.repo.Assignment.Update(ctx, assignment); err != nil {
		return nil, err
	}
	return toAssignmentResponse(assignment), nil
}

func (s *assignmentService) Remove(ctx context.Context, callerID string, assignmentID string) error {
	assignment, err := s.repo.Assignment.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}

	if err := s.repo.Assignment.DeleteByUserAndTournament(ctx, assignment.UserID, assignment.TournamentID); err != nil {
		return err
	}

	s.logger.Info("assignment removed",
		zap.String("assignment_id", assignmentID),
		zap.String("user_id", assignment.UserID),
		zap.String("tournament_id", assignment.TournamentID),
		zap.String("removed_by", callerID),
	)

	if s.cfg.Feature.NotifyOnAssignmentRemoval && assignment.User != nil && assignment.Tournament != nil {
		s.notifier.NotifyAssignmentRemoval(ctx, assignment.User, assignment.Tournament)
	}
	return nil
}

func (s *assignmentService) ListByTournament(ctx context.Context, callerID string, tournamentID string) ([]dto.AssignmentResponse, error) {
	if _, _, err := s.loadCallerAndTournament(ctx, callerID, tournamentID); err != nil {
		return nil, err
	}
	list, err := s.repo.Assignment.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssignmentResponse, 0, len(list))
	for i := range list {
		out = append(out, *toAssignmentResponse(&list[i]))
	}
	return out, nil
}

func (s *assignmentService) ListMine(ctx context.Context, callerID string) ([]dto.AssignmentResponse, error) {
	list, err := s.repo.Assignment.ListByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AssignmentResponse, 0, len(list))
	for i := range list {
		out = append(out, *toAssignmentResponse(&list[i]))
	}
	return out, nil
}

// loadCallerAndTournament fetches both and enforces zone visibility.
func (s *assignmentService) loadCallerAndTournament(ctx context.Context, callerID, tournamentID string) (*model.User, *model.Tournament, error) {
	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		return nil, nil, err
	}
	tournament, err := s.repo.Tournament.GetByID(ctx, tournamentID)
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

func requiredLevel(t *model.Tournament) string {
	if t.Type != nil {
		return t.Type.RequiredLevel
	}
	return model.LevelAspirante
}

func poolEntry(u *model.User, requiredRank int) dto.PoolEntry {
	return dto.PoolEntry{
		UserRef:            toUserRef(u),
		MeetsRequiredLevel: model.LevelRank(u.Level) >= requiredRank,
	}
}

func toUserRef(u *model.User) dto.UserRef {
	ref := dto.UserRef{
		ID:    u.UserID,
		Name:  u.Name,
		Email: u.Email,
		Level: u.Level,
	}
	if u.RefereeCode != nil {
		ref.RefereeCode = *u.RefereeCode
	}
	if u.ZoneID != nil {
		ref.ZoneID = *u.ZoneID
	}
	return ref
}

func toAssignmentResponse(a *model.Assignment) *dto.AssignmentResponse {
	out := &dto.AssignmentResponse{
		ID:           a.AssignmentID,
		TournamentID: a.TournamentID,
		Role:         a.Role,
		IsConfirmed:  a.IsConfirmed,
		AssignedAt:   a.AssignedAt.Format(time.RFC3339),
	}
	if a.ConfirmedAt != nil {
		out.ConfirmedAt = a.ConfirmedAt.Format(time.RFC3339)
	}
	if a.AssignedBy != nil {
		out.AssignedBy = *a.AssignedBy
	}
	if a.Notes != nil {
		out.Notes = *a.Notes
	}
	if a.User != nil {
		ref := toUserRef(a.User)
		out.User = &ref
	}
	if a.Tournament != nil {
		resp := toTournamentResponse(a.Tournament)
		out.Tournament = &resp
	}
	return out
}
