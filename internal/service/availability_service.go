package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/model"
	"golf-arbitri/backend/internal/repository"
)

// ── availability errors ──

var (
	ErrNotEligible          = errors.New("tournament no longer accepts availability declarations")
	ErrDeadlinePassed       = errors.New("availability deadline has passed")
	ErrVisibilityDenied     = errors.New("tournament is not visible to this user")
	ErrNotOwner             = errors.New("availability belongs to another referee")
	ErrBatchSaveFailed      = errors.New("batch availability save failed, no changes were applied")
	ErrAvailabilityNotFound = errors.New("availability not found")
)

// AvailabilityService records and withdraws referee availability.
//
// Only the owning referee ever creates or deletes availability rows; admins
// act on assignments instead. Declarations are gated by the tournament's
// start date and availability deadline — assignment itself is not.
type AvailabilityService interface {
	// Declare upserts the caller's availability for one tournament.
	// Re-declaring refreshes notes and submitted_at instead of duplicating.
	Declare(ctx context.Context, callerID string, req *dto.DeclareAvailabilityRequest) (*dto.AvailabilityResponse, error)
	// Withdraw deletes one declaration owned by the caller.
	Withdraw(ctx context.Context, callerID string, availabilityID string) error
	// SaveBatch reconciles the caller's declarations against a selection,
	// scoped strictly to the page of tournaments the caller was shown.
	// Atomic: any row failure rolls back the whole reconciliation.
	SaveBatch(ctx context.Context, callerID string, req *dto.SaveAvailabilityBatchRequest) (*dto.AvailabilityBatchResponse, error)
	// ListMine returns the caller's current declarations.
	ListMine(ctx context.Context, callerID string) ([]dto.AvailabilityResponse, error)
}

type availabilityService struct {
	repo       *repository.Repository
	visibility VisibilityService
	notifier   NotificationService
	logger     *zap.Logger
	now        func() time.Time
}

// NewAvailabilityService builds an AvailabilityService.
func NewAvailabilityService(repo *repository.Repository, visibility VisibilityService, notifier NotificationService, logger *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo:       repo,
		visibility: visibility,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *availabilityService) Declare(ctx context.Context, callerID string, req *dto.DeclareAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.IsReferee() {
		return nil, ErrNotEligible
	}

	tournament, err := s.repo.Tournament.GetByID(ctx, req.TournamentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	now := s.now()
	if err := s.checkDeclarationGates(caller, tournament, now); err != nil {
		return nil, err
	}

	availability := &model.Availability{
		UserID:       caller.UserID,
		TournamentID: tournament.TournamentID,
		SubmittedAt:  now,
	}
	if req.Notes != "" {
		availability.Notes = &req.Notes
	}
	if err := s.repo.Availability.Upsert(ctx, availability); err != nil {
		return nil, err
	}

	// Best-effort side effect: the declaration stays committed even when
	// delivery fails.
	s.notifier.NotifyAvailabilityChange(ctx, caller, []model.Tournament{*tournament}, nil)

	return toAvailabilityResponse(availability, tournament), nil
}

func (s *availabilityService) Withdraw(ctx context.Context, callerID string, availabilityID string) error {
	availability, err := s.repo.Availability.GetByID(ctx, availabilityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAvailabilityNotFound
		}
		return err
	}
	if availability.UserID != callerID {
		return ErrNotOwner
	}

	if err := s.repo.Availability.DeleteByUserAndTournament(ctx, callerID, availability.TournamentID); err != nil {
		return err
	}

	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		s.logger.Warn("loading referee for withdrawal notification failed",
			zap.String("user_id", callerID), zap.Error(err))
		return nil
	}
	if availability.Tournament != nil {
		s.notifier.NotifyAvailabilityChange(ctx, caller, nil, []model.Tournament{*availability.Tournament})
	}
	return nil
}

func (s *availabilityService) SaveBatch(ctx context.Context, callerID string, req *dto.SaveAvailabilityBatchRequest) (*dto.AvailabilityBatchResponse, error) {
	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !caller.IsReferee() {
		return nil, ErrNotEligible
	}

	// The page context is authoritative: selections outside it are dropped,
	// declarations outside it are never touched.
	filter := s.visibility.TournamentScope(caller, repository.TournamentFilter{
		IDs:   req.PageTournamentIDs,
		Limit: len(req.PageTournamentIDs),
	})
	pageTournaments, _, err := s.repo.Tournament.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	pageByID := make(map[string]*model.Tournament, len(pageTournaments))
	for i := range pageTournaments {
		pageByID[pageTournaments[i].TournamentID] = &pageTournaments[i]
	}

	selected := make(map[string]bool, len(req.SelectedTournamentIDs))
	for _, id := range req.SelectedTournamentIDs {
		if _, onPage := pageByID[id]; onPage {
			selected[id] = true
		}
	}

	current, err := s.repo.Availability.ListByUserAndTournaments(ctx, callerID, keys(pageByID))
	if err != nil {
		return nil, err
	}
	currentSet := make(map[string]bool, len(current))
	for _, a := range current {
		currentSet[a.TournamentID] = true
	}

	now := s.now()
	var added, removed []*model.Tournament
	for id := range selected {
		if !currentSet[id] {
			t := pageByID[id]
			if err := s.checkDeclarationGates(caller, t, now); err != nil {
				return nil, err
			}
			added = append(added, t)
		}
	}
	for id := range currentSet {
		if !selected[id] {
			removed = append(removed, pageByID[id])
		}
	}

	if len(added) == 0 && len(removed) == 0 {
		return &dto.AvailabilityBatchResponse{Added: []string{}, Removed: []string{}}, nil
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if len(removed) > 0 {
			if err := txRepo.Availability.DeleteByUserAndTournaments(ctx, callerID, tournamentIDs(removed)); err != nil {
				return err
			}
		}
		for _, t := range added {
			if err := txRepo.Availability.Upsert(ctx, &model.Availability{
				UserID:       callerID,
				TournamentID: t.TournamentID,
				SubmittedAt:  now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("batch availability save rolled back",
			zap.String("user_id", callerID),
			zap.Int("added", len(added)),
			zap.Int("removed", len(removed)),
			zap.Error(err),
		)
		return nil, ErrBatchSaveFailed
	}

	// One batched notification for the whole action, not one per tournament.
	s.notifier.NotifyAvailabilityChange(ctx, caller, deref(added), deref(removed))

	resp := &dto.AvailabilityBatchResponse{
		Added:   tournamentIDs(added),
		Removed: tournamentIDs(removed),
	}
	sort.Strings(resp.Added)
	sort.Strings(resp.Removed)
	return resp, nil
}

func (s *availabilityService) ListMine(ctx context.Context, callerID string) ([]dto.AvailabilityResponse, error) {
	list, err := s.repo.Availability.ListByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AvailabilityResponse, 0, len(list))
	for i := range list {
		out = append(out, *toAvailabilityResponse(&list[i], list[i].Tournament))
	}
	return out, nil
}

// checkDeclarationGates applies the declaration preconditions in order:
// start date, then deadline, then visibility.
func (s *availabilityService) checkDeclarationGates(caller *model.User, t *model.Tournament, now time.Time) error {
	if !t.AcceptsAvailability() {
		return ErrNotEligible
	}
	if t.StartDate.Before(startOfDay(now)) {
		return ErrNotEligible
	}
	if t.AvailabilityDeadline.Before(now) {
		return ErrDeadlinePassed
	}
	if !s.visibility.CanSeeTournament(caller, t) {
		return ErrVisibilityDenied
	}
	return nil
}

// ── helpers ──

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func keys(m map[string]*model.Tournament) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func tournamentIDs(ts []*model.Tournament) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.TournamentID)
	}
	return out
}

func deref(ts []*model.Tournament) []model.Tournament {
	out := make([]model.Tournament, 0, len(ts))
	for _, t := range ts {
		out = append(out, *t)
	}
	return out
}

func toAvailabilityResponse(a *model.Availability, t *model.Tournament) *dto.AvailabilityResponse {
	out := &dto.AvailabilityResponse{
		ID:           a.AvailabilityID,
		TournamentID: a.TournamentID,
		UserID:       a.UserID,
		SubmittedAt:  a.SubmittedAt.Format(time.RFC3339),
	}
	if a.Notes != nil {
		out.Notes = *a.Notes
	}
	if t != nil {
		resp := toTournamentResponse(t)
		out.Tournament = &resp
	}
	return out
}
