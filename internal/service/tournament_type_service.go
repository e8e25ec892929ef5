package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/model"
	"golf-arbitri/backend/internal/repository"
)

var (
	ErrBadRefereeBounds = errors.New("max referees below min referees")
)

// TournamentTypeService tournament category management.
type TournamentTypeService interface {
	List(ctx context.Context, activeOnly bool) ([]dto.TournamentTypeResponse, error)
	Get(ctx context.Context, id string) (*dto.TournamentTypeResponse, error)
	Create(ctx context.Context, req *dto.CreateTournamentTypeRequest) (*dto.TournamentTypeResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTournamentTypeRequest) (*dto.TournamentTypeResponse, error)
}

type tournamentTypeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTournamentTypeService builds a TournamentTypeService.
func NewTournamentTypeService(repo *repository.Repository, logger *zap.Logger) TournamentTypeService {
	return &tournamentTypeService{repo: repo, logger: logger}
}

func (s *tournamentTypeService) List(ctx context.Context, activeOnly bool) ([]dto.TournamentTypeResponse, error) {
	types, err := s.repo.TournamentType.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TournamentTypeResponse, 0, len(types))
	for i := range types {
		out = append(out, toTournamentTypeResponse(&types[i]))
	}
	return out, nil
}

func (s *tournamentTypeService) Get(ctx context.Context, id string) (*dto.TournamentTypeResponse, error) {
	tt, err := s.repo.TournamentType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}
	resp := toTournamentTypeResponse(tt)
	return &resp, nil
}

func (s *tournamentTypeService) Create(ctx context.Context, req *dto.CreateTournamentTypeRequest) (*dto.TournamentTypeResponse, error) {
	if req.MaxReferees < req.MinReferees {
		return nil, ErrBadRefereeBounds
	}
	tt := &model.TournamentType{
		Name:          req.Name,
		ShortName:     req.ShortName,
		IsNational:    req.IsNational,
		Level:         req.Level,
		RequiredLevel: req.RequiredLevel,
		MinReferees:   req.MinReferees,
		MaxReferees:   req.MaxReferees,
		IsActive:      true,
	}
	if err := s.repo.TournamentType.Create(ctx, tt); err != nil {
		return nil, err
	}
	s.logger.Info("tournament type created",
		zap.String("tournament_type_id", tt.TournamentTypeID),
		zap.String("short_name", tt.ShortName),
	)
	resp := toTournamentTypeResponse(tt)
	return &resp, nil
}

func (s *tournamentTypeService) Update(ctx context.Context, id string, req *dto.UpdateTournamentTypeRequest) (*dto.TournamentTypeResponse, error) {
	tt, err := s.repo.TournamentType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTypeNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		tt.Name = *req.Name
	}
	if req.ShortName != nil {
		tt.ShortName = *req.ShortName
	}
	if req.IsNational != nil {
		tt.IsNational = *req.IsNational
	}
	if req.Level != nil {
		tt.Level = *req.Level
	}
	if req.RequiredLevel != nil {
		tt.RequiredLevel = *req.RequiredLevel
	}
	if req.MinReferees != nil {
		tt.MinReferees = *req.MinReferees
	}
	if req.MaxReferees != nil {
		tt.MaxReferees = *req.MaxReferees
	}
	if tt.MaxReferees < tt.MinReferees {
		return nil, ErrBadRefereeBounds
	}
	if req.IsActive != nil {
		tt.IsActive = *req.IsActive
	}
	if err := s.repo.TournamentType.Update(ctx, tt); err != nil {
		return nil, err
	}
	resp := toTournamentTypeResponse(tt)
	return &resp, nil
}
