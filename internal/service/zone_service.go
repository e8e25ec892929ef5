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
	ErrZoneNotFound  = errors.New("zone not found")
	ErrZoneCodeTaken = errors.New("zone code already in use")
)

// ZoneService zone directory management.
type ZoneService interface {
	List(ctx context.Context, activeOnly bool) ([]dto.ZoneResponse, error)
	Get(ctx context.Context, id string) (*dto.ZoneResponse, error)
	Create(ctx context.Context, req *dto.CreateZoneRequest) (*dto.ZoneResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateZoneRequest) (*dto.ZoneResponse, error)
}

type zoneService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewZoneService builds a ZoneService.
func NewZoneService(repo *repository.Repository, logger *zap.Logger) ZoneService {
	return &zoneService{repo: repo, logger: logger}
}

func (s *zoneService) List(ctx context.Context, activeOnly bool) ([]dto.ZoneResponse, error) {
	zones, err := s.repo.Zone.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ZoneResponse, 0, len(zones))
	for i := range zones {
		out = append(out, toZoneResponse(&zones[i]))
	}
	return out, nil
}

func (s *zoneService) Get(ctx context.Context, id string) (*dto.ZoneResponse, error) {
	zone, err := s.repo.Zone.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrZoneNotFound
		}
		return nil, err
	}
	resp := toZoneResponse(zone)
	return &resp, nil
}

func (s *zoneService) Create(ctx context.Context, req *dto.CreateZoneRequest) (*dto.ZoneResponse, error) {
	zone := &model.Zone{
		Code:       req.Code,
		Name:       req.Name,
		IsNational: req.IsNational,
		IsActive:   true,
	}
	if err := s.repo.Zone.Create(ctx, zone); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrZoneCodeTaken
		}
		return nil, err
	}
	s.logger.Info("zone created", zap.String("zone_id", zone.ZoneID), zap.String("code", zone.Code))
	resp := toZoneResponse(zone)
	return &resp, nil
}

func (s *zoneService) Update(ctx context.Context, id string, req *dto.UpdateZoneRequest) (*dto.ZoneResponse, error) {
	zone, err := s.repo.Zone.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrZoneNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}
	if err := s.repo.Zone.Update(ctx, zone); err != nil {
		return nil, err
	}
	resp := toZoneResponse(zone)
	return &resp, nil
}

func toZoneResponse(z *model.Zone) dto.ZoneResponse {
	return dto.ZoneResponse{
		ID:         z.ZoneID,
		Code:       z.Code,
		Name:       z.Name,
		IsNational: z.IsNational,
		IsActive:   z.IsActive,
	}
}
