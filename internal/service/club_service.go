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
	ErrClubCodeTaken = errors.New("club code already in use")
)

// ClubService club directory management.
type ClubService interface {
	List(ctx context.Context, req *dto.ClubListRequest) ([]dto.ClubResponse, int64, error)
	Get(ctx context.Context, id string) (*dto.ClubResponse, error)
	Create(ctx context.Context, req *dto.CreateClubRequest) (*dto.ClubResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateClubRequest) (*dto.ClubResponse, error)
	Delete(ctx context.Context, id string) error
}

type clubService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClubService builds a ClubService.
func NewClubService(repo *repository.Repository, logger *zap.Logger) ClubService {
	return &clubService{repo: repo, logger: logger}
}

func (s *clubService) List(ctx context.Context, req *dto.ClubListRequest) ([]dto.ClubResponse, int64, error) {
	clubs, total, err := s.repo.Club.List(ctx, repository.ClubFilter{
		ZoneID:  req.ZoneID,
		Keyword: req.Keyword,
		Offset:  req.GetOffset(),
		Limit:   req.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ClubResponse, 0, len(clubs))
	for i := range clubs {
		out = append(out, toClubResponse(&clubs[i]))
	}
	return out, total, nil
}

func (s *clubService) Get(ctx context.Context, id string) (*dto.ClubResponse, error) {
	club, err := s.repo.Club.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	resp := toClubResponse(club)
	return &resp, nil
}

func (s *clubService) Create(ctx context.Context, req *dto.CreateClubRequest) (*dto.ClubResponse, error) {
	if _, err := s.repo.Zone.GetByID(ctx, req.ZoneID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrZoneNotFound
		}
		return nil, err
	}

	club := &model.Club{
		Code:     req.Code,
		Name:     req.Name,
		ZoneID:   req.ZoneID,
		IsActive: true,
	}
	if req.Email != "" {
		club.Email = &req.Email
	}
	if err := s.repo.Club.Create(ctx, club); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrClubCodeTaken
		}
		return nil, err
	}
	s.logger.Info("club created", zap.String("club_id", club.ClubID), zap.String("code", club.Code))
	resp := toClubResponse(club)
	return &resp, nil
}

func (s *clubService) Update(ctx context.Context, id string, req *dto.UpdateClubRequest) (*dto.ClubResponse, error) {
	club, err := s.repo.Club.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.ZoneID != nil {
		if _, err := s.repo.Zone.GetByID(ctx, *req.ZoneID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrZoneNotFound
			}
			return nil, err
		}
		club.ZoneID = *req.ZoneID
		club.Zone = nil
	}
	if req.Email != nil {
		club.Email = req.Email
	}
	if req.IsActive != nil {
		club.IsActive = *req.IsActive
	}
	if err := s.repo.Club.Update(ctx, club); err != nil {
		return nil, err
	}
	resp := toClubResponse(club)
	return &resp, nil
}

func (s *clubService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Club.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClubNotFound
		}
		return err
	}
	return s.repo.Club.Delete(ctx, id)
}
