package repository

import (
	"context"

	"gorm.io/gorm"

	"golf-arbitri/backend/internal/model"
)

// CareerHistoryRepository career-history data access.
type CareerHistoryRepository interface {
	GetByUser(ctx context.Context, userID string) (*model.RefereeCareerHistory, error)
	Create(ctx context.Context, h *model.RefereeCareerHistory) error
	Update(ctx context.Context, h *model.RefereeCareerHistory) error
}

type careerHistoryRepo struct {
	db *gorm.DB
}

// NewCareerHistoryRepo builds a CareerHistoryRepository.
func NewCareerHistoryRepo(db *gorm.DB) CareerHistoryRepository {
	return &careerHistoryRepo{db: db}
}

func (r *careerHistoryRepo) GetByUser(ctx context.Context, userID string) (*model.RefereeCareerHistory, error) {
	var h model.RefereeCareerHistory
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *careerHistoryRepo) Create(ctx context.Context, h *model.RefereeCareerHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *careerHistoryRepo) Update(ctx context.Context, h *model.RefereeCareerHistory) error {
	return r.db.WithContext(ctx).Save(h).Error
}
