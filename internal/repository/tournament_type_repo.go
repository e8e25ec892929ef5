package repository

import (
	"context"

	"gorm.io/gorm"

	"golf-arbitri/backend/internal/model"
)

// TournamentTypeRepository tournament-type data access.
type TournamentTypeRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.TournamentType, error)
	GetByID(ctx context.Context, id string) (*model.TournamentType, error)
	Create(ctx context.Context, tt *model.TournamentType) error
	Update(ctx context.Context, tt *model.TournamentType) error
}

type tournamentTypeRepo struct {
	db *gorm.DB
}

// NewTournamentTypeRepo builds a TournamentTypeRepository.
func NewTournamentTypeRepo(db *gorm.DB) TournamentTypeRepository {
	return &tournamentTypeRepo{db: db}
}

func (r *tournamentTypeRepo) List(ctx context.Context, activeOnly bool) ([]model.TournamentType, error) {
	var types []model.TournamentType
	q := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&types).Error
	return types, err
}

func (r *tournamentTypeRepo) GetByID(ctx context.Context, id string) (*model.TournamentType, error) {
	var tt model.TournamentType
	if err := r.db.WithContext(ctx).Where("tournament_type_id = ?", id).First(&tt).Error; err != nil {
		return nil, err
	}
	return &tt, nil
}

func (r *tournamentTypeRepo) Create(ctx context.Context, tt *model.TournamentType) error {
	return r.db.WithContext(ctx).Create(tt).Error
}

func (r *tournamentTypeRepo) Update(ctx context.Context, tt *model.TournamentType) error {
	return r.db.WithContext(ctx).Save(tt).Error
}
