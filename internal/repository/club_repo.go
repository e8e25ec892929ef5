package repository

import (
	"context"

	"gorm.io/gorm"

	"golf-arbitri/backend/internal/model"
)

// ClubFilter narrows club listings.
type ClubFilter struct {
	ZoneID  string
	Keyword string
	Offset  int
	Limit   int
}

// ClubRepository club data access.
type ClubRepository interface {
	List(ctx context.Context, filter ClubFilter) ([]model.Club, int64, error)
	GetByID(ctx context.Context, id string) (*model.Club, error)
	Create(ctx context.Context, club *model.Club) error
	Update(ctx context.Context, club *model.Club) error
	Delete(ctx context.Context, id string) error
}

type clubRepo struct {
	db *gorm.DB
}

// NewClubRepo builds a ClubRepository.
func NewClubRepo(db *gorm.DB) ClubRepository {
	return &clubRepo{db: db}
}

func (r *clubRepo) List(ctx context.Context, filter ClubFilter) ([]model.Club, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Club{})
	if filter.ZoneID != "" {
		q = q.Where("zone_id = ?", filter.ZoneID)
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		q = q.Where("name ILIKE ? OR code ILIKE ?", kw, kw)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clubs []model.Club
	err := q.Preload("Zone").Order("code ASC").Offset(filter.Offset).Limit(filter.Limit).Find(&clubs).Error
	return clubs, total, err
}

func (r *clubRepo) GetByID(ctx context.Context, id string) (*model.Club, error) {
	var club model.Club
	if err := r.db.WithContext(ctx).Preload("Zone").Where("club_id = ?", id).First(&club).Error; err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *clubRepo) Create(ctx context.Context, club *model.Club) error {
	return r.db.WithContext(ctx).Create(club).Error
}

func (r *clubRepo) Update(ctx context.Context, club *model.Club) error {
	return r.db.WithContext(ctx).Save(club).Error
}

func (r *clubRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("club_id = ?", id).Delete(&model.Club{}).Error
}
