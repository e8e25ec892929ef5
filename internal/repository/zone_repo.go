package repository

import (
	"context"

	"gorm.io/gorm"

	"golf-arbitri/backend/internal/model"
)

// ZoneRepository zone data access.
type ZoneRepository interface {
	List(ctx context.Context, activeOnly bool) ([]model.Zone, error)
	GetByID(ctx context.Context, id string) (*model.Zone, error)
	GetByCode(ctx context.Context, code string) (*model.Zone, error)
	Create(ctx context.Context, zone *model.Zone) error
	Update(ctx context.Context, zone *model.Zone) error
}

type zoneRepo struct {
	db *gorm.DB
}

// NewZoneRepo builds a ZoneRepository.
func NewZoneRepo(db *gorm.DB) ZoneRepository {
	return &zoneRepo{db: db}
}

func (r *zoneRepo) List(ctx context.Context, activeOnly bool) ([]model.Zone, error) {
	var zones []model.Zone
	q := r.db.WithContext(ctx).Order("code ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&zones).Error
	return zones, err
}

func (r *zoneRepo) GetByID(ctx context.Context, id string) (*model.Zone, error) {
	var zone model.Zone
	if err := r.db.WithContext(ctx).Where("zone_id = ?", id).First(&zone).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *zoneRepo) GetByCode(ctx context.Context, code string) (*model.Zone, error) {
	var zone model.Zone
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&zone).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *zoneRepo) Create(ctx context.Context, zone *model.Zone) error {
	return r.db.WithContext(ctx).Create(zone).Error
}

func (r *zoneRepo) Update(ctx context.Context, zone *model.Zone) error {
	return r.db.WithContext(ctx).Save(zone).Error
}
