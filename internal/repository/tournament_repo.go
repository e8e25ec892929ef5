package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"golf-arbitri/backend/internal/model"
)

// TournamentFilter narrows tournament listings. Scope fields are filled by
// the visibility service, never directly from request input.
type TournamentFilter struct {
	// Scope: when NationalScoped is false, only tournaments of ViewerZoneID's
	// clubs plus national-type tournaments are returned. An empty
	// ViewerZoneID with NationalScoped=false fails closed.
	NationalScoped bool
	ViewerZoneID   string

	ZoneID   string
	Status   string
	TypeID   string
	DateFrom *time.Time
	DateTo   *time.Time
	Keyword  string
	IDs      []string
	Offset   int
	Limit    int
}

// TournamentRepository tournament data access.
type TournamentRepository interface {
	List(ctx context.Context, filter TournamentFilter) ([]model.Tournament, int64, error)
	GetByID(ctx context.Context, id string) (*model.Tournament, error)
	Create(ctx context.Context, t *model.Tournament) error
	Update(ctx context.Context, t *model.Tournament) error
	Delete(ctx context.Context, id string) error
	// DeleteOrphanedInYear deletes tournaments starting in the given year
	// that no longer have any assignment or availability rows. Used by the
	// career archival purge so shared tournaments survive until the last
	// referee's year is cleared.
	DeleteOrphanedInYear(ctx context.Context, year int) (int64, error)
}

type tournamentRepo struct {
	db *gorm.DB
}

// NewTournamentRepo builds a TournamentRepository.
func NewTournamentRepo(db *gorm.DB) TournamentRepository {
	return &tournamentRepo{db: db}
}

func (r *tournamentRepo) List(ctx context.Context, filter TournamentFilter) ([]model.Tournament, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Tournament{}).
		Joins("JOIN clubs ON clubs.club_id = tournaments.club_id").
		Joins("JOIN tournament_types ON tournament_types.tournament_type_id = tournaments.tournament_type_id")

	if !filter.NationalScoped {
		if filter.ViewerZoneID == "" {
			return []model.Tournament{}, 0, nil
		}
		// Zone viewers see their zone's tournaments plus every
		// national-type tournament.
		q = q.Where("clubs.zone_id = ? OR tournament_types.is_national = ?", filter.ViewerZoneID, true)
	}

	if filter.ZoneID != "" {
		q = q.Where("clubs.zone_id = ?", filter.ZoneID)
	}
	if filter.Status != "" {
		q = q.Where("tournaments.status = ?", filter.Status)
	}
	if filter.TypeID != "" {
		q = q.Where("tournaments.tournament_type_id = ?", filter.TypeID)
	}
	if filter.DateFrom != nil {
		q = q.Where("tournaments.start_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		q = q.Where("tournaments.start_date <= ?", *filter.DateTo)
	}
	if filter.Keyword != "" {
		q = q.Where("tournaments.name ILIKE ?", "%"+filter.Keyword+"%")
	}
	if len(filter.IDs) > 0 {
		q = q.Where("tournaments.tournament_id IN ?", filter.IDs)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tournaments []model.Tournament
	err := q.Preload("Club.Zone").Preload("Type").
		Order("tournaments.start_date ASC, tournaments.name ASC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&tournaments).Error
	return tournaments, total, err
}

func (r *tournamentRepo) GetByID(ctx context.Context, id string) (*model.Tournament, error) {
	var t model.Tournament
	err := r.db.WithContext(ctx).
		Preload("Club.Zone").Preload("Type").
		Where("tournament_id = ?", id).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tournamentRepo) Create(ctx context.Context, t *model.Tournament) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tournamentRepo) Update(ctx context.Context, t *model.Tournament) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tournamentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("tournament_id = ?", id).Delete(&model.Tournament{}).Error
}

func (r *tournamentRepo) DeleteOrphanedInYear(ctx context.Context, year int) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("start_date >= ? AND start_date < ?", yearStart(year), yearStart(year+1)).
		Where("NOT EXISTS (SELECT 1 FROM assignments WHERE assignments.tournament_id = tournaments.tournament_id)").
		Where("NOT EXISTS (SELECT 1 FROM availabilities WHERE availabilities.tournament_id = tournaments.tournament_id)").
		Delete(&model.Tournament{})
	return res.RowsAffected, res.Error
}
