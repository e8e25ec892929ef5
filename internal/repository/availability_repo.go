package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"golf-arbitri/backend/internal/model"
)

// AvailabilityRepository availability data access.
type AvailabilityRepository interface {
	GetByID(ctx context.Context, id string) (*model.Availability, error)
	GetByUserAndTournament(ctx context.Context, userID, tournamentID string) (*model.Availability, error)
	ListByUser(ctx context.Context, userID string) ([]model.Availability, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]model.Availability, error)
	// ListByUserAndTournaments returns the user's declarations restricted to
	// the given tournament ID set (the batch save's page context).
	ListByUserAndTournaments(ctx context.Context, userID string, tournamentIDs []string) ([]model.Availability, error)
	// Upsert inserts or, on (user, tournament) conflict, refreshes notes and
	// submitted_at.
	Upsert(ctx context.Context, a *model.Availability) error
	DeleteByUserAndTournament(ctx context.Context, userID, tournamentID string) error
	DeleteByUserAndTournaments(ctx context.Context, userID string, tournamentIDs []string) error
	// CountByUserAndYear counts one referee's declarations whose tournament
	// starts in the given calendar year.
	CountByUserAndYear(ctx context.Context, userID string, year int) (int64, error)
	DeleteByUserAndYear(ctx context.Context, userID string, year int) error
}

type availabilityRepo struct {
	db *gorm.DB
}

// NewAvailabilityRepo builds an AvailabilityRepository.
func NewAvailabilityRepo(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepo{db: db}
}

func (r *availabilityRepo) GetByID(ctx context.Context, id string) (*model.Availability, error) {
	var a model.Availability
	err := r.db.WithContext(ctx).
		Preload("Tournament.Club").Preload("Tournament.Type").
		Where("availability_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *availabilityRepo) GetByUserAndTournament(ctx context.Context, userID, tournamentID string) (*model.Availability, error) {
	var a model.Availability
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tournament_id = ?", userID, tournamentID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *availabilityRepo) ListByUser(ctx context.Context, userID string) ([]model.Availability, error) {
	var list []model.Availability
	err := r.db.WithContext(ctx).
		Preload("Tournament.Club").Preload("Tournament.Type").
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&list).Error
	return list, err
}

func (r *availabilityRepo) ListByTournament(ctx context.Context, tournamentID string) ([]model.Availability, error) {
	var list []model.Availability
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("tournament_id = ?", tournamentID).
		Order("submitted_at ASC").
		Find(&list).Error
	return list, err
}

func (r *availabilityRepo) ListByUserAndTournaments(ctx context.Context, userID string, tournamentIDs []string) ([]model.Availability, error) {
	if len(tournamentIDs) == 0 {
		return []model.Availability{}, nil
	}
	var list []model.Availability
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tournament_id IN ?", userID, tournamentIDs).
		Find(&list).Error
	return list, err
}

func (r *availabilityRepo) Upsert(ctx context.Context, a *model.Availability) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "tournament_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"notes":        a.Notes,
				"submitted_at": a.SubmittedAt,
				"updated_at":   gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(a).Error
}

func (r *availabilityRepo) DeleteByUserAndTournament(ctx context.Context, userID, tournamentID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND tournament_id = ?", userID, tournamentID).
		Delete(&model.Availability{}).Error
}

func (r *availabilityRepo) DeleteByUserAndTournaments(ctx context.Context, userID string, tournamentIDs []string) error {
	if len(tournamentIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("user_id = ? AND tournament_id IN ?", userID, tournamentIDs).
		Delete(&model.Availability{}).Error
}

func (r *availabilityRepo) CountByUserAndYear(ctx context.Context, userID string, year int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Availability{}).
		Joins("JOIN tournaments ON tournaments.tournament_id = availabilities.tournament_id").
		Where("availabilities.user_id = ?", userID).
		Where("tournaments.start_date >= ? AND tournaments.start_date < ?",
			yearStart(year), yearStart(year+1)).
		Count(&n).Error
	return n, err
}

func (r *availabilityRepo) DeleteByUserAndYear(ctx context.Context, userID string, year int) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND tournament_id IN (?)", userID,
			r.db.Model(&model.Tournament{}).Select("tournament_id").
				Where("start_date >= ? AND start_date < ?", yearStart(year), yearStart(year+1)),
		).
		Delete(&model.Availability{}).Error
}

func yearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}
