package repository

import (
	"context"

	"gorm.io/gorm"

	"golf-arbitri/backend/internal/model"
)

// AssignmentRepository assignment data access.
type AssignmentRepository interface {
	GetByID(ctx context.Context, id string) (*model.Assignment, error)
	GetByUserAndTournament(ctx context.Context, userID, tournamentID string) (*model.Assignment, error)
	ListByTournament(ctx context.Context, tournamentID string) ([]model.Assignment, error)
	ListByUser(ctx context.Context, userID string) ([]model.Assignment, error)
	// ListConfirmedByUser returns the user's confirmed assignments with
	// tournament, club and type preloaded (calendar feed, exports).
	ListConfirmedByUser(ctx context.Context, userID string) ([]model.Assignment, error)
	// Create fails with gorm.ErrDuplicatedKey when the (user, tournament)
	// pair already exists.
	Create(ctx context.Context, a *model.Assignment) error
	Update(ctx context.Context, a *model.Assignment) error
	DeleteByUserAndTournament(ctx context.Context, userID, tournamentID string) error
	CountByTournament(ctx context.Context, tournamentID string) (int64, int64, error)
	// ListByUserAndYear returns one referee's assignments whose tournament
	// starts in the given calendar year, tournament preloaded.
	ListByUserAndYear(ctx context.Context, userID string, year int) ([]model.Assignment, error)
	DeleteByUserAndYear(ctx context.Context, userID string, year int) error
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo builds an AssignmentRepository.
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) GetByID(ctx context.Context, id string) (*model.Assignment, error) {
	var a model.Assignment
	err := r.db.WithContext(ctx).
		Preload("User").Preload("Tournament.Club").Preload("Tournament.Type").
		Where("assignment_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepo) GetByUserAndTournament(ctx context.Context, userID, tournamentID string) (*model.Assignment, error) {
	var a model.Assignment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tournament_id = ?", userID, tournamentID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepo) ListByTournament(ctx context.Context, tournamentID string) ([]model.Assignment, error) {
	var list []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("tournament_id = ?", tournamentID).
		Order("assigned_at ASC").
		Find(&list).Error
	return list, err
}

func (r *assignmentRepo) ListByUser(ctx context.Context, userID string) ([]model.Assignment, error) {
	var list []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Tournament.Club").Preload("Tournament.Type").
		Where("user_id = ?", userID).
		Order("assigned_at DESC").
		Find(&list).Error
	return list, err
}

func (r *assignmentRepo) ListConfirmedByUser(ctx context.Context, userID string) ([]model.Assignment, error) {
	var list []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Tournament.Club").Preload("Tournament.Type").
		Where("user_id = ? AND is_confirmed = ?", userID, true).
		Order("assigned_at ASC").
		Find(&list).Error
	return list, err
}

func (r *assignmentRepo) Create(ctx context.Context, a *model.Assignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assignmentRepo) Update(ctx context.Context, a *model.Assignment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *assignmentRepo) DeleteByUserAndTournament(ctx context.Context, userID, tournamentID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND tournament_id = ?", userID, tournamentID).
		Delete(&model.Assignment{}).Error
}

func (r *assignmentRepo) CountByTournament(ctx context.Context, tournamentID string) (int64, int64, error) {
	var assigned, confirmed int64
	if err := r.db.WithContext(ctx).Model(&model.Assignment{}).
		Where("tournament_id = ?", tournamentID).
		Count(&assigned).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Assignment{}).
		Where("tournament_id = ? AND is_confirmed = ?", tournamentID, true).
		Count(&confirmed).Error; err != nil {
		return 0, 0, err
	}
	return assigned, confirmed, nil
}

func (r *assignmentRepo) ListByUserAndYear(ctx context.Context, userID string, year int) ([]model.Assignment, error) {
	var list []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Tournament").
		Joins("JOIN tournaments ON tournaments.tournament_id = assignments.tournament_id").
		Where("assignments.user_id = ?", userID).
		Where("tournaments.start_date >= ? AND tournaments.start_date < ?",
			yearStart(year), yearStart(year+1)).
		Find(&list).Error
	return list, err
}

func (r *assignmentRepo) DeleteByUserAndYear(ctx context.Context, userID string, year int) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND tournament_id IN (?)", userID,
			r.db.Model(&model.Tournament{}).Select("tournament_id").
				Where("start_date >= ? AND start_date < ?", yearStart(year), yearStart(year+1)),
		).
		Delete(&model.Assignment{}).Error
}
