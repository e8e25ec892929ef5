package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"golf-arbitri/backend/internal/model"
)

// NotificationFilter narrows notification listings.
type NotificationFilter struct {
	TournamentID string
	Type         string
	Status       string
	Offset       int
	Limit        int
}

// NotificationRepository notification data access.
type NotificationRepository interface {
	List(ctx context.Context, filter NotificationFilter) ([]model.Notification, int64, error)
	Create(ctx context.Context, n *model.Notification) error
	Update(ctx context.Context, n *model.Notification) error
	GetTournamentNotification(ctx context.Context, tournamentID string) (*model.TournamentNotification, error)
	// UpsertTournamentNotification inserts or replaces the single aggregate
	// row for a tournament.
	UpsertTournamentNotification(ctx context.Context, tn *model.TournamentNotification) error
}

type notificationRepo struct {
	db *gorm.DB
}

// NewNotificationRepo builds a NotificationRepository.
func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) List(ctx context.Context, filter NotificationFilter) ([]model.Notification, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Notification{})
	if filter.TournamentID != "" {
		q = q.Where("tournament_id = ?", filter.TournamentID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Notification
	err := q.Order("created_at DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&list).Error
	return list, total, err
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) Update(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *notificationRepo) GetTournamentNotification(ctx context.Context, tournamentID string) (*model.TournamentNotification, error) {
	var tn model.TournamentNotification
	err := r.db.WithContext(ctx).
		Where("tournament_id = ?", tournamentID).
		First(&tn).Error
	if err != nil {
		return nil, err
	}
	return &tn, nil
}

func (r *notificationRepo) UpsertTournamentNotification(ctx context.Context, tn *model.TournamentNotification) error {
	existing, err := r.GetTournamentNotification(ctx, tn.TournamentID)
	if err == nil {
		tn.TournamentNotificationID = existing.TournamentNotificationID
		tn.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(tn).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.WithContext(ctx).Create(tn).Error
}
