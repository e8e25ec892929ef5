package service

import (
	"go.uber.org/zap"

	"golf-arbitri/backend/config"
	"golf-arbitri/backend/internal/repository"
	"golf-arbitri/backend/pkg/jwt"
	"golf-arbitri/backend/pkg/mailer"
	"golf-arbitri/backend/pkg/redis"
)

// Service aggregates every business service.
type Service struct {
	Auth           AuthService
	User           UserService
	Zone           ZoneService
	Club           ClubService
	TournamentType TournamentTypeService
	Tournament     TournamentService
	Visibility     VisibilityService
	Availability   AvailabilityService
	Assignment     AssignmentService
	Notification   NotificationService
	Career         CareerService
	Export         ExportService
	Calendar       CalendarService
}

// NewService wires the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	m mailer.Mailer,
	logger *zap.Logger,
) *Service {
	visibility := NewVisibilityService()
	notification := NewNotificationService(cfg, repo, m, logger)

	return &Service{
		Auth:           NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:           NewUserService(repo, visibility, logger),
		Zone:           NewZoneService(repo, logger),
		Club:           NewClubService(repo, logger),
		TournamentType: NewTournamentTypeService(repo, logger),
		Tournament:     NewTournamentService(repo, visibility, logger),
		Visibility:     visibility,
		Availability:   NewAvailabilityService(repo, visibility, notification, logger),
		Assignment:     NewAssignmentService(cfg, repo, visibility, notification, logger),
		Notification:   notification,
		Career:         NewCareerService(repo, logger),
		Export:         NewExportService(repo, visibility, logger),
		Calendar:       NewCalendarService(repo, logger),
	}
}
