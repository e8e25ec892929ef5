package handler

import "golf-arbitri/backend/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Zone         *ZoneHandler
	Club         *ClubHandler
	Tournament   *TournamentHandler
	Availability *AvailabilityHandler
	Assignment   *AssignmentHandler
	Notification *NotificationHandler
	Career       *CareerHandler
	Export       *ExportHandler
	Calendar     *CalendarHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Zone:         NewZoneHandler(svc.Zone),
		Club:         NewClubHandler(svc.Club),
		Tournament:   NewTournamentHandler(svc.Tournament, svc.TournamentType),
		Availability: NewAvailabilityHandler(svc.Availability),
		Assignment:   NewAssignmentHandler(svc.Assignment),
		Notification: NewNotificationHandler(svc.Notification),
		Career:       NewCareerHandler(svc.Career),
		Export:       NewExportHandler(svc.Export),
		Calendar:     NewCalendarHandler(svc.Calendar),
	}
}
