package service

import (
	"context"
	"fmt"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"golf-arbitri/backend/internal/repository"
)

// CalendarService renders a referee's confirmed assignments as an
// iCalendar (RFC 5545) feed, one all-day event per tournament. Unconfirmed
// assignments are left out: the feed only carries commitments.
type CalendarService interface {
	RefereeFeed(ctx context.Context, userID string) (string, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService builds a CalendarService.
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

func (s *calendarService) RefereeFeed(ctx context.Context, userID string) (string, error) {
	assignments, err := s.repo.Assignment.ListConfirmedByUser(ctx, userID)
	if err != nil {
		s.logger.Error("listing confirmed assignments for calendar failed",
			zap.String("user_id", userID), zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//golf-arbitri//referee feed//IT")

	for _, a := range assignments {
		t := a.Tournament
		if t == nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("assignment-%s@golf-arbitri", a.AssignmentID))
		event.SetCreatedTime(a.AssignedAt)
		event.SetDtStampTime(a.AssignedAt)
		event.SetAllDayStartAt(t.StartDate)
		// DTEND is exclusive for all-day events.
		event.SetAllDayEndAt(t.EndDate.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s (%s)", t.Name, a.Role))
		if t.Club != nil {
			event.SetLocation(t.Club.Name)
		}
		if t.Notes != nil {
			event.SetDescription(*t.Notes)
		}
	}

	return cal.Serialize(), nil
}
