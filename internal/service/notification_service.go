package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"golf-arbitri/backend/config"
	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/model"
	"golf-arbitri/backend/internal/repository"
	"golf-arbitri/backend/pkg/mailer"
)

// ── notification errors ──

var (
	ErrNotificationTournamentNotFound = errors.New("tournament not found")
	ErrNoConvocationRecipients        = errors.New("tournament has no assigned referees to notify")
)

// NotificationService is the dispatcher for availability and assignment
// change events.
//
// Delivery is best-effort by contract: a mail failure is logged and recorded
// on the notification row, and never surfaces to the caller — the business
// write that triggered the dispatch has already committed and must stay
// committed.
type NotificationService interface {
	// NotifyAvailabilityChange emits the referee memo plus one deduplicated
	// admin summary covering every added and removed tournament.
	NotifyAvailabilityChange(ctx context.Context, referee *model.User, added, removed []model.Tournament)
	// NotifyAssignment emits the referee memo and admin summary for one new
	// assignment.
	NotifyAssignment(ctx context.Context, referee *model.User, tournament *model.Tournament, role string)
	// NotifyAssignmentRemoval mirrors NotifyAssignment for a removal. Only
	// called when the removal-notification feature flag is on.
	NotifyAssignmentRemoval(ctx context.Context, referee *model.User, tournament *model.Tournament)
	// SendConvocation sends the per-tournament convocation batch: one
	// convocation per assigned referee, optionally the club letter, plus
	// institutional copies. Returns the aggregate outcome.
	SendConvocation(ctx context.Context, tournamentID string, req *dto.SendConvocationRequest) (*dto.TournamentNotificationResponse, error)
	List(ctx context.Context, req *dto.NotificationListRequest) ([]dto.NotificationResponse, int64, error)
}

type notificationService struct {
	cfg    *config.Config
	repo   *repository.Repository
	mailer mailer.Mailer
	logger *zap.Logger
	now    func() time.Time
}

// NewNotificationService builds a NotificationService.
func NewNotificationService(cfg *config.Config, repo *repository.Repository, m mailer.Mailer, logger *zap.Logger) NotificationService {
	return &notificationService{cfg: cfg, repo: repo, mailer: m, logger: logger, now: time.Now}
}

// ── availability events ──

func (s *notificationService) NotifyAvailabilityChange(ctx context.Context, referee *model.User, added, removed []model.Tournament) {
	if len(added) == 0 && len(removed) == 0 {
		return
	}

	// 1. referee memo: one summary of this action
	subject := "Availability updated"
	if len(added)+len(removed) == 1 {
		subject = "Availability confirmation"
	}
	s.deliver(ctx, &outbound{
		tournamentID: firstTournamentID(added, removed),
		notifType:    model.NotificationTypeAvailabilityReferee,
		subject:      subject,
		body:         availabilityMemoBody(referee, added, removed),
		recipients:   []recipient{{email: referee.Email, userID: &referee.UserID}},
	})

	// 2. admin summary: union of recipients across both lists, one message.
	// Institutional addresses are deliberately excluded here.
	recipients := s.adminRecipients(ctx, append(append([]model.Tournament{}, added...), removed...))
	if len(recipients) == 0 {
		return
	}
	s.deliver(ctx, &outbound{
		tournamentID: firstTournamentID(added, removed),
		notifType:    model.NotificationTypeAvailabilityAdmin,
		subject:      fmt.Sprintf("Availability change: %s", referee.Name),
		body:         availabilityAdminBody(referee, added, removed),
		recipients:   recipients,
	})
}

// ── assignment events ──

func (s *notificationService) NotifyAssignment(ctx context.Context, referee *model.User, tournament *model.Tournament, role string) {
	s.deliver(ctx, &outbound{
		tournamentID: &tournament.TournamentID,
		notifType:    model.NotificationTypeAssignmentReferee,
		subject:      fmt.Sprintf("Assignment: %s", tournament.Name),
		body: fmt.Sprintf("Dear %s,\n\nyou have been assigned to %q as %s (%s - %s).\n\nPlease confirm the assignment.\n",
			referee.Name, tournament.Name, role,
			tournament.StartDate.Format("2006-01-02"), tournament.EndDate.Format("2006-01-02")),
		recipients: []recipient{{email: referee.Email, userID: &referee.UserID}},
	})

	recipients := s.adminRecipients(ctx, []model.Tournament{*tournament})
	if len(recipients) == 0 {
		return
	}
	s.deliver(ctx, &outbound{
		tournamentID: &tournament.TournamentID,
		notifType:    model.NotificationTypeAssignmentAdmin,
		subject:      fmt.Sprintf("Assignment recorded: %s", tournament.Name),
		body: fmt.Sprintf("%s has been assigned to %q as %s.\n",
			referee.Name, tournament.Name, role),
		recipients: recipients,
	})
}

func (s *notificationService) NotifyAssignmentRemoval(ctx context.Context, referee *model.User, tournament *model.Tournament) {
	s.deliver(ctx, &outbound{
		tournamentID: &tournament.TournamentID,
		notifType:    model.NotificationTypeAssignmentReferee,
		subject:      fmt.Sprintf("Assignment cancelled: %s", tournament.Name),
		body: fmt.Sprintf("Dear %s,\n\nyour assignment to %q has been cancelled.\n",
			referee.Name, tournament.Name),
		recipients: []recipient{{email: referee.Email, userID: &referee.UserID}},
	})
}

// ── convocation batch ──

func (s *notificationService) SendConvocation(ctx context.Context, tournamentID string, req *dto.SendConvocationRequest) (*dto.TournamentNotificationResponse, error) {
	tournament, err := s.repo.Tournament.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationTournamentNotFound
		}
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, ErrNoConvocationRecipients
	}

	var attachments []string
	if req != nil {
		attachments = req.DocumentPaths
	}

	sent, failed := 0, 0

	// one convocation per assigned referee
	for _, a := range assignments {
		if a.User == nil || a.User.Email == "" {
			continue
		}
		ok := s.deliver(ctx, &outbound{
			tournamentID: &tournament.TournamentID,
			notifType:    model.NotificationTypeAssignmentReferee,
			subject:      fmt.Sprintf("Convocation: %s", tournament.Name),
			body: fmt.Sprintf("Dear %s,\n\nyou are convoked to %q as %s (%s - %s).\n",
				a.User.Name, tournament.Name, a.Role,
				tournament.StartDate.Format("2006-01-02"), tournament.EndDate.Format("2006-01-02")),
			recipients:  []recipient{{email: a.User.Email, userID: &a.UserID}},
			attachments: attachments,
		})
		if ok {
			sent++
		} else {
			failed++
		}
	}

	// club letter
	if req != nil && req.IncludeClubLetter && tournament.Club != nil &&
		tournament.Club.Email != nil && *tournament.Club.Email != "" {
		ok := s.deliver(ctx, &outbound{
			tournamentID: &tournament.TournamentID,
			notifType:    model.NotificationTypeClubLetter,
			subject:      fmt.Sprintf("Referee panel: %s", tournament.Name),
			body:         clubLetterBody(tournament, assignments),
			recipients:   []recipient{{email: *tournament.Club.Email}},
			attachments:  attachments,
		})
		if ok {
			sent++
		} else {
			failed++
		}
	}

	// institutional copies: convocations only, never availability traffic
	for _, cc := range s.cfg.Mail.InstitutionalCC {
		ok := s.deliver(ctx, &outbound{
			tournamentID: &tournament.TournamentID,
			notifType:    model.NotificationTypeAssignmentAdmin,
			subject:      fmt.Sprintf("Convocation copy: %s", tournament.Name),
			body:         clubLetterBody(tournament, assignments),
			recipients:   []recipient{{email: cc}},
			attachments:  attachments,
		})
		if ok {
			sent++
		} else {
			failed++
		}
	}

	total := sent + failed
	status := model.NotificationStatusSent
	switch {
	case total == 0:
		status = model.NotificationStatusFailed
	case failed == total:
		status = model.NotificationStatusFailed
	case failed > 0:
		status = model.NotificationStatusPartial
	}

	now := s.now()
	tn := &model.TournamentNotification{
		TournamentID:    tournament.TournamentID,
		Status:          status,
		TotalRecipients: total,
		SentCount:       sent,
		FailedCount:     failed,
		SentAt:          &now,
	}
	if details, err := json.Marshal(map[string]interface{}{
		"attachments": attachments,
		"referees":    len(assignments),
	}); err == nil {
		tn.Details = details
	}
	if err := s.repo.Notification.UpsertTournamentNotification(ctx, tn); err != nil {
		return nil, err
	}

	return &dto.TournamentNotificationResponse{
		ID:              tn.TournamentNotificationID,
		TournamentID:    tn.TournamentID,
		Status:          tn.Status,
		TotalRecipients: tn.TotalRecipients,
		SentCount:       tn.SentCount,
		FailedCount:     tn.FailedCount,
		SentAt:          now.Format(time.RFC3339),
	}, nil
}

// ── listing ──

func (s *notificationService) List(ctx context.Context, req *dto.NotificationListRequest) ([]dto.NotificationResponse, int64, error) {
	list, total, err := s.repo.Notification.List(ctx, repository.NotificationFilter{
		TournamentID: req.TournamentID,
		Type:         req.Type,
		Status:       req.Status,
		Offset:       req.GetOffset(),
		Limit:        req.GetPageSize(),
	})
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNotificationResponse(&n))
	}
	return out, total, nil
}

// ── dispatch internals ──

type recipient struct {
	email  string
	userID *string
}

type outbound struct {
	tournamentID *string
	notifType    string
	subject      string
	body         string
	recipients   []recipient
	attachments  []string
}

// deliver sends one message and records one notification row per recipient.
// Returns whether the send succeeded. Persistence failures of the rows
// themselves are logged and swallowed for the same best-effort reason as
// mail failures.
func (s *notificationService) deliver(ctx context.Context, msg *outbound) bool {
	emails := make([]string, 0, len(msg.recipients))
	for _, r := range msg.recipients {
		if r.email != "" {
			emails = append(emails, r.email)
		}
	}
	if len(emails) == 0 {
		return false
	}

	sendCtx := ctx
	if s.cfg.Mail.SendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.cfg.Mail.SendTimeout)
		defer cancel()
	}

	sendErr := s.mailer.Send(sendCtx, &mailer.Message{
		To:          emails,
		Subject:     msg.subject,
		Body:        msg.body,
		Attachments: msg.attachments,
	})

	status := model.NotificationStatusSent
	var errMsg *string
	var sentAt *time.Time
	if sendErr != nil {
		status = model.NotificationStatusFailed
		m := sendErr.Error()
		errMsg = &m
		s.logger.Warn("notification delivery failed",
			zap.Int("recipients", len(emails)),
			zap.Stringp("tournament_id", msg.tournamentID),
			zap.String("type", msg.notifType),
			zap.Error(sendErr),
		)
	} else {
		t := s.now()
		sentAt = &t
	}

	var attachmentsJSON []byte
	if len(msg.attachments) > 0 {
		attachmentsJSON, _ = json.Marshal(msg.attachments)
	}

	for _, r := range msg.recipients {
		if r.email == "" {
			continue
		}
		row := &model.Notification{
			TournamentID:    msg.tournamentID,
			RecipientUserID: r.userID,
			RecipientEmail:  r.email,
			Type:            msg.notifType,
			Subject:         msg.subject,
			Body:            msg.body,
			Status:          status,
			SentAt:          sentAt,
			ErrorMessage:    errMsg,
			Attachments:     attachmentsJSON,
		}
		if err := s.repo.Notification.Create(ctx, row); err != nil {
			s.logger.Error("recording notification row failed",
				zap.String("recipient", r.email), zap.Error(err))
		}
	}

	return sendErr == nil
}

// adminRecipients computes the deduplicated admin set for a group of
// tournaments: every active admin of each tournament's resolved zone, plus
// every active national admin when any tournament's type is national.
func (s *notificationService) adminRecipients(ctx context.Context, tournaments []model.Tournament) []recipient {
	seen := make(map[string]bool)
	var out []recipient

	add := func(u model.User) {
		if u.Email == "" || seen[u.Email] {
			return
		}
		seen[u.Email] = true
		id := u.UserID
		out = append(out, recipient{email: u.Email, userID: &id})
	}

	zonesDone := make(map[string]bool)
	nationalDone := false

	for i := range tournaments {
		t := &tournaments[i]

		if zoneID := t.EffectiveZoneID(); zoneID != "" && !zonesDone[zoneID] {
			zonesDone[zoneID] = true
			admins, err := s.repo.User.ListActiveAdminsByZone(ctx, zoneID)
			if err != nil {
				s.logger.Warn("loading zone admins failed",
					zap.String("zone_id", zoneID), zap.Error(err))
			}
			for _, a := range admins {
				add(a)
			}
		}

		if t.IsNational() && !nationalDone {
			nationalDone = true
			admins, err := s.repo.User.ListActiveNationalAdmins(ctx)
			if err != nil {
				s.logger.Warn("loading national admins failed", zap.Error(err))
			}
			for _, a := range admins {
				add(a)
			}
		}
	}

	return out
}

// ── body templates ──

func availabilityMemoBody(referee *model.User, added, removed []model.Tournament) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\nyour availability declarations have been updated.\n", referee.Name)
	if len(added) > 0 {
		b.WriteString("\nDeclared:\n")
		for _, t := range added {
			fmt.Fprintf(&b, "  - %s (%s)\n", t.Name, t.StartDate.Format("2006-01-02"))
		}
	}
	if len(removed) > 0 {
		b.WriteString("\nWithdrawn:\n")
		for _, t := range removed {
			fmt.Fprintf(&b, "  - %s (%s)\n", t.Name, t.StartDate.Format("2006-01-02"))
		}
	}
	return b.String()
}

func availabilityAdminBody(referee *model.User, added, removed []model.Tournament) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Referee %s", referee.Name)
	if referee.RefereeCode != nil {
		fmt.Fprintf(&b, " (%s)", *referee.RefereeCode)
	}
	b.WriteString(" updated their availability.\n")
	if len(added) > 0 {
		b.WriteString("\nDeclared:\n")
		for _, t := range added {
			fmt.Fprintf(&b, "  - %s (%s)\n", t.Name, t.StartDate.Format("2006-01-02"))
		}
	}
	if len(removed) > 0 {
		b.WriteString("\nWithdrawn:\n")
		for _, t := range removed {
			fmt.Fprintf(&b, "  - %s (%s)\n", t.Name, t.StartDate.Format("2006-01-02"))
		}
	}
	return b.String()
}

func clubLetterBody(t *model.Tournament, assignments []model.Assignment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Referee panel for %q (%s - %s):\n\n",
		t.Name, t.StartDate.Format("2006-01-02"), t.EndDate.Format("2006-01-02"))
	for _, a := range assignments {
		name := a.UserID
		if a.User != nil {
			name = a.User.Name
		}
		fmt.Fprintf(&b, "  - %s: %s\n", a.Role, name)
	}
	return b.String()
}

func firstTournamentID(added, removed []model.Tournament) *string {
	if len(added) > 0 {
		return &added[0].TournamentID
	}
	if len(removed) > 0 {
		return &removed[0].TournamentID
	}
	return nil
}

func toNotificationResponse(n *model.Notification) dto.NotificationResponse {
	out := dto.NotificationResponse{
		ID:             n.NotificationID,
		RecipientEmail: n.RecipientEmail,
		Type:           n.Type,
		Subject:        n.Subject,
		Status:         n.Status,
	}
	if n.TournamentID != nil {
		out.TournamentID = *n.TournamentID
	}
	if n.SentAt != nil {
		out.SentAt = n.SentAt.Format(time.RFC3339)
	}
	if n.ErrorMessage != nil {
		out.ErrorMessage = *n.ErrorMessage
	}
	if len(n.Attachments) > 0 {
		var atts []string
		if err := json.Unmarshal(n.Attachments, &atts); err == nil {
			out.Attachments = atts
		}
	}
	return out
}
