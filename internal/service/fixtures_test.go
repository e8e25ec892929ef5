package service

import (
	"context"
	"sync"
	"time"

	"golf-arbitri/backend/config"
	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/model"
)

// Fixed reference instant for deterministic gate checks: tournaments seeded
// relative to this date.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func testClock() func() time.Time {
	return func() time.Time { return testNow }
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-0123456789abcdef",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 168 * time.Hour,
		},
		Mail: config.MailConfig{From: "noreply@test.local"},
	}
}

// ── world seeding ──

func seedZone(m *mockRepos, id, code string) *model.Zone {
	z := &model.Zone{ZoneID: id, Code: code, Name: "Zone " + code, IsActive: true}
	m.zones.zones[id] = z
	return z
}

func seedClub(m *mockRepos, id, zoneID string) *model.Club {
	email := id + "@clubs.test"
	c := &model.Club{ClubID: id, Code: id, Name: "Club " + id, ZoneID: zoneID, Email: &email, IsActive: true}
	m.clubs.clubs[id] = c
	return c
}

func seedType(m *mockRepos, id string, national bool, requiredLevel string) *model.TournamentType {
	tt := &model.TournamentType{
		TournamentTypeID: id,
		Name:             "Type " + id,
		ShortName:        id,
		IsNational:       national,
		Level:            model.TournamentLevelZonale,
		RequiredLevel:    requiredLevel,
		MinReferees:      1,
		MaxReferees:      2,
		IsActive:         true,
	}
	if national {
		tt.Level = model.TournamentLevelNazionale
	}
	m.types.types[id] = tt
	return tt
}

// seedTournament stores a tournament with club and type preloaded, status
// open, starting 10 days after testNow with a deadline 5 days after testNow.
func seedTournament(m *mockRepos, id string, club *model.Club, tt *model.TournamentType) *model.Tournament {
	t := &model.Tournament{
		TournamentID:         id,
		Name:                 "Tournament " + id,
		ClubID:               club.ClubID,
		TournamentTypeID:     tt.TournamentTypeID,
		ZoneID:               &club.ZoneID,
		StartDate:            testNow.AddDate(0, 0, 10),
		EndDate:              testNow.AddDate(0, 0, 11),
		AvailabilityDeadline: testNow.AddDate(0, 0, 5),
		Status:               model.TournamentStatusOpen,
		Club:                 club,
		Type:                 tt,
	}
	m.tournaments.tournaments[id] = t
	return t
}

func seedUser(m *mockRepos, id, userType, level string, zoneID *string) *model.User {
	u := &model.User{
		UserID:   id,
		Name:     "User " + id,
		Email:    id + "@test.local",
		UserType: userType,
		Level:    level,
		ZoneID:   zoneID,
		IsActive: true,
	}
	if userType == model.UserTypeReferee {
		code := "REF-" + id
		u.RefereeCode = &code
	}
	m.users.users[id] = u
	return u
}

func strPtr(s string) *string { return &s }

// ── recording notifier ──

// mockNotifier records event calls so business-logic tests can assert the
// dispatch contract without exercising mail delivery.
type mockNotifier struct {
	mu sync.Mutex

	availabilityCalls int
	lastAdded         []model.Tournament
	lastRemoved       []model.Tournament

	assignmentCalls int
	removalCalls    int
}

func (m *mockNotifier) NotifyAvailabilityChange(_ context.Context, _ *model.User, added, removed []model.Tournament) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.availabilityCalls++
	m.lastAdded = added
	m.lastRemoved = removed
}

func (m *mockNotifier) NotifyAssignment(_ context.Context, _ *model.User, _ *model.Tournament, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignmentCalls++
}

func (m *mockNotifier) NotifyAssignmentRemoval(_ context.Context, _ *model.User, _ *model.Tournament) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removalCalls++
}

func (m *mockNotifier) SendConvocation(_ context.Context, _ string, _ *dto.SendConvocationRequest) (*dto.TournamentNotificationResponse, error) {
	return &dto.TournamentNotificationResponse{}, nil
}

func (m *mockNotifier) List(_ context.Context, _ *dto.NotificationListRequest) ([]dto.NotificationResponse, int64, error) {
	return nil, 0, nil
}
