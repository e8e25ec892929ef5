package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"golf-arbitri/backend/internal/model"
	"golf-arbitri/backend/internal/repository"
	"golf-arbitri/backend/pkg/mailer"
)

// mockRepos bundles every mock with an aggregate whose Transaction runs the
// callback directly (nil db).
type mockRepos struct {
	zones          *mockZoneRepo
	clubs          *mockClubRepo
	users          *mockUserRepo
	types          *mockTournamentTypeRepo
	tournaments    *mockTournamentRepo
	availabilities *mockAvailabilityRepo
	assignments    *mockAssignmentRepo
	notifications  *mockNotificationRepo
	careers        *mockCareerHistoryRepo

	repo *repository.Repository
}

func newMockRepos() *mockRepos {
	m := &mockRepos{
		zones:          newMockZoneRepo(),
		clubs:          newMockClubRepo(),
		users:          newMockUserRepo(),
		types:          newMockTournamentTypeRepo(),
		availabilities: newMockAvailabilityRepo(),
		assignments:    newMockAssignmentRepo(),
		notifications:  newMockNotificationRepo(),
		careers:        newMockCareerHistoryRepo(),
	}
	m.tournaments = &mockTournamentRepo{
		tournaments:    make(map[string]*model.Tournament),
		assignments:    m.assignments,
		availabilities: m.availabilities,
	}
	m.availabilities.tournaments = m.tournaments
	m.repo = &repository.Repository{
		Zone:           m.zones,
		Club:           m.clubs,
		User:           m.users,
		TournamentType: m.types,
		Tournament:     m.tournaments,
		Availability:   m.availabilities,
		Assignment:     m.assignments,
		Notification:   m.notifications,
		CareerHistory:  m.careers,
	}
	return m
}

// ── Mock ZoneRepository ──

type mockZoneRepo struct {
	zones map[string]*model.Zone
}

func newMockZoneRepo() *mockZoneRepo {
	return &mockZoneRepo{zones: make(map[string]*model.Zone)}
}

func (m *mockZoneRepo) List(_ context.Context, activeOnly bool) ([]model.Zone, error) {
	var result []model.Zone
	for _, z := range m.zones {
		if activeOnly && !z.IsActive {
			continue
		}
		result = append(result, *z)
	}
	return result, nil
}

func (m *mockZoneRepo) GetByID(_ context.Context, id string) (*model.Zone, error) {
	if z, ok := m.zones[id]; ok {
		return z, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockZoneRepo) GetByCode(_ context.Context, code string) (*model.Zone, error) {
	for _, z := range m.zones {
		if z.Code == code {
			return z, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockZoneRepo) Create(_ context.Context, zone *model.Zone) error {
	if zone.ZoneID == "" {
		zone.ZoneID = "zone-" + zone.Code
	}
	for _, z := range m.zones {
		if z.Code == zone.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	m.zones[zone.ZoneID] = zone
	return nil
}

func (m *mockZoneRepo) Update(_ context.Context, zone *model.Zone) error {
	m.zones[zone.ZoneID] = zone
	return nil
}

// ── Mock ClubRepository ──

type mockClubRepo struct {
	clubs map[string]*model.Club
}

func newMockClubRepo() *mockClubRepo {
	return &mockClubRepo{clubs: make(map[string]*model.Club)}
}

func (m *mockClubRepo) List(_ context.Context, filter repository.ClubFilter) ([]model.Club, int64, error) {
	var result []model.Club
	for _, c := range m.clubs {
		if filter.ZoneID != "" && c.ZoneID != filter.ZoneID {
			continue
		}
		if filter.Keyword != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.Keyword)) {
			continue
		}
		result = append(result, *c)
	}
	return result, int64(len(result)), nil
}

func (m *mockClubRepo) GetByID(_ context.Context, id string) (*model.Club, error) {
	if c, ok := m.clubs[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClubRepo) Create(_ context.Context, club *model.Club) error {
	if club.ClubID == "" {
		club.ClubID = "club-" + club.Code
	}
	for _, c := range m.clubs {
		if c.Code == club.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	m.clubs[club.ClubID] = club
	return nil
}

func (m *mockClubRepo) Update(_ context.Context, club *model.Club) error {
	m.clubs[club.ClubID] = club
	return nil
}

func (m *mockClubRepo) Delete(_ context.Context, id string) error {
	delete(m.clubs, id)
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) List(_ context.Context, filter repository.UserFilter) ([]model.User, int64, error) {
	if !filter.NationalScoped && filter.ZoneID == "" {
		return []model.User{}, 0, nil
	}
	var result []model.User
	for _, u := range m.users {
		if filter.ZoneID != "" && (u.ZoneID == nil || *u.ZoneID != filter.ZoneID) {
			continue
		}
		if filter.UserType != "" && u.UserType != filter.UserType {
			continue
		}
		if filter.Level != "" && u.Level != filter.Level {
			continue
		}
		if filter.Active != nil && u.IsActive != *filter.Active {
			continue
		}
		result = append(result, *u)
	}
	return result, int64(len(result)), nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	// mirror the is_active column default the real insert returns
	user.IsActive = true
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) ListActiveAdminsByZone(_ context.Context, zoneID string) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.UserType == model.UserTypeAdmin && u.IsActive && u.Email != "" &&
			u.ZoneID != nil && *u.ZoneID == zoneID {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) ListActiveNationalAdmins(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.UserType == model.UserTypeNationalAdmin && u.IsActive && u.Email != "" {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) ListActiveRefereesByZone(_ context.Context, zoneID string) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.IsReferee() && u.IsActive && u.ZoneID != nil && *u.ZoneID == zoneID {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) ListActiveNationalReferees(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.IsNationalReferee() && u.IsActive {
			result = append(result, *u)
		}
	}
	return result, nil
}

// ── Mock TournamentTypeRepository ──

type mockTournamentTypeRepo struct {
	types map[string]*model.TournamentType
}

func newMockTournamentTypeRepo() *mockTournamentTypeRepo {
	return &mockTournamentTypeRepo{types: make(map[string]*model.TournamentType)}
}

func (m *mockTournamentTypeRepo) List(_ context.Context, activeOnly bool) ([]model.TournamentType, error) {
	var result []model.TournamentType
	for _, tt := range m.types {
		if activeOnly && !tt.IsActive {
			continue
		}
		result = append(result, *tt)
	}
	return result, nil
}

func (m *mockTournamentTypeRepo) GetByID(_ context.Context, id string) (*model.TournamentType, error) {
	if tt, ok := m.types[id]; ok {
		return tt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTournamentTypeRepo) Create(_ context.Context, tt *model.TournamentType) error {
	if tt.TournamentTypeID == "" {
		tt.TournamentTypeID = "type-" + tt.ShortName
	}
	m.types[tt.TournamentTypeID] = tt
	return nil
}

func (m *mockTournamentTypeRepo) Update(_ context.Context, tt *model.TournamentType) error {
	m.types[tt.TournamentTypeID] = tt
	return nil
}

// ── Mock TournamentRepository ──

type mockTournamentRepo struct {
	tournaments map[string]*model.Tournament
	idCounter   int

	// orphan detection for DeleteOrphanedInYear
	assignments    *mockAssignmentRepo
	availabilities *mockAvailabilityRepo
}

func (m *mockTournamentRepo) visible(t *model.Tournament, filter repository.TournamentFilter) bool {
	if !filter.NationalScoped {
		if filter.ViewerZoneID == "" {
			return false
		}
		if !(t.Type != nil && t.Type.IsNational) && t.EffectiveZoneID() != filter.ViewerZoneID {
			return false
		}
	}
	if filter.ZoneID != "" && t.EffectiveZoneID() != filter.ZoneID {
		return false
	}
	if filter.Status != "" && t.Status != filter.Status {
		return false
	}
	if filter.TypeID != "" && t.TournamentTypeID != filter.TypeID {
		return false
	}
	if filter.DateFrom != nil && t.StartDate.Before(*filter.DateFrom) {
		return false
	}
	if filter.DateTo != nil && t.StartDate.After(*filter.DateTo) {
		return false
	}
	if filter.Keyword != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(filter.Keyword)) {
		return false
	}
	if len(filter.IDs) > 0 {
		found := false
		for _, id := range filter.IDs {
			if id == t.TournamentID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (m *mockTournamentRepo) List(_ context.Context, filter repository.TournamentFilter) ([]model.Tournament, int64, error) {
	var result []model.Tournament
	for _, t := range m.tournaments {
		if m.visible(t, filter) {
			result = append(result, *t)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockTournamentRepo) GetByID(_ context.Context, id string) (*model.Tournament, error) {
	if t, ok := m.tournaments[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTournamentRepo) Create(_ context.Context, t *model.Tournament) error {
	if t.TournamentID == "" {
		m.idCounter++
		t.TournamentID = fmt.Sprintf("trn-%d", m.idCounter)
	}
	m.tournaments[t.TournamentID] = t
	return nil
}

func (m *mockTournamentRepo) Update(_ context.Context, t *model.Tournament) error {
	m.tournaments[t.TournamentID] = t
	return nil
}

func (m *mockTournamentRepo) Delete(_ context.Context, id string) error {
	delete(m.tournaments, id)
	return nil
}

func (m *mockTournamentRepo) DeleteOrphanedInYear(_ context.Context, year int) (int64, error) {
	var deleted int64
	for id, t := range m.tournaments {
		if t.StartDate.Year() != year {
			continue
		}
		if m.assignments.anyForTournament(id) || m.availabilities.anyForTournament(id) {
			continue
		}
		delete(m.tournaments, id)
		deleted++
	}
	return deleted, nil
}

// ── Mock AvailabilityRepository ──

type mockAvailabilityRepo struct {
	rows        []model.Availability
	tournaments *mockTournamentRepo
	idCounter   int

	upsertErr error // injected failure for rollback tests
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{}
}

func (m *mockAvailabilityRepo) anyForTournament(tournamentID string) bool {
	for _, a := range m.rows {
		if a.TournamentID == tournamentID {
			return true
		}
	}
	return false
}

// GetByID mirrors the real repository's Tournament.Club and Tournament.Type
// preloads, so callers see the same association shape the database layer
// returns.
func (m *mockAvailabilityRepo) GetByID(_ context.Context, id string) (*model.Availability, error) {
	for i := range m.rows {
		if m.rows[i].AvailabilityID == id {
			row := m.rows[i]
			if m.tournaments != nil {
				row.Tournament = m.tournaments.tournaments[row.TournamentID]
			}
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAvailabilityRepo) GetByUserAndTournament(_ context.Context, userID, tournamentID string) (*model.Availability, error) {
	for i, a := range m.rows {
		if a.UserID == userID && a.TournamentID == tournamentID {
			return &m.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAvailabilityRepo) ListByUser(_ context.Context, userID string) ([]model.Availability, error) {
	var result []model.Availability
	for _, a := range m.rows {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAvailabilityRepo) ListByTournament(_ context.Context, tournamentID string) ([]model.Availability, error) {
	var result []model.Availability
	for _, a := range m.rows {
		if a.TournamentID == tournamentID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAvailabilityRepo) ListByUserAndTournaments(_ context.Context, userID string, tournamentIDs []string) ([]model.Availability, error) {
	ids := make(map[string]bool, len(tournamentIDs))
	for _, id := range tournamentIDs {
		ids[id] = true
	}
	var result []model.Availability
	for _, a := range m.rows {
		if a.UserID == userID && ids[a.TournamentID] {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAvailabilityRepo) Upsert(_ context.Context, a *model.Availability) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	for i, existing := range m.rows {
		if existing.UserID == a.UserID && existing.TournamentID == a.TournamentID {
			a.AvailabilityID = existing.AvailabilityID
			m.rows[i] = *a
			return nil
		}
	}
	m.idCounter++
	if a.AvailabilityID == "" {
		a.AvailabilityID = fmt.Sprintf("avail-%d", m.idCounter)
	}
	if a.SubmittedAt.IsZero() {
		a.SubmittedAt = time.Now()
	}
	m.rows = append(m.rows, *a)
	return nil
}

func (m *mockAvailabilityRepo) DeleteByUserAndTournament(_ context.Context, userID, tournamentID string) error {
	for i, a := range m.rows {
		if a.UserID == userID && a.TournamentID == tournamentID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockAvailabilityRepo) DeleteByUserAndTournaments(_ context.Context, userID string, tournamentIDs []string) error {
	ids := make(map[string]bool, len(tournamentIDs))
	for _, id := range tournamentIDs {
		ids[id] = true
	}
	var remaining []model.Availability
	for _, a := range m.rows {
		if a.UserID == userID && ids[a.TournamentID] {
			continue
		}
		remaining = append(remaining, a)
	}
	m.rows = remaining
	return nil
}

func (m *mockAvailabilityRepo) CountByUserAndYear(_ context.Context, userID string, year int) (int64, error) {
	var n int64
	for _, a := range m.rows {
		if a.UserID == userID && a.Tournament != nil && a.Tournament.StartDate.Year() == year {
			n++
		}
	}
	return n, nil
}

func (m *mockAvailabilityRepo) DeleteByUserAndYear(_ context.Context, userID string, year int) error {
	var remaining []model.Availability
	for _, a := range m.rows {
		if a.UserID == userID && a.Tournament != nil && a.Tournament.StartDate.Year() == year {
			continue
		}
		remaining = append(remaining, a)
	}
	m.rows = remaining
	return nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	rows      []model.Assignment
	idCounter int
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{}
}

func (m *mockAssignmentRepo) anyForTournament(tournamentID string) bool {
	for _, a := range m.rows {
		if a.TournamentID == tournamentID {
			return true
		}
	}
	return false
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id string) (*model.Assignment, error) {
	for i, a := range m.rows {
		if a.AssignmentID == id {
			return &m.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) GetByUserAndTournament(_ context.Context, userID, tournamentID string) (*model.Assignment, error) {
	for i, a := range m.rows {
		if a.UserID == userID && a.TournamentID == tournamentID {
			return &m.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) ListByTournament(_ context.Context, tournamentID string) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.rows {
		if a.TournamentID == tournamentID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) ListByUser(_ context.Context, userID string) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.rows {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) ListConfirmedByUser(_ context.Context, userID string) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.rows {
		if a.UserID == userID && a.IsConfirmed {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) Create(_ context.Context, a *model.Assignment) error {
	for _, existing := range m.rows {
		if existing.UserID == a.UserID && existing.TournamentID == a.TournamentID {
			return gorm.ErrDuplicatedKey
		}
	}
	m.idCounter++
	if a.AssignmentID == "" {
		a.AssignmentID = fmt.Sprintf("asg-%d", m.idCounter)
	}
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now()
	}
	m.rows = append(m.rows, *a)
	return nil
}

func (m *mockAssignmentRepo) Update(_ context.Context, a *model.Assignment) error {
	for i, existing := range m.rows {
		if existing.AssignmentID == a.AssignmentID {
			m.rows[i] = *a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) DeleteByUserAndTournament(_ context.Context, userID, tournamentID string) error {
	for i, a := range m.rows {
		if a.UserID == userID && a.TournamentID == tournamentID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockAssignmentRepo) CountByTournament(_ context.Context, tournamentID string) (int64, int64, error) {
	var assigned, confirmed int64
	for _, a := range m.rows {
		if a.TournamentID == tournamentID {
			assigned++
			if a.IsConfirmed {
				confirmed++
			}
		}
	}
	return assigned, confirmed, nil
}

func (m *mockAssignmentRepo) ListByUserAndYear(_ context.Context, userID string, year int) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.rows {
		if a.UserID == userID && a.Tournament != nil && a.Tournament.StartDate.Year() == year {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAssignmentRepo) DeleteByUserAndYear(_ context.Context, userID string, year int) error {
	var remaining []model.Assignment
	for _, a := range m.rows {
		if a.UserID == userID && a.Tournament != nil && a.Tournament.StartDate.Year() == year {
			continue
		}
		remaining = append(remaining, a)
	}
	m.rows = remaining
	return nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	mu            sync.Mutex
	notifications []model.Notification
	aggregates    map[string]*model.TournamentNotification
	idCounter     int
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{aggregates: make(map[string]*model.TournamentNotification)}
}

func (m *mockNotificationRepo) List(_ context.Context, filter repository.NotificationFilter) ([]model.Notification, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.Notification
	for _, n := range m.notifications {
		if filter.TournamentID != "" && (n.TournamentID == nil || *n.TournamentID != filter.TournamentID) {
			continue
		}
		if filter.Type != "" && n.Type != filter.Type {
			continue
		}
		if filter.Status != "" && n.Status != filter.Status {
			continue
		}
		result = append(result, n)
	}
	return result, int64(len(result)), nil
}

func (m *mockNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.idCounter++
	if n.NotificationID == "" {
		n.NotificationID = fmt.Sprintf("ntf-%d", m.idCounter)
	}
	m.notifications = append(m.notifications, *n)
	return nil
}

func (m *mockNotificationRepo) Update(_ context.Context, n *model.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.notifications {
		if existing.NotificationID == n.NotificationID {
			m.notifications[i] = *n
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) GetTournamentNotification(_ context.Context, tournamentID string) (*model.TournamentNotification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tn, ok := m.aggregates[tournamentID]; ok {
		return tn, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) UpsertTournamentNotification(_ context.Context, tn *model.TournamentNotification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tn.TournamentNotificationID == "" {
		tn.TournamentNotificationID = "tn-" + tn.TournamentID
	}
	m.aggregates[tn.TournamentID] = tn
	return nil
}

// ── Mock CareerHistoryRepository ──

type mockCareerHistoryRepo struct {
	histories map[string]*model.RefereeCareerHistory
}

func newMockCareerHistoryRepo() *mockCareerHistoryRepo {
	return &mockCareerHistoryRepo{histories: make(map[string]*model.RefereeCareerHistory)}
}

func (m *mockCareerHistoryRepo) GetByUser(_ context.Context, userID string) (*model.RefereeCareerHistory, error) {
	if h, ok := m.histories[userID]; ok {
		return h, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCareerHistoryRepo) Create(_ context.Context, h *model.RefereeCareerHistory) error {
	if h.CareerHistoryID == "" {
		h.CareerHistoryID = "hist-" + h.UserID
	}
	m.histories[h.UserID] = h
	return nil
}

func (m *mockCareerHistoryRepo) Update(_ context.Context, h *model.RefereeCareerHistory) error {
	m.histories[h.UserID] = h
	return nil
}

// ── Mock Mailer ──

type mockMailer struct {
	mu      sync.Mutex
	sent    []mailer.Message
	sendErr error
}

func (m *mockMailer) Send(_ context.Context, msg *mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, *msg)
	return nil
}

func (m *mockMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *mockMailer) sentMessages() []mailer.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]mailer.Message, len(m.sent))
	copy(out, m.sent)
	return out
}
