package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"go.uber.org/zap"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/model"
)

func setupTestCareerService() (CareerService, *mockRepos) {
	m := newMockRepos()
	svc := NewCareerService(m.repo, zap.NewNop())
	svc.(*careerService).now = testClock()
	return svc, m
}

// seedSeason stores year-bound assignments and availabilities for one
// referee, tournament preloaded as the real repository does.
func seedSeason(m *mockRepos, userID string, year int, roles []string) {
	zone := m.zones.zones["zone-a"]
	if zone == nil {
		zone = seedZone(m, "zone-a", "SZR-A")
	}
	club := m.clubs.clubs["club-a"]
	if club == nil {
		club = seedClub(m, "club-a", zone.ZoneID)
	}
	tt := m.types.types["type-z"]
	if tt == nil {
		tt = seedType(m, "type-z", false, model.LevelAspirante)
	}

	for i, role := range roles {
		trnID := "trn-" + userID + "-" + string(rune('a'+i)) + "-" + strconv.Itoa(year)
		trn := seedTournament(m, trnID, club, tt)
		trn.StartDate = testNow.AddDate(year-testNow.Year(), 0, i)
		trn.EndDate = trn.StartDate.AddDate(0, 0, 1)

		m.assignments.rows = append(m.assignments.rows, model.Assignment{
			AssignmentID: "asg-" + trnID,
			UserID:       userID,
			TournamentID: trnID,
			Role:         role,
			AssignedAt:   trn.StartDate,
			Tournament:   trn,
		})
		m.availabilities.rows = append(m.availabilities.rows, model.Availability{
			AvailabilityID: "avail-" + trnID,
			UserID:         userID,
			TournamentID:   trnID,
			SubmittedAt:    trn.StartDate,
			Tournament:     trn,
		})
	}
}

// ── ArchiveYear ──

func TestCareerService_ArchiveYear_Success(t *testing.T) {
	svc, m := setupTestCareerService()
	seedZone(m, "zone-a", "SZR-A")
	admin := seedUser(m, "nat-1", model.UserTypeNationalAdmin, "", nil)
	referee := seedUser(m, "ref-1", model.UserTypeReferee, model.LevelRegionale, strPtr("zone-a"))
	seedSeason(m, referee.UserID, 2024, []string{model.RoleArbitro, model.RoleArbitro, model.RoleDirettore})

	resp, err := svc.ArchiveYear(context.Background(), admin.UserID, &dto.ArchiveYearRequest{
		UserID: referee.UserID, Year: 2024,
	})
	if err != nil {
		t.Fatalf("ArchiveYear should succeed: %v", err)
	}
	if resp.Assignments != 3 || resp.Tournaments != 3 || resp.Availabilities != 3 {
		t.Errorf("expected 3/3/3, got %d/%d/%d", resp.Assignments, resp.Tournaments, resp.Availabilities)
	}
	if resp.SourceRowsCleared {
		t.Error("source rows must survive without clear_data")
	}
	if len(m.assignments.rows) != 3 {
		t.Errorf("expected source assignments kept, got %d", len(m.assignments.rows))
	}

	history := m.careers.histories[referee.UserID]
	if history == nil {
		t.Fatal("history row should exist")
	}
	bucket := history.AssignmentsByYear.Data()["2024"]
	if bucket.Count != 3 {
		t.Errorf("expected assignments bucket count 3, got %d", bucket.Count)
	}
	if bucket.ByRole[model.RoleArbitro] != 2 || bucket.ByRole[model.RoleDirettore] != 1 {
		t.Errorf("role breakdown wrong: %+v", bucket.ByRole)
	}
}

func TestCareerService_ArchiveYear_OverwritesOnlyTargetYear(t *testing.T) {
	svc, m := setupTestCareerService()
	seedZone(m, "zone-a", "SZR-A")
	admin := seedUser(m, "nat-1", model.UserTypeNationalAdmin, "", nil)
	referee := seedUser(m, "ref-1", model.UserTypeReferee, model.LevelRegionale, strPtr("zone-a"))
	seedSeason(m, referee.UserID, 2023, []string{model.RoleArbitro})
	seedSeason(m, referee.UserID, 2024, []string{model.RoleArbitro, model.RoleOsservatore})

	for _, year := range []int{2023, 2024} {
		if _, err := svc.ArchiveYear(context.Background(), admin.UserID, &dto.ArchiveYearRequest{UserID: referee.UserID, Year: year}); err != nil {
			t.Fatalf("archiving %d should succeed: %v", year, err)
		}
	}

	// re-archive 2024 after one of its assignments was lost
	m.assignments.rows = m.assignments.rows[:len(m.assignments.rows)-1]
	if _, err := svc.ArchiveYear(context.Background(), admin.UserID, &dto.ArchiveYearRequest{UserID: referee.UserID, Year: 2024}); err != nil {
		t.Fatalf("re-archiving 2024 should succeed: %v", err)
	}

	history := m.careers.histories[referee.UserID]
	buckets := history.AssignmentsByYear.Data()
	if buckets["2023"].Count != 1 {
		t.Errorf("2023 bucket must be untouched, got %d", buckets["2023"].Count)
	}
	if buckets["2024"].Count != 1 {
		t.Errorf("2024 bucket must reflect the re-archive, got %d", buckets["2024"].Count)
	}

	stats := history.CareerStats.Data()
	if stats.TotalAssignments != 2 {
		t.Errorf("expected total assignments 2, got %d", stats.TotalAssignments)
	}
	if stats.FirstYear != 2023 || stats.LastYear != 2024 {
		t.Errorf("expected span 2023-2024, got %d-%d", stats.FirstYear, stats.LastYear)
	}
	// 2023 and 2024 both hold one assignment; ties resolve to the earlier year
	if stats.BestYear != 2023 {
		t.Errorf("expected best year 2023 on tie, got %d", stats.BestYear)
	}
}

func TestCareerService_ArchiveYear_ClearDataRequiresSuperAdmin(t *testing.T) {
	svc, m := setupTestCareerService()
	seedZone(m, "zone-a", "SZR-A")
	admin := seedUser(m, "nat-1", model.UserTypeNationalAdmin, "", nil)
	referee := seedUser(m, "ref-1", model.UserTypeReferee, model.LevelRegionale, strPtr("zone-a"))
	seedSeason(m, referee.UserID, 2024, []string{model.RoleArbitro})

	_, err := svc.ArchiveYear(context.Background(), admin.UserID, &dto.ArchiveYearRequest{
		UserID: referee.UserID, Year: 2024, ClearData: true,
	})
	if !errors.Is(err, ErrClearDataForbidden) {
		t.Fatalf("expected ErrClearDataForbidden for national admin, got: %v", err)
	}
	if len(m.assignments.rows) != 1 {
		t.Errorf("denied clear must leave source rows, got %d", len(m.assignments.rows))
	}
}

func TestCareerService_ArchiveYear_ClearDataPurgesYear(t *testing.T) {
	svc, m := setupTestCareerService()
	seedZone(m, "zone-a", "SZR-A")
	super := seedUser(m, "sup-1", model.UserTypeSuperAdmin, "", nil)
	referee := seedUser(m, "ref-1", model.UserTypeReferee, model.LevelRegionale, strPtr("zone-a"))
	seedSeason(m, referee.UserID, 2023, []string{model.RoleArbitro})
	seedSeason(m, referee.UserID, 2024, []string{model.RoleArbitro, model.RoleDirettore})

	resp, err := svc.ArchiveYear(context.Background(), super.UserID, &dto.ArchiveYearRequest{
		UserID: referee.UserID, Year: 2024, ClearData: true,
	})
	if err != nil {
		t.Fatalf("ArchiveYear should succeed: %v", err)
	}
	if !resp.SourceRowsCleared {
		t.Error("expected source rows cleared")
	}

	// 2024 rows purged, 2023 untouched
	for _, a := range m.assignments.rows {
		if a.Tournament.StartDate.Year() == 2024 {
			t.Errorf("2024 assignment %s should be purged", a.AssignmentID)
		}
	}
	if len(m.assignments.rows) != 1 {
		t.Errorf("expected the 2023 assignment kept, got %d rows", len(m.assignments.rows))
	}
	for _, a := range m.availabilities.rows {
		if a.Tournament.StartDate.Year() == 2024 {
			t.Errorf("2024 availability %s should be purged", a.AvailabilityID)
		}
	}

	// orphaned 2024 tournaments swept, 2023 ones kept
	for id, trn := range m.tournaments.tournaments {
		if trn.StartDate.Year() == 2024 {
			t.Errorf("orphaned 2024 tournament %s should be deleted", id)
		}
	}

	// the archive itself survives the purge
	history := m.careers.histories[referee.UserID]
	if history.AssignmentsByYear.Data()["2024"].Count != 2 {
		t.Error("archived 2024 bucket must survive the purge")
	}
	if history.AssignmentsByYear.Data()["2024"].ByRole[model.RoleDirettore] != 1 {
		t.Error("role distribution must survive the purge")
	}
}

func TestCareerService_ArchiveYear_SharedTournamentSurvivesPurge(t *testing.T) {
	svc, m := setupTestCareerService()
	seedZone(m, "zone-a", "SZR-A")
	super := seedUser(m, "sup-1", model.UserTypeSuperAdmin, "", nil)
	referee := seedUser(m, "ref-1", model.UserTypeReferee, model.LevelRegionale, strPtr("zone-a"))
	seedSeason(m, referee.UserID, 2024, []string{model.RoleArbitro})

	// a second referee still assigned to the same tournament
	other := seedUser(m, "ref-2", model.UserTypeReferee, model.LevelRegionale, strPtr("zone-a"))
	shared := m.assignments.rows[0].Tournament
	m.assignments.rows = append(m.assignments.rows, model.Assignment{
		AssignmentID: "asg-shared",
		UserID:       other.UserID,
		TournamentID: shared.TournamentID,
		Role:         model.RoleOsservatore,
		Tournament:   shared,
	})

	if _, err := svc.ArchiveYear(context.Background(), super.UserID, &dto.ArchiveYearRequest{
		UserID: referee.UserID, Year: 2024, ClearData: true,
	}); err != nil {
		t.Fatalf("ArchiveYear should succeed: %v", err)
	}

	if _, ok := m.tournaments.tournaments[shared.TournamentID]; !ok {
		t.Error("tournament with a remaining assignment must not be swept")
	}
}

func TestCareerService_ArchiveYear_NonRefereeTarget(t *testing.T) {
	svc, m := setupTestCareerService()
	admin := seedUser(m, "nat-1", model.UserTypeNationalAdmin, "", nil)
	seedUser(m, "adm-1", model.UserTypeAdmin, "", strPtr("zone-a"))

	_, err := svc.ArchiveYear(context.Background(), admin.UserID, &dto.ArchiveYearRequest{UserID: "adm-1", Year: 2024})
	if !errors.Is(err, ErrCareerNotReferee) {
		t.Errorf("expected ErrCareerNotReferee, got: %v", err)
	}
}

func TestCareerService_ArchiveYear_LevelBaselineSeeded(t *testing.T) {
	svc, m := setupTestCareerService()
	seedZone(m, "zone-a", "SZR-A")
	admin := seedUser(m, "nat-1", model.UserTypeNationalAdmin, "", nil)
	referee := seedUser(m, "ref-1", model.UserTypeReferee, model.LevelRegionale, strPtr("zone-a"))
	seedSeason(m, referee.UserID, 2023, []string{model.RoleArbitro})

	if _, err := svc.ArchiveYear(context.Background(), admin.UserID, &dto.ArchiveYearRequest{UserID: referee.UserID, Year: 2023}); err != nil {
		t.Fatalf("ArchiveYear should succeed: %v", err)
	}

	changes := m.careers.histories[referee.UserID].LevelChangesByYear.Data()
	if changes["2023"].ToLevel != model.LevelRegionale {
		t.Errorf("first archival should seed the level baseline, got %+v", changes)
	}

	// promotion recorded the following season
	referee.Level = model.LevelNazionale
	seedSeason(m, referee.UserID, 2024, []string{model.RoleArbitro})
	if _, err := svc.ArchiveYear(context.Background(), admin.UserID, &dto.ArchiveYearRequest{UserID: referee.UserID, Year: 2024}); err != nil {
		t.Fatalf("ArchiveYear should succeed: %v", err)
	}

	changes = m.careers.histories[referee.UserID].LevelChangesByYear.Data()
	change2024 := changes["2024"]
	if change2024.FromLevel != model.LevelRegionale || change2024.ToLevel != model.LevelNazionale {
		t.Errorf("expected regionale->nazionale transition, got %+v", change2024)
	}
}

func TestCareerService_ArchiveYear_CompletenessScore(t *testing.T) {
	svc, m := setupTestCareerService()
	seedZone(m, "zone-a", "SZR-A")
	admin := seedUser(m, "nat-1", model.UserTypeNationalAdmin, "", nil)
	referee := seedUser(m, "ref-1", model.UserTypeReferee, model.LevelRegionale, strPtr("zone-a"))

	seedSeason(m, referee.UserID, 2023, []string{model.RoleArbitro})
	resp, err := svc.ArchiveYear(context.Background(), admin.UserID, &dto.ArchiveYearRequest{UserID: referee.UserID, Year: 2023})
	if err != nil {
		t.Fatalf("ArchiveYear should succeed: %v", err)
	}
	if resp.CompletenessScore != 0.1 {
		t.Errorf("one archived year should score 0.1, got %v", resp.CompletenessScore)
	}

	seedSeason(m, referee.UserID, 2024, []string{model.RoleArbitro})
	resp, err = svc.ArchiveYear(context.Background(), admin.UserID, &dto.ArchiveYearRequest{UserID: referee.UserID, Year: 2024})
	if err != nil {
		t.Fatalf("ArchiveYear should succeed: %v", err)
	}
	if resp.CompletenessScore != 0.2 {
		t.Errorf("two archived years should score 0.2, got %v", resp.CompletenessScore)
	}
}

// ── GetHistory ──

func TestCareerService_GetHistory_RefereeReadsOwnOnly(t *testing.T) {
	svc, m := setupTestCareerService()
	seedZone(m, "zone-a", "SZR-A")
	admin := seedUser(m, "nat-1", model.UserTypeNationalAdmin, "", nil)
	referee := seedUser(m, "ref-1", model.UserTypeReferee, model.LevelRegionale, strPtr("zone-a"))
	other := seedUser(m, "ref-2", model.UserTypeReferee, model.LevelRegionale, strPtr("zone-a"))
	seedSeason(m, referee.UserID, 2024, []string{model.RoleArbitro})

	if _, err := svc.ArchiveYear(context.Background(), admin.UserID, &dto.ArchiveYearRequest{UserID: referee.UserID, Year: 2024}); err != nil {
		t.Fatalf("ArchiveYear should succeed: %v", err)
	}

	own, err := svc.GetHistory(context.Background(), referee.UserID, referee.UserID)
	if err != nil {
		t.Fatalf("own history should be readable: %v", err)
	}
	if own.AssignmentsByYear["2024"] != 1 {
		t.Errorf("expected 1 assignment in 2024, got %d", own.AssignmentsByYear["2024"])
	}
	if own.LastArchivedYear != 2024 {
		t.Errorf("expected last archived year 2024, got %d", own.LastArchivedYear)
	}

	if _, err := svc.GetHistory(context.Background(), other.UserID, referee.UserID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner for foreign referee, got: %v", err)
	}

	if _, err := svc.GetHistory(context.Background(), admin.UserID, referee.UserID); err != nil {
		t.Errorf("admin should read anyone's history: %v", err)
	}
}

func TestCareerService_GetHistory_NotFound(t *testing.T) {
	svc, m := setupTestCareerService()
	admin := seedUser(m, "nat-1", model.UserTypeNationalAdmin, "", nil)

	if _, err := svc.GetHistory(context.Background(), admin.UserID, "ref-unknown"); !errors.Is(err, ErrCareerHistoryNotFound) {
		t.Errorf("expected ErrCareerHistoryNotFound, got: %v", err)
	}
}
