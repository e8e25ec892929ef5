package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/model"
)

func setupTestExportService() (ExportService, *mockRepos) {
	m := newMockRepos()
	return NewExportService(m.repo, NewVisibilityService(), zap.NewNop()), m
}

func TestExportService_ExportAssignments(t *testing.T) {
	svc, m := setupTestExportService()
	zone := seedZone(m, "zone-a", "SZR-A")
	club := seedClub(m, "club-a", zone.ZoneID)
	club.Zone = zone
	tt := seedType(m, "type-z", false, model.LevelRegionale)
	tournament := seedTournament(m, "trn-1", club, tt)
	seedUser(m, "adm-a", model.UserTypeAdmin, "", &zone.ZoneID)
	referee := seedUser(m, "ref-1", model.UserTypeReferee, model.LevelRegionale, &zone.ZoneID)

	m.assignments.rows = append(m.assignments.rows, model.Assignment{
		AssignmentID: "asg-1",
		TournamentID: tournament.TournamentID,
		UserID:       referee.UserID,
		Role:         model.RoleArbitro,
		IsConfirmed:  true,
		AssignedAt:   testNow,
		User:         referee,
	})

	buf, filename, err := svc.ExportAssignments(context.Background(), "adm-a", &dto.TournamentListRequest{})
	if err != nil {
		t.Fatalf("ExportAssignments failed: %v", err)
	}
	if !strings.HasPrefix(filename, "assignments_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("unexpected filename %q", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("export is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Assignments")
	if err != nil {
		t.Fatalf("reading sheet failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one assignment row, got %d rows", len(rows))
	}
	header, data := rows[0], rows[1]
	if header[0] != "Tournament" || header[5] != "Referee" {
		t.Errorf("unexpected header: %v", header)
	}
	if data[0] != "Tournament trn-1" || data[5] != "User ref-1" {
		t.Errorf("unexpected data row: %v", data)
	}
	if data[6] != "REF-ref-1" {
		t.Errorf("referee code missing: %v", data)
	}
	if data[8] != "yes" {
		t.Errorf("confirmed flag not rendered: %v", data)
	}
}

func TestExportService_ExportAssignments_VisibilityScoped(t *testing.T) {
	svc, m := setupTestExportService()
	zoneA := seedZone(m, "zone-a", "SZR-A")
	zoneB := seedZone(m, "zone-b", "SZR-B")
	clubB := seedClub(m, "club-b", zoneB.ZoneID)
	tt := seedType(m, "type-z", false, model.LevelRegionale)
	seedTournament(m, "trn-b", clubB, tt)
	seedUser(m, "adm-a", model.UserTypeAdmin, "", &zoneA.ZoneID)

	// the only tournament belongs to zone B, so a zone A admin exports nothing
	_, _, err := svc.ExportAssignments(context.Background(), "adm-a", &dto.TournamentListRequest{})
	if !errors.Is(err, ErrExportNoTournaments) {
		t.Errorf("expected ErrExportNoTournaments, got %v", err)
	}
}
