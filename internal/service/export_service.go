package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/repository"
)

// ── export errors ──

var (
	ErrExportNoTournaments = errors.New("no tournaments match the export filters")
	ErrExportGenerateFail  = errors.New("generating the Excel file failed")
)

// ExportService renders assignment rosters as Excel (.xlsx).
//
// The export is returned as a bytes.Buffer; the handler layer sets the HTTP
// headers and streams it. Rows follow the viewer's zone visibility, so a
// zone admin's export never leaks another zone's staffing.
type ExportService interface {
	// ExportAssignments exports the assignment roster of every visible
	// tournament matching the filters, one row per assignment.
	ExportAssignments(ctx context.Context, callerID string, req *dto.TournamentListRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo       *repository.Repository
	visibility VisibilityService
	logger     *zap.Logger
}

// NewExportService builds an ExportService.
func NewExportService(repo *repository.Repository, visibility VisibilityService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, visibility: visibility, logger: logger}
}

func (s *exportService) ExportAssignments(ctx context.Context, callerID string, req *dto.TournamentListRequest) (*bytes.Buffer, string, error) {
	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		return nil, "", err
	}

	filter := repository.TournamentFilter{
		ZoneID:  req.ZoneID,
		Status:  req.Status,
		TypeID:  req.TypeID,
		Keyword: req.Keyword,
		Limit:   500,
	}
	if req.DateFrom != "" {
		if d, err := time.Parse("2006-01-02", req.DateFrom); err == nil {
			filter.DateFrom = &d
		}
	}
	if req.DateTo != "" {
		if d, err := time.Parse("2006-01-02", req.DateTo); err == nil {
			filter.DateTo = &d
		}
	}
	filter = s.visibility.TournamentScope(caller, filter)

	tournaments, _, err := s.repo.Tournament.List(ctx, filter)
	if err != nil {
		s.logger.Error("listing tournaments for export failed", zap.Error(err))
		return nil, "", err
	}
	if len(tournaments) == 0 {
		return nil, "", ErrExportNoTournaments
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Assignments"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 32)
	f.SetColWidth(sheetName, "B", "C", 12)
	f.SetColWidth(sheetName, "D", "E", 24)
	f.SetColWidth(sheetName, "F", "F", 26)
	f.SetColWidth(sheetName, "G", "H", 18)
	f.SetColWidth(sheetName, "I", "I", 11)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2F5B3C"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Tournament", "Start", "End", "Club", "Zone", "Referee", "Code", "Role", "Confirmed"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	row := 2
	for i := range tournaments {
		t := &tournaments[i]
		assignments, err := s.repo.Assignment.ListByTournament(ctx, t.TournamentID)
		if err != nil {
			s.logger.Error("listing assignments for export failed",
				zap.String("tournament_id", t.TournamentID), zap.Error(err))
			return nil, "", err
		}

		clubName, zoneName := "", ""
		if t.Club != nil {
			clubName = t.Club.Name
			if t.Club.Zone != nil {
				zoneName = t.Club.Zone.Name
			}
		}

		for _, a := range assignments {
			f.SetCellValue(sheetName, cell("A", row), t.Name)
			f.SetCellValue(sheetName, cell("B", row), t.StartDate.Format("2006-01-02"))
			f.SetCellValue(sheetName, cell("C", row), t.EndDate.Format("2006-01-02"))
			f.SetCellValue(sheetName, cell("D", row), clubName)
			f.SetCellValue(sheetName, cell("E", row), zoneName)
			if a.User != nil {
				f.SetCellValue(sheetName, cell("F", row), a.User.Name)
				if a.User.RefereeCode != nil {
					f.SetCellValue(sheetName, cell("G", row), *a.User.RefereeCode)
				}
			}
			f.SetCellValue(sheetName, cell("H", row), a.Role)
			if a.IsConfirmed {
				f.SetCellValue(sheetName, cell("I", row), "yes")
			} else {
				f.SetCellValue(sheetName, cell("I", row), "no")
			}
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("writing Excel buffer failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("assignments_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ── helpers ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
