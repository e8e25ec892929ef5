package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/model"
	"golf-arbitri/backend/internal/repository"
)

// ── career errors ──

var (
	ErrCareerNotReferee      = errors.New("career archival applies to referee accounts only")
	ErrClearDataForbidden    = errors.New("clearing source rows requires a super admin")
	ErrCareerHistoryNotFound = errors.New("no career history archived for this referee")
)

// CareerService archives a referee's season into compact per-year JSON
// buckets and serves the resulting career summary.
//
// Archiving a year is idempotent and overwrites only that year's buckets;
// every other year's data is untouched. With clear_data the year's source
// rows are purged in the same transaction, after the history write, so the
// archive is never lost ahead of its sources.
type CareerService interface {
	ArchiveYear(ctx context.Context, callerID string, req *dto.ArchiveYearRequest) (*dto.ArchiveYearResponse, error)
	GetHistory(ctx context.Context, callerID string, userID string) (*dto.CareerHistoryResponse, error)
}

type careerService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewCareerService builds a CareerService.
func NewCareerService(repo *repository.Repository, logger *zap.Logger) CareerService {
	return &careerService{repo: repo, logger: logger, now: time.Now}
}

func (s *careerService) ArchiveYear(ctx context.Context, callerID string, req *dto.ArchiveYearRequest) (*dto.ArchiveYearResponse, error) {
	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if req.ClearData && caller.UserType != model.UserTypeSuperAdmin {
		return nil, ErrClearDataForbidden
	}

	referee, err := s.repo.User.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !referee.IsReferee() {
		return nil, ErrCareerNotReferee
	}

	assignments, err := s.repo.Assignment.ListByUserAndYear(ctx, req.UserID, req.Year)
	if err != nil {
		return nil, err
	}
	availCount, err := s.repo.Availability.CountByUserAndYear(ctx, req.UserID, req.Year)
	if err != nil {
		return nil, err
	}

	tournamentSet := make(map[string]bool, len(assignments))
	byRole := make(map[string]int, 3)
	for _, a := range assignments {
		tournamentSet[a.TournamentID] = true
		byRole[a.Role]++
	}

	resp := &dto.ArchiveYearResponse{
		UserID:         req.UserID,
		Year:           req.Year,
		Tournaments:    len(tournamentSet),
		Assignments:    len(assignments),
		Availabilities: int(availCount),
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		history, err := txRepo.CareerHistory.GetByUser(ctx, req.UserID)
		created := false
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			history = &model.RefereeCareerHistory{UserID: req.UserID}
			created = true
		}

		key := strconv.Itoa(req.Year)

		tournaments := history.TournamentsByYear.Data()
		assignmentsByYear := history.AssignmentsByYear.Data()
		availabilities := history.AvailabilitiesByYear.Data()
		levelChanges := history.LevelChangesByYear.Data()
		if tournaments == nil {
			tournaments = map[string]model.YearBucket{}
		}
		if assignmentsByYear == nil {
			assignmentsByYear = map[string]model.YearBucket{}
		}
		if availabilities == nil {
			availabilities = map[string]model.YearBucket{}
		}
		if levelChanges == nil {
			levelChanges = map[string]model.LevelChange{}
		}

		tournaments[key] = model.YearBucket{SchemaVersion: model.CareerSchemaVersion, Count: len(tournamentSet)}
		assignmentsByYear[key] = model.YearBucket{SchemaVersion: model.CareerSchemaVersion, Count: len(assignments), ByRole: byRole}
		availabilities[key] = model.YearBucket{SchemaVersion: model.CareerSchemaVersion, Count: int(availCount)}

		if change, ok := levelTransition(levelChanges, req.Year, referee.Level); ok {
			levelChanges[key] = change
		}

		history.TournamentsByYear = datatypes.NewJSONType(tournaments)
		history.AssignmentsByYear = datatypes.NewJSONType(assignmentsByYear)
		history.AvailabilitiesByYear = datatypes.NewJSONType(availabilities)
		history.LevelChangesByYear = datatypes.NewJSONType(levelChanges)
		history.CareerStats = datatypes.NewJSONType(recomputeStats(tournaments, assignmentsByYear, availabilities))
		history.DataCompletenessScore = completenessScore(assignmentsByYear)
		if history.LastArchivedYear == nil || req.Year > *history.LastArchivedYear {
			year := req.Year
			history.LastArchivedYear = &year
		}

		if created {
			if err := txRepo.CareerHistory.Create(ctx, history); err != nil {
				return err
			}
		} else if err := txRepo.CareerHistory.Update(ctx, history); err != nil {
			return err
		}

		resp.CompletenessScore = history.DataCompletenessScore

		if !req.ClearData {
			return nil
		}
		// Purge order matters: the archive is committed in the same
		// transaction before any source row disappears.
		if err := txRepo.Assignment.DeleteByUserAndYear(ctx, req.UserID, req.Year); err != nil {
			return err
		}
		if err := txRepo.Availability.DeleteByUserAndYear(ctx, req.UserID, req.Year); err != nil {
			return err
		}
		// Tournaments are shared: only rows left with no assignments and no
		// availabilities at all are swept.
		if _, err := txRepo.Tournament.DeleteOrphanedInYear(ctx, req.Year); err != nil {
			return err
		}
		resp.SourceRowsCleared = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("career year archived",
		zap.String("user_id", req.UserID),
		zap.Int("year", req.Year),
		zap.Int("assignments", resp.Assignments),
		zap.Bool("cleared", resp.SourceRowsCleared),
	)
	return resp, nil
}

func (s *careerService) GetHistory(ctx context.Context, callerID string, userID string) (*dto.CareerHistoryResponse, error) {
	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	// Referees read their own history; admins read anyone's.
	if caller.IsReferee() && callerID != userID {
		return nil, ErrNotOwner
	}

	history, err := s.repo.CareerHistory.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCareerHistoryNotFound
		}
		return nil, err
	}

	stats := history.CareerStats.Data()
	resp := &dto.CareerHistoryResponse{
		UserID:               history.UserID,
		TournamentsByYear:    bucketCounts(history.TournamentsByYear.Data()),
		AssignmentsByYear:    bucketCounts(history.AssignmentsByYear.Data()),
		AvailabilitiesByYear: bucketCounts(history.AvailabilitiesByYear.Data()),
		CareerStats: dto.CareerStatsResponse{
			TotalTournaments:    stats.TotalTournaments,
			TotalAssignments:    stats.TotalAssignments,
			TotalAvailabilities: stats.TotalAvailabilities,
			FirstYear:           stats.FirstYear,
			LastYear:            stats.LastYear,
			BestYear:            stats.BestYear,
			RoleDistribution:    stats.RoleDistribution,
		},
		DataCompletenessScore: history.DataCompletenessScore,
	}
	if history.LastArchivedYear != nil {
		resp.LastArchivedYear = *history.LastArchivedYear
	}
	return resp, nil
}

// ── helpers ──

// levelTransition reports the level change to record for year, if the
// referee's current level differs from the most recent archived one.
func levelTransition(levelChanges map[string]model.LevelChange, year int, currentLevel string) (model.LevelChange, bool) {
	prevLevel := ""
	prevYear := 0
	for key, change := range levelChanges {
		y, err := strconv.Atoi(key)
		if err != nil || y >= year {
			continue
		}
		if y > prevYear {
			prevYear = y
			prevLevel = change.ToLevel
		}
	}
	if prevLevel == "" || prevLevel == currentLevel {
		if prevLevel == "" && len(levelChanges) == 0 {
			// First archival seeds the baseline.
			return model.LevelChange{SchemaVersion: model.CareerSchemaVersion, FromLevel: currentLevel, ToLevel: currentLevel}, true
		}
		return model.LevelChange{}, false
	}
	return model.LevelChange{SchemaVersion: model.CareerSchemaVersion, FromLevel: prevLevel, ToLevel: currentLevel}, true
}

func recomputeStats(tournaments, assignments, availabilities map[string]model.YearBucket) model.CareerStats {
	stats := model.CareerStats{
		SchemaVersion:    model.CareerSchemaVersion,
		RoleDistribution: map[string]int{},
	}
	for _, b := range tournaments {
		stats.TotalTournaments += b.Count
	}
	for _, b := range availabilities {
		stats.TotalAvailabilities += b.Count
	}
	bestCount := -1
	for key, b := range assignments {
		stats.TotalAssignments += b.Count
		for role, n := range b.ByRole {
			stats.RoleDistribution[role] += n
		}
		year, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if stats.FirstYear == 0 || year < stats.FirstYear {
			stats.FirstYear = year
		}
		if year > stats.LastYear {
			stats.LastYear = year
		}
		if b.Count > bestCount || (b.Count == bestCount && year < stats.BestYear) {
			bestCount = b.Count
			stats.BestYear = year
		}
	}
	if len(stats.RoleDistribution) == 0 {
		stats.RoleDistribution = nil
	}
	return stats
}

// completenessScore grows monotonically with the number of archived years,
// saturating at 1 after ten seasons.
func completenessScore(assignments map[string]model.YearBucket) float64 {
	score := float64(len(assignments)) / 10
	if score > 1 {
		return 1
	}
	return score
}

func bucketCounts(buckets map[string]model.YearBucket) map[string]int {
	out := make(map[string]int, len(buckets))
	for key, b := range buckets {
		out[key] = b.Count
	}
	return out
}
