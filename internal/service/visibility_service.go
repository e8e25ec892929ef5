package service

import (
	"golf-arbitri/backend/internal/model"
	"golf-arbitri/backend/internal/repository"
)

// VisibilityService answers what a viewer may see and act on. It is a pure
// filter: no side effects, no data access of its own. Every other service
// routes its scoping decisions through here.
//
// Rules:
//   - national admins, super admins and national-level referees see all zones
//   - zone-scoped users see their own zone's tournaments plus every
//     tournament whose type is flagged national
//   - a user with no zone and no national scope sees nothing (fail closed)
type VisibilityService interface {
	// TournamentScope fills the scope fields of a tournament filter.
	TournamentScope(viewer *model.User, filter repository.TournamentFilter) repository.TournamentFilter
	// RefereeScope fills the scope fields of a user filter.
	RefereeScope(viewer *model.User, filter repository.UserFilter) repository.UserFilter
	// CanSeeTournament applies the same rules to one loaded tournament.
	// The tournament's club and type must be preloaded.
	CanSeeTournament(viewer *model.User, t *model.Tournament) bool
}

type visibilityService struct{}

// NewVisibilityService builds a VisibilityService.
func NewVisibilityService() VisibilityService {
	return &visibilityService{}
}

func (s *visibilityService) TournamentScope(viewer *model.User, filter repository.TournamentFilter) repository.TournamentFilter {
	filter.NationalScoped = viewer.IsNationalScoped()
	filter.ViewerZoneID = ""
	if !filter.NationalScoped && viewer.ZoneID != nil {
		filter.ViewerZoneID = *viewer.ZoneID
	}
	return filter
}

func (s *visibilityService) RefereeScope(viewer *model.User, filter repository.UserFilter) repository.UserFilter {
	filter.NationalScoped = viewer.IsNationalScoped()
	if !filter.NationalScoped {
		if viewer.ZoneID != nil {
			filter.ZoneID = *viewer.ZoneID
		} else {
			filter.ZoneID = ""
		}
	}
	return filter
}

func (s *visibilityService) CanSeeTournament(viewer *model.User, t *model.Tournament) bool {
	if viewer.IsNationalScoped() {
		return true
	}
	if viewer.ZoneID == nil {
		// no zone and not nationally scoped: nothing is visible, matching
		// the fail-closed list filter
		return false
	}
	if t.IsNational() {
		return true
	}
	zone := t.EffectiveZoneID()
	return zone != "" && zone == *viewer.ZoneID
}
