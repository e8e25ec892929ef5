package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates all data-access interfaces.
type Repository struct {
	db *gorm.DB

	Zone           ZoneRepository
	Club           ClubRepository
	User           UserRepository
	TournamentType TournamentTypeRepository
	Tournament     TournamentRepository
	Availability   AvailabilityRepository
	Assignment     AssignmentRepository
	Notification   NotificationRepository
	CareerHistory  CareerHistoryRepository
}

// NewRepository builds the aggregate over one database handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:             db,
		Zone:           NewZoneRepo(db),
		Club:           NewClubRepo(db),
		User:           NewUserRepo(db),
		TournamentType: NewTournamentTypeRepo(db),
		Tournament:     NewTournamentRepo(db),
		Availability:   NewAvailabilityRepo(db),
		Assignment:     NewAssignmentRepo(db),
		Notification:   NewNotificationRepo(db),
		CareerHistory:  NewCareerHistoryRepo(db),
	}
}

// Transaction runs fn inside a single database transaction. fn receives a
// Repository bound to the transaction; any error rolls back every write.
// Multi-row operations (batch availability save, career archival) must go
// through here so partial failure leaves no partial state.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		// Mock aggregates built without a database run fn directly;
		// tests assert rollback behavior at the mock level.
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
