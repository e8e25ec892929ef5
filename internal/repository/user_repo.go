package repository

import (
	"context"

	"gorm.io/gorm"

	"golf-arbitri/backend/internal/model"
)

// UserFilter narrows user listings.
type UserFilter struct {
	ZoneID   string
	UserType string
	Level    string
	Keyword  string
	Active   *bool
	// NationalScoped lifts the zone restriction; when false and ZoneID is
	// empty the listing fails closed (no rows).
	NationalScoped bool
	Offset         int
	Limit          int
}

// UserRepository user data access.
type UserRepository interface {
	List(ctx context.Context, filter UserFilter) ([]model.User, int64, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	// ListActiveAdminsByZone returns active zone admins with a usable email.
	ListActiveAdminsByZone(ctx context.Context, zoneID string) ([]model.User, error)
	// ListActiveNationalAdmins returns active national admins with a usable email.
	ListActiveNationalAdmins(ctx context.Context) ([]model.User, error)
	// ListActiveRefereesByZone returns the active referees of one zone.
	ListActiveRefereesByZone(ctx context.Context, zoneID string) ([]model.User, error)
	// ListActiveNationalReferees returns active referees at national level or
	// above, regardless of zone.
	ListActiveNationalReferees(ctx context.Context) ([]model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo builds a UserRepository.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) List(ctx context.Context, filter UserFilter) ([]model.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.User{})

	if !filter.NationalScoped {
		if filter.ZoneID == "" {
			// Fail closed: a zone-scoped viewer without a zone sees nothing.
			return []model.User{}, 0, nil
		}
		q = q.Where("zone_id = ?", filter.ZoneID)
	} else if filter.ZoneID != "" {
		q = q.Where("zone_id = ?", filter.ZoneID)
	}

	if filter.UserType != "" {
		q = q.Where("user_type = ?", filter.UserType)
	}
	if filter.Level != "" {
		q = q.Where("level = ?", filter.Level)
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR referee_code ILIKE ?", kw, kw, kw)
	}
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := q.Preload("Zone").Order("name ASC").Offset(filter.Offset).Limit(filter.Limit).Find(&users).Error
	return users, total, err
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Zone").Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) ListActiveAdminsByZone(ctx context.Context, zoneID string) ([]model.User, error) {
	var admins []model.User
	err := r.db.WithContext(ctx).
		Where("user_type = ? AND zone_id = ? AND is_active = ? AND email <> ''",
			model.UserTypeAdmin, zoneID, true).
		Find(&admins).Error
	return admins, err
}

func (r *userRepo) ListActiveNationalAdmins(ctx context.Context) ([]model.User, error) {
	var admins []model.User
	err := r.db.WithContext(ctx).
		Where("user_type = ? AND is_active = ? AND email <> ''",
			model.UserTypeNationalAdmin, true).
		Find(&admins).Error
	return admins, err
}

func (r *userRepo) ListActiveRefereesByZone(ctx context.Context, zoneID string) ([]model.User, error) {
	var referees []model.User
	err := r.db.WithContext(ctx).
		Where("user_type = ? AND zone_id = ? AND is_active = ?",
			model.UserTypeReferee, zoneID, true).
		Order("name ASC").
		Find(&referees).Error
	return referees, err
}

func (r *userRepo) ListActiveNationalReferees(ctx context.Context) ([]model.User, error) {
	var referees []model.User
	err := r.db.WithContext(ctx).
		Where("user_type = ? AND is_active = ? AND level IN ?",
			model.UserTypeReferee, true,
			[]string{model.LevelNazionale, model.LevelInternazionale}).
		Order("name ASC").
		Find(&referees).Error
	return referees, err
}
