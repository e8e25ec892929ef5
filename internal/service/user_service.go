package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"golf-arbitri/backend/internal/dto"
	"golf-arbitri/backend/internal/model"
	"golf-arbitri/backend/internal/repository"
)

var (
	ErrEmailTaken   = errors.New("email is already registered")
	ErrZoneRequired = errors.New("zone is required for zone-scoped accounts")
)

// UserService account management. Listings are zone-scoped through the
// visibility rules: zone admins see their own zone, national-scoped users
// see everyone.
type UserService interface {
	List(ctx context.Context, callerID string, req *dto.UserListRequest) ([]dto.UserResponse, int64, error)
	Get(ctx context.Context, id string) (*dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type userService struct {
	repo       *repository.Repository
	visibility VisibilityService
	logger     *zap.Logger
}

// NewUserService builds a UserService.
func NewUserService(repo *repository.Repository, visibility VisibilityService, logger *zap.Logger) UserService {
	return &userService{repo: repo, visibility: visibility, logger: logger}
}

func (s *userService) List(ctx context.Context, callerID string, req *dto.UserListRequest) ([]dto.UserResponse, int64, error) {
	caller, err := s.repo.User.GetByID(ctx, callerID)
	if err != nil {
		return nil, 0, err
	}

	filter := s.visibility.RefereeScope(caller, repository.UserFilter{
		ZoneID:   req.ZoneID,
		UserType: req.UserType,
		Level:    req.Level,
		Keyword:  req.Keyword,
		Active:   req.Active,
		Offset:   req.GetOffset(),
		Limit:    req.GetPageSize(),
	})

	users, total, err := s.repo.User.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, total, nil
}

func (s *userService) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	// Referees and zone admins belong to a zone; national roles do not.
	switch req.UserType {
	case model.UserTypeReferee, model.UserTypeAdmin:
		if req.ZoneID == "" {
			return nil, ErrZoneRequired
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		UserType:     req.UserType,
		Level:        model.LevelAspirante,
	}
	if req.Level != "" {
		user.Level = req.Level
	}
	if req.RefereeCode != "" {
		user.RefereeCode = &req.RefereeCode
	}
	if req.ZoneID != "" {
		user.ZoneID = &req.ZoneID
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("user_id", user.UserID),
		zap.String("user_type", user.UserType),
	)
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Level != nil {
		user.Level = *req.Level
	}
	if req.ZoneID != nil {
		user.ZoneID = req.ZoneID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(u *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:       u.UserID,
		Name:     u.Name,
		Email:    u.Email,
		UserType: u.UserType,
		Level:    u.Level,
		IsActive: u.IsActive,
	}
	if u.RefereeCode != nil {
		resp.RefereeCode = *u.RefereeCode
	}
	if u.Zone != nil {
		zone := toZoneResponse(u.Zone)
		resp.Zone = &zone
	}
	return resp
}
