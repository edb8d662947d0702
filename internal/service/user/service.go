package user

import (
	"context"
	"database/sql"
	"errors"

	apperrors "github.com/clinicore/clinic-api/pkg/errors"
	"github.com/clinicore/clinic-api/pkg/logger"
	"github.com/clinicore/clinic-api/pkg/security"

	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/repository"
)

type Service struct {
	repo   repository.UserRepository
	hasher security.PasswordHasher
	logger *logger.Logger
}

func NewService(repo repository.UserRepository, hasher security.PasswordHasher, logger *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger.WithComponent("user_service"),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.BadRequest("passwords do not match", nil)
	}

	_, err := s.repo.GetByUsername(ctx, req.Username)
	if err == nil {
		return nil, apperrors.Conflict("username already exists")
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.Internal(err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         req.Role,
		Email:        req.Email,
		Phone:        req.Phone,
		IsActive:     active,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.logger.Info("user created", "user_id", user.ID, "username", user.Username, "role", user.Role)
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]*model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user", err)
		}
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

// SetActive toggles whether the user may log in. The caller can never
// deactivate their own account.
func (s *Service) SetActive(ctx context.Context, id, actorID int64, active bool) error {
	if id == actorID && !active {
		return apperrors.BadRequest("cannot deactivate your own account", nil)
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return apperrors.Internal(err)
	}
	s.logger.Info("user active flag changed", "user_id", id, "active", active)
	return nil
}

// ResetPassword replaces the user's password with the well-known
// default so an administrator can hand it out for first login.
func (s *Service) ResetPassword(ctx context.Context, id int64) (string, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return "", err
	}
	hash, err := s.hasher.Hash(model.DefaultResetPassword)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		return "", apperrors.Internal(err)
	}
	s.logger.Info("password reset", "user_id", id)
	return model.DefaultResetPassword, nil
}

func (s *Service) Stats(ctx context.Context) (*model.UserStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return stats, nil
}

func (s *Service) RoleDistribution(ctx context.Context) ([]model.StatusCount, error) {
	dist, err := s.repo.RoleDistribution(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return dist, nil
}
