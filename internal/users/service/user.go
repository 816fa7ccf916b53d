package service

import (
	"context"
	"errors"

	userserrors "hotelbooking/internal/users/errors"
	"hotelbooking/internal/users/repository"
	"hotelbooking/internal/users/validator"
	"hotelbooking/pkg/config"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/model"
)

type UserService interface {
	Register(ctx context.Context, user *model.User) (created bool, err error)
}

type userService struct {
	repo      repository.UserRepository
	validator *validator.UserValidator
	cfg       *config.Config
}

func NewUserService(
	repo repository.UserRepository,
	validator *validator.UserValidator,
	cfg *config.Config,
) UserService {
	return &userService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

// Register creates the user unless the uid is already known. Re-registering
// an existing uid is a successful no-op, reported through created=false.
func (s *userService) Register(ctx context.Context, user *model.User) (bool, error) {
	if err := s.validator.Validate(user); err != nil {
		s.cfg.Log.Warn("User validation failed", "error", err)
		return false, apperrors.Validation("All fields are required", map[string]any{"error": err.Error()})
	}

	existing, err := s.repo.FindByUID(ctx, user.UID)
	if err != nil && !errors.Is(err, userserrors.ErrNotFound) {
		s.cfg.Log.Error("Failed to check user existence", "uid", user.UID, "error", err)
		return false, apperrors.Internal("Failed to register user", err)
	}
	if existing != nil {
		s.cfg.Log.Debug("User already exists", "uid", user.UID)
		return false, nil
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.cfg.Log.Error("Failed to create user", "uid", user.UID, "error", err)
		return false, apperrors.Internal("Failed to register user", err)
	}

	s.cfg.Log.Info("User registered", "uid", user.UID, "id", user.ID)
	return true, nil
}
