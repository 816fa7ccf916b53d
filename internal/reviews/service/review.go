package service

import (
	"context"

	"hotelbooking/internal/reviews/repository"
	"hotelbooking/internal/reviews/validator"
	"hotelbooking/pkg/config"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/model"
)

type ReviewService interface {
	Create(ctx context.Context, review *model.Review) error
	GetAll(ctx context.Context) ([]*model.Review, error)
}

type reviewService struct {
	repo      repository.ReviewRepository
	validator *validator.ReviewValidator
	cfg       *config.Config
}

func NewReviewService(
	repo repository.ReviewRepository,
	validator *validator.ReviewValidator,
	cfg *config.Config,
) ReviewService {
	return &reviewService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *reviewService) Create(ctx context.Context, review *model.Review) error {
	if err := s.validator.Validate(review); err != nil {
		s.cfg.Log.Warn("Review validation failed", "error", err)
		return apperrors.Validation("All fields are required", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, review); err != nil {
		s.cfg.Log.Error("Failed to create review", "room_id", review.RoomID, "error", err)
		return apperrors.Internal("Failed to create review", err)
	}

	s.cfg.Log.Info("Review created", "id", review.ID, "room_id", review.RoomID, "uid", review.UID)
	return nil
}

func (s *reviewService) GetAll(ctx context.Context) ([]*model.Review, error) {
	reviews, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list reviews", "error", err)
		return nil, apperrors.Internal("Failed to retrieve reviews", err)
	}
	if reviews == nil {
		reviews = []*model.Review{}
	}
	return reviews, nil
}
