package service

import (
	"context"
	"errors"

	roomserrors "hotelbooking/internal/rooms/errors"
	"hotelbooking/internal/rooms/repository"
	reviewsrepo "hotelbooking/internal/reviews/repository"
	"hotelbooking/pkg/config"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/model"
)

type RoomService interface {
	List(ctx context.Context) ([]*model.Room, error)
	Filter(ctx context.Context, bounds model.PriceRange) ([]*model.Room, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
	GetDetails(ctx context.Context, id string) (*model.RoomDetails, error)
}

type roomService struct {
	repo    repository.RoomRepository
	reviews reviewsrepo.ReviewRepository
	cfg     *config.Config
}

func NewRoomService(
	repo repository.RoomRepository,
	reviews reviewsrepo.ReviewRepository,
	cfg *config.Config,
) RoomService {
	return &roomService{
		repo:    repo,
		reviews: reviews,
		cfg:     cfg,
	}
}

func (s *roomService) List(ctx context.Context) ([]*model.Room, error) {
	rooms, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list rooms", "error", err)
		return nil, apperrors.Internal("Failed to retrieve rooms", err)
	}
	if rooms == nil {
		rooms = []*model.Room{}
	}
	return rooms, nil
}

func (s *roomService) Filter(ctx context.Context, bounds model.PriceRange) ([]*model.Room, error) {
	rooms, err := s.repo.FindByPriceRange(ctx, bounds)
	if err != nil {
		s.cfg.Log.Error("Failed to filter rooms", "error", err)
		return nil, apperrors.Internal("Failed to retrieve rooms", err)
	}
	if rooms == nil {
		rooms = []*model.Room{}
	}
	return rooms, nil
}

func (s *roomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, roomserrors.ErrInvalidID):
			return nil, apperrors.InvalidInput("Invalid ID format")
		case errors.Is(err, roomserrors.ErrNotFound):
			return nil, apperrors.NotFoundWithID("Room", id)
		default:
			s.cfg.Log.Error("Failed to retrieve room", "id", id, "error", err)
			return nil, apperrors.Internal("Failed to retrieve room", err)
		}
	}
	return room, nil
}

// GetDetails returns the room together with its reviews, newest first.
func (s *roomService) GetDetails(ctx context.Context, id string) (*model.RoomDetails, error) {
	room, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.FindByRoomID(ctx, id)
	if err != nil {
		s.cfg.Log.Error("Failed to retrieve room reviews", "room_id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve room reviews", err)
	}
	if reviews == nil {
		reviews = []*model.Review{}
	}

	return &model.RoomDetails{
		Room:    room,
		Reviews: reviews,
	}, nil
}
