package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	roomserrors "hotelbooking/internal/rooms/errors"
	"hotelbooking/pkg/config"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"
)

const roomID = "507f1f77bcf86cd799439011"

type mockRoomRepository struct {
	rooms []*model.Room

	findByIDFunc func(ctx context.Context, id string) (*model.Room, error)
}

func (m *mockRoomRepository) FindAll(ctx context.Context) ([]*model.Room, error) {
	return m.rooms, nil
}

// FindByPriceRange mirrors the persistence behavior: inclusive bounds, only
// over the supplied ones.
func (m *mockRoomRepository) FindByPriceRange(ctx context.Context, bounds model.PriceRange) ([]*model.Room, error) {
	if bounds.Empty() {
		return m.rooms, nil
	}
	var out []*model.Room
	for _, room := range m.rooms {
		if bounds.Min != nil && room.Price < *bounds.Min {
			continue
		}
		if bounds.Max != nil && room.Price > *bounds.Max {
			continue
		}
		out = append(out, room)
	}
	return out, nil
}

func (m *mockRoomRepository) FindByID(ctx context.Context, id string) (*model.Room, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, roomserrors.ErrNotFound
}

func (m *mockRoomRepository) SetAvailability(ctx context.Context, id string, available bool) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type mockReviewRepository struct {
	byRoom map[string][]*model.Review
}

func (m *mockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	return nil
}

func (m *mockReviewRepository) FindAll(ctx context.Context) ([]*model.Review, error) {
	return nil, nil
}

func (m *mockReviewRepository) FindByRoomID(ctx context.Context, id string) ([]*model.Review, error) {
	return m.byRoom[id], nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
		ReadTimeout: 5 * time.Second,
	}
}

func fixtureRooms() []*model.Room {
	return []*model.Room{
		{ID: "507f1f77bcf86cd799439021", Price: 40, Availability: true},
		{ID: "507f1f77bcf86cd799439022", Price: 100, Availability: true},
		{ID: "507f1f77bcf86cd799439023", Price: 200, Availability: false},
	}
}

func ptr(v float64) *float64 { return &v }

func TestFilter(t *testing.T) {
	svc := NewRoomService(&mockRoomRepository{rooms: fixtureRooms()}, &mockReviewRepository{}, testConfig())

	tests := []struct {
		name       string
		bounds     model.PriceRange
		wantPrices []float64
	}{
		{"both bounds", model.PriceRange{Min: ptr(50), Max: ptr(150)}, []float64{100}},
		{"min only", model.PriceRange{Min: ptr(100)}, []float64{100, 200}},
		{"max only", model.PriceRange{Max: ptr(100)}, []float64{40, 100}},
		{"inclusive bounds", model.PriceRange{Min: ptr(40), Max: ptr(200)}, []float64{40, 100, 200}},
		{"no bounds returns everything", model.PriceRange{}, []float64{40, 100, 200}},
		{"empty band", model.PriceRange{Min: ptr(300)}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms, err := svc.Filter(context.Background(), tt.bounds)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rooms) != len(tt.wantPrices) {
				t.Fatalf("expected %d rooms, got %d", len(tt.wantPrices), len(rooms))
			}
			for i, room := range rooms {
				if room.Price != tt.wantPrices[i] {
					t.Errorf("room %d: expected price %v, got %v", i, tt.wantPrices[i], room.Price)
				}
			}
		})
	}
}

func TestGetByID_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		repoErr    error
		wantStatus int
	}{
		{"invalid id", roomserrors.ErrInvalidID, http.StatusBadRequest},
		{"not found", roomserrors.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRoomRepository{
				findByIDFunc: func(ctx context.Context, id string) (*model.Room, error) {
					return nil, tt.repoErr
				},
			}
			svc := NewRoomService(repo, &mockReviewRepository{}, testConfig())

			_, err := svc.GetByID(context.Background(), roomID)
			if err == nil {
				t.Fatal("expected error")
			}
			if appErr := apperrors.AsAppError(err); appErr.HTTPStatus != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, appErr.HTTPStatus)
			}
		})
	}
}

func TestGetDetails(t *testing.T) {
	repo := &mockRoomRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Room, error) {
			return &model.Room{ID: id, Price: 100, Availability: true}, nil
		},
	}
	reviews := &mockReviewRepository{
		byRoom: map[string][]*model.Review{
			roomID: {
				{ID: "507f1f77bcf86cd799439031", RoomID: roomID, Rating: 5, Comment: "great"},
				{ID: "507f1f77bcf86cd799439032", RoomID: roomID, Rating: 3, Comment: "okay"},
			},
		},
	}
	svc := NewRoomService(repo, reviews, testConfig())

	details, err := svc.GetDetails(context.Background(), roomID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if details.Room == nil || details.Room.ID != roomID {
		t.Errorf("expected room %s, got %+v", roomID, details.Room)
	}
	if len(details.Reviews) != 2 {
		t.Errorf("expected 2 reviews, got %d", len(details.Reviews))
	}
}

func TestGetDetails_NoReviews(t *testing.T) {
	repo := &mockRoomRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Room, error) {
			return &model.Room{ID: id}, nil
		},
	}
	svc := NewRoomService(repo, &mockReviewRepository{}, testConfig())

	details, err := svc.GetDetails(context.Background(), roomID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Reviews == nil {
		t.Error("expected empty review slice, not nil")
	}
	if len(details.Reviews) != 0 {
		t.Errorf("expected no reviews, got %d", len(details.Reviews))
	}
}
