package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"
)

type mockRoomService struct {
	listFunc       func(ctx context.Context) ([]*model.Room, error)
	filterFunc     func(ctx context.Context, bounds model.PriceRange) ([]*model.Room, error)
	getByIDFunc    func(ctx context.Context, id string) (*model.Room, error)
	getDetailsFunc func(ctx context.Context, id string) (*model.RoomDetails, error)
}

func (m *mockRoomService) List(ctx context.Context) ([]*model.Room, error) {
	return m.listFunc(ctx)
}

func (m *mockRoomService) Filter(ctx context.Context, bounds model.PriceRange) ([]*model.Room, error) {
	return m.filterFunc(ctx, bounds)
}

func (m *mockRoomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockRoomService) GetDetails(ctx context.Context, id string) (*model.RoomDetails, error) {
	return m.getDetailsFunc(ctx, id)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: logger.JSON, Service: "test"})
}

func newRouter(svc *mockRoomService) *httprouter.Router {
	router := httprouter.New()
	NewRoomHandler(svc, testLogger()).RegisterRoutes(router)
	return router
}

func TestList(t *testing.T) {
	svc := &mockRoomService{
		listFunc: func(ctx context.Context) ([]*model.Room, error) {
			return []*model.Room{{ID: "507f1f77bcf86cd799439011", Price: 100}}, nil
		},
	}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var rooms []*model.Room
	if err := json.Unmarshal(rec.Body.Bytes(), &rooms); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != "507f1f77bcf86cd799439011" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

// The filter route shares the /rooms/:id pattern, so the dispatch on "filter"
// has to happen before the id reaches the service.
func TestFilter_DispatchedFromIDRoute(t *testing.T) {
	var gotBounds model.PriceRange
	svc := &mockRoomService{
		filterFunc: func(ctx context.Context, bounds model.PriceRange) ([]*model.Room, error) {
			gotBounds = bounds
			return []*model.Room{{ID: "507f1f77bcf86cd799439011", Price: 100}}, nil
		},
		getByIDFunc: func(ctx context.Context, id string) (*model.Room, error) {
			t.Fatalf("GetByID called with %q, expected filter dispatch", id)
			return nil, nil
		},
	}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/filter?minPrice=50&maxPrice=150", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotBounds.Min == nil || *gotBounds.Min != 50 {
		t.Errorf("expected min 50, got %v", gotBounds.Min)
	}
	if gotBounds.Max == nil || *gotBounds.Max != 150 {
		t.Errorf("expected max 150, got %v", gotBounds.Max)
	}
}

func TestFilter_InvalidBound(t *testing.T) {
	svc := &mockRoomService{
		filterFunc: func(ctx context.Context, bounds model.PriceRange) ([]*model.Room, error) {
			t.Fatal("service should not be reached on a malformed bound")
			return nil, nil
		},
	}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/filter?minPrice=cheap", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := &mockRoomService{
		getByIDFunc: func(ctx context.Context, id string) (*model.Room, error) {
			return nil, apperrors.NotFoundWithID("Room", id)
		},
	}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/507f1f77bcf86cd799439099", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Errorf("expected error field in body: %s", rec.Body.String())
	}
}

func TestGetDetails(t *testing.T) {
	svc := &mockRoomService{
		getDetailsFunc: func(ctx context.Context, id string) (*model.RoomDetails, error) {
			return &model.RoomDetails{
				Room:    &model.Room{ID: id, Price: 100},
				Reviews: []*model.Review{{RoomID: id, Rating: 5, Comment: "great"}},
			}, nil
		},
	}
	router := newRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/507f1f77bcf86cd799439011/details", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var details model.RoomDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &details); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if details.Room == nil || details.Room.ID != "507f1f77bcf86cd799439011" {
		t.Errorf("unexpected room: %+v", details.Room)
	}
	if len(details.Reviews) != 1 {
		t.Errorf("expected 1 review, got %d", len(details.Reviews))
	}
}
