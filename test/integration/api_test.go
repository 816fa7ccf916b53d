package integration

import (
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"hotelbooking/pkg/model"
	"hotelbooking/test/integration/testutil"
)

// The suite drives a running server over HTTP. Set TEST_SERVER_URL to the
// server's base URL before running; without it the suite is skipped.
func newClient(t *testing.T) *testutil.Client {
	t.Helper()

	serverURL := os.Getenv("TEST_SERVER_URL")
	if serverURL == "" {
		t.Skip("TEST_SERVER_URL not set, skipping integration tests")
	}

	client := testutil.NewClient(serverURL)
	client.WaitForHealthy(t, 30*time.Second)
	return client
}

func TestBanner(t *testing.T) {
	client := newClient(t)

	resp := client.GET(t, "/")
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertContains(t, resp, "Hotel Booking Server")
}

func TestUserRegistrationIdempotent(t *testing.T) {
	client := newClient(t)

	uid := fmt.Sprintf("it-uid-%d", time.Now().UnixNano())
	user := map[string]any{
		"uid":      uid,
		"email":    uid + "@example.com",
		"name":     "Integration Guest",
		"photoURL": "https://example.com/avatar.png",
	}

	resp := client.POST(t, "/users", user)
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	resp = client.POST(t, "/users", user)
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.AssertContains(t, resp, "User already exists")
}

func TestUserRegistrationMissingFields(t *testing.T) {
	client := newClient(t)

	resp := client.POST(t, "/users", map[string]any{"email": "no-uid@example.com"})
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}

func TestRoomListing(t *testing.T) {
	client := newClient(t)

	resp := client.GET(t, "/rooms")
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var rooms []model.Room
	if err := resp.DecodeJSON(&rooms); err != nil {
		t.Fatalf("failed to decode rooms: %v", err)
	}

	filterResp := client.GET(t, "/rooms/filter?minPrice=0&maxPrice=1000000")
	testutil.AssertStatusCode(t, filterResp, http.StatusOK)

	var filtered []model.Room
	if err := filterResp.DecodeJSON(&filtered); err != nil {
		t.Fatalf("failed to decode filtered rooms: %v", err)
	}
	if len(filtered) != len(rooms) {
		t.Errorf("unbounded filter returned %d rooms, listing returned %d", len(filtered), len(rooms))
	}
}

func TestRoomFilterInvalidBound(t *testing.T) {
	client := newClient(t)

	resp := client.GET(t, "/rooms/filter?minPrice=cheap")
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}

func TestRoomInvalidID(t *testing.T) {
	client := newClient(t)

	resp := client.GET(t, "/rooms/not-an-object-id")
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}

func TestRoomNotFound(t *testing.T) {
	client := newClient(t)

	resp := client.GET(t, "/rooms/507f1f77bcf86cd799439099")
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)
}

func TestTokenIssuance(t *testing.T) {
	client := newClient(t)

	resp := client.POST(t, "/jwt", map[string]any{"uid": "it-uid", "email": "it@example.com"})
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	if len(resp.Body) == 0 {
		t.Fatal("expected a token in the response body")
	}
}

// Requires at least one available room in the database.
func TestBookingLifecycle(t *testing.T) {
	client := newClient(t)

	room := findAvailableRoom(t, client)
	if room == nil {
		t.Skip("no available room seeded, skipping booking lifecycle")
	}

	uid := fmt.Sprintf("it-booker-%d", time.Now().UnixNano())
	checkIn := time.Now().AddDate(0, 0, 30).Format(model.DateLayout)
	checkOut := time.Now().AddDate(0, 0, 33).Format(model.DateLayout)

	createResp := client.POST(t, "/bookings", map[string]any{
		"uid":        uid,
		"roomId":     room.ID,
		"checkIn":    checkIn,
		"checkOut":   checkOut,
		"guests":     2,
		"totalPrice": room.Price * 3,
	})
	testutil.AssertStatusCode(t, createResp, http.StatusCreated)

	var created struct {
		Message string        `json:"message"`
		Booking model.Booking `json:"booking"`
	}
	if err := createResp.DecodeJSON(&created); err != nil {
		t.Fatalf("failed to decode booking: %v", err)
	}
	if created.Booking.ID == "" {
		t.Fatal("expected booking ID to be set")
	}

	// The room must now be held.
	roomResp := client.GET(t, "/rooms/"+room.ID)
	testutil.AssertStatusCode(t, roomResp, http.StatusOK)
	var held model.Room
	if err := roomResp.DecodeJSON(&held); err != nil {
		t.Fatalf("failed to decode room: %v", err)
	}
	if held.Availability {
		t.Error("expected room to be unavailable after booking")
	}

	// Booking the held room again must be rejected.
	conflictResp := client.POST(t, "/bookings", map[string]any{
		"uid":        uid,
		"roomId":     room.ID,
		"checkIn":    checkIn,
		"checkOut":   checkOut,
		"guests":     1,
		"totalPrice": room.Price * 3,
	})
	testutil.AssertStatusCode(t, conflictResp, http.StatusBadRequest)

	listResp := client.GET(t, "/bookings/"+uid)
	testutil.AssertStatusCode(t, listResp, http.StatusOK)
	var bookings []model.BookingWithRoom
	if err := listResp.DecodeJSON(&bookings); err != nil {
		t.Fatalf("failed to decode bookings: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking for %s, got %d", uid, len(bookings))
	}
	if bookings[0].Room == nil || bookings[0].Room.ID != room.ID {
		t.Error("expected the booking to embed its room")
	}

	newCheckIn := time.Now().AddDate(0, 0, 40).Format(model.DateLayout)
	newCheckOut := time.Now().AddDate(0, 0, 42).Format(model.DateLayout)
	updateResp := client.PUT(t, "/bookings/"+created.Booking.ID, map[string]any{
		"checkIn":  newCheckIn,
		"checkOut": newCheckOut,
	})
	testutil.AssertStatusCode(t, updateResp, http.StatusOK)

	cancelResp := client.DELETE(t, "/bookings/"+created.Booking.ID)
	testutil.AssertStatusCode(t, cancelResp, http.StatusOK)

	// Cancellation releases the room.
	roomResp = client.GET(t, "/rooms/"+room.ID)
	testutil.AssertStatusCode(t, roomResp, http.StatusOK)
	var released model.Room
	if err := roomResp.DecodeJSON(&released); err != nil {
		t.Fatalf("failed to decode room: %v", err)
	}
	if !released.Availability {
		t.Error("expected room to be available after cancellation")
	}

	cancelAgain := client.DELETE(t, "/bookings/"+created.Booking.ID)
	testutil.AssertStatusCode(t, cancelAgain, http.StatusNotFound)
}

func TestBookingCancellationWindow(t *testing.T) {
	client := newClient(t)

	room := findAvailableRoom(t, client)
	if room == nil {
		t.Skip("no available room seeded, skipping cancellation window test")
	}

	uid := fmt.Sprintf("it-window-%d", time.Now().UnixNano())
	checkIn := time.Now().AddDate(0, 0, 1).Format(model.DateLayout)
	checkOut := time.Now().AddDate(0, 0, 3).Format(model.DateLayout)

	createResp := client.POST(t, "/bookings", map[string]any{
		"uid":        uid,
		"roomId":     room.ID,
		"checkIn":    checkIn,
		"checkOut":   checkOut,
		"guests":     1,
		"totalPrice": room.Price * 2,
	})
	testutil.AssertStatusCode(t, createResp, http.StatusCreated)

	var created struct {
		Message string        `json:"message"`
		Booking model.Booking `json:"booking"`
	}
	if err := createResp.DecodeJSON(&created); err != nil {
		t.Fatalf("failed to decode booking: %v", err)
	}

	// Check-in is tomorrow, cancellation must be refused.
	cancelResp := client.DELETE(t, "/bookings/"+created.Booking.ID)
	testutil.AssertStatusCode(t, cancelResp, http.StatusBadRequest)
}

func TestReviews(t *testing.T) {
	client := newClient(t)

	listResp := client.GET(t, "/api/reviews")
	testutil.AssertStatusCode(t, listResp, http.StatusOK)
	var before []model.Review
	if err := listResp.DecodeJSON(&before); err != nil {
		t.Fatalf("failed to decode reviews: %v", err)
	}

	resp := client.POST(t, "/reviews", map[string]any{
		"uid":     "it-reviewer",
		"roomId":  "507f1f77bcf86cd799439011",
		"rating":  4.5,
		"comment": "Integration stay",
	})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	listResp = client.GET(t, "/api/reviews")
	testutil.AssertStatusCode(t, listResp, http.StatusOK)
	var after []model.Review
	if err := listResp.DecodeJSON(&after); err != nil {
		t.Fatalf("failed to decode reviews: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Errorf("expected %d reviews after posting, got %d", len(before)+1, len(after))
	}
}

func TestReviewInvalidRating(t *testing.T) {
	client := newClient(t)

	resp := client.POST(t, "/reviews", map[string]any{
		"uid":     "it-reviewer",
		"roomId":  "507f1f77bcf86cd799439011",
		"rating":  6,
		"comment": "Too good",
	})
	testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
}

func findAvailableRoom(t *testing.T, client *testutil.Client) *model.Room {
	t.Helper()

	resp := client.GET(t, "/rooms")
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var rooms []model.Room
	if err := resp.DecodeJSON(&rooms); err != nil {
		t.Fatalf("failed to decode rooms: %v", err)
	}
	for i := range rooms {
		if rooms[i].Availability {
			return &rooms[i]
		}
	}
	return nil
}
