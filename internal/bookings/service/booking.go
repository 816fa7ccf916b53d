package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	bookingserrors "hotelbooking/internal/bookings/errors"
	"hotelbooking/internal/bookings/repository"
	"hotelbooking/internal/bookings/validator"
	roomserrors "hotelbooking/internal/rooms/errors"
	roomsrepo "hotelbooking/internal/rooms/repository"
	"hotelbooking/pkg/config"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/events"
	"hotelbooking/pkg/model"
)

// minDaysBeforeCheckIn is the cancellation window: the whole-day gap between
// today and check-in must be strictly greater than this.
const minDaysBeforeCheckIn = 1

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByUser(ctx context.Context, uid string) ([]*model.BookingWithRoom, error)
	UpdateDates(ctx context.Context, id string, dates *model.BookingDates) error
	Cancel(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	rooms     roomsrepo.RoomRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	rooms roomsrepo.RoomRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		rooms:     rooms,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Create inserts the booking and flips the room unavailable. The two writes
// are sequential, not atomic: a failure after the insert leaves the booking
// recorded with the room still marked available. Accepted limitation.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("All fields are required", map[string]any{"error": err.Error()})
	}

	room, err := s.rooms.FindByID(ctx, booking.RoomID)
	if err != nil {
		switch {
		case errors.Is(err, roomserrors.ErrInvalidID):
			return apperrors.InvalidInput("Invalid Room ID format")
		case errors.Is(err, roomserrors.ErrNotFound):
			return apperrors.NotFoundWithID("Room", booking.RoomID)
		default:
			s.cfg.Log.Error("Failed to check room", "room_id", booking.RoomID, "error", err)
			return apperrors.Internal("Failed to confirm booking", err)
		}
	}

	if !room.Availability {
		return apperrors.InvalidInput("Room is not available for booking")
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "room_id", booking.RoomID, "error", err)
		return apperrors.Internal("Failed to confirm booking", err)
	}

	if _, err := s.rooms.SetAvailability(ctx, booking.RoomID, false); err != nil {
		// The booking document is already persisted at this point.
		s.cfg.Log.Error("Booking recorded but room availability update failed",
			"booking_id", booking.ID,
			"room_id", booking.RoomID,
			"error", err,
		)
		return apperrors.Internal("Failed to confirm booking", err)
	}

	s.publish(ctx, events.TypeBookingCreated, booking)

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"room_id", booking.RoomID,
		"uid", booking.UID,
		"check_in", booking.CheckIn,
		"check_out", booking.CheckOut,
	)
	return nil
}

// GetByUser lists the user's bookings with the room document embedded on a
// best-effort basis; a room that no longer resolves embeds as null.
func (s *bookingService) GetByUser(ctx context.Context, uid string) ([]*model.BookingWithRoom, error) {
	if uid == "" {
		return nil, apperrors.InvalidInput("User ID is required")
	}

	bookings, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "uid", uid, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	detailed := make([]*model.BookingWithRoom, 0, len(bookings))
	for _, booking := range bookings {
		room, err := s.rooms.FindByID(ctx, booking.RoomID)
		if err != nil {
			s.cfg.Log.Debug("Room lookup failed for booking",
				"booking_id", booking.ID,
				"room_id", booking.RoomID,
				"error", err,
			)
			room = nil
		}
		detailed = append(detailed, &model.BookingWithRoom{
			Booking: *booking,
			Room:    room,
		})
	}

	return detailed, nil
}

func (s *bookingService) UpdateDates(ctx context.Context, id string, dates *model.BookingDates) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}
	if err := s.validator.ValidateDates(dates); err != nil {
		s.cfg.Log.Warn("Booking dates validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid booking dates", map[string]any{"error": err.Error()})
	}

	if _, err := s.repo.UpdateDates(ctx, id, dates); err != nil {
		switch {
		case errors.Is(err, bookingserrors.ErrInvalidID):
			return apperrors.InvalidInput("Invalid Booking ID")
		case errors.Is(err, bookingserrors.ErrNotFound):
			return apperrors.New(apperrors.CodeNotFound, "Booking not found or no changes", http.StatusNotFound)
		default:
			s.cfg.Log.Error("Failed to update booking dates", "id", id, "error", err)
			return apperrors.Internal("Failed to update booking dates", err)
		}
	}

	s.cfg.Log.Info("Booking dates updated", "id", id, "check_in", dates.CheckIn, "check_out", dates.CheckOut)
	return nil
}

// Cancel enforces the cancellation window, deletes the booking, then flips
// the room available again. Like Create, the delete/update pair is not
// atomic; a failed availability update after the delete surfaces as a 500.
func (s *bookingService) Cancel(ctx context.Context, id string) error {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, bookingserrors.ErrInvalidID):
			return apperrors.InvalidInput("Invalid Booking ID")
		case errors.Is(err, bookingserrors.ErrNotFound):
			return apperrors.NotFoundWithID("Booking", id)
		default:
			s.cfg.Log.Error("Failed to retrieve booking", "id", id, "error", err)
			return apperrors.Internal("Failed to cancel booking", err)
		}
	}

	days, err := daysUntilCheckIn(booking.CheckIn, time.Now().UTC())
	if err != nil {
		s.cfg.Log.Error("Stored check-in date is malformed", "id", id, "check_in", booking.CheckIn, "error", err)
		return apperrors.Internal("Failed to cancel booking", err)
	}
	if days <= minDaysBeforeCheckIn {
		return apperrors.InvalidInput("You can only cancel a booking at least 1 day before the check-in date")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return apperrors.Internal("Failed to cancel booking", err)
	}

	result, err := s.rooms.SetAvailability(ctx, booking.RoomID, true)
	if err != nil || result.ModifiedCount == 0 {
		// The booking is already gone; the room is stuck unavailable.
		s.cfg.Log.Error("Booking deleted but room availability reset failed",
			"booking_id", id,
			"room_id", booking.RoomID,
			"error", err,
		)
		return apperrors.Internal("Failed to update room availability", err)
	}

	s.publish(ctx, events.TypeBookingCancelled, booking)

	s.cfg.Log.Info("Booking cancelled", "id", id, "room_id", booking.RoomID)
	return nil
}

// daysUntilCheckIn computes the whole-day difference between check-in and
// now, both truncated to midnight so time of day never counts.
func daysUntilCheckIn(checkIn string, now time.Time) (int, error) {
	in, err := time.Parse(model.DateLayout, checkIn)
	if err != nil {
		return 0, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(in.Sub(today).Hours() / 24), nil
}

func (s *bookingService) publish(ctx context.Context, eventType string, booking *model.Booking) {
	event := events.Event{
		Type:      eventType,
		BookingID: booking.ID,
		RoomID:    booking.RoomID,
		UID:       booking.UID,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"type", eventType,
			"booking_id", booking.ID,
			"error", err,
		)
	}
}
