package model

import "time"

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

type Booking struct {
	ID         string     `json:"_id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	UID        string     `json:"uid" bson:"uid" validate:"required"`
	RoomID     string     `json:"roomId" bson:"roomId" validate:"required,mongodb"`
	CheckIn    string     `json:"checkIn" bson:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut   string     `json:"checkOut" bson:"checkOut" validate:"required,datetime=2006-01-02"`
	Guests     int        `json:"guests" bson:"guests" validate:"required,min=1"`
	TotalPrice float64    `json:"totalPrice" bson:"totalPrice" validate:"required,gt=0"`
	CreatedAt  time.Time  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// BookingDates is the PUT /bookings/:id body.
type BookingDates struct {
	CheckIn  string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" validate:"required,datetime=2006-01-02"`
}

// BookingWithRoom is a booking with its room document embedded for the
// per-user listing. Room stays null when the referenced room is gone.
type BookingWithRoom struct {
	Booking `bson:",inline"`
	Room    *Room `json:"room" bson:"-"`
}
