package model

// Room is a bookable unit. Rooms are created out of band; this service only
// reads them and flips the availability flag from the booking lifecycle.
type Room struct {
	ID           string   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string   `json:"name,omitempty" bson:"name,omitempty"`
	Description  string   `json:"description,omitempty" bson:"description,omitempty"`
	Price        float64  `json:"price" bson:"price"`
	Availability bool     `json:"availability" bson:"availability"`
	Images       []string `json:"images,omitempty" bson:"images,omitempty"`
	Amenities    []string `json:"amenities,omitempty" bson:"amenities,omitempty"`
}

// RoomDetails pairs a room with its reviews, newest first.
type RoomDetails struct {
	Room    *Room     `json:"room"`
	Reviews []*Review `json:"reviews"`
}

// PriceRange carries the optional bounds of GET /rooms/filter. Nil means the
// bound was not supplied.
type PriceRange struct {
	Min *float64
	Max *float64
}

func (p PriceRange) Empty() bool {
	return p.Min == nil && p.Max == nil
}
