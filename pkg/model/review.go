package model

import "time"

type Review struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	UID       string    `json:"uid" bson:"uid" validate:"required"`
	RoomID    string    `json:"roomId" bson:"roomId" validate:"required,mongodb"`
	Rating    float64   `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" bson:"comment" validate:"required"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}
