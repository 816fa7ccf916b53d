package model

// User is keyed by the external identity id (uid); registration is
// idempotent on it.
type User struct {
	ID       string `json:"_id,omitempty" bson:"_id,omitempty"`
	UID      string `json:"uid" bson:"uid" validate:"required"`
	Email    string `json:"email" bson:"email" validate:"required,email"`
	Name     string `json:"name" bson:"name" validate:"required"`
	PhotoURL string `json:"photoURL" bson:"photoURL" validate:"required"`
}
