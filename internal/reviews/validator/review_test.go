package validator

import (
	"testing"

	"hotelbooking/pkg/model"
)

func validReview() *model.Review {
	return &model.Review{
		UID:     "firebase-uid-1",
		RoomID:  "507f1f77bcf86cd799439011",
		Rating:  4,
		Comment: "Comfortable stay",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *model.Review)
		wantErr bool
	}{
		{"valid", func(r *model.Review) {}, false},
		{"rating at lower bound", func(r *model.Review) { r.Rating = 1 }, false},
		{"rating at upper bound", func(r *model.Review) { r.Rating = 5 }, false},
		{"fractional rating", func(r *model.Review) { r.Rating = 4.5 }, false},
		{"missing uid", func(r *model.Review) { r.UID = "" }, true},
		{"missing room id", func(r *model.Review) { r.RoomID = "" }, true},
		{"missing comment", func(r *model.Review) { r.Comment = "" }, true},
		{"rating zero", func(r *model.Review) { r.Rating = 0 }, true},
		{"rating below range", func(r *model.Review) { r.Rating = 0.5 }, true},
		{"rating above range", func(r *model.Review) { r.Rating = 6 }, true},
	}

	v := NewReviewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review := validReview()
			tt.mutate(review)

			err := v.Validate(review)
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
