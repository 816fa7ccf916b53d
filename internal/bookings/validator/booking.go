package validator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"hotelbooking/pkg/model"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type BookingValidator struct {
	validate *validator.Validate
}

func NewBookingValidator() *BookingValidator {
	return &BookingValidator{validate: validator.New()}
}

func (v *BookingValidator) Validate(booking *model.Booking) error {
	if err := v.validate.Struct(booking); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translate(validationErrs)
		}
		return err
	}

	return validateStayOrder(booking.CheckIn, booking.CheckOut)
}

func (v *BookingValidator) ValidateDates(dates *model.BookingDates) error {
	if err := v.validate.Struct(dates); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translate(validationErrs)
		}
		return err
	}

	return validateStayOrder(dates.CheckIn, dates.CheckOut)
}

// validateStayOrder assumes both dates already passed the datetime tag.
func validateStayOrder(checkIn, checkOut string) error {
	in, err := time.Parse(model.DateLayout, checkIn)
	if err != nil {
		return ValidationErrors{{Field: "CheckIn", Message: "checkIn must be a YYYY-MM-DD date"}}
	}
	out, err := time.Parse(model.DateLayout, checkOut)
	if err != nil {
		return ValidationErrors{{Field: "CheckOut", Message: "checkOut must be a YYYY-MM-DD date"}}
	}

	if out.Before(in) {
		return ValidationErrors{{Field: "CheckOut", Message: "checkOut cannot be before checkIn"}}
	}
	return nil
}

func translate(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		case "datetime":
			message = fmt.Sprintf("%s must be a date in YYYY-MM-DD format", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
