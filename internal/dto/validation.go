package dto

import (
	"time"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// ClockLayout is the time-of-day form of a reminder time.
const ClockLayout = "15:04"

// RegisterValidations adds the custom tags used by the request DTOs.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("timestamp", validateTimestamp); err != nil {
		return err
	}
	return v.RegisterValidation("clock", validateClock)
}

func validateTimestamp(fl validator.FieldLevel) bool {
	_, err := domain.ParseTimestamp(fl.Field().String())
	return err == nil
}

func validateClock(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if _, err := time.Parse(ClockLayout, value); err == nil {
		return true
	}
	_, err := domain.ParseTimestamp(value)
	return err == nil
}
