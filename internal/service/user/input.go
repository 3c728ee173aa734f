package user

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

const (
	maxNameLength = 100
	maxMeasure    = 999.99
)

// SaveDetailsInput holds the full set of profile details. Saving replaces
// whatever was stored before.
type SaveDetailsInput struct {
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	HeightCM    *float64
	WeightKG    *float64
}

func (i *SaveDetailsInput) normalize() {
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
}

// Validate validates the details input against the current time.
func (i SaveDetailsInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	errs = appendName(errs, "first_name", i.FirstName)
	errs = appendName(errs, "last_name", i.LastName)

	if i.DateOfBirth != nil && i.DateOfBirth.After(now) {
		errs = append(errs, domain.FieldError{Field: "dob", Message: "must not be in the future"})
	}
	errs = appendMeasure(errs, "height", i.HeightCM)
	errs = appendMeasure(errs, "weight", i.WeightKG)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendName(errs []domain.FieldError, field, v string) []domain.FieldError {
	if v == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(v) > maxNameLength {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func appendMeasure(errs []domain.FieldError, field string, v *float64) []domain.FieldError {
	if v != nil && (*v <= 0 || *v > maxMeasure) {
		return append(errs, domain.FieldError{Field: field, Message: "must be between 0 and 999.99"})
	}
	return errs
}
