package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

const (
	maxEmailLength    = 254
	maxPasswordLength = 128
)

// AuthenticateInput holds parameters for the combined login/signup endpoint.
type AuthenticateInput struct {
	AuthType domain.AuthType
	Email    string
	Password string
}

func (i *AuthenticateInput) normalize() {
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
}

// Validate validates the input. Password length bounds apply to signup only,
// so that accounts created under older rules can still log in.
func (i AuthenticateInput) Validate(minPasswordLength int) error {
	var errs []domain.FieldError

	if !i.AuthType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "auth_type", Message: "must be LOGIN or SIGNUP"})
	}

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > maxEmailLength {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if addr, err := mail.ParseAddress(i.Email); err != nil || addr.Address != i.Email {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	case i.AuthType == domain.AuthTypeSignup && len(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
