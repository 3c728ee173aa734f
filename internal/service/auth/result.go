package auth

import (
	"time"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

// AuthResult is returned by Signup and Login.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}
