package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthType selects between the two credential flows served by the auth endpoint.
type AuthType string

const (
	AuthTypeLogin  AuthType = "LOGIN"
	AuthTypeSignup AuthType = "SIGNUP"
)

func (t AuthType) String() string { return string(t) }

func (t AuthType) IsValid() bool {
	switch t {
	case AuthTypeLogin, AuthTypeSignup:
		return true
	}
	return false
}

// User is a registered account. UserIDHash is derived from ID once at signup
// and is the partition key for every per-user row.
type User struct {
	ID           uuid.UUID
	UserIDHash   string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActiveSession is the single live session of a user. Only the token digest is stored.
type ActiveSession struct {
	UserIDHash string
	TokenHash  string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// IsExpired reports whether the session is past its expiry at now.
// A session expires at exactly ExpiresAt.
func (s ActiveSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// UserDetails holds optional profile data.
type UserDetails struct {
	UserIDHash  string
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	HeightCM    *float64
	WeightKG    *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserProfile is the read model returned by the user details endpoint.
type UserProfile struct {
	Email   string
	Details UserDetails
	Current *CurrentPeriod
}
