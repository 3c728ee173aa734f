package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers empty, malformed, tampered, wrong-algorithm and wrong-issuer tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when now >= exp.
	ErrExpiredToken = errors.New("token expired")
)

// TokenManager issues and verifies HS256 session tokens. Verification is pure:
// no storage is consulted.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a new token manager.
// secret must be at least 32 characters for HS256 security.
func NewTokenManager(secret string, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// sessionClaims carries the user id hash both as sub and as an explicit claim.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserIDHash string `json:"user_id_hash"`
}

// Issue signs a token for userIDHash valid from now until now+ttl.
func (m *TokenManager) Issue(userIDHash string, now time.Time) (string, time.Time, error) {
	if userIDHash == "" {
		return "", time.Time{}, fmt.Errorf("issue token: empty subject")
	}

	expiresAt := now.Add(m.ttl)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userIDHash,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserIDHash: userIDHash,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, claims.ExpiresAt.Time, nil
}

// Verify checks signature, algorithm, issuer and expiry against now and
// returns the user id hash the token was issued for.
func (m *TokenManager) Verify(tokenString string, now time.Time) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: %v", ErrExpiredToken, err)
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}

	subject := claims.UserIDHash
	if subject == "" {
		subject = claims.Subject
	}
	if subject == "" || (claims.Subject != "" && claims.Subject != subject) {
		return "", fmt.Errorf("%w: missing or inconsistent subject", ErrInvalidToken)
	}

	return subject, nil
}

// TTL returns the configured token lifetime.
func (m *TokenManager) TTL() time.Duration { return m.ttl }

// HashToken computes the SHA-256 hash of a token and returns it as a hex string.
// Active sessions store this digest instead of the token itself.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
