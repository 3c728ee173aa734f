package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/cycletrack-backend/internal/auth"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/pkg/ctxutil"
)

// Logout deletes the active session of the authenticated user.
// Returns ErrUnauthorized if no user is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userIDHash, ok := ctxutil.UserIDHashFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.Delete(ctx, userIDHash); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id_hash", userIDHash))
	return nil
}

// ValidateToken checks the signature and expiry of token, the matching
// session row when sessions are persistent, and that the user still exists.
// Every failure wraps ErrUnauthorized; the cause is kept for logging.
func (s *Service) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	now := s.clock.Now().UTC()

	userIDHash, err := s.tokens.Verify(token, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	if s.cfg.PersistentSessions {
		sess, err := s.sessions.Get(ctx, userIDHash)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("%w: no active session", domain.ErrUnauthorized)
		case err != nil:
			return nil, fmt.Errorf("auth.ValidateToken get session: %w", err)
		case sess.TokenHash != auth.HashToken(token):
			return nil, fmt.Errorf("%w: session replaced", domain.ErrUnauthorized)
		case sess.IsExpired(now):
			return nil, fmt.Errorf("%w: session expired", domain.ErrUnauthorized)
		}
	}

	user, err := s.users.GetByIDHash(ctx, userIDHash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth.ValidateToken get user: %w", err)
	}

	return user, nil
}

// CleanupExpiredSessions removes every expired session row.
// Returns the number of sessions deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int, error) {
	count, err := s.sessions.DeleteExpired(ctx, s.clock.Now().UTC())
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired sessions", slog.Int("count", count))
	}

	return count, nil
}
