package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/cycletrack-backend/internal/auth"
	"github.com/heartmarshall/cycletrack-backend/internal/config"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/internal/telemetry"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByIDHash(ctx context.Context, userIDHash string) (*domain.User, error)
}

// sessionRepo defines the active session repository interface needed by auth service.
type sessionRepo interface {
	Upsert(ctx context.Context, s *domain.ActiveSession) (*domain.ActiveSession, error)
	Get(ctx context.Context, userIDHash string) (*domain.ActiveSession, error)
	Delete(ctx context.Context, userIDHash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// tokenManager issues and verifies signed session tokens.
type tokenManager interface {
	Issue(userIDHash string, now time.Time) (string, time.Time, error)
	Verify(token string, now time.Time) (string, error)
}

// passwordHasher produces and checks password digests.
type passwordHasher interface {
	Hash(plaintext string) string
	Verify(plaintext, digest string) bool
}

// Service implements signup, login, logout and token validation.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionRepo
	tx       txManager
	tokens   tokenManager
	hasher   passwordHasher
	clock    clockwork.Clock
	metrics  *telemetry.Metrics
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	tx txManager,
	tokens tokenManager,
	hasher passwordHasher,
	clock clockwork.Clock,
	metrics *telemetry.Metrics,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		tx:       tx,
		tokens:   tokens,
		hasher:   hasher,
		clock:    clock,
		metrics:  metrics,
		cfg:      cfg,
	}
}

// issueSession signs a token for user and, with persistent sessions enabled,
// replaces the user's active session row.
func (s *Service) issueSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	now := s.clock.Now().UTC()

	token, expiresAt, err := s.tokens.Issue(user.UserIDHash, now)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	if s.cfg.PersistentSessions {
		_, err := s.sessions.Upsert(ctx, &domain.ActiveSession{
			UserIDHash: user.UserIDHash,
			TokenHash:  auth.HashToken(token),
			CreatedAt:  now,
			ExpiresAt:  expiresAt,
		})
		if err != nil {
			return nil, fmt.Errorf("store session: %w", err)
		}
	}

	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
