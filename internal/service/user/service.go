package user

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByIDHash(ctx context.Context, userIDHash string) (*domain.User, error)
	UpsertDetails(ctx context.Context, d *domain.UserDetails) (*domain.UserDetails, error)
	GetDetails(ctx context.Context, userIDHash string) (*domain.UserDetails, error)
}

// periodReader exposes the user's current/last period pointers.
type periodReader interface {
	GetCurrentPeriod(ctx context.Context, userIDHash string) (*domain.CurrentPeriod, error)
}

// Service implements user details operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	periods periodReader
	clock   clockwork.Clock
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	periods periodReader,
	clock clockwork.Clock,
) *Service {
	return &Service{
		log:     logger.With("service", "user"),
		users:   users,
		periods: periods,
		clock:   clock,
	}
}
