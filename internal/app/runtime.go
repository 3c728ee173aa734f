package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/cycletrack-backend/internal/adapter/postgres"
	cyclerepo "github.com/heartmarshall/cycletrack-backend/internal/adapter/postgres/cycle"
	predictionrepo "github.com/heartmarshall/cycletrack-backend/internal/adapter/postgres/prediction"
	sessionrepo "github.com/heartmarshall/cycletrack-backend/internal/adapter/postgres/session"
	symptomrepo "github.com/heartmarshall/cycletrack-backend/internal/adapter/postgres/symptom"
	userrepo "github.com/heartmarshall/cycletrack-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/cycletrack-backend/internal/adapter/predictor/modelhttp"
	"github.com/heartmarshall/cycletrack-backend/internal/adapter/predictor/statistical"
	"github.com/heartmarshall/cycletrack-backend/internal/auth"
	"github.com/heartmarshall/cycletrack-backend/internal/config"
	"github.com/heartmarshall/cycletrack-backend/internal/content"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	authsvc "github.com/heartmarshall/cycletrack-backend/internal/service/auth"
	cyclesvc "github.com/heartmarshall/cycletrack-backend/internal/service/cycle"
	insightsvc "github.com/heartmarshall/cycletrack-backend/internal/service/insight"
	usersvc "github.com/heartmarshall/cycletrack-backend/internal/service/user"
	"github.com/heartmarshall/cycletrack-backend/internal/telemetry"
)

// Services are the application services shared by every binary.
type Services struct {
	Auth    *authsvc.Service
	Cycle   *cyclesvc.Service
	Insight *insightsvc.Service
	User    *usersvc.Service
}

// Runtime owns the database pool and the services built on it.
type Runtime struct {
	Pool     *pgxpool.Pool
	Services Services
	Clock    clockwork.Clock
}

// Bootstrap connects to PostgreSQL and wires repositories into services.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) (*Runtime, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app.Bootstrap: %w", err)
	}

	svcs, err := NewServices(pool, cfg, logger, clock)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("app.Bootstrap: %w", err)
	}

	return &Runtime{Pool: pool, Services: *svcs, Clock: clock}, nil
}

// Close releases the pool.
func (r *Runtime) Close() {
	r.Pool.Close()
}

// NewServices builds every service on top of pool.
func NewServices(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) (*Services, error) {
	metrics, err := telemetry.NewGlobalMetrics()
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}

	catalog, err := content.Load()
	if err != nil {
		return nil, err
	}

	tx := postgres.NewTxManager(pool)
	cycles := cyclerepo.New(pool)
	users := userrepo.New(pool)

	return &Services{
		Auth: authsvc.NewService(
			logger,
			users,
			sessionrepo.New(pool),
			tx,
			auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL),
			auth.NewPasswordHasher(cfg.Auth.PasswordSalt),
			clock,
			metrics,
			cfg.Auth,
		),
		Cycle: cyclesvc.NewService(
			logger,
			cycles,
			symptomrepo.New(pool),
			tx,
			clock,
			metrics,
			cfg.Cycle,
		),
		Insight: insightsvc.NewService(
			logger,
			cycles,
			predictionrepo.New(pool),
			newPredictor(cfg.Predictor, logger),
			catalog,
			clock,
			cfg.Predictor,
		),
		User: usersvc.NewService(logger, users, cycles, clock),
	}, nil
}

type predictor interface {
	Predict(ctx context.Context, history []domain.PeriodSpan) (domain.PredictionResult, error)
}

// newPredictor picks the predictor named by cfg.Kind. Kind is validated on load.
func newPredictor(cfg config.PredictorConfig, logger *slog.Logger) predictor {
	if strings.EqualFold(cfg.Kind, "http") {
		logger.Info("using model endpoint predictor", slog.String("url", cfg.URL))
		return modelhttp.NewClient(cfg.URL, cfg.Timeout, logger)
	}
	return statistical.New()
}
