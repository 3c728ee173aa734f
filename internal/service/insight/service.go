// Package insight derives cycle statistics, phase and next-period
// predictions from a user's period history. It never writes cycle state.
package insight

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/cycletrack-backend/internal/config"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

type periodReader interface {
	GetCurrentPeriod(ctx context.Context, userIDHash string) (*domain.CurrentPeriod, error)
	GetPeriodRecord(ctx context.Context, userIDHash string, id uuid.UUID) (*domain.PeriodRecord, error)
	QueryPeriodRecords(ctx context.Context, userIDHash string, rng domain.TimeRange) ([]domain.PeriodRecord, error)
}

type predictionStore interface {
	Upsert(ctx context.Context, p *domain.CyclePrediction) (*domain.CyclePrediction, error)
	Get(ctx context.Context, userIDHash string) (*domain.CyclePrediction, error)
}

// predictor is the next-period model. History is ordered by start ascending.
type predictor interface {
	Predict(ctx context.Context, history []domain.PeriodSpan) (domain.PredictionResult, error)
}

type phaseCatalog interface {
	Describe(phase domain.Phase) string
}

// Service composes the statistics engine with persistence and the predictor.
type Service struct {
	log         *slog.Logger
	periods     periodReader
	predictions predictionStore
	predictor   predictor
	catalog     phaseCatalog
	clock       clockwork.Clock
	cfg         config.PredictorConfig
}

// NewService creates a new insight service.
func NewService(
	logger *slog.Logger,
	periods periodReader,
	predictions predictionStore,
	predictor predictor,
	catalog phaseCatalog,
	clock clockwork.Clock,
	cfg config.PredictorConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "insight"),
		periods:     periods,
		predictions: predictions,
		predictor:   predictor,
		catalog:     catalog,
		clock:       clock,
		cfg:         cfg,
	}
}
