// Package cycle implements the per-user period state machine, symptom
// attribution, and the maintenance sweep for forgotten periods.
package cycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/cycletrack-backend/internal/config"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/internal/telemetry"
)

// cycleStore defines the period record / current period repository needed by the service.
type cycleStore interface {
	GetCurrentPeriod(ctx context.Context, userIDHash string) (*domain.CurrentPeriod, error)
	EnsureCurrentPeriod(ctx context.Context, userIDHash string, now time.Time) error
	LockCurrentPeriod(ctx context.Context, userIDHash string) (*domain.CurrentPeriod, error)
	UpsertCurrentPeriod(ctx context.Context, cp *domain.CurrentPeriod) (*domain.CurrentPeriod, error)
	CreatePeriodRecord(ctx context.Context, rec *domain.PeriodRecord) (*domain.PeriodRecord, error)
	UpdatePeriodRecord(ctx context.Context, rec *domain.PeriodRecord) (*domain.PeriodRecord, error)
	GetPeriodRecord(ctx context.Context, userIDHash string, id uuid.UUID) (*domain.PeriodRecord, error)
	ListPeriodRecords(ctx context.Context, userIDHash string, filter domain.PeriodFilter) ([]domain.PeriodRecord, int, error)
	ListStaleOngoing(ctx context.Context, cutoff time.Time, limit int) ([]domain.PeriodRecord, error)
}

// symptomStore defines the symptom repository needed by the service.
type symptomStore interface {
	Create(ctx context.Context, rec *domain.SymptomsRecord) (*domain.SymptomsRecord, error)
	ListByPeriod(ctx context.Context, userIDHash string, periodRecordID uuid.UUID) ([]domain.SymptomsRecord, error)
	List(ctx context.Context, userIDHash string, filter domain.SymptomFilter) ([]domain.SymptomsRecord, int, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the cycle state machine and its queries.
type Service struct {
	log      *slog.Logger
	cycles   cycleStore
	symptoms symptomStore
	tx       txManager
	clock    clockwork.Clock
	metrics  *telemetry.Metrics
	cfg      config.CycleConfig
}

// NewService creates a new cycle service instance.
func NewService(
	logger *slog.Logger,
	cycles cycleStore,
	symptoms symptomStore,
	tx txManager,
	clock clockwork.Clock,
	metrics *telemetry.Metrics,
	cfg config.CycleConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "cycle"),
		cycles:   cycles,
		symptoms: symptoms,
		tx:       tx,
		clock:    clock,
		metrics:  metrics,
		cfg:      cfg,
	}
}
