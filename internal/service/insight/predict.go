package insight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/pkg/ctxutil"
)

// ErrPredictorUnavailable is reported when the predictor fails or times out.
// It unwraps to domain.ErrInsufficientData.
var ErrPredictorUnavailable = domain.NewInsufficientData("predictor unavailable")

// PredictNextPeriod computes a fresh prediction without storing it.
func (s *Service) PredictNextPeriod(ctx context.Context) (*domain.CyclePrediction, error) {
	userIDHash, ok := ctxutil.UserIDHashFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.periods.QueryPeriodRecords(ctx, userIDHash, domain.TimeRange{})
	if err != nil {
		return nil, fmt.Errorf("insight.PredictNextPeriod: %w", err)
	}

	p, err := s.predict(ctx, userIDHash, records, s.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("insight.PredictNextPeriod: %w", err)
	}
	return p, nil
}

// RefreshPrediction recomputes the prediction and overwrites the cached
// snapshot. A predictor outage is reported as domain.ErrServiceUnavailable.
func (s *Service) RefreshPrediction(ctx context.Context) (*domain.CyclePrediction, error) {
	p, err := s.PredictNextPeriod(ctx)
	if err != nil {
		if errors.Is(err, ErrPredictorUnavailable) {
			return nil, fmt.Errorf("insight.RefreshPrediction: %w: %w", domain.ErrServiceUnavailable, err)
		}
		return nil, err
	}

	saved, err := s.predictions.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insight.RefreshPrediction: %w", err)
	}

	s.log.InfoContext(ctx, "prediction refreshed",
		slog.String("user_id_hash", saved.UserIDHash),
		slog.Time("next_period_start", saved.NextPeriodStart))

	return saved, nil
}

// GetPrediction returns the cached snapshot, or domain.ErrNotFound if the
// user never refreshed it.
func (s *Service) GetPrediction(ctx context.Context) (*domain.CyclePrediction, error) {
	userIDHash, ok := ctxutil.UserIDHashFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.predictions.Get(ctx, userIDHash)
	if err != nil {
		return nil, fmt.Errorf("insight.GetPrediction: %w", err)
	}
	return p, nil
}

// predict feeds completed records to the predictor and clamps its answer.
// records may be in any order.
func (s *Service) predict(ctx context.Context, userIDHash string, records []domain.PeriodRecord, now time.Time) (*domain.CyclePrediction, error) {
	history := completedSpans(records)
	if len(history) < s.cfg.MinRecords {
		return nil, domain.NewInsufficientData(
			fmt.Sprintf("at least %d completed periods are required", s.cfg.MinRecords))
	}

	pctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	res, err := s.predictor.Predict(pctx, history)
	if err != nil {
		s.log.WarnContext(ctx, "predictor failed",
			slog.String("user_id_hash", userIDHash),
			slog.Int("history", len(history)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrPredictorUnavailable, err)
	}

	res = s.clamp(res, history[len(history)-1].Start)

	return &domain.CyclePrediction{
		UserIDHash:          userIDHash,
		CycleLength:         res.CycleLength,
		PeriodDuration:      res.PeriodDuration,
		NextPeriodStart:     res.NextPeriodStart.UTC(),
		NextPeriodEnd:       res.NextPeriodEnd.UTC(),
		DaysUntilNextPeriod: max(0, domain.WholeDays(res.NextPeriodStart.Sub(now))),
		UpdatedAt:           now,
	}, nil
}

// clamp bounds cycle length and duration. If either moves, the dates are
// recomputed from lastStart.
func (s *Service) clamp(res domain.PredictionResult, lastStart time.Time) domain.PredictionResult {
	cycle := min(max(res.CycleLength, s.cfg.MinCycleLength), s.cfg.MaxCycleLength)
	duration := min(max(res.PeriodDuration, s.cfg.MinPeriodDuration), s.cfg.MaxPeriodDuration)
	if cycle == res.CycleLength && duration == res.PeriodDuration {
		return res
	}

	next := lastStart.AddDate(0, 0, cycle)
	return domain.PredictionResult{
		CycleLength:     cycle,
		PeriodDuration:  duration,
		NextPeriodStart: next,
		NextPeriodEnd:   next.AddDate(0, 0, duration),
	}
}

// completedSpans returns completed records as spans, oldest first.
func completedSpans(records []domain.PeriodRecord) []domain.PeriodSpan {
	sorted := byStartDesc(records)
	spans := make([]domain.PeriodSpan, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		r := sorted[i]
		if r.Status == domain.PeriodStatusCompleted && r.EndAt != nil {
			spans = append(spans, domain.PeriodSpan{Start: r.StartAt, End: *r.EndAt})
		}
	}
	return spans
}
