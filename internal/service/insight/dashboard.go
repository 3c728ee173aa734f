package insight

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/pkg/ctxutil"
)

// Dashboard composes the phase, averages and prediction for the user. When a
// prediction cannot be made the dashboard still renders, with PredictionNote
// explaining why.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	userIDHash, ok := ctxutil.UserIDHashFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	now := s.clock.Now().UTC()

	cp, err := s.periods.GetCurrentPeriod(ctx, userIDHash)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		cp = &domain.CurrentPeriod{UserIDHash: userIDHash}
	case err != nil:
		return nil, fmt.Errorf("insight.Dashboard current: %w", err)
	}

	records, err := s.periods.QueryPeriodRecords(ctx, userIDHash, domain.TimeRange{})
	if err != nil {
		return nil, fmt.Errorf("insight.Dashboard records: %w", err)
	}

	var last *domain.PeriodRecord
	if cp.LastRecordID != nil {
		last, err = s.findRecord(ctx, userIDHash, records, *cp.LastRecordID)
		if err != nil {
			return nil, fmt.Errorf("insight.Dashboard last: %w", err)
		}
	}

	phase, cycleDays := CurrentPhase(*cp, last, now)
	avgCycle := AverageCycleLength(records)

	d := &domain.Dashboard{
		Phase:               phase,
		PhaseDescription:    s.catalog.Describe(phase),
		CycleDay:            cycleDays,
		AverageCycleLength:  avgCycle,
		AveragePeriodLength: AveragePeriodLength(records),
		Current:             *cp,
	}
	if cycleDays != nil {
		d.DaysUntilNextPhase = DaysUntilNextPhase(phase, *cycleDays, avgCycle)
	}
	if cp.CurrentRecordID != nil {
		cur, err := s.findRecord(ctx, userIDHash, records, *cp.CurrentRecordID)
		if err != nil {
			return nil, fmt.Errorf("insight.Dashboard current record: %w", err)
		}
		day := max(0, domain.WholeDays(now.Sub(cur.StartAt)))
		d.CycleDay = &day
	}

	p, err := s.predict(ctx, userIDHash, records, now)
	if err != nil {
		var se *domain.StateError
		if !errors.As(err, &se) || !errors.Is(err, domain.ErrInsufficientData) {
			return nil, fmt.Errorf("insight.Dashboard predict: %w", err)
		}
		d.PredictionNote = se.Message
	} else {
		d.Prediction = p
	}

	return d, nil
}

// Stats returns cycle-length statistics over the user's completed periods.
func (s *Service) Stats(ctx context.Context) (*domain.CycleStatistics, error) {
	userIDHash, ok := ctxutil.UserIDHashFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.periods.QueryPeriodRecords(ctx, userIDHash, domain.TimeRange{})
	if err != nil {
		return nil, fmt.Errorf("insight.Stats: %w", err)
	}
	if len(completedOnly(records)) < 2 {
		return nil, domain.NewInsufficientData("at least two completed periods are required")
	}

	stats := CycleStatistics(records, s.cfg.WindowDays)
	return &stats, nil
}

func (s *Service) findRecord(ctx context.Context, userIDHash string, records []domain.PeriodRecord, id uuid.UUID) (*domain.PeriodRecord, error) {
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return s.periods.GetPeriodRecord(ctx, userIDHash, id)
}
