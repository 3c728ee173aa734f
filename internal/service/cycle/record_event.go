package cycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/pkg/ctxutil"
)

// RecordEvent applies a START or END event for the authenticated user.
// The pointer row is locked for the whole transaction, so concurrent events
// for one user are serialized.
func (s *Service) RecordEvent(ctx context.Context, input RecordEventInput) (*domain.PeriodRecord, error) {
	userIDHash, ok := ctxutil.UserIDHashFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now().UTC()
	if err := input.Validate(now, s.cfg.MaxFutureSkew); err != nil {
		return nil, err
	}

	at := now
	if input.DateTime != nil {
		at = input.DateTime.UTC()
	}

	var record *domain.PeriodRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cycles.EnsureCurrentPeriod(txCtx, userIDHash, now); err != nil {
			return fmt.Errorf("ensure current period: %w", err)
		}
		cp, err := s.cycles.LockCurrentPeriod(txCtx, userIDHash)
		if err != nil {
			return fmt.Errorf("lock current period: %w", err)
		}

		if _, err := domain.NextPeriodState(cp.State(), input.Event); err != nil {
			return err
		}

		switch input.Event {
		case domain.PeriodEventStart:
			record, err = s.startPeriod(txCtx, cp, at, now)
		case domain.PeriodEventEnd:
			record, err = s.endPeriod(txCtx, cp, at, now)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("cycle.RecordEvent: %w", err)
	}

	s.metrics.PeriodTransition(ctx, input.Event.String())
	s.log.InfoContext(ctx, "period event recorded",
		slog.String("user_id_hash", userIDHash),
		slog.String("event", input.Event.String()),
		slog.String("period_record_id", record.ID.String()))

	return record, nil
}

func (s *Service) startPeriod(ctx context.Context, cp *domain.CurrentPeriod, start, now time.Time) (*domain.PeriodRecord, error) {
	// History stays non-overlapping so the last pointer is always the latest record.
	if cp.LastRecordID != nil {
		last, err := s.cycles.GetPeriodRecord(ctx, cp.UserIDHash, *cp.LastRecordID)
		if err != nil {
			return nil, fmt.Errorf("get last record: %w", err)
		}
		if last.EndAt != nil && start.Before(*last.EndAt) {
			return nil, domain.NewBadRequest("start datetime is before the end of the previous period")
		}
	}

	rec, err := s.cycles.CreatePeriodRecord(ctx, &domain.PeriodRecord{
		ID:         uuid.New(),
		UserIDHash: cp.UserIDHash,
		Status:     domain.PeriodStatusOngoing,
		StartAt:    start,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		// The partial unique index caught a START that raced past the lock.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewConflict("period already started")
		}
		return nil, fmt.Errorf("create period record: %w", err)
	}

	cp.CurrentRecordID = &rec.ID
	cp.UpdatedAt = now
	if _, err := s.cycles.UpsertCurrentPeriod(ctx, cp); err != nil {
		return nil, fmt.Errorf("set current period: %w", err)
	}
	return rec, nil
}

func (s *Service) endPeriod(ctx context.Context, cp *domain.CurrentPeriod, end, now time.Time) (*domain.PeriodRecord, error) {
	rec, err := s.cycles.GetPeriodRecord(ctx, cp.UserIDHash, *cp.CurrentRecordID)
	if err != nil {
		return nil, fmt.Errorf("get current record: %w", err)
	}
	if end.Before(rec.StartAt) {
		return nil, domain.NewBadRequest("end datetime is before period start")
	}

	rec.Status = domain.PeriodStatusCompleted
	rec.EndAt = &end
	rec.UpdatedAt = now
	updated, err := s.cycles.UpdatePeriodRecord(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("complete period record: %w", err)
	}

	cp.LastRecordID = &updated.ID
	cp.CurrentRecordID = nil
	cp.UpdatedAt = now
	if _, err := s.cycles.UpsertCurrentPeriod(ctx, cp); err != nil {
		return nil, fmt.Errorf("clear current period: %w", err)
	}
	return updated, nil
}
