package cycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

const sweepBatchSize = 100

// SweepStale completes every ONGOING record that started at least
// cfg.StaleAfter before now. Each record is closed in its own transaction;
// a failure is logged and counted and the sweep continues.
func (s *Service) SweepStale(ctx context.Context, now time.Time) (SweepResult, error) {
	now = now.UTC()
	cutoff := now.Add(-s.cfg.StaleAfter)

	var result SweepResult
	failed := make(map[uuid.UUID]struct{})

	for {
		// Failed records stay ONGOING and come back in every listing.
		limit := sweepBatchSize + len(failed)
		batch, err := s.cycles.ListStaleOngoing(ctx, cutoff, limit)
		if err != nil {
			return result, fmt.Errorf("cycle.SweepStale list: %w", err)
		}

		progressed := false
		for _, rec := range batch {
			if _, skip := failed[rec.ID]; skip {
				continue
			}
			if err := ctx.Err(); err != nil {
				return result, fmt.Errorf("cycle.SweepStale: %w", err)
			}

			closed, err := s.closeStale(ctx, rec, now)
			if err != nil {
				failed[rec.ID] = struct{}{}
				result.Failed++
				s.log.ErrorContext(ctx, "sweep: close stale period failed",
					slog.String("period_record_id", rec.ID.String()),
					slog.String("user_id_hash", rec.UserIDHash),
					slog.String("error", err.Error()))
				continue
			}
			progressed = true
			if closed {
				result.Closed++
			}
		}

		if len(batch) < limit || !progressed {
			break
		}
	}

	s.metrics.SweepClosed(ctx, result.Closed)
	s.metrics.SweepFailed(ctx, result.Failed)
	s.log.InfoContext(ctx, "sweep finished",
		slog.Int("closed", result.Closed),
		slog.Int("failed", result.Failed))

	return result, nil
}

// closeStale completes rec with end = now and releases the owner's current
// pointer if it still references rec. A record that was ended concurrently is
// left alone and reported as not closed.
func (s *Service) closeStale(ctx context.Context, rec domain.PeriodRecord, now time.Time) (bool, error) {
	closed := false
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cycles.EnsureCurrentPeriod(txCtx, rec.UserIDHash, now); err != nil {
			return fmt.Errorf("ensure current period: %w", err)
		}
		cp, err := s.cycles.LockCurrentPeriod(txCtx, rec.UserIDHash)
		if err != nil {
			return fmt.Errorf("lock current period: %w", err)
		}

		current, err := s.cycles.GetPeriodRecord(txCtx, rec.UserIDHash, rec.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("reload record: %w", err)
		}
		if current.Status != domain.PeriodStatusOngoing {
			return nil
		}

		end := now
		current.Status = domain.PeriodStatusCompleted
		current.EndAt = &end
		current.UpdatedAt = now
		if _, err := s.cycles.UpdatePeriodRecord(txCtx, current); err != nil {
			return fmt.Errorf("complete record: %w", err)
		}

		if cp.CurrentRecordID != nil && *cp.CurrentRecordID == current.ID {
			cp.LastRecordID = &current.ID
			cp.CurrentRecordID = nil
			cp.UpdatedAt = now
			if _, err := s.cycles.UpsertCurrentPeriod(txCtx, cp); err != nil {
				return fmt.Errorf("release current pointer: %w", err)
			}
		}

		closed = true
		return nil
	})
	return closed, err
}
