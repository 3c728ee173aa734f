package cycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/pkg/ctxutil"
)

// ListPeriods returns one page of records overlapping the range, newest first.
func (s *Service) ListPeriods(ctx context.Context, input ListPeriodsInput) (*PeriodPage, error) {
	userIDHash, ok := ctxutil.UserIDHashFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	page, perPage, errs := input.resolve(s.cfg)
	errs = append(errs, validateRange(input.Range)...)
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	records, total, err := s.cycles.ListPeriodRecords(ctx, userIDHash, domain.PeriodFilter{
		Range:  input.Range,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	})
	if err != nil {
		return nil, fmt.Errorf("cycle.ListPeriods: %w", err)
	}

	return &PeriodPage{Records: records, Total: total, Page: page, PerPage: perPage}, nil
}

// GetPeriod returns a record with the symptoms logged during it.
// Records of other users are reported as not found.
func (s *Service) GetPeriod(ctx context.Context, id uuid.UUID) (*domain.PeriodDetails, error) {
	userIDHash, ok := ctxutil.UserIDHashFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.cycles.GetPeriodRecord(ctx, userIDHash, id)
	if err != nil {
		return nil, fmt.Errorf("cycle.GetPeriod: %w", err)
	}

	symptoms, err := s.symptoms.ListByPeriod(ctx, userIDHash, id)
	if err != nil {
		return nil, fmt.Errorf("cycle.GetPeriod symptoms: %w", err)
	}

	return &domain.PeriodDetails{Record: *rec, Symptoms: symptoms}, nil
}

// GetCurrentPeriod returns the user's pointer state. A user who never
// submitted an event has an empty state rather than an error.
func (s *Service) GetCurrentPeriod(ctx context.Context) (*domain.CurrentPeriod, error) {
	userIDHash, ok := ctxutil.UserIDHashFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cp, err := s.cycles.GetCurrentPeriod(ctx, userIDHash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.CurrentPeriod{UserIDHash: userIDHash}, nil
		}
		return nil, fmt.Errorf("cycle.GetCurrentPeriod: %w", err)
	}
	return cp, nil
}
