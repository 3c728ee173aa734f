package cycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/pkg/ctxutil"
)

// LogSymptom records a symptom, attributing it to the ongoing period if there
// is one. Attribution is fixed at creation; later events do not change it.
func (s *Service) LogSymptom(ctx context.Context, input LogSymptomInput) (*domain.SymptomsRecord, error) {
	userIDHash, ok := ctxutil.UserIDHashFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()

	var created *domain.SymptomsRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cycles.EnsureCurrentPeriod(txCtx, userIDHash, now); err != nil {
			return fmt.Errorf("ensure current period: %w", err)
		}
		cp, err := s.cycles.GetCurrentPeriod(txCtx, userIDHash)
		if err != nil {
			return fmt.Errorf("get current period: %w", err)
		}

		rec := &domain.SymptomsRecord{
			ID:         uuid.New(),
			UserIDHash: userIDHash,
			Symptom:    input.Symptom,
			Comments:   input.Comments,
			Occurrence: domain.OccurrenceNonCyclePhase,
			CreatedAt:  now,
		}
		if cp.CurrentRecordID != nil {
			id := *cp.CurrentRecordID
			rec.Occurrence = domain.OccurrenceDuringPeriod
			rec.PeriodRecordID = &id
		}

		created, err = s.symptoms.Create(txCtx, rec)
		if err != nil {
			return fmt.Errorf("create symptom: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cycle.LogSymptom: %w", err)
	}

	s.metrics.SymptomLogged(ctx, created.Occurrence.String())
	s.log.InfoContext(ctx, "symptom logged",
		slog.String("user_id_hash", userIDHash),
		slog.String("occurrence", created.Occurrence.String()))

	return created, nil
}

// ListSymptoms returns one page of the user's symptoms, newest first.
func (s *Service) ListSymptoms(ctx context.Context, input ListSymptomsInput) (*SymptomPage, error) {
	userIDHash, ok := ctxutil.UserIDHashFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	page, perPage, errs := input.resolve(s.cfg)
	errs = append(errs, validateRange(input.Range)...)
	if input.Occurrence != nil && !input.Occurrence.IsValid() {
		errs = append(errs, domain.FieldError{Field: "occurrence", Message: "must be DURING_PERIOD or NON_CYCLE_PHASE"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	records, total, err := s.symptoms.List(ctx, userIDHash, domain.SymptomFilter{
		Range:      input.Range,
		Occurrence: input.Occurrence,
		Limit:      perPage,
		Offset:     (page - 1) * perPage,
	})
	if err != nil {
		return nil, fmt.Errorf("cycle.ListSymptoms: %w", err)
	}

	return &SymptomPage{Records: records, Total: total, Page: page, PerPage: perPage}, nil
}
