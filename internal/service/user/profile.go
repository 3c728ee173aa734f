package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/pkg/ctxutil"
)

// SaveDetails creates or replaces the authenticated user's details.
func (s *Service) SaveDetails(ctx context.Context, input SaveDetailsInput) (*domain.UserDetails, error) {
	userIDHash, ok := ctxutil.UserIDHashFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now().UTC()
	input.normalize()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	dob := input.DateOfBirth
	if dob != nil {
		d := dob.UTC().Truncate(24 * time.Hour)
		dob = &d
	}

	saved, err := s.users.UpsertDetails(ctx, &domain.UserDetails{
		UserIDHash:  userIDHash,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: dob,
		HeightCM:    input.HeightCM,
		WeightKG:    input.WeightKG,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("user.SaveDetails: %w", err)
	}

	s.log.InfoContext(ctx, "user details saved",
		slog.String("user_id_hash", userIDHash))

	return saved, nil
}

// GetProfile returns email, details and period pointers of the authenticated
// user. Returns ErrNotFound if no details were saved yet.
func (s *Service) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	userIDHash, ok := ctxutil.UserIDHashFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByIDHash(ctx, userIDHash)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	details, err := s.users.GetDetails(ctx, userIDHash)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile details: %w", err)
	}

	profile := &domain.UserProfile{Email: u.Email, Details: *details}

	cp, err := s.periods.GetCurrentPeriod(ctx, userIDHash)
	switch {
	case err == nil:
		profile.Current = cp
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("user.GetProfile current period: %w", err)
	}

	return profile, nil
}
