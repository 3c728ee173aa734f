package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cycletrack-backend/internal/auth"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/internal/telemetry"
)

// Authenticate dispatches to Signup or Login by input.AuthType.
func (s *Service) Authenticate(ctx context.Context, input AuthenticateInput) (*AuthResult, error) {
	input.normalize()
	if err := input.Validate(s.cfg.PasswordMinLength); err != nil {
		return nil, err
	}

	switch input.AuthType {
	case domain.AuthTypeSignup:
		return s.signup(ctx, input)
	case domain.AuthTypeLogin:
		return s.login(ctx, input)
	}
	return nil, domain.NewValidationError("auth_type", "must be LOGIN or SIGNUP")
}

// Signup creates a user and opens a session for it.
// Returns a Conflict StateError if the email is already registered.
func (s *Service) Signup(ctx context.Context, email, password string) (*AuthResult, error) {
	return s.Authenticate(ctx, AuthenticateInput{AuthType: domain.AuthTypeSignup, Email: email, Password: password})
}

// Login verifies credentials and replaces the user's session.
// Unknown email and wrong password are both ErrUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	return s.Authenticate(ctx, AuthenticateInput{AuthType: domain.AuthTypeLogin, Email: email, Password: password})
}

func (s *Service) signup(ctx context.Context, input AuthenticateInput) (*AuthResult, error) {
	digest := s.hasher.Hash(input.Password)

	var result *AuthResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.clock.Now().UTC()
		id := uuid.New()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           id,
			UserIDHash:   auth.HashUserID(id, s.cfg.UserIDSalt),
			Email:        input.Email,
			PasswordHash: digest,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		result, err = s.issueSession(txCtx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Signup: %w", domain.NewConflict("email already registered"))
		}
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	s.metrics.Login(ctx, telemetry.SignupCreated)
	s.log.InfoContext(ctx, "user signed up", slog.String("user_id_hash", result.User.UserIDHash))

	return result, nil
}

func (s *Service) login(ctx context.Context, input AuthenticateInput) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.metrics.Login(ctx, telemetry.LoginRejected)
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.metrics.Login(ctx, telemetry.LoginRejected)
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.metrics.Login(ctx, telemetry.LoginSucceeded)
	s.log.InfoContext(ctx, "user logged in", slog.String("user_id_hash", user.UserIDHash))

	return result, nil
}
