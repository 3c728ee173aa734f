package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/internal/service/auth"
	"github.com/heartmarshall/cycletrack-backend/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Authenticate(ctx context.Context, input auth.AuthenticateInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
	ValidateToken(ctx context.Context, token string) (*domain.User, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

// authTypeParam accepts "LOGIN"/"SIGNUP" or the legacy numeric codes 1/2.
type authTypeParam domain.AuthType

func (p *authTypeParam) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "1":
		*p = authTypeParam(domain.AuthTypeLogin)
		return nil
	case "2":
		*p = authTypeParam(domain.AuthTypeSignup)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*p = authTypeParam(strings.ToUpper(strings.TrimSpace(s)))
	return nil
}

type authRequest struct {
	AuthType authTypeParam `json:"auth_type"`
	Email    string        `json:"email"`
	Password string        `json:"password"`
}

type authResponse struct {
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expires_at"`
	UserIDHash string    `json:"user_id_hash"`
}

// Authenticate handles POST /auth/. Signup answers 201, login 200.
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := auth.AuthenticateInput{
		AuthType: domain.AuthType(req.AuthType),
		Email:    req.Email,
		Password: req.Password,
	}
	result, err := h.svc.Authenticate(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	status, message := http.StatusOK, "logged in"
	if input.AuthType == domain.AuthTypeSignup {
		status, message = http.StatusCreated, "account created"
	}
	writeSuccess(w, status, authResponse{
		Token:      result.Token,
		ExpiresAt:  result.ExpiresAt,
		UserIDHash: result.User.UserIDHash,
	}, message)
}

// Logout handles POST /auth/logout. The route sits under the public auth
// prefix, so the bearer token is validated here.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := extractBearer(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
		return
	}

	user, err := h.svc.ValidateToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
			return
		}
		respondError(w, r, h.log, err)
		return
	}

	ctx := ctxutil.WithUserIDHash(r.Context(), user.UserIDHash)
	if err := h.svc.Logout(ctx); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, struct{}{}, "logged out")
}

func extractBearer(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
