package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/internal/service/user"
)

type userService interface {
	SaveDetails(ctx context.Context, input user.SaveDetailsInput) (*domain.UserDetails, error)
	GetProfile(ctx context.Context) (*domain.UserProfile, error)
}

// UserHandler serves profile endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

// dateLayout is the wire format of date_of_birth.
const dateLayout = time.DateOnly

type detailsRequest struct {
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	DateOfBirth *string  `json:"date_of_birth"`
	HeightCM    *float64 `json:"height_cm"`
	WeightKG    *float64 `json:"weight_kg"`
}

type detailsResponse struct {
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth *string   `json:"date_of_birth"`
	HeightCM    *float64  `json:"height_cm"`
	WeightKG    *float64  `json:"weight_kg"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type profileResponse struct {
	Email   string                 `json:"email"`
	Details detailsResponse        `json:"details"`
	Current *currentPeriodResponse `json:"current_period"`
}

// SaveDetails handles PUT /users/details.
func (h *UserHandler) SaveDetails(w http.ResponseWriter, r *http.Request) {
	var req detailsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := user.SaveDetailsInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		HeightCM:  req.HeightCM,
		WeightKG:  req.WeightKG,
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("date_of_birth", "must be YYYY-MM-DD"))
			return
		}
		input.DateOfBirth = &dob
	}

	d, err := h.svc.SaveDetails(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeSuccess(w, http.StatusOK, toDetailsResponse(*d), "details saved")
}

// GetProfile handles GET /users/details.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProfile(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := profileResponse{Email: p.Email, Details: toDetailsResponse(p.Details)}
	if p.Current != nil {
		c := toCurrentPeriodResponse(*p.Current)
		resp.Current = &c
	}
	writeSuccess(w, http.StatusOK, resp, "")
}

func toDetailsResponse(d domain.UserDetails) detailsResponse {
	resp := detailsResponse{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		HeightCM:  d.HeightCM,
		WeightKG:  d.WeightKG,
		UpdatedAt: d.UpdatedAt,
	}
	if d.DateOfBirth != nil {
		s := d.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &s
	}
	return resp
}
