package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

type insightService interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	Stats(ctx context.Context) (*domain.CycleStatistics, error)
	RefreshPrediction(ctx context.Context) (*domain.CyclePrediction, error)
	GetPrediction(ctx context.Context) (*domain.CyclePrediction, error)
}

// InsightHandler serves dashboard, statistics and prediction endpoints.
type InsightHandler struct {
	svc insightService
	log *slog.Logger
}

// NewInsightHandler creates an InsightHandler.
func NewInsightHandler(svc insightService, logger *slog.Logger) *InsightHandler {
	return &InsightHandler{svc: svc, log: logger.With("handler", "insight")}
}

type predictionResponse struct {
	CycleLength         int       `json:"cycle_length"`
	PeriodDuration      int       `json:"period_duration"`
	NextPeriodStart     time.Time `json:"next_period_start"`
	NextPeriodEnd       time.Time `json:"next_period_end"`
	DaysUntilNextPeriod int       `json:"days_until_next_period"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type dashboardResponse struct {
	Phase               string                `json:"phase"`
	PhaseDescription    string                `json:"phase_description"`
	CycleDay            *int                  `json:"cycle_day"`
	DaysUntilNextPhase  *int                  `json:"days_until_next_phase"`
	AverageCycleLength  *int                  `json:"average_cycle_length"`
	AveragePeriodLength *int                  `json:"average_period_length"`
	Current             currentPeriodResponse `json:"current"`
	Prediction          *predictionResponse   `json:"prediction"`
	PredictionNote      string                `json:"prediction_note,omitempty"`
}

type statisticsResponse struct {
	SampleSize          int        `json:"sample_size"`
	MeanCycleLength     float64    `json:"mean_cycle_length"`
	StdDevCycleLength   float64    `json:"std_dev_cycle_length"`
	MedianCycleLength   float64    `json:"median_cycle_length"`
	NextPeriodStart     *time.Time `json:"next_period_start"`
	ProbabilityInWindow *float64   `json:"probability_in_window"`
	WindowDays          int        `json:"window_days"`
}

// Dashboard handles GET /dashboard.
func (h *InsightHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := dashboardResponse{
		Phase:               d.Phase.String(),
		PhaseDescription:    d.PhaseDescription,
		CycleDay:            d.CycleDay,
		DaysUntilNextPhase:  d.DaysUntilNextPhase,
		AverageCycleLength:  d.AverageCycleLength,
		AveragePeriodLength: d.AveragePeriodLength,
		Current:             toCurrentPeriodResponse(d.Current),
		PredictionNote:      d.PredictionNote,
	}
	if d.Prediction != nil {
		p := toPredictionResponse(*d.Prediction)
		resp.Prediction = &p
	}
	writeSuccess(w, http.StatusOK, resp, "")
}

// CycleStats handles GET /predictions/cycle-stats.
func (h *InsightHandler) CycleStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, statisticsResponse{
		SampleSize:          st.SampleSize,
		MeanCycleLength:     st.MeanCycleLength,
		StdDevCycleLength:   st.StdDevCycleLength,
		MedianCycleLength:   st.MedianCycleLength,
		NextPeriodStart:     st.NextPeriodStart,
		ProbabilityInWindow: st.ProbabilityInWindow,
		WindowDays:          st.WindowDays,
	}, "")
}

// RefreshPrediction handles POST /predictions/next-period.
func (h *InsightHandler) RefreshPrediction(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.RefreshPrediction(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeSuccess(w, http.StatusOK, toPredictionResponse(*p), "prediction updated")
}

// GetPrediction handles GET /predictions/next-period.
func (h *InsightHandler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPrediction(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeSuccess(w, http.StatusOK, toPredictionResponse(*p), "")
}

func toPredictionResponse(p domain.CyclePrediction) predictionResponse {
	return predictionResponse{
		CycleLength:         p.CycleLength,
		PeriodDuration:      p.PeriodDuration,
		NextPeriodStart:     p.NextPeriodStart,
		NextPeriodEnd:       p.NextPeriodEnd,
		DaysUntilNextPeriod: p.DaysUntilNextPeriod,
		UpdatedAt:           p.UpdatedAt,
	}
}
