package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
	"github.com/heartmarshall/cycletrack-backend/internal/service/cycle"
)

type cycleService interface {
	RecordEvent(ctx context.Context, input cycle.RecordEventInput) (*domain.PeriodRecord, error)
	ListPeriods(ctx context.Context, input cycle.ListPeriodsInput) (*cycle.PeriodPage, error)
	GetPeriod(ctx context.Context, id uuid.UUID) (*domain.PeriodDetails, error)
	GetCurrentPeriod(ctx context.Context) (*domain.CurrentPeriod, error)
	LogSymptom(ctx context.Context, input cycle.LogSymptomInput) (*domain.SymptomsRecord, error)
	ListSymptoms(ctx context.Context, input cycle.ListSymptomsInput) (*cycle.SymptomPage, error)
}

// CycleHandler serves period and symptom endpoints.
type CycleHandler struct {
	svc cycleService
	log *slog.Logger
}

// NewCycleHandler creates a CycleHandler.
func NewCycleHandler(svc cycleService, logger *slog.Logger) *CycleHandler {
	return &CycleHandler{svc: svc, log: logger.With("handler", "cycle")}
}

type recordEventRequest struct {
	Event    string     `json:"event"`
	DateTime *time.Time `json:"date_time"`
}

type logSymptomRequest struct {
	Symptom  string `json:"symptom"`
	Comments string `json:"comments"`
}

type periodRecordResponse struct {
	ID        uuid.UUID  `json:"period_record_id"`
	Status    string     `json:"current_status"`
	StartAt   time.Time  `json:"start_datetime"`
	EndAt     *time.Time `json:"end_datetime"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type symptomResponse struct {
	ID             uuid.UUID  `json:"symptoms_record_id"`
	Symptom        string     `json:"symptom"`
	Comments       string     `json:"comments"`
	Occurrence     string     `json:"occurrence"`
	PeriodRecordID *uuid.UUID `json:"period_record_id"`
	CreatedAt      time.Time  `json:"created_at"`
}

type periodDetailsResponse struct {
	periodRecordResponse
	Symptoms []symptomResponse `json:"symptoms"`
}

type currentPeriodResponse struct {
	State           string     `json:"state"`
	CurrentRecordID *uuid.UUID `json:"current_record_id"`
	LastRecordID    *uuid.UUID `json:"last_record_id"`
}

type pageResponse[T any] struct {
	Items   []T `json:"items"`
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// RecordEvent handles POST /cycles/periods.
func (h *CycleHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req recordEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := cycle.RecordEventInput{Event: domain.PeriodEvent(req.Event)}
	if req.DateTime != nil {
		dt := req.DateTime.UTC()
		input.DateTime = &dt
	}

	rec, err := h.svc.RecordEvent(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	status, message := http.StatusOK, "period ended"
	if input.Event == domain.PeriodEventStart {
		status, message = http.StatusCreated, "period started"
	}
	writeSuccess(w, status, toPeriodRecordResponse(*rec), message)
}

// ListPeriods handles GET /cycles/periods.
func (h *CycleHandler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := cycle.ListPeriodsInput{
		Range:     q.timeRange(),
		PageInput: cycle.PageInput{Page: q.int("page"), PerPage: q.int("per_page")},
	}
	if err := q.err(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListPeriods(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items := make([]periodRecordResponse, len(page.Records))
	for i, rec := range page.Records {
		items[i] = toPeriodRecordResponse(rec)
	}
	writeSuccess(w, http.StatusOK, pageResponse[periodRecordResponse]{
		Items: items, Total: page.Total, Page: page.Page, PerPage: page.PerPage,
	}, "")
}

// GetPeriod handles GET /cycles/periods/{id}.
func (h *CycleHandler) GetPeriod(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	details, err := h.svc.GetPeriod(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := periodDetailsResponse{
		periodRecordResponse: toPeriodRecordResponse(details.Record),
		Symptoms:             make([]symptomResponse, len(details.Symptoms)),
	}
	for i, s := range details.Symptoms {
		resp.Symptoms[i] = toSymptomResponse(s)
	}
	writeSuccess(w, http.StatusOK, resp, "")
}

// GetCurrent handles GET /cycles/current.
func (h *CycleHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	cur, err := h.svc.GetCurrentPeriod(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeSuccess(w, http.StatusOK, toCurrentPeriodResponse(*cur), "")
}

// LogSymptom handles POST /cycles/symptoms.
func (h *CycleHandler) LogSymptom(w http.ResponseWriter, r *http.Request) {
	var req logSymptomRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.LogSymptom(r.Context(), cycle.LogSymptomInput{
		Symptom:  req.Symptom,
		Comments: req.Comments,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusCreated, toSymptomResponse(*rec), "symptom logged")
}

// ListSymptoms handles GET /cycles/symptoms.
func (h *CycleHandler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	input := cycle.ListSymptomsInput{
		Range:     q.timeRange(),
		PageInput: cycle.PageInput{Page: q.int("page"), PerPage: q.int("per_page")},
	}
	if raw := r.URL.Query().Get("occurrence"); raw != "" {
		occ := domain.SymptomOccurrence(raw)
		if !occ.IsValid() {
			respondError(w, r, h.log, domain.NewValidationError("occurrence", "must be DURING_PERIOD or NON_CYCLE_PHASE"))
			return
		}
		input.Occurrence = &occ
	}
	if err := q.err(); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListSymptoms(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items := make([]symptomResponse, len(page.Records))
	for i, rec := range page.Records {
		items[i] = toSymptomResponse(rec)
	}
	writeSuccess(w, http.StatusOK, pageResponse[symptomResponse]{
		Items: items, Total: page.Total, Page: page.Page, PerPage: page.PerPage,
	}, "")
}

func toPeriodRecordResponse(r domain.PeriodRecord) periodRecordResponse {
	return periodRecordResponse{
		ID:        r.ID,
		Status:    r.Status.String(),
		StartAt:   r.StartAt,
		EndAt:     r.EndAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toSymptomResponse(s domain.SymptomsRecord) symptomResponse {
	return symptomResponse{
		ID:             s.ID,
		Symptom:        s.Symptom,
		Comments:       s.Comments,
		Occurrence:     s.Occurrence.String(),
		PeriodRecordID: s.PeriodRecordID,
		CreatedAt:      s.CreatedAt,
	}
}

func toCurrentPeriodResponse(c domain.CurrentPeriod) currentPeriodResponse {
	return currentPeriodResponse{
		State:           string(c.State()),
		CurrentRecordID: c.CurrentRecordID,
		LastRecordID:    c.LastRecordID,
	}
}
