package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON body into dst. Malformed bodies are reported as a
// domain.ErrBadRequest.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewBadRequest("invalid request body")
	}
	return nil
}

// queryParams collects query parameter parse errors as field errors.
type queryParams struct {
	r    *http.Request
	errs []domain.FieldError
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{r: r}
}

func (q *queryParams) int(name string) int {
	raw := q.r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: name, Message: "must be an integer"})
		return 0
	}
	return v
}

func (q *queryParams) time(name string) *time.Time {
	raw := q.r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: name, Message: "must be an RFC 3339 timestamp"})
		return nil
	}
	v = v.UTC()
	return &v
}

func (q *queryParams) timeRange() domain.TimeRange {
	return domain.TimeRange{From: q.time("from"), To: q.time("to")}
}

func (q *queryParams) err() error {
	if len(q.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(q.errs)
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}
