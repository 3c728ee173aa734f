package cycle

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/cycletrack-backend/internal/config"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

const (
	maxSymptomLength  = 200
	maxCommentsLength = 500
)

// RecordEventInput is a START or END submission. DateTime defaults to now.
type RecordEventInput struct {
	Event    domain.PeriodEvent
	DateTime *time.Time
}

// Validate checks the event and that DateTime is not beyond now+maxSkew.
func (i RecordEventInput) Validate(now time.Time, maxSkew time.Duration) error {
	if !i.Event.IsValid() {
		return domain.NewValidationError("event", "must be START or END")
	}
	if i.DateTime != nil && i.DateTime.After(now.Add(maxSkew)) {
		return domain.NewBadRequest("date_time is in the future")
	}
	return nil
}

// LogSymptomInput is a new symptom entry.
type LogSymptomInput struct {
	Symptom  string
	Comments string
}

func (i *LogSymptomInput) normalize() {
	i.Symptom = strings.TrimSpace(i.Symptom)
	i.Comments = strings.TrimSpace(i.Comments)
}

// Validate validates the symptom input.
func (i LogSymptomInput) Validate() error {
	var errs []domain.FieldError

	if i.Symptom == "" {
		errs = append(errs, domain.FieldError{Field: "symptom", Message: "required"})
	} else if utf8.RuneCountInString(i.Symptom) > maxSymptomLength {
		errs = append(errs, domain.FieldError{Field: "symptom", Message: "too long"})
	}
	if utf8.RuneCountInString(i.Comments) > maxCommentsLength {
		errs = append(errs, domain.FieldError{Field: "comments", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// PageInput is 1-based page selection. Zero values pick the defaults.
type PageInput struct {
	Page    int
	PerPage int
}

// resolve applies defaults and bounds.
func (p PageInput) resolve(cfg config.CycleConfig) (page, perPage int, errs []domain.FieldError) {
	page, perPage = p.Page, p.PerPage
	if page == 0 {
		page = 1
	}
	if perPage == 0 {
		perPage = cfg.DefaultPageSize
	}
	if page < 1 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be at least 1"})
	}
	if perPage < cfg.MinPageSize || perPage > cfg.MaxPageSize {
		errs = append(errs, domain.FieldError{Field: "per_page", Message: "out of range"})
	}
	return page, perPage, errs
}

func validateRange(r domain.TimeRange) []domain.FieldError {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return []domain.FieldError{{Field: "from", Message: "must not be after to"}}
	}
	return nil
}

// ListPeriodsInput selects period records overlapping a time range.
type ListPeriodsInput struct {
	Range domain.TimeRange
	PageInput
}

// ListSymptomsInput selects symptoms by occurrence and creation time.
type ListSymptomsInput struct {
	Occurrence *domain.SymptomOccurrence
	Range      domain.TimeRange
	PageInput
}
