package domain

import (
	"time"

	"github.com/google/uuid"
)

// PeriodStatus is the lifecycle status of a PeriodRecord.
type PeriodStatus string

const (
	PeriodStatusOngoing   PeriodStatus = "ONGOING"
	PeriodStatusCompleted PeriodStatus = "COMPLETED"
)

func (s PeriodStatus) String() string { return string(s) }

func (s PeriodStatus) IsValid() bool {
	switch s {
	case PeriodStatusOngoing, PeriodStatusCompleted:
		return true
	}
	return false
}

// PeriodEvent is a client-submitted state machine input.
type PeriodEvent string

const (
	PeriodEventStart PeriodEvent = "START"
	PeriodEventEnd   PeriodEvent = "END"
)

func (e PeriodEvent) String() string { return string(e) }

func (e PeriodEvent) IsValid() bool {
	switch e {
	case PeriodEventStart, PeriodEventEnd:
		return true
	}
	return false
}

// SymptomOccurrence records whether a symptom was logged during a period.
type SymptomOccurrence string

const (
	OccurrenceDuringPeriod  SymptomOccurrence = "DURING_PERIOD"
	OccurrenceNonCyclePhase SymptomOccurrence = "NON_CYCLE_PHASE"
)

func (o SymptomOccurrence) String() string { return string(o) }

func (o SymptomOccurrence) IsValid() bool {
	switch o {
	case OccurrenceDuringPeriod, OccurrenceNonCyclePhase:
		return true
	}
	return false
}

// PeriodState is the per-user state machine state, derived from CurrentPeriod.
type PeriodState string

const (
	StateNoActivePeriod PeriodState = "NO_ACTIVE_PERIOD"
	StatePeriodOngoing  PeriodState = "PERIOD_ONGOING"
)

// NextPeriodState applies event to state. Rejected transitions return a
// StateError and leave the state unchanged.
func NextPeriodState(state PeriodState, event PeriodEvent) (PeriodState, error) {
	switch state {
	case StateNoActivePeriod:
		switch event {
		case PeriodEventStart:
			return StatePeriodOngoing, nil
		case PeriodEventEnd:
			return state, NewBadRequest("period not started")
		}
	case StatePeriodOngoing:
		switch event {
		case PeriodEventStart:
			return state, NewConflict("period already started")
		case PeriodEventEnd:
			return StateNoActivePeriod, nil
		}
	}
	return state, NewValidationError("event", "unknown event "+string(event))
}

// PeriodRecord is one menstrual period. EndAt is nil while ONGOING.
type PeriodRecord struct {
	ID         uuid.UUID
	UserIDHash string
	Status     PeriodStatus
	StartAt    time.Time
	EndAt      *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DurationDays returns the whole days between start and end of a completed record.
func (r PeriodRecord) DurationDays() (int, bool) {
	if r.Status != PeriodStatusCompleted || r.EndAt == nil {
		return 0, false
	}
	return WholeDays(r.EndAt.Sub(r.StartAt)), true
}

// CurrentPeriod holds the per-user pointers into PeriodRecord.
// CurrentRecordID is non-nil iff a period is ongoing.
type CurrentPeriod struct {
	UserIDHash      string
	CurrentRecordID *uuid.UUID
	LastRecordID    *uuid.UUID
	UpdatedAt       time.Time
}

// State maps the pointer state to the state machine.
func (c CurrentPeriod) State() PeriodState {
	if c.CurrentRecordID != nil {
		return StatePeriodOngoing
	}
	return StateNoActivePeriod
}

// SymptomsRecord is an immutable symptom log entry.
type SymptomsRecord struct {
	ID             uuid.UUID
	UserIDHash     string
	Symptom        string
	Comments       string
	Occurrence     SymptomOccurrence
	PeriodRecordID *uuid.UUID
	CreatedAt      time.Time
}

// PeriodDetails is a record together with the symptoms attributed to it.
type PeriodDetails struct {
	Record   PeriodRecord
	Symptoms []SymptomsRecord
}

// TimeRange bounds a query. Nil ends are open.
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

// PeriodFilter selects period records for listing.
type PeriodFilter struct {
	Range     TimeRange
	Status    *PeriodStatus
	Limit     int
	Offset    int
	Ascending bool
}

// SymptomFilter selects symptom records for listing.
type SymptomFilter struct {
	Range      TimeRange
	Occurrence *SymptomOccurrence
	Limit      int
	Offset     int
}

// WholeDays truncates a duration to whole days.
func WholeDays(d time.Duration) int {
	return int(d / (24 * time.Hour))
}
