package cycle

import "github.com/heartmarshall/cycletrack-backend/internal/domain"

// PeriodPage is one page of period records.
type PeriodPage struct {
	Records []domain.PeriodRecord
	Total   int
	Page    int
	PerPage int
}

// SymptomPage is one page of symptom records.
type SymptomPage struct {
	Records []domain.SymptomsRecord
	Total   int
	Page    int
	PerPage int
}

// SweepResult counts the outcome of one maintenance sweep.
type SweepResult struct {
	Closed int
	Failed int
}
