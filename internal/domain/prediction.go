package domain

import "time"

// PeriodSpan is the start/end pair of a completed period, as fed to a predictor.
type PeriodSpan struct {
	Start time.Time
	End   time.Time
}

// PredictionResult is what a predictor returns for a period history.
type PredictionResult struct {
	CycleLength     int
	PeriodDuration  int
	NextPeriodStart time.Time
	NextPeriodEnd   time.Time
}

// CyclePrediction is a derived, non-authoritative snapshot of the next period.
type CyclePrediction struct {
	UserIDHash          string
	CycleLength         int
	PeriodDuration      int
	NextPeriodStart     time.Time
	NextPeriodEnd       time.Time
	DaysUntilNextPeriod int
	UpdatedAt           time.Time
}

// CycleStatistics summarises completed cycle lengths.
type CycleStatistics struct {
	SampleSize          int
	MeanCycleLength     float64
	StdDevCycleLength   float64
	MedianCycleLength   float64
	NextPeriodStart     *time.Time
	ProbabilityInWindow *float64
	WindowDays          int
}

// Dashboard is the composed cycle overview for a user.
type Dashboard struct {
	Phase               Phase
	PhaseDescription    string
	CycleDay            *int
	DaysUntilNextPhase  *int
	AverageCycleLength  *int
	AveragePeriodLength *int
	Current             CurrentPeriod
	Prediction          *CyclePrediction
	PredictionNote      string
}
