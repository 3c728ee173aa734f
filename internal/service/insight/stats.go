package insight

import (
	"math"
	"sort"
	"time"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

// AverageCycleLength is the rounded mean of whole-day gaps between
// consecutive period starts. Ongoing records count. Nil with fewer than two
// records.
func AverageCycleLength(records []domain.PeriodRecord) *int {
	if len(records) < 2 {
		return nil
	}

	sorted := byStartDesc(records)
	sum := 0
	for i := 0; i < len(sorted)-1; i++ {
		sum += domain.WholeDays(sorted[i].StartAt.Sub(sorted[i+1].StartAt))
	}
	return roundedMean(sum, len(sorted)-1)
}

// AveragePeriodLength is the rounded mean duration of completed records.
// Nil with fewer than two completed records.
func AveragePeriodLength(records []domain.PeriodRecord) *int {
	sum, n := 0, 0
	for _, r := range records {
		if d, ok := r.DurationDays(); ok {
			sum += d
			n++
		}
	}
	if n < 2 {
		return nil
	}
	return roundedMean(sum, n)
}

// CurrentPhase infers the phase from the pointer state. cycleDays is the
// number of whole days since last started, or nil when it does not apply.
func CurrentPhase(current domain.CurrentPeriod, last *domain.PeriodRecord, now time.Time) (phase domain.Phase, cycleDays *int) {
	if current.CurrentRecordID != nil {
		return domain.PhaseMenstrual, nil
	}
	if last == nil {
		return domain.PhaseUnknown, nil
	}

	// A start recorded slightly in the future counts as day zero.
	days := max(0, domain.WholeDays(now.Sub(last.StartAt)))
	return domain.PhaseForCycleDay(days), &days
}

// DaysUntilNextPhase counts down to the next phase boundary. Nil for
// MENSTRUAL, UNKNOWN, and LUTEAL without a known average cycle.
func DaysUntilNextPhase(phase domain.Phase, cycleDays int, avgCycle *int) *int {
	var d int
	switch phase {
	case domain.PhaseFollicular:
		d = max(0, domain.FollicularPhaseDays-cycleDays)
	case domain.PhaseOvulation:
		d = max(0, domain.FollicularPhaseDays+domain.OvulationPhaseDays-cycleDays)
	case domain.PhaseLuteal:
		if avgCycle == nil {
			return nil
		}
		d = max(0, *avgCycle-cycleDays)
	default:
		return nil
	}
	return &d
}

// CycleStatistics summarises the gaps between consecutive completed period
// starts and estimates the probability that the next period begins within
// windowDays of the predicted date, assuming normally distributed cycle
// lengths. Ongoing records are ignored.
func CycleStatistics(records []domain.PeriodRecord, windowDays int) domain.CycleStatistics {
	stats := domain.CycleStatistics{WindowDays: windowDays}
	done := completedOnly(records)
	if len(done) < 2 {
		return stats
	}

	sorted := byStartDesc(done)
	lengths := make([]float64, 0, len(sorted)-1)
	for i := len(sorted) - 1; i > 0; i-- {
		lengths = append(lengths, float64(domain.WholeDays(sorted[i-1].StartAt.Sub(sorted[i].StartAt))))
	}

	var sum float64
	for _, l := range lengths {
		sum += l
	}
	mean := sum / float64(len(lengths))

	var sq float64
	for _, l := range lengths {
		sq += (l - mean) * (l - mean)
	}
	sd := math.Sqrt(sq / float64(len(lengths)))

	stats.SampleSize = len(lengths)
	stats.MeanCycleLength = mean
	stats.StdDevCycleLength = sd
	stats.MedianCycleLength = median(lengths)

	next := sorted[0].StartAt.AddDate(0, 0, int(math.RoundToEven(mean)))
	stats.NextPeriodStart = &next

	p := 1.0
	if sd > 0 {
		p = math.Erf(float64(windowDays) / (sd * math.Sqrt2))
	}
	stats.ProbabilityInWindow = &p

	return stats
}

func completedOnly(records []domain.PeriodRecord) []domain.PeriodRecord {
	out := make([]domain.PeriodRecord, 0, len(records))
	for _, r := range records {
		if r.Status == domain.PeriodStatusCompleted {
			out = append(out, r)
		}
	}
	return out
}

func byStartDesc(records []domain.PeriodRecord) []domain.PeriodRecord {
	sorted := make([]domain.PeriodRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartAt.After(sorted[j].StartAt)
	})
	return sorted
}

func roundedMean(sum, n int) *int {
	v := int(math.RoundToEven(float64(sum) / float64(n)))
	return &v
}

func median(values []float64) float64 {
	s := make([]float64, len(values))
	copy(s, values)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}
