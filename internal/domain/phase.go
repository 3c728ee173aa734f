package domain

// Phase is an inferred menstrual cycle phase.
type Phase string

const (
	PhaseMenstrual  Phase = "MENSTRUAL"
	PhaseFollicular Phase = "FOLLICULAR"
	PhaseOvulation  Phase = "OVULATION"
	PhaseLuteal     Phase = "LUTEAL"
	PhaseUnknown    Phase = "UNKNOWN"
)

// Nominal phase lengths in days.
const (
	MenstrualPhaseDays  = 5
	FollicularPhaseDays = 9
	OvulationPhaseDays  = 1
	LutealPhaseDays     = 14
)

func (p Phase) String() string { return string(p) }

func (p Phase) IsValid() bool {
	switch p {
	case PhaseMenstrual, PhaseFollicular, PhaseOvulation, PhaseLuteal, PhaseUnknown:
		return true
	}
	return false
}

// AllPhases lists every phase, including UNKNOWN.
func AllPhases() []Phase {
	return []Phase{PhaseMenstrual, PhaseFollicular, PhaseOvulation, PhaseLuteal, PhaseUnknown}
}

// PhaseForCycleDay buckets days since the last period start into a
// non-menstrual phase. Callers handle the ongoing-period case first.
func PhaseForCycleDay(cycleDays int) Phase {
	switch {
	case cycleDays < FollicularPhaseDays:
		return PhaseFollicular
	case cycleDays < FollicularPhaseDays+OvulationPhaseDays:
		return PhaseOvulation
	default:
		return PhaseLuteal
	}
}
