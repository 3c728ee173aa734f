// Package statistical predicts the next period from the mean of past cycles.
package statistical

import (
	"context"
	"fmt"
	"math"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

// Predictor is the in-process default model. It needs at least two periods.
type Predictor struct{}

// New returns a statistical predictor.
func New() *Predictor {
	return &Predictor{}
}

// Predict expects history ordered by start ascending.
func (p *Predictor) Predict(ctx context.Context, history []domain.PeriodSpan) (domain.PredictionResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.PredictionResult{}, err
	}
	if len(history) < 2 {
		return domain.PredictionResult{}, fmt.Errorf("statistical.Predict: %d periods: %w", len(history), domain.ErrInsufficientData)
	}

	var cycleSum, durationSum int
	for i, span := range history {
		durationSum += domain.WholeDays(span.End.Sub(span.Start))
		if i > 0 {
			cycleSum += domain.WholeDays(span.Start.Sub(history[i-1].Start))
		}
	}

	cycle := int(math.RoundToEven(float64(cycleSum) / float64(len(history)-1)))
	duration := int(math.RoundToEven(float64(durationSum) / float64(len(history))))

	last := history[len(history)-1]
	next := last.Start.AddDate(0, 0, cycle)

	return domain.PredictionResult{
		CycleLength:     cycle,
		PeriodDuration:  duration,
		NextPeriodStart: next,
		NextPeriodEnd:   next.AddDate(0, 0, duration),
	}, nil
}
