// Package telemetry defines the OpenTelemetry instruments recorded by the services.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/heartmarshall/cycletrack-backend"

// Login results recorded on auth.logins.
const (
	LoginSucceeded = "success"
	LoginRejected  = "rejected"
	SignupCreated  = "signup"
)

// Metrics holds the counters shared by the services.
type Metrics struct {
	transitions metric.Int64Counter
	symptoms    metric.Int64Counter
	sweepClosed metric.Int64Counter
	sweepFailed metric.Int64Counter
	logins      metric.Int64Counter
}

// NewMetrics creates the instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	transitions, err := meter.Int64Counter("cycle.period.transitions",
		metric.WithDescription("Accepted period START/END events"),
	)
	if err != nil {
		return nil, err
	}

	symptoms, err := meter.Int64Counter("cycle.symptoms.logged",
		metric.WithDescription("Symptom records created"),
	)
	if err != nil {
		return nil, err
	}

	closed, err := meter.Int64Counter("cycle.sweep.closed",
		metric.WithDescription("Stale ongoing periods closed by the sweep"),
	)
	if err != nil {
		return nil, err
	}

	failed, err := meter.Int64Counter("cycle.sweep.failed",
		metric.WithDescription("Stale ongoing periods the sweep failed to close"),
	)
	if err != nil {
		return nil, err
	}

	logins, err := meter.Int64Counter("auth.logins",
		metric.WithDescription("Authentication attempts by result"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		transitions: transitions,
		symptoms:    symptoms,
		sweepClosed: closed,
		sweepFailed: failed,
		logins:      logins,
	}, nil
}

// NewGlobalMetrics uses the meter of the globally registered provider.
func NewGlobalMetrics() (*Metrics, error) {
	return NewMetrics(otel.Meter(meterName))
}

// Nop returns metrics that record nothing.
func Nop() *Metrics {
	m, _ := NewMetrics(noop.NewMeterProvider().Meter(meterName))
	return m
}

func (m *Metrics) PeriodTransition(ctx context.Context, event string) {
	m.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("event", event)))
}

func (m *Metrics) SymptomLogged(ctx context.Context, occurrence string) {
	m.symptoms.Add(ctx, 1, metric.WithAttributes(attribute.String("occurrence", occurrence)))
}

func (m *Metrics) SweepClosed(ctx context.Context, n int) {
	if n > 0 {
		m.sweepClosed.Add(ctx, int64(n))
	}
}

func (m *Metrics) SweepFailed(ctx context.Context, n int) {
	if n > 0 {
		m.sweepFailed.Add(ctx, int64(n))
	}
}

func (m *Metrics) Login(ctx context.Context, result string) {
	m.logins.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
