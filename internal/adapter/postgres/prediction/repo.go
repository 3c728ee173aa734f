// Package prediction implements the cached CyclePrediction repository using PostgreSQL.
package prediction

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cycletrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

// Repo stores one prediction snapshot per user.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new prediction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const predictionColumns = `user_id_hash, cycle_length, period_duration, next_period_start, next_period_end, days_until_next_period, updated_at`

const upsertSQL = `
INSERT INTO cycle_predictions (user_id_hash, cycle_length, period_duration, next_period_start, next_period_end, days_until_next_period, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id_hash) DO UPDATE SET
    cycle_length           = EXCLUDED.cycle_length,
    period_duration        = EXCLUDED.period_duration,
    next_period_start      = EXCLUDED.next_period_start,
    next_period_end        = EXCLUDED.next_period_end,
    days_until_next_period = EXCLUDED.days_until_next_period,
    updated_at             = EXCLUDED.updated_at
RETURNING ` + predictionColumns

const getSQL = `SELECT ` + predictionColumns + ` FROM cycle_predictions WHERE user_id_hash = $1`

// Upsert overwrites the user's snapshot.
func (r *Repo) Upsert(ctx context.Context, p *domain.CyclePrediction) (*domain.CyclePrediction, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanPrediction(q.QueryRow(ctx, upsertSQL,
		p.UserIDHash, p.CycleLength, p.PeriodDuration,
		p.NextPeriodStart.UTC(), p.NextPeriodEnd.UTC(), p.DaysUntilNextPeriod, p.UpdatedAt.UTC(),
	))
	if err != nil {
		return nil, postgres.MapError(err, "cycle_prediction", p.UserIDHash)
	}
	return out, nil
}

// Get returns the snapshot or domain.ErrNotFound if none was computed.
func (r *Repo) Get(ctx context.Context, userIDHash string) (*domain.CyclePrediction, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanPrediction(q.QueryRow(ctx, getSQL, userIDHash))
	if err != nil {
		return nil, postgres.MapError(err, "cycle_prediction", userIDHash)
	}
	return out, nil
}

func scanPrediction(row pgx.Row) (*domain.CyclePrediction, error) {
	var p domain.CyclePrediction
	err := row.Scan(&p.UserIDHash, &p.CycleLength, &p.PeriodDuration,
		&p.NextPeriodStart, &p.NextPeriodEnd, &p.DaysUntilNextPeriod, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.NextPeriodStart = p.NextPeriodStart.UTC()
	p.NextPeriodEnd = p.NextPeriodEnd.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}
