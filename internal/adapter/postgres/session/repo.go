// Package session implements the active-session repository using PostgreSQL.
// Each user has at most one row; a new login replaces the previous session.
package session

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cycletrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

// Repo provides active session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `user_id_hash, token_hash, created_at, expires_at`

const upsertSQL = `
INSERT INTO active_sessions (user_id_hash, token_hash, created_at, expires_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id_hash) DO UPDATE SET
    token_hash = EXCLUDED.token_hash,
    created_at = EXCLUDED.created_at,
    expires_at = EXCLUDED.expires_at
RETURNING ` + sessionColumns

const getSQL = `SELECT ` + sessionColumns + ` FROM active_sessions WHERE user_id_hash = $1`

const deleteSQL = `DELETE FROM active_sessions WHERE user_id_hash = $1`

const deleteExpiredSQL = `DELETE FROM active_sessions WHERE expires_at <= $1`

// Upsert stores s as the user's only active session.
func (r *Repo) Upsert(ctx context.Context, s *domain.ActiveSession) (*domain.ActiveSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.ActiveSession
	err := q.QueryRow(ctx, upsertSQL, s.UserIDHash, s.TokenHash, s.CreatedAt.UTC(), s.ExpiresAt.UTC()).
		Scan(&out.UserIDHash, &out.TokenHash, &out.CreatedAt, &out.ExpiresAt)
	if err != nil {
		return nil, postgres.MapError(err, "active_session", s.UserIDHash)
	}
	out.CreatedAt = out.CreatedAt.UTC()
	out.ExpiresAt = out.ExpiresAt.UTC()
	return &out, nil
}

// Get returns the user's active session or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userIDHash string) (*domain.ActiveSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.ActiveSession
	err := q.QueryRow(ctx, getSQL, userIDHash).
		Scan(&out.UserIDHash, &out.TokenHash, &out.CreatedAt, &out.ExpiresAt)
	if err != nil {
		return nil, postgres.MapError(err, "active_session", userIDHash)
	}
	out.CreatedAt = out.CreatedAt.UTC()
	out.ExpiresAt = out.ExpiresAt.UTC()
	return &out, nil
}

// Delete removes the user's session. Idempotent.
func (r *Repo) Delete(ctx context.Context, userIDHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteSQL, userIDHash); err != nil {
		return postgres.MapError(err, "active_session", userIDHash)
	}
	return nil
}

// DeleteExpired removes every session whose expiry is at or before now.
// Returns the count of deleted sessions.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteExpiredSQL, now.UTC())
	if err != nil {
		return 0, postgres.MapError(err, "active_session", "expired")
	}
	return int(tag.RowsAffected()), nil
}
