// Package cycle implements the PeriodRecord and CurrentPeriod repository using PostgreSQL.
// Fixed-shape statements are raw SQL constants; range/paginated listings are
// built with squirrel.
package cycle

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cycletrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

// Repo provides period record and current period persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new cycle repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const currentColumns = `user_id_hash, current_period_record_id, last_period_record_id, updated_at`

const getCurrentSQL = `SELECT ` + currentColumns + ` FROM current_periods WHERE user_id_hash = $1`

const ensureCurrentSQL = `
INSERT INTO current_periods (user_id_hash, updated_at)
VALUES ($1, $2)
ON CONFLICT (user_id_hash) DO NOTHING`

const lockCurrentSQL = `SELECT ` + currentColumns + ` FROM current_periods WHERE user_id_hash = $1 FOR UPDATE`

const upsertCurrentSQL = `
INSERT INTO current_periods (user_id_hash, current_period_record_id, last_period_record_id, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id_hash) DO UPDATE SET
    current_period_record_id = EXCLUDED.current_period_record_id,
    last_period_record_id    = EXCLUDED.last_period_record_id,
    updated_at               = EXCLUDED.updated_at
RETURNING ` + currentColumns

const recordColumns = `id, user_id_hash, status, start_at, end_at, created_at, updated_at`

const createRecordSQL = `
INSERT INTO period_records (id, user_id_hash, status, start_at, end_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + recordColumns

const updateRecordSQL = `
UPDATE period_records
SET status = $3, end_at = $4, updated_at = $5
WHERE id = $1 AND user_id_hash = $2
RETURNING ` + recordColumns

const getRecordSQL = `SELECT ` + recordColumns + ` FROM period_records WHERE id = $1 AND user_id_hash = $2`

const listStaleSQL = `
SELECT ` + recordColumns + `
FROM period_records
WHERE status = 'ONGOING' AND start_at <= $1
ORDER BY start_at
LIMIT $2`

// ---------------------------------------------------------------------------
// CurrentPeriod
// ---------------------------------------------------------------------------

// GetCurrentPeriod returns the user's pointer row or domain.ErrNotFound.
func (r *Repo) GetCurrentPeriod(ctx context.Context, userIDHash string) (*domain.CurrentPeriod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	cp, err := scanCurrent(q.QueryRow(ctx, getCurrentSQL, userIDHash))
	if err != nil {
		return nil, postgres.MapError(err, "current_period", userIDHash)
	}
	return cp, nil
}

// EnsureCurrentPeriod creates an empty pointer row if the user has none.
func (r *Repo) EnsureCurrentPeriod(ctx context.Context, userIDHash string, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, ensureCurrentSQL, userIDHash, now.UTC()); err != nil {
		return postgres.MapError(err, "current_period", userIDHash)
	}
	return nil
}

// LockCurrentPeriod reads the pointer row with FOR UPDATE. It must run inside
// a transaction started by TxManager; the lock is held until commit.
func (r *Repo) LockCurrentPeriod(ctx context.Context, userIDHash string) (*domain.CurrentPeriod, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("current_period %s: lock requires a transaction", userIDHash)
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	cp, err := scanCurrent(q.QueryRow(ctx, lockCurrentSQL, userIDHash))
	if err != nil {
		return nil, postgres.MapError(err, "current_period", userIDHash)
	}
	return cp, nil
}

// UpsertCurrentPeriod writes both pointers.
func (r *Repo) UpsertCurrentPeriod(ctx context.Context, cp *domain.CurrentPeriod) (*domain.CurrentPeriod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanCurrent(q.QueryRow(ctx, upsertCurrentSQL,
		cp.UserIDHash, cp.CurrentRecordID, cp.LastRecordID, cp.UpdatedAt.UTC(),
	))
	if err != nil {
		return nil, postgres.MapError(err, "current_period", cp.UserIDHash)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// PeriodRecord
// ---------------------------------------------------------------------------

// CreatePeriodRecord inserts rec. A second ONGOING record for the same user
// violates the partial unique index and yields domain.ErrAlreadyExists.
func (r *Repo) CreatePeriodRecord(ctx context.Context, rec *domain.PeriodRecord) (*domain.PeriodRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanRecord(q.QueryRow(ctx, createRecordSQL,
		rec.ID, rec.UserIDHash, string(rec.Status), rec.StartAt.UTC(), utcPtr(rec.EndAt),
		rec.CreatedAt.UTC(), rec.UpdatedAt.UTC(),
	))
	if err != nil {
		return nil, postgres.MapError(err, "period_record", rec.ID)
	}
	return out, nil
}

// UpdatePeriodRecord writes status, end and updated_at of an existing record.
func (r *Repo) UpdatePeriodRecord(ctx context.Context, rec *domain.PeriodRecord) (*domain.PeriodRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanRecord(q.QueryRow(ctx, updateRecordSQL,
		rec.ID, rec.UserIDHash, string(rec.Status), utcPtr(rec.EndAt), rec.UpdatedAt.UTC(),
	))
	if err != nil {
		return nil, postgres.MapError(err, "period_record", rec.ID)
	}
	return out, nil
}

// GetPeriodRecord returns a record owned by the user; another user's record is NotFound.
func (r *Repo) GetPeriodRecord(ctx context.Context, userIDHash string, id uuid.UUID) (*domain.PeriodRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanRecord(q.QueryRow(ctx, getRecordSQL, id, userIDHash))
	if err != nil {
		return nil, postgres.MapError(err, "period_record", id)
	}
	return out, nil
}

// ListPeriodRecords returns one page of records overlapping filter.Range plus
// the total number of matching records.
func (r *Repo) ListPeriodRecords(ctx context.Context, userIDHash string, filter domain.PeriodFilter) ([]domain.PeriodRecord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := periodWhere(userIDHash, filter.Range, filter.Status)

	countSQL, countArgs, err := psql.Select("count(*)").From("period_records").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "period_record", userIDHash)
	}

	order := "start_at DESC"
	if filter.Ascending {
		order = "start_at ASC"
	}
	b := psql.Select(recordColumns).From("period_records").Where(where).OrderBy(order, "id")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	records, err := r.selectRecords(ctx, q, b, userIDHash)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// QueryPeriodRecords returns every record of the user overlapping rng, newest first.
func (r *Repo) QueryPeriodRecords(ctx context.Context, userIDHash string, rng domain.TimeRange) ([]domain.PeriodRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Select(recordColumns).From("period_records").
		Where(periodWhere(userIDHash, rng, nil)).
		OrderBy("start_at DESC", "id")

	return r.selectRecords(ctx, q, b, userIDHash)
}

// ListStaleOngoing returns up to limit ONGOING records across all users that
// started at or before cutoff, oldest first.
func (r *Repo) ListStaleOngoing(ctx context.Context, cutoff time.Time, limit int) ([]domain.PeriodRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listStaleSQL, cutoff.UTC(), limit)
	if err != nil {
		return nil, postgres.MapError(err, "period_record", "stale")
	}
	records, err := collectRecords(rows)
	if err != nil {
		return nil, postgres.MapError(err, "period_record", "stale")
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// periodWhere selects records overlapping rng: start_at <= to and the record
// is still ongoing or ended at or after from.
func periodWhere(userIDHash string, rng domain.TimeRange, status *domain.PeriodStatus) sq.And {
	where := sq.And{sq.Eq{"user_id_hash": userIDHash}}
	if rng.To != nil {
		where = append(where, sq.LtOrEq{"start_at": rng.To.UTC()})
	}
	if rng.From != nil {
		where = append(where, sq.Or{
			sq.Eq{"end_at": nil},
			sq.GtOrEq{"end_at": rng.From.UTC()},
		})
	}
	if status != nil {
		where = append(where, sq.Eq{"status": string(*status)})
	}
	return where
}

func (r *Repo) selectRecords(ctx context.Context, q postgres.Querier, b sq.SelectBuilder, userIDHash string) ([]domain.PeriodRecord, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build period query: %w", err)
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "period_record", userIDHash)
	}
	records, err := collectRecords(rows)
	if err != nil {
		return nil, postgres.MapError(err, "period_record", userIDHash)
	}
	return records, nil
}

func collectRecords(rows pgx.Rows) ([]domain.PeriodRecord, error) {
	defer rows.Close()

	records := make([]domain.PeriodRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func scanCurrent(row pgx.Row) (*domain.CurrentPeriod, error) {
	var cp domain.CurrentPeriod
	if err := row.Scan(&cp.UserIDHash, &cp.CurrentRecordID, &cp.LastRecordID, &cp.UpdatedAt); err != nil {
		return nil, err
	}
	cp.UpdatedAt = cp.UpdatedAt.UTC()
	return &cp, nil
}

func scanRecord(row pgx.Row) (*domain.PeriodRecord, error) {
	var (
		rec    domain.PeriodRecord
		status string
	)
	if err := row.Scan(&rec.ID, &rec.UserIDHash, &status, &rec.StartAt, &rec.EndAt, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.Status = domain.PeriodStatus(status)
	rec.StartAt = rec.StartAt.UTC()
	rec.EndAt = utcPtr(rec.EndAt)
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return &rec, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
