// Package symptom implements the SymptomsRecord repository using PostgreSQL.
package symptom

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cycletrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

// Repo provides symptom record persistence backed by PostgreSQL.
// Records are immutable: there is no update or delete.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new symptom repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const symptomColumns = `id, user_id_hash, symptom, comments, occurrence, period_record_id, created_at`

const createSQL = `
INSERT INTO symptoms_records (id, user_id_hash, symptom, comments, occurrence, period_record_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + symptomColumns

const listByPeriodSQL = `
SELECT ` + symptomColumns + `
FROM symptoms_records
WHERE user_id_hash = $1 AND period_record_id = $2
ORDER BY created_at, id`

// Create inserts an immutable symptom record.
func (r *Repo) Create(ctx context.Context, rec *domain.SymptomsRecord) (*domain.SymptomsRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanSymptom(q.QueryRow(ctx, createSQL,
		rec.ID, rec.UserIDHash, rec.Symptom, rec.Comments, string(rec.Occurrence),
		rec.PeriodRecordID, rec.CreatedAt.UTC(),
	))
	if err != nil {
		return nil, postgres.MapError(err, "symptoms_record", rec.ID)
	}
	return out, nil
}

// ListByPeriod returns the symptoms attributed to a period record, oldest first.
func (r *Repo) ListByPeriod(ctx context.Context, userIDHash string, periodRecordID uuid.UUID) ([]domain.SymptomsRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByPeriodSQL, userIDHash, periodRecordID)
	if err != nil {
		return nil, postgres.MapError(err, "symptoms_record", periodRecordID)
	}
	out, err := collectSymptoms(rows)
	if err != nil {
		return nil, postgres.MapError(err, "symptoms_record", periodRecordID)
	}
	return out, nil
}

// List returns one page of the user's symptoms, newest first, and the total count.
func (r *Repo) List(ctx context.Context, userIDHash string, filter domain.SymptomFilter) ([]domain.SymptomsRecord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Eq{"user_id_hash": userIDHash}}
	if filter.Occurrence != nil {
		where = append(where, sq.Eq{"occurrence": string(*filter.Occurrence)})
	}
	if filter.Range.From != nil {
		where = append(where, sq.GtOrEq{"created_at": filter.Range.From.UTC()})
	}
	if filter.Range.To != nil {
		where = append(where, sq.LtOrEq{"created_at": filter.Range.To.UTC()})
	}

	countSQL, countArgs, err := psql.Select("count(*)").From("symptoms_records").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "symptoms_record", userIDHash)
	}

	b := psql.Select(symptomColumns).From("symptoms_records").Where(where).OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build symptom query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "symptoms_record", userIDHash)
	}
	out, err := collectSymptoms(rows)
	if err != nil {
		return nil, 0, postgres.MapError(err, "symptoms_record", userIDHash)
	}
	return out, total, nil
}

func collectSymptoms(rows pgx.Rows) ([]domain.SymptomsRecord, error) {
	defer rows.Close()

	out := make([]domain.SymptomsRecord, 0)
	for rows.Next() {
		rec, err := scanSymptom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func scanSymptom(row pgx.Row) (*domain.SymptomsRecord, error) {
	var (
		rec        domain.SymptomsRecord
		occurrence string
	)
	if err := row.Scan(&rec.ID, &rec.UserIDHash, &rec.Symptom, &rec.Comments, &occurrence, &rec.PeriodRecordID, &rec.CreatedAt); err != nil {
		return nil, err
	}
	rec.Occurrence = domain.SymptomOccurrence(occurrence)
	rec.CreatedAt = rec.CreatedAt.UTC()
	return &rec, nil
}
