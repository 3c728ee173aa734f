package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a random id hash and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		UserIDHash:   "hash-" + uuid.New().String(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "digest-" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, user_id_hash, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.UserIDHash, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCompletedPeriod inserts a COMPLETED period record for the user.
func SeedCompletedPeriod(t *testing.T, pool *pgxpool.Pool, userIDHash string, start, end time.Time) domain.PeriodRecord {
	t.Helper()

	end = end.UTC().Truncate(time.Microsecond)
	rec := seedPeriod(t, pool, userIDHash, domain.PeriodStatusCompleted, start, &end)
	return rec
}

// SeedOngoingPeriod inserts an ONGOING period record and points the user's
// current period at it.
func SeedOngoingPeriod(t *testing.T, pool *pgxpool.Pool, userIDHash string, start time.Time) domain.PeriodRecord {
	t.Helper()
	ctx := context.Background()

	rec := seedPeriod(t, pool, userIDHash, domain.PeriodStatusOngoing, start, nil)

	_, err := pool.Exec(ctx,
		`INSERT INTO current_periods (user_id_hash, current_period_record_id, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id_hash) DO UPDATE SET current_period_record_id = EXCLUDED.current_period_record_id`,
		userIDHash, rec.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOngoingPeriod upsert current period: %v", err)
	}

	return rec
}

func seedPeriod(t *testing.T, pool *pgxpool.Pool, userIDHash string, status domain.PeriodStatus, start time.Time, end *time.Time) domain.PeriodRecord {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.PeriodRecord{
		ID:         uuid.New(),
		UserIDHash: userIDHash,
		Status:     status,
		StartAt:    start.UTC().Truncate(time.Microsecond),
		EndAt:      end,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO period_records (id, user_id_hash, status, start_at, end_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.UserIDHash, string(rec.Status), rec.StartAt, rec.EndAt, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed period record: %v", err)
	}

	return rec
}
