// Package user implements the User and UserDetails repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cycletrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cycletrack-backend/internal/domain"
)

// Repo provides user and user-details persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const userColumns = `id, user_id_hash, email, password_hash, created_at, updated_at`

const createUserSQL = `
INSERT INTO users (id, user_id_hash, email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const getByIDHashSQL = `SELECT ` + userColumns + ` FROM users WHERE user_id_hash = $1`

const detailsColumns = `user_id_hash, first_name, last_name, date_of_birth, height_cm, weight_kg, created_at, updated_at`

const upsertDetailsSQL = `
INSERT INTO user_details (user_id_hash, first_name, last_name, date_of_birth, height_cm, weight_kg, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
ON CONFLICT (user_id_hash) DO UPDATE SET
    first_name    = EXCLUDED.first_name,
    last_name     = EXCLUDED.last_name,
    date_of_birth = EXCLUDED.date_of_birth,
    height_cm     = EXCLUDED.height_cm,
    weight_kg     = EXCLUDED.weight_kg,
    updated_at    = EXCLUDED.updated_at
RETURNING ` + detailsColumns

const getDetailsSQL = `SELECT ` + detailsColumns + ` FROM user_details WHERE user_id_hash = $1`

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// Create inserts a new user. A duplicate email or id hash yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createUserSQL,
		u.ID, u.UserIDHash, u.Email, u.PasswordHash,
		u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by normalized email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// GetByIDHash returns a user by user id hash.
func (r *Repo) GetByIDHash(ctx context.Context, userIDHash string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDHashSQL, userIDHash))
	if err != nil {
		return nil, postgres.MapError(err, "user", userIDHash)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// UserDetails operations
// ---------------------------------------------------------------------------

// UpsertDetails creates or replaces the details row for the user.
func (r *Repo) UpsertDetails(ctx context.Context, d *domain.UserDetails) (*domain.UserDetails, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, upsertDetailsSQL,
		d.UserIDHash, d.FirstName, d.LastName, d.DateOfBirth, d.HeightCM, d.WeightKG,
		d.UpdatedAt.UTC(),
	)
	saved, err := scanDetails(row)
	if err != nil {
		return nil, postgres.MapError(err, "user_details", d.UserIDHash)
	}
	return saved, nil
}

// GetDetails returns the details row; domain.ErrNotFound if none was saved.
func (r *Repo) GetDetails(ctx context.Context, userIDHash string) (*domain.UserDetails, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDetails(q.QueryRow(ctx, getDetailsSQL, userIDHash))
	if err != nil {
		return nil, postgres.MapError(err, "user_details", userIDHash)
	}
	return d, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.UserIDHash, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

func scanDetails(row pgx.Row) (*domain.UserDetails, error) {
	var (
		d   domain.UserDetails
		dob *time.Time
	)
	if err := row.Scan(&d.UserIDHash, &d.FirstName, &d.LastName, &dob, &d.HeightCM, &d.WeightKG, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	if dob != nil {
		v := dob.UTC()
		d.DateOfBirth = &v
	}
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()
	return &d, nil
}
