package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists bookings.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
}

// querier is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores bookings in the relational database.
type PostgresRepository struct {
	db querier
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("bookings: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// NewRepositoryWithDB allows injecting mocks for tests.
func NewRepositoryWithDB(db querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new booking row; ids are assigned by the database
// sequence, so they are unique and monotonic.
func (r *PostgresRepository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (service, date, time, customer_name, customer_email, customer_phone, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	var (
		id        int64
		createdAt time.Time
	)
	if err := r.db.QueryRow(ctx, query,
		b.Service,
		b.Date,
		b.Time,
		b.CustomerName,
		b.CustomerEmail,
		b.CustomerPhone,
		b.Status,
		b.Notes,
	).Scan(&id, &createdAt); err != nil {
		return fmt.Errorf("bookings: insert: %w", err)
	}

	b.ID = id
	b.CreatedAt = createdAt
	return nil
}

var _ Repository = (*PostgresRepository)(nil)
