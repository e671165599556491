package triage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists health assessments.
type Repository interface {
	Create(ctx context.Context, a *HealthAssessment) error
}

// querier is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores assessments in the relational database.
type PostgresRepository struct {
	db querier
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("triage: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// NewRepositoryWithDB allows injecting mocks for tests.
func NewRepositoryWithDB(db querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new assessment row and fills in its id and created_at.
func (r *PostgresRepository) Create(ctx context.Context, a *HealthAssessment) error {
	query := `
		INSERT INTO health_assessments (session_id, symptoms, category, severity, recommendations)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	var (
		id        int64
		createdAt time.Time
	)
	if err := r.db.QueryRow(ctx, query,
		a.SessionID,
		a.Symptoms,
		a.Category,
		a.Severity,
		a.Recommendations,
	).Scan(&id, &createdAt); err != nil {
		return fmt.Errorf("triage: insert assessment: %w", err)
	}

	a.ID = id
	a.CreatedAt = createdAt
	return nil
}

var _ Repository = (*PostgresRepository)(nil)
