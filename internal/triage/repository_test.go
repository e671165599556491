package triage

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestRepositoryCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := NewRepositoryWithDB(mock)

	createdAt := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO health_assessments").
		WithArgs("sess-1", []string{"fatigue", "headache"}, CategoryFatigue, 4, []string{"rec-a", "rec-b"}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

	a := &HealthAssessment{
		SessionID:       "sess-1",
		Symptoms:        []string{"fatigue", "headache"},
		Category:        CategoryFatigue,
		Severity:        4,
		Recommendations: []string{"rec-a", "rec-b"},
	}
	if err := repo.Create(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != 7 {
		t.Errorf("expected id 7, got %d", a.ID)
	}
	if !a.CreatedAt.Equal(createdAt) {
		t.Errorf("expected created_at %s, got %s", createdAt, a.CreatedAt)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRepositoryCreateError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := NewRepositoryWithDB(mock)

	mock.ExpectQuery("INSERT INTO health_assessments").
		WillReturnError(errors.New("connection reset"))

	a := &HealthAssessment{SessionID: "sess-2", Category: CategorySkin}
	if err := repo.Create(context.Background(), a); err == nil {
		t.Fatal("expected error from failing insert")
	}
}
