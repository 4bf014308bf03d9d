package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

// ============================================================
// QuotationRepository Tests
// ============================================================

var quotationColumns = []string{"id", "user_id", "created_at"}

func TestQuotationRepositoryGetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	created := time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(quotationColumns).
		AddRow(101, 1, created).
		AddRow(102, 2, created)
	mock.ExpectQuery(`SELECT id, user_id, created_at`).WillReturnRows(rows)

	repo := NewQuotationRepository(db)
	quotations, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(quotations) != 2 {
		t.Fatalf("got %d quotations, want 2", len(quotations))
	}
	if quotations[0].ID != 101 || quotations[0].UserID != 1 {
		t.Errorf("unexpected quotation: %+v", quotations[0])
	}
}

func TestQuotationRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_id, created_at`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(quotationColumns))

	repo := NewQuotationRepository(db)
	_, err = repo.GetByID(context.Background(), 99)
	if !errors.Is(err, ErrQuotationNotFound) {
		t.Errorf("expected ErrQuotationNotFound, got %v", err)
	}
}

func TestQuotationRepositoryGetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	created := time.Date(2026, 3, 5, 14, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(quotationColumns).
		AddRow(101, 1, created).
		AddRow(105, 1, created)
	mock.ExpectQuery(`SELECT id, user_id, created_at`).
		WithArgs(1).
		WillReturnRows(rows)

	repo := NewQuotationRepository(db)
	quotations, err := repo.GetByUserID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByUserID failed: %v", err)
	}
	if len(quotations) != 2 {
		t.Errorf("got %d quotations, want 2", len(quotations))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestQuotationRepositoryCountError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT`).WillReturnError(errors.New("connection refused"))

	repo := NewQuotationRepository(db)
	if _, err := repo.Count(context.Background()); err == nil {
		t.Error("expected error, got nil")
	}
}
