package repository

import (
	"context"
	"database/sql"
	"errors"

	"cotizador/internal/models"
)

// Ошибки репозитория котировок
var (
	ErrQuotationNotFound = errors.New("quotation not found")
)

// QuotationRepository - работа с таблицей quotations
type QuotationRepository struct {
	db *sql.DB
}

// NewQuotationRepository создает новый экземпляр репозитория
func NewQuotationRepository(db *sql.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

// GetAll возвращает все котировки
func (r *QuotationRepository) GetAll(ctx context.Context) ([]*models.Quotation, error) {
	query := `
		SELECT id, user_id, created_at
		FROM quotations
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotations []*models.Quotation
	for rows.Next() {
		quotation := &models.Quotation{}
		err := rows.Scan(
			&quotation.ID,
			&quotation.UserID,
			&quotation.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, quotation)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotations, nil
}

// GetByID возвращает котировку по ID
func (r *QuotationRepository) GetByID(ctx context.Context, id int) (*models.Quotation, error) {
	query := `
		SELECT id, user_id, created_at
		FROM quotations
		WHERE id = $1`

	quotation := &models.Quotation{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&quotation.ID,
		&quotation.UserID,
		&quotation.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuotationNotFound
		}
		return nil, err
	}

	return quotation, nil
}

// GetByUserID возвращает котировки пользователя
func (r *QuotationRepository) GetByUserID(ctx context.Context, userID int) ([]*models.Quotation, error) {
	query := `
		SELECT id, user_id, created_at
		FROM quotations
		WHERE user_id = $1
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotations []*models.Quotation
	for rows.Next() {
		quotation := &models.Quotation{}
		err := rows.Scan(
			&quotation.ID,
			&quotation.UserID,
			&quotation.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, quotation)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotations, nil
}

// Count возвращает количество котировок
func (r *QuotationRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM quotations`

	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
