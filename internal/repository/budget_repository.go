package repository

import (
	"context"
	"database/sql"
	"errors"

	"cotizador/internal/models"
)

// Ошибки репозитория бюджетов
var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// BudgetRepository - работа с таблицей budgets
//
// UserID в таблице допускает NULL: бюджет мог быть создан до привязки
// котировки. NULL читается как 0 и трактуется движком как "владелец
// не указан".
type BudgetRepository struct {
	db *sql.DB
}

// NewBudgetRepository создает новый экземпляр репозитория
func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// GetAll возвращает все бюджеты
func (r *BudgetRepository) GetAll(ctx context.Context) ([]*models.Budget, error) {
	query := `
		SELECT id, status, created_at, total, customer_id, customer_name, user_id
		FROM budgets
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*models.Budget
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return budgets, nil
}

// GetByID возвращает бюджет по ID
func (r *BudgetRepository) GetByID(ctx context.Context, id string) (*models.Budget, error) {
	query := `
		SELECT id, status, created_at, total, customer_id, customer_name, user_id
		FROM budgets
		WHERE id = $1`

	budget := &models.Budget{}
	var userID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&budget.ID,
		&budget.Status,
		&budget.CreatedAt,
		&budget.Total,
		&budget.CustomerID,
		&budget.CustomerName,
		&userID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBudgetNotFound
		}
		return nil, err
	}

	budget.UserID = int(userID.Int64)
	return budget, nil
}

// GetByStatus возвращает бюджеты с указанным статусом
func (r *BudgetRepository) GetByStatus(ctx context.Context, status string) ([]*models.Budget, error) {
	query := `
		SELECT id, status, created_at, total, customer_id, customer_name, user_id
		FROM budgets
		WHERE status = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*models.Budget
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return budgets, nil
}

// Count возвращает количество бюджетов
func (r *BudgetRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM budgets`

	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// scanBudget читает одну строку результата в модель
func scanBudget(rows *sql.Rows) (*models.Budget, error) {
	budget := &models.Budget{}
	var userID sql.NullInt64
	err := rows.Scan(
		&budget.ID,
		&budget.Status,
		&budget.CreatedAt,
		&budget.Total,
		&budget.CustomerID,
		&budget.CustomerName,
		&userID,
	)
	if err != nil {
		return nil, err
	}
	budget.UserID = int(userID.Int64)
	return budget, nil
}
