package service

import (
	"context"

	"cotizador/internal/models"
	"cotizador/internal/repository"
)

// UserRepositoryInterface определяет интерфейс репозитория пользователей
type UserRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByRole(ctx context.Context, role string) ([]*models.User, error)
	Count(ctx context.Context) (int, error)
}

// BudgetRepositoryInterface определяет интерфейс репозитория бюджетов
type BudgetRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*models.Budget, error)
	GetByID(ctx context.Context, id string) (*models.Budget, error)
	GetByStatus(ctx context.Context, status string) ([]*models.Budget, error)
	Count(ctx context.Context) (int, error)
}

// QuotationRepositoryInterface определяет интерфейс репозитория котировок
type QuotationRepositoryInterface interface {
	GetAll(ctx context.Context) ([]*models.Quotation, error)
	GetByID(ctx context.Context, id int) (*models.Quotation, error)
	GetByUserID(ctx context.Context, userID int) ([]*models.Quotation, error)
	Count(ctx context.Context) (int, error)
}

// Проверяем, что реальные репозитории реализуют интерфейсы
var _ UserRepositoryInterface = (*repository.UserRepository)(nil)
var _ BudgetRepositoryInterface = (*repository.BudgetRepository)(nil)
var _ QuotationRepositoryInterface = (*repository.QuotationRepository)(nil)

// ============ Интерфейсы сервисов для Dependency Injection ============

// DashboardServiceInterface определяет интерфейс сервиса дашборда
type DashboardServiceInterface interface {
	GetAlerts(ctx context.Context, level, timeRange string) ([]models.Alert, error)
	GetKPIs(ctx context.Context, timeRange string) (models.KPISummary, error)
	GetWorkload(ctx context.Context, timeRange string) ([]models.QuotatorWorkload, error)
	GetProblematic(ctx context.Context, timeRange string) ([]models.ProblematicQuotation, error)
}

// Проверяем, что реальные сервисы реализуют интерфейсы
var _ DashboardServiceInterface = (*DashboardService)(nil)
