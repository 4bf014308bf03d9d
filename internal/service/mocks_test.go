package service

import (
	"context"

	"cotizador/internal/models"
	"cotizador/internal/repository"
)

// ============ Mock UserRepository ============

type MockUserRepository struct {
	users  []*models.User
	getErr error
}

func NewMockUserRepository(users []*models.User) *MockUserRepository {
	return &MockUserRepository{users: users}
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.users, nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *MockUserRepository) GetByRole(ctx context.Context, role string) ([]*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var result []*models.User
	for _, u := range m.users {
		if u.Role == role {
			result = append(result, u)
		}
	}
	return result, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	if m.getErr != nil {
		return 0, m.getErr
	}
	return len(m.users), nil
}

// ============ Mock BudgetRepository ============

type MockBudgetRepository struct {
	budgets []*models.Budget
	getErr  error
}

func NewMockBudgetRepository(budgets []*models.Budget) *MockBudgetRepository {
	return &MockBudgetRepository{budgets: budgets}
}

func (m *MockBudgetRepository) GetAll(ctx context.Context) ([]*models.Budget, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.budgets, nil
}

func (m *MockBudgetRepository) GetByID(ctx context.Context, id string) (*models.Budget, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, b := range m.budgets {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, repository.ErrBudgetNotFound
}

func (m *MockBudgetRepository) GetByStatus(ctx context.Context, status string) ([]*models.Budget, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var result []*models.Budget
	for _, b := range m.budgets {
		if b.Status == status {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *MockBudgetRepository) Count(ctx context.Context) (int, error) {
	if m.getErr != nil {
		return 0, m.getErr
	}
	return len(m.budgets), nil
}

// ============ Mock QuotationRepository ============

type MockQuotationRepository struct {
	quotations []*models.Quotation
	getErr     error
}

func NewMockQuotationRepository(quotations []*models.Quotation) *MockQuotationRepository {
	return &MockQuotationRepository{quotations: quotations}
}

func (m *MockQuotationRepository) GetAll(ctx context.Context) ([]*models.Quotation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.quotations, nil
}

func (m *MockQuotationRepository) GetByID(ctx context.Context, id int) (*models.Quotation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, q := range m.quotations {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, repository.ErrQuotationNotFound
}

func (m *MockQuotationRepository) GetByUserID(ctx context.Context, userID int) ([]*models.Quotation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var result []*models.Quotation
	for _, q := range m.quotations {
		if q.UserID == userID {
			result = append(result, q)
		}
	}
	return result, nil
}

func (m *MockQuotationRepository) Count(ctx context.Context) (int, error) {
	if m.getErr != nil {
		return 0, m.getErr
	}
	return len(m.quotations), nil
}

// ============ Mock Broadcaster ============

type MockBroadcaster struct {
	alertBatches []([]models.Alert)
	kpiUpdates   []models.KPISummary
}

func (m *MockBroadcaster) BroadcastAlertsUpdate(alerts []models.Alert) {
	m.alertBatches = append(m.alertBatches, alerts)
}

func (m *MockBroadcaster) BroadcastKPIUpdate(kpis models.KPISummary) {
	m.kpiUpdates = append(m.kpiUpdates, kpis)
}
