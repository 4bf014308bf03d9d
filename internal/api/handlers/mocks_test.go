package handlers

import (
	"context"
	"errors"

	"cotizador/internal/models"
)

// ErrMockDatabase - ошибка, возвращаемая моками для негативных сценариев
var ErrMockDatabase = errors.New("mock database error")

// ============ Mock DashboardService ============

type MockDashboardService struct {
	alerts      []models.Alert
	kpis        models.KPISummary
	workload    []models.QuotatorWorkload
	problematic []models.ProblematicQuotation

	err error

	// Последние полученные параметры - для проверки проброса query string
	lastLevel     string
	lastTimeRange string
}

func NewMockDashboardService() *MockDashboardService {
	return &MockDashboardService{}
}

func (m *MockDashboardService) SetError(err error) {
	m.err = err
}

func (m *MockDashboardService) GetAlerts(ctx context.Context, level, timeRange string) ([]models.Alert, error) {
	m.lastLevel = level
	m.lastTimeRange = timeRange
	if m.err != nil {
		return nil, m.err
	}
	return m.alerts, nil
}

func (m *MockDashboardService) GetKPIs(ctx context.Context, timeRange string) (models.KPISummary, error) {
	m.lastTimeRange = timeRange
	if m.err != nil {
		return models.KPISummary{}, m.err
	}
	return m.kpis, nil
}

func (m *MockDashboardService) GetWorkload(ctx context.Context, timeRange string) ([]models.QuotatorWorkload, error) {
	m.lastTimeRange = timeRange
	if m.err != nil {
		return nil, m.err
	}
	return m.workload, nil
}

func (m *MockDashboardService) GetProblematic(ctx context.Context, timeRange string) ([]models.ProblematicQuotation, error) {
	m.lastTimeRange = timeRange
	if m.err != nil {
		return nil, m.err
	}
	return m.problematic, nil
}
