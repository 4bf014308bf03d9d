package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cotizador/internal/models"
)

func TestGetAlerts(t *testing.T) {
	t.Run("returns alerts successfully", func(t *testing.T) {
		mockService := NewMockDashboardService()
		mockService.alerts = []models.Alert{
			{
				Level:        models.AlertLevelRed,
				Title:        "Sobrecarga crítica",
				Description:  "María García tiene 6 cotizaciones activas",
				Time:         time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
				Category:     models.AlertCategoryWorkload,
				AssigneeName: "María García",
				AssigneeID:   3,
			},
		}
		handler := NewDashboardHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/alerts", nil)
		w := httptest.NewRecorder()

		handler.GetAlerts(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}

		var response []models.Alert
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if len(response) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(response))
		}
		if response[0].Title != "Sobrecarga crítica" {
			t.Errorf("expected title 'Sobrecarga crítica', got %q", response[0].Title)
		}
		if response[0].AssigneeID != 3 {
			t.Errorf("expected assignee_id 3, got %d", response[0].AssigneeID)
		}
	})

	t.Run("passes level and timeRange to service", func(t *testing.T) {
		mockService := NewMockDashboardService()
		handler := NewDashboardHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/alerts?level=red&timeRange=7d", nil)
		w := httptest.NewRecorder()

		handler.GetAlerts(w, req)

		if mockService.lastLevel != "red" {
			t.Errorf("expected level 'red' passed to service, got %q", mockService.lastLevel)
		}
		if mockService.lastTimeRange != "7d" {
			t.Errorf("expected timeRange '7d' passed to service, got %q", mockService.lastTimeRange)
		}
	})

	t.Run("returns empty array not null when no alerts", func(t *testing.T) {
		mockService := NewMockDashboardService()
		handler := NewDashboardHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/alerts", nil)
		w := httptest.NewRecorder()

		handler.GetAlerts(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}

		body := w.Body.String()
		if body == "null\n" || body == "null" {
			t.Error("expected empty array [], got null")
		}
	})

	t.Run("returns 500 when service fails", func(t *testing.T) {
		mockService := NewMockDashboardService()
		mockService.SetError(ErrMockDatabase)
		handler := NewDashboardHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/alerts", nil)
		w := httptest.NewRecorder()

		handler.GetAlerts(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}

		var response map[string]string
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode error response: %v", err)
		}
		if response["error"] != "failed to get alerts" {
			t.Errorf("unexpected error message: %q", response["error"])
		}
	})

	t.Run("returns 500 when service is nil", func(t *testing.T) {
		handler := &DashboardHandler{dashboardService: nil}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/alerts", nil)
		w := httptest.NewRecorder()

		handler.GetAlerts(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})
}

func TestGetKPIs(t *testing.T) {
	t.Run("returns kpis successfully", func(t *testing.T) {
		mockService := NewMockDashboardService()
		mockService.kpis = models.KPISummary{
			TimeRange:           "30d",
			TotalQuotations:     42,
			ActiveQuotations:    15,
			CompletedQuotations: 27,
			ApprovedQuotations:  18,
			ConversionRate:      42.86,
			TotalValue:          1250000.50,
			ActiveQuotators:     5,
		}
		handler := NewDashboardHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/kpis?timeRange=30d", nil)
		w := httptest.NewRecorder()

		handler.GetKPIs(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}

		var response models.KPISummary
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if response.TotalQuotations != 42 {
			t.Errorf("expected 42 total quotations, got %d", response.TotalQuotations)
		}
		if response.ConversionRate != 42.86 {
			t.Errorf("expected conversion rate 42.86, got %f", response.ConversionRate)
		}
		if mockService.lastTimeRange != "30d" {
			t.Errorf("expected timeRange '30d' passed to service, got %q", mockService.lastTimeRange)
		}
	})

	t.Run("returns 500 when service fails", func(t *testing.T) {
		mockService := NewMockDashboardService()
		mockService.SetError(ErrMockDatabase)
		handler := NewDashboardHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/kpis", nil)
		w := httptest.NewRecorder()

		handler.GetKPIs(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})

	t.Run("returns 500 when service is nil", func(t *testing.T) {
		handler := &DashboardHandler{dashboardService: nil}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/kpis", nil)
		w := httptest.NewRecorder()

		handler.GetKPIs(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})
}

func TestGetWorkload(t *testing.T) {
	t.Run("returns workload successfully", func(t *testing.T) {
		mockService := NewMockDashboardService()
		mockService.workload = []models.QuotatorWorkload{
			{
				UserID:      3,
				Name:        "María García",
				ActiveCount: 6,
				TotalCount:  10,
				Efficiency:  40.00,
			},
			{
				UserID:      2,
				Name:        "Juan Pérez",
				ActiveCount: 2,
				TotalCount:  5,
				Efficiency:  60.00,
			},
		}
		handler := NewDashboardHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/workload?timeRange=90d", nil)
		w := httptest.NewRecorder()

		handler.GetWorkload(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}

		var response []models.QuotatorWorkload
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if len(response) != 2 {
			t.Fatalf("expected 2 quotators, got %d", len(response))
		}
		if response[0].Name != "María García" {
			t.Errorf("expected first quotator 'María García', got %q", response[0].Name)
		}
		if mockService.lastTimeRange != "90d" {
			t.Errorf("expected timeRange '90d' passed to service, got %q", mockService.lastTimeRange)
		}
	})

	t.Run("returns empty array not null when no quotators", func(t *testing.T) {
		mockService := NewMockDashboardService()
		handler := NewDashboardHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/workload", nil)
		w := httptest.NewRecorder()

		handler.GetWorkload(w, req)

		body := w.Body.String()
		if body == "null\n" || body == "null" {
			t.Error("expected empty array [], got null")
		}
	})

	t.Run("returns 500 when service fails", func(t *testing.T) {
		mockService := NewMockDashboardService()
		mockService.SetError(ErrMockDatabase)
		handler := NewDashboardHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/workload", nil)
		w := httptest.NewRecorder()

		handler.GetWorkload(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})

	t.Run("returns 500 when service is nil", func(t *testing.T) {
		handler := &DashboardHandler{dashboardService: nil}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/workload", nil)
		w := httptest.NewRecorder()

		handler.GetWorkload(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})
}

func TestGetProblematic(t *testing.T) {
	t.Run("returns problematic quotations successfully", func(t *testing.T) {
		mockService := NewMockDashboardService()
		mockService.problematic = []models.ProblematicQuotation{
			{
				BudgetID:        "105",
				CustomerName:    "Constructora Sur",
				AssigneeName:    "Juan Pérez",
				AssigneeID:      2,
				Status:          models.BudgetStatusSent,
				DaysWithoutEdit: 20,
				Total:           185000.00,
				Reasons:         []string{models.ProblemReasonStale, models.ProblemReasonHighValueAtRisk},
			},
		}
		handler := NewDashboardHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/problematic", nil)
		w := httptest.NewRecorder()

		handler.GetProblematic(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
		}

		var response []models.ProblematicQuotation
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if len(response) != 1 {
			t.Fatalf("expected 1 problematic quotation, got %d", len(response))
		}
		if response[0].BudgetID != "105" {
			t.Errorf("expected budget_id '105', got %q", response[0].BudgetID)
		}
		if len(response[0].Reasons) != 2 {
			t.Errorf("expected 2 reasons, got %d", len(response[0].Reasons))
		}
	})

	t.Run("returns empty array not null when nothing problematic", func(t *testing.T) {
		mockService := NewMockDashboardService()
		handler := NewDashboardHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/problematic", nil)
		w := httptest.NewRecorder()

		handler.GetProblematic(w, req)

		body := w.Body.String()
		if body == "null\n" || body == "null" {
			t.Error("expected empty array [], got null")
		}
	})

	t.Run("returns 500 when service fails", func(t *testing.T) {
		mockService := NewMockDashboardService()
		mockService.SetError(ErrMockDatabase)
		handler := NewDashboardHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/problematic", nil)
		w := httptest.NewRecorder()

		handler.GetProblematic(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})

	t.Run("returns 500 when service is nil", func(t *testing.T) {
		handler := &DashboardHandler{dashboardService: nil}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/problematic", nil)
		w := httptest.NewRecorder()

		handler.GetProblematic(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
	})
}
