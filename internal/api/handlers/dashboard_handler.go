package handlers

import (
	"net/http"

	"cotizador/internal/models"
	"cotizador/internal/service"
)

// DashboardHandler обрабатывает HTTP запросы дашборда операционной
// эффективности.
//
// Endpoints:
// - GET /api/v1/dashboard/alerts?level=red|yellow|green|all&timeRange=7d|30d|90d
// - GET /api/v1/dashboard/kpis?timeRange=7d|30d|90d
// - GET /api/v1/dashboard/workload?timeRange=7d|30d|90d
// - GET /api/v1/dashboard/problematic?timeRange=7d|30d|90d
//
// Параметры level и timeRange не валидируются на уровне HTTP:
// неизвестные значения нормализуются движком к "all" и периоду по
// умолчанию, ответ 400 не возвращается.
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler создает новый DashboardHandler с внедрением зависимостей.
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetAlerts возвращает алерты за период с фильтром по уровню.
//
// GET /api/v1/dashboard/alerts?level=red&timeRange=30d
//
// Response 200 OK:
//
//	[
//	  {
//	    "level": "red",
//	    "title": "Sobrecarga crítica",
//	    "description": "María García tiene 6 cotizaciones activas",
//	    "time": "2026-08-30T12:00:00Z",
//	    "category": "workload",
//	    "assignee_name": "María García",
//	    "assignee_id": 3,
//	    "metric_value": 6
//	  }
//	]
//
// Response 500 Internal Server Error:
//
//	{"error": "failed to get alerts", "details": "..."}
func (h *DashboardHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Проверяем, что сервис инициализирован
	if h.dashboardService == nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "dashboard service not initialized",
		})
		return
	}

	level := r.URL.Query().Get("level")
	timeRange := r.URL.Query().Get("timeRange")

	alerts, err := h.dashboardService.GetAlerts(r.Context(), level, timeRange)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "failed to get alerts",
			"details": err.Error(),
		})
		return
	}

	// Убеждаемся, что пустой массив возвращается как [], а не null
	if alerts == nil {
		alerts = []models.Alert{}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(alerts)
}

// GetKPIs возвращает сводные показатели за период.
//
// GET /api/v1/dashboard/kpis?timeRange=30d
//
// Response 200 OK:
//
//	{
//	  "time_range": "30d",
//	  "total_quotations": 42,
//	  "active_quotations": 15,
//	  "completed_quotations": 27,
//	  "approved_quotations": 18,
//	  "conversion_rate": 42.86,
//	  "total_value": 1250000.50,
//	  "average_value": 29761.92,
//	  "active_quotators": 5,
//	  "avg_active_per_user": 3.00
//	}
//
// Response 500 Internal Server Error:
//
//	{"error": "failed to get kpis", "details": "..."}
func (h *DashboardHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.dashboardService == nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "dashboard service not initialized",
		})
		return
	}

	timeRange := r.URL.Query().Get("timeRange")

	kpis, err := h.dashboardService.GetKPIs(r.Context(), timeRange)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "failed to get kpis",
			"details": err.Error(),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(kpis)
}

// GetWorkload возвращает нагрузку котировщиков за период.
//
// GET /api/v1/dashboard/workload?timeRange=30d
//
// Response 200 OK:
//
//	[
//	  {
//	    "user_id": 3,
//	    "name": "María García",
//	    "active_count": 6,
//	    "completed_count": 4,
//	    "total_count": 10,
//	    "efficiency": 40.00,
//	    "total_value": 350000.00,
//	    "avg_age_days": 8.5
//	  }
//	]
//
// Response 500 Internal Server Error:
//
//	{"error": "failed to get workload", "details": "..."}
func (h *DashboardHandler) GetWorkload(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.dashboardService == nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "dashboard service not initialized",
		})
		return
	}

	timeRange := r.URL.Query().Get("timeRange")

	workload, err := h.dashboardService.GetWorkload(r.Context(), timeRange)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "failed to get workload",
			"details": err.Error(),
		})
		return
	}

	if workload == nil {
		workload = []models.QuotatorWorkload{}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(workload)
}

// GetProblematic возвращает проблемные бюджеты за период.
//
// GET /api/v1/dashboard/problematic?timeRange=30d
//
// Response 200 OK:
//
//	[
//	  {
//	    "budget_id": "105",
//	    "customer_name": "Constructora Sur",
//	    "assignee_name": "Juan Pérez",
//	    "assignee_id": 2,
//	    "status": "enviada",
//	    "days_without_edit": 20,
//	    "total": 185000.00,
//	    "reasons": ["stale", "high_value_at_risk"]
//	  }
//	]
//
// Response 500 Internal Server Error:
//
//	{"error": "failed to get problematic quotations", "details": "..."}
func (h *DashboardHandler) GetProblematic(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.dashboardService == nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "dashboard service not initialized",
		})
		return
	}

	timeRange := r.URL.Query().Get("timeRange")

	problematic, err := h.dashboardService.GetProblematic(r.Context(), timeRange)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "failed to get problematic quotations",
			"details": err.Error(),
		})
		return
	}

	if problematic == nil {
		problematic = []models.ProblematicQuotation{}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(problematic)
}
