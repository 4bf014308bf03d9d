package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"cotizador/internal/api/handlers"
	"cotizador/internal/api/middleware"
	"cotizador/internal/service"
	"cotizador/internal/websocket"
	"cotizador/pkg/ratelimit"
)

// Dependencies содержит все зависимости для API handlers
type Dependencies struct {
	DashboardService service.DashboardServiceInterface
	Hub              *websocket.Hub
	Logger           *zap.Logger
	RateLimiter      *ratelimit.RateLimiter

	// bcrypt-хэш токена доступа; пустая строка отключает аутентификацию
	TokenHash string
}

// SetupRoutes настраивает все HTTP маршруты приложения
//
// Назначение:
// Центральное место для определения всех API endpoints.
// Регистрирует handlers для каждого маршрута.
// Применяет middleware к группам маршрутов.
// Организует версионирование API (v1).
//
// Структура маршрутов:
//
// /api/v1/
//
//	└── /dashboard/
//	    ├── GET /alerts - алерты с фильтрами level и timeRange
//	    ├── GET /kpis - сводные показатели за период
//	    ├── GET /workload - нагрузка котировщиков
//	    └── GET /problematic - проблемные бюджеты
//
// /ws/
//
//	└── /dashboard - WebSocket для push-обновлений
//
// /health - проверка живости
// /metrics - метрики Prometheus
//
// Middleware применяется в следующем порядке:
// 1. Recovery (для всех маршрутов)
// 2. Logging (для всех маршрутов)
// 3. CORS (для всех маршрутов)
// 4. RateLimit (только для API)
// 5. Auth (только для API)
func SetupRoutes(deps *Dependencies) *mux.Router {
	router := mux.NewRouter()

	var logger *zap.Logger
	if deps != nil && deps.Logger != nil {
		logger = deps.Logger
	} else {
		logger = zap.NewNop()
	}

	// Глобальные middleware (применяются ко всем маршрутам)
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logging(logger))
	router.Use(middleware.CORS)

	// Создание handlers с внедрением зависимостей
	var dashboardHandler *handlers.DashboardHandler
	if deps != nil && deps.DashboardService != nil {
		dashboardHandler = handlers.NewDashboardHandler(deps.DashboardService)
	}

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	if deps != nil && deps.RateLimiter != nil {
		api.Use(middleware.RateLimit(deps.RateLimiter))
	}
	if deps != nil {
		api.Use(middleware.Auth(deps.TokenHash))
	}

	// Dashboard routes
	if dashboardHandler != nil {
		api.HandleFunc("/dashboard/alerts", dashboardHandler.GetAlerts).Methods("GET")
		api.HandleFunc("/dashboard/kpis", dashboardHandler.GetKPIs).Methods("GET")
		api.HandleFunc("/dashboard/workload", dashboardHandler.GetWorkload).Methods("GET")
		api.HandleFunc("/dashboard/problematic", dashboardHandler.GetProblematic).Methods("GET")
	}

	// WebSocket route
	if deps != nil && deps.Hub != nil {
		hub := deps.Hub
		router.HandleFunc("/ws/dashboard", func(w http.ResponseWriter, r *http.Request) {
			websocket.ServeWS(hub, w, r)
		})
	}

	// Метрики Prometheus
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	return router
}
