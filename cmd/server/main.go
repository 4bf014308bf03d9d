package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"cotizador/internal/api"
	"cotizador/internal/config"
	"cotizador/internal/dashboard"
	"cotizador/internal/repository"
	"cotizador/internal/service"
	"cotizador/internal/websocket"
	"cotizador/pkg/ratelimit"
	"cotizador/pkg/retry"
	"cotizador/pkg/utils"

	_ "github.com/lib/pq"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	logger, err := utils.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	// Инициализация базы данных
	db, err := initDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Connected to database", zap.String("dsn", cfg.Database.DSNWithoutPassword()))

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)

	// Движок алертов: пороги по умолчанию, переопределённые конфигурацией
	thresholds := dashboard.DefaultThresholds()
	thresholds.ActiveQuotationsYellow = cfg.Dashboard.ActiveQuotationsYellow
	thresholds.ActiveQuotationsRed = cfg.Dashboard.ActiveQuotationsRed
	thresholds.DaysWithoutEditYellow = cfg.Dashboard.DaysWithoutEditYellow
	thresholds.DaysWithoutEditRed = cfg.Dashboard.DaysWithoutEditRed
	thresholds.EfficiencyYellow = cfg.Dashboard.EfficiencyYellow
	thresholds.EfficiencyRed = cfg.Dashboard.EfficiencyRed
	thresholds.HighValueThreshold = cfg.Dashboard.HighValueThreshold

	engine := dashboard.NewEngine(thresholds, logger)

	// WebSocket hub для push-обновлений
	hub := websocket.NewHub(logger)
	go hub.Run()

	// Сервис дашборда
	dashboardService := service.NewDashboardService(
		userRepo,
		budgetRepo,
		quotationRepo,
		engine,
		hub,
		cfg.Dashboard.FetchTimeout,
		logger,
	)

	// Фоновый рефрешер: периодически пересчитывает дашборд и рассылает
	// подписчикам. Останавливается при завершении процесса.
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	go runRefresher(refreshCtx, dashboardService, hub, cfg.Dashboard.RefreshFreq, logger)

	// Rate limiter на весь API (0 = без лимита)
	var limiter *ratelimit.RateLimiter
	if cfg.Security.RateLimit > 0 {
		limiter = ratelimit.NewRateLimiter(cfg.Security.RateLimit, cfg.Security.RateBurst)
	}

	// Настройка зависимостей для API
	deps := &api.Dependencies{
		DashboardService: dashboardService,
		Hub:              hub,
		Logger:           logger,
		RateLimiter:      limiter,
		TokenHash:        cfg.Security.TokenHash,
	}

	// Настройка HTTP роутера
	router := api.SetupRoutes(deps)

	// HTTP сервер
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запуск сервера в отдельной горутине
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if cfg.Server.UseHTTPS {
			if err := server.ListenAndServeTLS(cfg.Server.CertFile, cfg.Server.KeyFile); err != nil && err != http.ErrServerClosed {
				logger.Fatal("Server failed", zap.Error(err))
			}
		} else {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Fatal("Server failed", zap.Error(err))
			}
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopRefresh()
	hub.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// runRefresher периодически пересчитывает дашборд для WebSocket подписчиков.
// Пересчёт пропускается, если нет ни одного подключенного клиента.
func runRefresher(ctx context.Context, svc *service.DashboardService, hub *websocket.Hub, freq time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(freq)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if hub.ClientCount() == 0 {
				continue
			}
			if err := svc.RefreshAndBroadcast(ctx); err != nil {
				logger.Error("dashboard refresh failed", zap.Error(err))
			}
		}
	}
}

// initDatabase создает подключение к базе данных
//
// Подключение оборачивается в retry: при старте контейнеров база
// может подняться позже сервиса.
func initDatabase(cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настройка пула соединений
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err = retry.Do(ctx, func() error {
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		defer pingCancel()
		if err := db.PingContext(pingCtx); err != nil {
			logger.Warn("database ping failed, retrying", zap.Error(err))
			return err
		}
		return nil
	}, retry.DefaultConfig())

	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
