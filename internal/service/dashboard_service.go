package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"cotizador/internal/dashboard"
	"cotizador/internal/models"
)

// ============================================================
// СЕРВИС ДАШБОРДА
// ============================================================
//
// DashboardService собирает снимок данных из трёх репозиториев и
// передаёт его движку. Сервис не хранит состояния между запросами:
// каждый запрос работает с собственным свежим снимком.

// DashboardBroadcaster рассылает обновления дашборда подписчикам
type DashboardBroadcaster interface {
	BroadcastAlertsUpdate(alerts []models.Alert)
	BroadcastKPIUpdate(kpis models.KPISummary)
}

// DashboardService - бизнес-логика дашборда операционной эффективности
type DashboardService struct {
	users      UserRepositoryInterface
	budgets    BudgetRepositoryInterface
	quotations QuotationRepositoryInterface

	engine       *dashboard.Engine
	broadcaster  DashboardBroadcaster
	fetchTimeout time.Duration
	logger       *zap.Logger
}

// NewDashboardService создает новый сервис дашборда.
// broadcaster может быть nil - тогда рассылка обновлений отключена.
func NewDashboardService(
	users UserRepositoryInterface,
	budgets BudgetRepositoryInterface,
	quotations QuotationRepositoryInterface,
	engine *dashboard.Engine,
	broadcaster DashboardBroadcaster,
	fetchTimeout time.Duration,
	logger *zap.Logger,
) *DashboardService {
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		users:        users,
		budgets:      budgets,
		quotations:   quotations,
		engine:       engine,
		broadcaster:  broadcaster,
		fetchTimeout: fetchTimeout,
		logger:       logger,
	}
}

// fetchSnapshot загружает пользователей, бюджеты и котировки параллельно.
//
// Первая же ошибка отменяет остальные запросы через контекст: частичный
// снимок бесполезен, алерты по нему вводили бы в заблуждение.
func (s *DashboardService) fetchSnapshot(ctx context.Context) (dashboard.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	var snap dashboard.Snapshot
	errCh := make(chan error, 3)

	go func() {
		var err error
		snap.Users, err = s.users.GetAll(ctx)
		errCh <- err
	}()
	go func() {
		var err error
		snap.Budgets, err = s.budgets.GetAll(ctx)
		errCh <- err
	}()
	go func() {
		var err error
		snap.Quotations, err = s.quotations.GetAll(ctx)
		errCh <- err
	}()

	var firstErr error
	for i := 0; i < 3; i++ {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			cancel()
		}
	}

	if firstErr != nil {
		s.logger.Error("не удалось загрузить снимок данных", zap.Error(firstErr))
		return dashboard.Snapshot{}, firstErr
	}

	return snap, nil
}

// GetAlerts возвращает алерты за период с фильтром по уровню
func (s *DashboardService) GetAlerts(ctx context.Context, level, timeRange string) ([]models.Alert, error) {
	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Alerts(ctx, snap, level, timeRange, time.Now().UTC())
}

// GetKPIs возвращает сводные показатели за период
func (s *DashboardService) GetKPIs(ctx context.Context, timeRange string) (models.KPISummary, error) {
	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return models.KPISummary{}, err
	}
	return s.engine.KPIs(snap, timeRange, time.Now().UTC()), nil
}

// GetWorkload возвращает нагрузку котировщиков за период
func (s *DashboardService) GetWorkload(ctx context.Context, timeRange string) ([]models.QuotatorWorkload, error) {
	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Workload(snap, timeRange, time.Now().UTC()), nil
}

// GetProblematic возвращает проблемные бюджеты за период
func (s *DashboardService) GetProblematic(ctx context.Context, timeRange string) ([]models.ProblematicQuotation, error) {
	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Problematic(snap, timeRange, time.Now().UTC()), nil
}

// RefreshAndBroadcast пересчитывает дашборд по периоду по умолчанию и
// рассылает результат подписчикам. Вызывается периодическим рефрешером
// из main. Один снимок обслуживает оба вычисления - подписчики видят
// алерты и KPI по одним и тем же данным.
func (s *DashboardService) RefreshAndBroadcast(ctx context.Context) error {
	if s.broadcaster == nil {
		return nil
	}

	snap, err := s.fetchSnapshot(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	alerts, err := s.engine.Alerts(ctx, snap, models.AlertLevelAll, dashboard.DefaultRange, now)
	if err != nil {
		return err
	}
	kpis := s.engine.KPIs(snap, dashboard.DefaultRange, now)

	s.broadcaster.BroadcastAlertsUpdate(alerts)
	s.broadcaster.BroadcastKPIUpdate(kpis)

	s.logger.Debug("обновление дашборда разослано",
		zap.Int("alerts", len(alerts)),
		zap.Int("active_quotations", kpis.ActiveQuotations),
	)
	return nil
}
