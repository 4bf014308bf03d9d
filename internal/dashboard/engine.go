package dashboard

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"cotizador/internal/models"
)

// ============================================================
// ДВИЖОК АЛЕРТОВ
// ============================================================
//
// Engine прогоняет снимок данных через шесть независимых оценщиков,
// собирает их результаты и приводит к детерминированному итогу:
// фильтр по уровню, дедупликация, сортировка по важности.

// Engine - движок оценки алертов дашборда
type Engine struct {
	thresholds Thresholds
	logger     *zap.Logger
}

// NewEngine создаёт движок с заданными порогами
func NewEngine(thresholds Thresholds, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		thresholds: thresholds,
		logger:     logger,
	}
}

// severityRank - порядок уровней при сортировке: красные первыми
var severityRank = map[string]int{
	models.AlertLevelRed:    0,
	models.AlertLevelYellow: 1,
	models.AlertLevelGreen:  2,
}

// dedupKey - ключ дедупликации алертов.
//
// Два алерта считаются дубликатами при совпадении категории, предмета,
// ответственного и уровня. Время и описание в ключ не входят: оценщики
// работают с одним замороженным now, а тексты различаются только
// подстановками тех же полей.
type dedupKey struct {
	category string
	subject  string
	assignee string
	level    string
}

// Alerts выполняет полный цикл оценки снимка данных.
//
// Оценщики запускаются параллельно, каждый пишет в свой слот, поэтому
// порядок конкатенации фиксирован и не зависит от порядка завершения
// горутин. Дедупликация first-wins, значит повторные прогоны по тому же
// снимку с тем же now дают идентичный результат.
//
// level и timeRange принимаются в пользовательском виде и нормализуются:
// неизвестный уровень означает "all", неизвестный период - период по
// умолчанию.
func (e *Engine) Alerts(ctx context.Context, snap Snapshot, level, timeRange string, now time.Time) ([]models.Alert, error) {
	started := time.Now()

	window := ResolveWindow(timeRange, now)
	wantLevel := NormalizeLevel(level)

	if err := ctx.Err(); err != nil {
		evaluationsTotal.WithLabelValues("canceled").Inc()
		return nil, err
	}

	recordSnapshot(snap)
	d := BuildDataset(snap, window)

	// Фиксированный порядок слотов - часть контракта детерминизма:
	// от него зависит, какой из дубликатов переживёт first-wins.
	stages := []struct {
		name string
		run  func() []models.Alert
	}{
		{"overload", func() []models.Alert { return e.evaluateOverload(d, now) }},
		{"inactivity", func() []models.Alert { return e.evaluateInactivity(d, now) }},
		{"efficiency", func() []models.Alert { return e.evaluateEfficiency(d, now) }},
		{"trend", func() []models.Alert {
			// Предыдущее окно нужно только тренду, поэтому его датасет
			// строится внутри горутины, а не на общем пути.
			prev := BuildDataset(snap, window.Previous())
			return e.evaluateTrend(d, prev, now)
		}},
		{"priority", func() []models.Alert { return e.evaluatePriority(d, now) }},
		{"coordination", func() []models.Alert { return e.evaluateCoordination(d, now) }},
	}

	results := make([][]models.Alert, len(stages))
	var wg sync.WaitGroup
	for i, stage := range stages {
		wg.Add(1)
		go func(slot int, name string, run func() []models.Alert) {
			defer wg.Done()
			stageStart := time.Now()
			results[slot] = run()
			observeStage(name, stageStart)
		}(i, stage.name, stage.run)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		evaluationsTotal.WithLabelValues("canceled").Inc()
		return nil, err
	}

	var combined []models.Alert
	for _, r := range results {
		combined = append(combined, r...)
	}

	filtered := filterByLevel(combined, wantLevel)
	deduped := dedupe(filtered)

	sort.SliceStable(deduped, func(i, j int) bool {
		ri, rj := severityRank[deduped[i].Level], severityRank[deduped[j].Level]
		if ri != rj {
			return ri < rj
		}
		return deduped[i].Time.Before(deduped[j].Time)
	})

	recordAlerts(deduped)
	evaluationsTotal.WithLabelValues("ok").Inc()

	e.logger.Debug("оценка алертов завершена",
		zap.String("range", window.Range),
		zap.String("level", wantLevel),
		zap.Int("raw", len(combined)),
		zap.Int("emitted", len(deduped)),
		zap.Duration("took", time.Since(started)),
	)

	return deduped, nil
}

// filterByLevel оставляет алерты запрошенного уровня
func filterByLevel(alerts []models.Alert, level string) []models.Alert {
	if level == models.AlertLevelAll {
		return alerts
	}
	filtered := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.Level == level {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// dedupe убирает дубликаты, сохраняя первый встреченный алерт
func dedupe(alerts []models.Alert) []models.Alert {
	seen := make(map[dedupKey]struct{}, len(alerts))
	result := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		key := dedupKey{
			category: a.Category,
			subject:  a.SubjectQuotationID,
			assignee: a.AssigneeName,
			level:    a.Level,
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, a)
	}
	return result
}
