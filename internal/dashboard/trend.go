package dashboard

import (
	"fmt"
	"time"

	"cotizador/internal/models"
	"cotizador/pkg/utils"
)

// evaluateTrend сравнивает текущее окно с предыдущим окном той же длины
// и ищет резкие изменения по каждому котировщику:
//
//  1. рост активной нагрузки в LoadIncreaseFactor раз и более;
//  2. падение эффективности более чем на EfficiencyDropPoints пунктов;
//  3. паттерн задержек среди текущих активных бюджетов.
//
// Проверки независимы: один котировщик может получить до трёх алертов.
// prev строится вызывающей стороной по d.Window.Previous().
func (e *Engine) evaluateTrend(d, prev *Dataset, now time.Time) []models.Alert {
	var alerts []models.Alert

	for _, u := range d.Quotators() {
		cur := d.BudgetsOf(u.ID)
		prevBudgets := prev.BudgetsOf(u.ID)

		// 1. Резкий рост нагрузки. Без активности в прошлом окне
		// сравнивать не с чем - нулевая база даёт ложные срабатывания.
		curActive := countActive(cur)
		prevActive := countActive(prevBudgets)
		if prevActive > 0 && float64(curActive) >= e.thresholds.LoadIncreaseFactor*float64(prevActive) {
			metric := float64(curActive)
			alerts = append(alerts, models.Alert{
				Level: models.AlertLevelYellow,
				Title: "Aumento repentino de carga",
				Description: fmt.Sprintf(
					"%s pasó de %d a %d cotizaciones activas respecto al período anterior",
					u.Name, prevActive, curActive),
				Time:         now,
				Category:     models.AlertCategoryTrendWorkload,
				AssigneeName: u.Name,
				AssigneeID:   u.ID,
				MetricValue:  &metric,
			})
		}

		// 2. Падение эффективности. Оба окна должны содержать хотя бы
		// один бюджет: эффективность пустого множества не определена.
		if len(prevBudgets) > 0 && len(cur) > 0 {
			curEff := efficiencyOf(cur)
			prevEff := efficiencyOf(prevBudgets)
			if prevEff > 0 && curEff < prevEff-e.thresholds.EfficiencyDropPoints {
				metric := curEff
				alerts = append(alerts, models.Alert{
					Level: models.AlertLevelYellow,
					Title: "Caída en eficiencia",
					Description: fmt.Sprintf(
						"La eficiencia de %s bajó de %.2f%% a %.2f%% respecto al período anterior",
						u.Name, prevEff, curEff),
					Time:         now,
					Category:     models.AlertCategoryTrendEfficiency,
					AssigneeName: u.Name,
					AssigneeID:   u.ID,
					MetricValue:  &metric,
				})
			}
		}

		// 3. Паттерн задержек по текущим активным бюджетам.
		if a, ok := e.delayPattern(u, cur, now); ok {
			alerts = append(alerts, a)
		}
	}

	return alerts
}

// delayPattern оценивает долю и среднюю давность задержанных активных
// бюджетов котировщика. Задержанным считается активный бюджет старше
// DaysWithoutEditYellow дней.
//
//   - pct > DelayPercentRed    или avg > DaysWithoutEditRed    -> red
//   - pct > DelayPercentYellow или avg > DaysWithoutEditYellow -> yellow
//
// Иначе алерт не создаётся.
func (e *Engine) delayPattern(u *models.User, budgets []*models.Budget, now time.Time) (models.Alert, bool) {
	var active, delayed int
	var ages []float64

	for _, b := range budgets {
		if !b.IsActive() {
			continue
		}
		active++
		days := utils.DaysSince(b.CreatedAt, now)
		if days > e.thresholds.DaysWithoutEditYellow {
			delayed++
			ages = append(ages, float64(days))
		}
	}

	if active == 0 || delayed == 0 {
		return models.Alert{}, false
	}

	pct := utils.Percentage(float64(delayed), float64(active))
	avg := utils.Round1(utils.Mean(ages))

	var level string
	switch {
	case pct > e.thresholds.DelayPercentRed || avg > float64(e.thresholds.DaysWithoutEditRed):
		level = models.AlertLevelRed
	case pct > e.thresholds.DelayPercentYellow || avg > float64(e.thresholds.DaysWithoutEditYellow):
		level = models.AlertLevelYellow
	default:
		return models.Alert{}, false
	}

	metric := pct
	return models.Alert{
		Level: level,
		Title: "Patrón de demoras detectado",
		Description: fmt.Sprintf(
			"%s tiene %.2f%% de cotizaciones activas demoradas (promedio %.1f días sin avance)",
			u.Name, pct, avg),
		Time:         now,
		Category:     models.AlertCategoryPatternDelay,
		AssigneeName: u.Name,
		AssigneeID:   u.ID,
		MetricValue:  &metric,
	}, true
}
