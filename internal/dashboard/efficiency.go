package dashboard

import (
	"fmt"
	"time"

	"cotizador/internal/models"
	"cotizador/pkg/utils"
)

// efficiencyOf возвращает эффективность набора бюджетов:
// completed/total*100, округлённую до 2 знаков. Для пустого набора - 0.
func efficiencyOf(budgets []*models.Budget) float64 {
	return utils.Percentage(float64(countCompleted(budgets)), float64(len(budgets)))
}

// evaluateEfficiency проверяет эффективность каждого котировщика
//
// В отличие от перегрузки пороги здесь - ПОТОЛКИ: низкая эффективность
// это плохо, поэтому сравнение инвертировано.
//
//   - efficiency <= EfficiencyRed    -> red "Eficiencia crítica"
//   - efficiency <= EfficiencyYellow -> yellow "Eficiencia baja"
//
// Котировщики без единого атрибутированного бюджета в окне исключаются
// целиком: отсутствие работы не означает нулевую эффективность.
func (e *Engine) evaluateEfficiency(d *Dataset, now time.Time) []models.Alert {
	var alerts []models.Alert

	for _, u := range d.Quotators() {
		budgets := d.BudgetsOf(u.ID)
		if len(budgets) == 0 {
			continue
		}

		efficiency := efficiencyOf(budgets)
		metric := efficiency

		switch {
		case efficiency <= e.thresholds.EfficiencyRed:
			alerts = append(alerts, models.Alert{
				Level: models.AlertLevelRed,
				Title: "Eficiencia crítica",
				Description: fmt.Sprintf(
					"%s completó %.2f%% de sus cotizaciones en el período (mínimo: %.0f%%)",
					u.Name, efficiency, e.thresholds.EfficiencyRed),
				Time:         now,
				Category:     models.AlertCategoryEfficiency,
				AssigneeName: u.Name,
				AssigneeID:   u.ID,
				MetricValue:  &metric,
			})

		case efficiency <= e.thresholds.EfficiencyYellow:
			alerts = append(alerts, models.Alert{
				Level: models.AlertLevelYellow,
				Title: "Eficiencia baja",
				Description: fmt.Sprintf(
					"%s completó %.2f%% de sus cotizaciones en el período (esperado: %.0f%%)",
					u.Name, efficiency, e.thresholds.EfficiencyYellow),
				Time:         now,
				Category:     models.AlertCategoryEfficiency,
				AssigneeName: u.Name,
				AssigneeID:   u.ID,
				MetricValue:  &metric,
			})
		}
	}

	return alerts
}
