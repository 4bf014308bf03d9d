package dashboard

import (
	"fmt"
	"time"

	"cotizador/internal/models"
)

// evaluateOverload проверяет перегрузку каждого котировщика
//
// Правило (floor-пороги, границы включительно):
//   - activeCount >= ActiveQuotationsRed    -> red "Sobrecarga crítica"
//   - activeCount >= ActiveQuotationsYellow -> yellow "Carga de trabajo alta"
//   - иначе алерта нет
func (e *Engine) evaluateOverload(d *Dataset, now time.Time) []models.Alert {
	var alerts []models.Alert

	for _, u := range d.Quotators() {
		active := countActive(d.BudgetsOf(u.ID))
		metric := float64(active)

		switch {
		case active >= e.thresholds.ActiveQuotationsRed:
			alerts = append(alerts, models.Alert{
				Level:    models.AlertLevelRed,
				Title:    "Sobrecarga crítica",
				Description: fmt.Sprintf(
					"%s tiene %d cotizaciones activas en el período (límite crítico: %d)",
					u.Name, active, e.thresholds.ActiveQuotationsRed),
				Time:         now,
				Category:     models.AlertCategoryWorkload,
				AssigneeName: u.Name,
				AssigneeID:   u.ID,
				MetricValue:  &metric,
			})

		case active >= e.thresholds.ActiveQuotationsYellow:
			alerts = append(alerts, models.Alert{
				Level:    models.AlertLevelYellow,
				Title:    "Carga de trabajo alta",
				Description: fmt.Sprintf(
					"%s tiene %d cotizaciones activas en el período (límite: %d)",
					u.Name, active, e.thresholds.ActiveQuotationsYellow),
				Time:         now,
				Category:     models.AlertCategoryWorkload,
				AssigneeName: u.Name,
				AssigneeID:   u.ID,
				MetricValue:  &metric,
			})
		}
	}

	return alerts
}
