package dashboard

import (
	"fmt"
	"time"

	"cotizador/internal/models"
	"cotizador/pkg/utils"
)

// evaluateCoordination оценивает распределение нагрузки по команде:
//
//  1. дисбаланс - активная нагрузка котировщика превышает среднюю
//     по команде в ImbalanceFactor раз (адресат - координатор);
//  2. приближение к лимиту - нагрузка достигла CapacityWarningRatio
//     от yellow-порога перегрузки (адресат - сам котировщик).
//
// Среднее считается только по котировщикам с ненулевой нагрузкой:
// простаивающие не должны занижать базу сравнения.
func (e *Engine) evaluateCoordination(d *Dataset, now time.Time) []models.Alert {
	var alerts []models.Alert

	type load struct {
		user   *models.User
		active int
	}
	var loads []load
	var counts []float64

	for _, u := range d.Quotators() {
		active := countActive(d.BudgetsOf(u.ID))
		if active == 0 {
			continue
		}
		loads = append(loads, load{user: u, active: active})
		counts = append(counts, float64(active))
	}
	if len(loads) == 0 {
		return nil
	}

	avg := utils.Mean(counts)
	capacityFloor := e.thresholds.CapacityWarningRatio * float64(e.thresholds.ActiveQuotationsYellow)

	for _, l := range loads {
		if len(loads) > 1 && float64(l.active) > e.thresholds.ImbalanceFactor*avg {
			metric := float64(l.active)
			alerts = append(alerts, models.Alert{
				Level: models.AlertLevelYellow,
				Title: "Carga desbalanceada",
				Description: fmt.Sprintf(
					"%s tiene %d cotizaciones activas frente a un promedio de %.1f en el equipo",
					l.user.Name, l.active, avg),
				Time:         now,
				Category:     models.AlertCategoryCoordinationBalance,
				AssigneeName: models.AssigneeCoordinator,
				MetricValue:  &metric,
			})
		}

		if float64(l.active) >= capacityFloor {
			pct := utils.Percentage(float64(l.active), float64(e.thresholds.ActiveQuotationsYellow))
			metric := float64(l.active)
			alerts = append(alerts, models.Alert{
				Level: models.AlertLevelYellow,
				Title: "Capacidad próxima al límite",
				Description: fmt.Sprintf(
					"%s está al %.0f%% de su capacidad de cotizaciones activas",
					l.user.Name, pct),
				Time:         now,
				Category:     models.AlertCategoryCoordinationCapacity,
				AssigneeName: l.user.Name,
				AssigneeID:   l.user.ID,
				MetricValue:  &metric,
			})
		}
	}

	return alerts
}
