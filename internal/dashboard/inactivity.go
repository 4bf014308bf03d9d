package dashboard

import (
	"fmt"
	"time"

	"cotizador/internal/models"
	"cotizador/pkg/utils"
)

// evaluateInactivity находит активные бюджеты, простаивающие дольше порога
//
// daysWithoutEdit = floor(возраст в днях с момента создания).
// Алерт создаётся когда daysWithoutEdit ПРЕВЫШАЕТ yellow-порог (строго),
// уровень red - когда daysWithoutEdit >= red-порога (включительно).
//
// Возраст с момента создания - осознанный прокси для простоя
// (см. Thresholds.DaysWithoutEditYellow), не заменять на last-modified.
func (e *Engine) evaluateInactivity(d *Dataset, now time.Time) []models.Alert {
	var alerts []models.Alert

	for _, b := range d.Budgets {
		if !b.IsActive() {
			continue
		}

		days := utils.DaysSince(b.CreatedAt, now)
		if days <= e.thresholds.DaysWithoutEditYellow {
			continue
		}

		assignee := d.ResolveAssignee(b)
		daysCopy := days
		metric := float64(days)

		level := models.AlertLevelYellow
		title := "Inactividad prolongada"
		if days >= e.thresholds.DaysWithoutEditRed {
			level = models.AlertLevelRed
			title = "Inactividad crítica"
		}

		alerts = append(alerts, models.Alert{
			Level: level,
			Title: title,
			Description: fmt.Sprintf(
				"La cotización %s de %s lleva %d días sin edición",
				b.ID, b.CustomerName, days),
			Time:               now,
			Category:           models.AlertCategoryInactivity,
			SubjectQuotationID: b.ID,
			AssigneeName:       assignee.Name,
			AssigneeID:         assignee.ID,
			DaysWithoutEdit:    &daysCopy,
			MetricValue:        &metric,
		})
	}

	return alerts
}
