package dashboard

import (
	"fmt"
	"sort"
	"time"

	"cotizador/internal/models"
	"cotizador/pkg/utils"
)

// evaluatePriority ищет бюджеты, требующие внимания независимо от
// нагрузки котировщиков:
//
//  1. постоянные клиенты (RecurringCustomerMin и более бюджетов в окне)
//     с активными бюджетами старше RecurringDelayDays дней;
//  2. крупные бюджеты (сумма выше HighValueThreshold) старше
//     HighValueAgeDays дней.
func (e *Engine) evaluatePriority(d *Dataset, now time.Time) []models.Alert {
	var alerts []models.Alert

	// Группировка по клиенту. Итерация по отсортированным ключам,
	// чтобы порядок алертов не зависел от порядка обхода map.
	byCustomer := make(map[int][]*models.Budget)
	names := make(map[int]string)
	for _, b := range d.Budgets {
		byCustomer[b.CustomerID] = append(byCustomer[b.CustomerID], b)
		names[b.CustomerID] = b.CustomerName
	}

	customerIDs := make([]int, 0, len(byCustomer))
	for id := range byCustomer {
		customerIDs = append(customerIDs, id)
	}
	sort.Ints(customerIDs)

	for _, customerID := range customerIDs {
		budgets := byCustomer[customerID]
		if len(budgets) < e.thresholds.RecurringCustomerMin {
			continue
		}

		var delayed int
		for _, b := range budgets {
			if b.IsActive() && utils.DaysSince(b.CreatedAt, now) > e.thresholds.RecurringDelayDays {
				delayed++
			}
		}
		if delayed == 0 {
			continue
		}

		metric := float64(delayed)
		alerts = append(alerts, models.Alert{
			Level: models.AlertLevelYellow,
			Title: "Cliente recurrente con demoras",
			Description: fmt.Sprintf(
				"El cliente %s tiene %d cotizaciones activas demoradas de %d en el período",
				names[customerID], delayed, len(budgets)),
			Time:         now,
			Category:     models.AlertCategoryPriorityCustomer,
			AssigneeName: models.AssigneeTeam,
			MetricValue:  &metric,
		})
	}

	// Крупные бюджеты в риске. Ответственный определяется через связку
	// с пользователем - зависший дорогой бюджет без владельца ещё хуже.
	for _, b := range d.Budgets {
		if !b.IsActive() || b.Total <= e.thresholds.HighValueThreshold {
			continue
		}
		if utils.DaysSince(b.CreatedAt, now) <= e.thresholds.HighValueAgeDays {
			continue
		}

		assignee := d.ResolveAssignee(b)
		metric := b.Total
		alerts = append(alerts, models.Alert{
			Level: models.AlertLevelRed,
			Title: "Alto valor en riesgo",
			Description: fmt.Sprintf(
				"La cotización %s por $%.2f lleva %d días sin cerrarse (cliente: %s)",
				b.ID, b.Total, utils.DaysSince(b.CreatedAt, now), b.CustomerName),
			Time:               now,
			Category:           models.AlertCategoryHighValue,
			SubjectQuotationID: b.ID,
			AssigneeName:       assignee.Name,
			AssigneeID:         assignee.ID,
			MetricValue:        &metric,
		})
	}

	return alerts
}
