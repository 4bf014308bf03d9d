package dashboard

import (
	"time"

	"cotizador/internal/models"
	"cotizador/pkg/utils"
)

// KPIs считает сводные показатели по снимку данных за период.
//
// Расчёт чисто функциональный: тот же снимок и то же now дают тот же
// результат, поэтому метод безопасно вызывать из нескольких горутин.
func (e *Engine) KPIs(snap Snapshot, timeRange string, now time.Time) models.KPISummary {
	defer observeStage("kpi", time.Now())

	window := ResolveWindow(timeRange, now)
	d := BuildDataset(snap, window)

	summary := models.KPISummary{TimeRange: window.Range}

	var totalValue float64
	for _, b := range d.Budgets {
		summary.TotalQuotations++
		totalValue += b.Total
		switch {
		case b.IsActive():
			summary.ActiveQuotations++
		case b.IsCompleted():
			summary.CompletedQuotations++
		}
		if b.Status == models.BudgetStatusApproved {
			summary.ApprovedQuotations++
		}
	}

	summary.TotalValue = utils.Round2(totalValue)
	summary.ConversionRate = utils.Percentage(float64(summary.ApprovedQuotations), float64(summary.TotalQuotations))
	if summary.TotalQuotations > 0 {
		summary.AverageValue = utils.Round2(totalValue / float64(summary.TotalQuotations))
	}

	// Активным считается котировщик хотя бы с одним активным бюджетом
	for _, u := range d.Quotators() {
		if countActive(d.BudgetsOf(u.ID)) > 0 {
			summary.ActiveQuotators++
		}
	}
	if summary.ActiveQuotators > 0 {
		summary.AvgActivePerUser = utils.Round2(float64(summary.ActiveQuotations) / float64(summary.ActiveQuotators))
	}

	return summary
}
