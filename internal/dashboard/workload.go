package dashboard

import (
	"sort"
	"time"

	"cotizador/internal/models"
	"cotizador/pkg/utils"
)

// Workload считает нагрузку каждого котировщика за период.
//
// В ответ попадают все котировщики, включая тех, у кого в окне нет ни
// одного бюджета: дашборду нужно показывать и простаивающих. Результат
// отсортирован по убыванию активной нагрузки, при равенстве - по ID.
func (e *Engine) Workload(snap Snapshot, timeRange string, now time.Time) []models.QuotatorWorkload {
	defer observeStage("workload", time.Now())

	window := ResolveWindow(timeRange, now)
	d := BuildDataset(snap, window)

	workloads := make([]models.QuotatorWorkload, 0, len(d.Quotators()))
	for _, u := range d.Quotators() {
		budgets := d.BudgetsOf(u.ID)

		w := models.QuotatorWorkload{
			UserID:     u.ID,
			Name:       u.Name,
			TotalCount: len(budgets),
		}

		var totalValue float64
		var activeCreated []time.Time
		for _, b := range budgets {
			totalValue += b.Total
			switch {
			case b.IsActive():
				w.ActiveCount++
				activeCreated = append(activeCreated, b.CreatedAt)
			case b.IsCompleted():
				w.CompletedCount++
			}
		}

		w.TotalValue = utils.Round2(totalValue)
		w.Efficiency = utils.Percentage(float64(w.CompletedCount), float64(w.TotalCount))
		w.AvgAgeDays = utils.Round1(utils.MeanAgeDays(activeCreated, now))

		workloads = append(workloads, w)
	}

	sort.SliceStable(workloads, func(i, j int) bool {
		if workloads[i].ActiveCount != workloads[j].ActiveCount {
			return workloads[i].ActiveCount > workloads[j].ActiveCount
		}
		return workloads[i].UserID < workloads[j].UserID
	})

	return workloads
}
