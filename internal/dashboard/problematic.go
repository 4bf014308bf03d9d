package dashboard

import (
	"sort"
	"time"

	"cotizador/internal/models"
	"cotizador/pkg/utils"
)

// Problematic возвращает активные бюджеты, требующие вмешательства:
// просроченные (возраст выше yellow-порога простоя) и крупные в риске
// (сумма выше HighValueThreshold и возраст выше HighValueAgeDays).
//
// Один бюджет может попасть в список по обеим причинам - тогда обе
// перечислены в Reasons. Результат отсортирован по убыванию возраста,
// при равенстве - по ID бюджета.
func (e *Engine) Problematic(snap Snapshot, timeRange string, now time.Time) []models.ProblematicQuotation {
	defer observeStage("problematic", time.Now())

	window := ResolveWindow(timeRange, now)
	d := BuildDataset(snap, window)

	problems := make([]models.ProblematicQuotation, 0)
	for _, b := range d.Budgets {
		if !b.IsActive() {
			continue
		}

		days := utils.DaysSince(b.CreatedAt, now)

		var reasons []string
		if days > e.thresholds.DaysWithoutEditYellow {
			reasons = append(reasons, models.ProblemReasonStale)
		}
		if b.Total > e.thresholds.HighValueThreshold && days > e.thresholds.HighValueAgeDays {
			reasons = append(reasons, models.ProblemReasonHighValueAtRisk)
		}
		if len(reasons) == 0 {
			continue
		}

		assignee := d.ResolveAssignee(b)
		problems = append(problems, models.ProblematicQuotation{
			BudgetID:        b.ID,
			CustomerName:    b.CustomerName,
			AssigneeName:    assignee.Name,
			AssigneeID:      assignee.ID,
			Status:          b.Status,
			DaysWithoutEdit: days,
			Total:           b.Total,
			Reasons:         reasons,
		})
	}

	sort.SliceStable(problems, func(i, j int) bool {
		if problems[i].DaysWithoutEdit != problems[j].DaysWithoutEdit {
			return problems[i].DaysWithoutEdit > problems[j].DaysWithoutEdit
		}
		return problems[i].BudgetID < problems[j].BudgetID
	})

	return problems
}
