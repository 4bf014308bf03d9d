package models

// KPISummary представляет сводные показатели за выбранный период
type KPISummary struct {
	TimeRange           string  `json:"time_range"` // 7d, 30d, 90d
	TotalQuotations     int     `json:"total_quotations"`
	ActiveQuotations    int     `json:"active_quotations"`
	CompletedQuotations int     `json:"completed_quotations"`
	ApprovedQuotations  int     `json:"approved_quotations"`
	ConversionRate      float64 `json:"conversion_rate"` // approved/total*100, 2 знака
	TotalValue          float64 `json:"total_value"`
	AverageValue        float64 `json:"average_value"`
	ActiveQuotators     int     `json:"active_quotators"`
	AvgActivePerUser    float64 `json:"avg_active_per_user"`
}

// QuotatorWorkload представляет нагрузку одного котировщика за период
type QuotatorWorkload struct {
	UserID         int     `json:"user_id"`
	Name           string  `json:"name"`
	ActiveCount    int     `json:"active_count"`
	CompletedCount int     `json:"completed_count"`
	TotalCount     int     `json:"total_count"`
	Efficiency     float64 `json:"efficiency"` // completed/total*100, 2 знака
	TotalValue     float64 `json:"total_value"`
	AvgAgeDays     float64 `json:"avg_age_days"` // средний возраст активных, 1 знак
}

// ProblematicQuotation представляет проблемный бюджет:
// просроченный и/или дорогой и застрявший
type ProblematicQuotation struct {
	BudgetID        string   `json:"budget_id"`
	CustomerName    string   `json:"customer_name"`
	AssigneeName    string   `json:"assignee_name"`
	AssigneeID      int      `json:"assignee_id"`
	Status          string   `json:"status"`
	DaysWithoutEdit int      `json:"days_without_edit"`
	Total           float64  `json:"total"`
	Reasons         []string `json:"reasons"` // stale, high_value_at_risk
}

// Причины попадания бюджета в проблемные
const (
	ProblemReasonStale           = "stale"
	ProblemReasonHighValueAtRisk = "high_value_at_risk"
)
