package models

import "time"

// Alert представляет алерт дашборда операционной эффективности
//
// Алерт создаётся только когда выполнено хотя бы одно пороговое условие -
// "зелёных" алертов не существует (green зарезервирован для внутренней
// классификации паттернов и наружу не выдаётся). После создания алерт
// неизменяем; он нигде не сохраняется и пересчитывается на каждый запрос.
type Alert struct {
	Level       string    `json:"level"`       // red, yellow, green
	Title       string    `json:"title"`       // краткий заголовок
	Description string    `json:"description"` // форматированное описание
	Time        time.Time `json:"time"`        // момент генерации (не момент события)
	Category    string    `json:"category"`

	// SubjectQuotationID - бюджет/котировка, вызвавшая алерт (опционально)
	SubjectQuotationID string `json:"subject_quotation_id,omitempty"`

	// AssigneeID = 0 означает командный алерт, не привязанный к котировщику
	AssigneeName string `json:"assignee_name"`
	AssigneeID   int    `json:"assignee_id"`

	// DaysWithoutEdit заполняется только для алертов о простое
	DaysWithoutEdit *int `json:"days_without_edit,omitempty"`

	// MetricValue - числовое значение, по которому сработал порог.
	// Передаётся клиенту для сортировки/отображения, в серверной
	// сортировке не участвует.
	MetricValue *float64 `json:"metric_value,omitempty"`
}

// Уровни алертов
const (
	AlertLevelRed    = "red"    // критичный
	AlertLevelYellow = "yellow" // предупреждение
	AlertLevelGreen  = "green"  // только внутренняя классификация
	AlertLevelAll    = "all"    // фильтр "все уровни"
)

// Категории алертов
const (
	AlertCategoryWorkload             = "workload"
	AlertCategoryInactivity           = "inactivity"
	AlertCategoryEfficiency           = "efficiency"
	AlertCategoryTrendWorkload        = "trend_workload"
	AlertCategoryTrendEfficiency      = "trend_efficiency"
	AlertCategoryPatternDelay         = "pattern_delay"
	AlertCategoryPriorityCustomer     = "priority_customer"
	AlertCategoryHighValue            = "high_value"
	AlertCategoryCoordinationBalance  = "coordination_balance"
	AlertCategoryCoordinationCapacity = "coordination_capacity"
)

// Командные исполнители (AssigneeID = 0)
const (
	AssigneeTeam        = "Equipo Comercial"
	AssigneeCoordinator = "Coordinador"
	AssigneeUnknown     = "N/A"
)
