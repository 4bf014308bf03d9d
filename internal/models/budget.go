package models

import "time"

// Budget представляет бюджет (коммерческое предложение) из документного хранилища
//
// Идентификатор - строковый: бюджеты хранятся отдельно от котировок и
// связываются с ними нестрогим строковым join'ом (см. dashboard.Dataset).
// UserID - денормализованная ссылка на владельца, может отсутствовать (0);
// используется как fallback когда join через котировку не дал результата.
type Budget struct {
	ID           string    `json:"id" db:"id"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	Total        float64   `json:"total" db:"total"`
	CustomerID   int       `json:"customer_id" db:"customer_id"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	UserID       int       `json:"user_id,omitempty" db:"user_id"` // 0 = не указан
}

// Статусы бюджета
//
// Фиксированный словарь, разбитый на два подмножества:
// "активные" (работа идёт) и "завершённые" (работа закончена).
const (
	BudgetStatusPending    = "pendiente"
	BudgetStatusInProgress = "en_proceso"
	BudgetStatusSent       = "enviada"
	BudgetStatusApproved   = "aprobada"
	BudgetStatusRejected   = "rechazada"
	BudgetStatusClosed     = "cerrada"
)

// ActiveStatuses - статусы, при которых бюджет считается находящимся в работе
var ActiveStatuses = map[string]bool{
	BudgetStatusPending:    true,
	BudgetStatusInProgress: true,
	BudgetStatusSent:       true,
}

// CompletedStatuses - статусы, при которых бюджет считается завершённым.
// Используются как числитель при расчёте эффективности котировщика.
var CompletedStatuses = map[string]bool{
	BudgetStatusApproved: true,
	BudgetStatusRejected: true,
	BudgetStatusClosed:   true,
}

// IsActive возвращает true если бюджет находится в работе
func (b *Budget) IsActive() bool {
	return ActiveStatuses[b.Status]
}

// IsCompleted возвращает true если бюджет завершён
func (b *Budget) IsCompleted() bool {
	return CompletedStatuses[b.Status]
}
