package models

import "time"

// Quotation представляет котировку - связующую сущность между пользователем
// и бюджетом. Для дашборда служит исключительно join-таблицей:
// budget.ID сопоставляется со строковым представлением quotation.ID,
// и через UserID бюджет атрибутируется котировщику.
type Quotation struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
