package models

import "time"

// User представляет пользователя CRM системы
//
// Пользователи загружаются целиком (снапшотом) и не фильтруются по датам:
// пользователь - постоянная сущность, а не событие во времени.
type User struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"` // quotator, admin, viewer
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Роли пользователей
const (
	RoleQuotator = "quotator" // котировщик - единица учёта нагрузки и эффективности
	RoleAdmin    = "admin"
	RoleViewer   = "viewer"
)

// IsQuotator возвращает true если пользователь участвует в персональных
// вычислениях дашборда (нагрузка, эффективность, тренды, координация)
func (u *User) IsQuotator() bool {
	return u.Role == RoleQuotator
}
