package utils

import (
	"time"
)

// time.go - утилиты для работы со временем
//
// Назначение:
// Вспомогательные функции для временных расчётов дашборда:
// возраст бюджетов в днях, принадлежность к окну, средний возраст.
//
// Все функции работают в UTC и являются чистыми.

// DaysSince возвращает целое количество полных дней между t и now
// (floor, не round). Если t в будущем, возвращается 0.
//
// Пример:
//
//	// t = 20 дней и 7 часов назад
//	DaysSince(t, now) // 20
func DaysSince(t, now time.Time) int {
	if t.After(now) {
		return 0
	}
	return int(now.Sub(t).Hours() / 24)
}

// AgeInDays возвращает возраст как дробное число дней
func AgeInDays(t, now time.Time) float64 {
	if t.After(now) {
		return 0
	}
	return now.Sub(t).Hours() / 24
}

// WithinRange проверяет попадание t в диапазон [start, end] включительно
func WithinRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// MeanAgeDays возвращает средний возраст набора временных меток в днях.
// Для пустого набора возвращает 0 (а не NaN).
func MeanAgeDays(times []time.Time, now time.Time) float64 {
	if len(times) == 0 {
		return 0
	}
	var sum float64
	for _, t := range times {
		sum += AgeInDays(t, now)
	}
	return sum / float64(len(times))
}
