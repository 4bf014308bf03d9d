package utils

import (
	"math"
)

// math.go - математические утилиты для расчётов дашборда
//
// Назначение:
// Округление и процентные вычисления с явной защитой от деления на ноль.
// Все функции являются чистыми (pure functions) без побочных эффектов.

// Round1 округляет до 1 знака после запятой
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// Round2 округляет до 2 знаков после запятой
//
// Примеры:
//   - Round2(20.004) = 20.0
//   - Round2(20.005) = 20.01
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// Percentage возвращает part/total*100 с округлением до 2 знаков.
// При total <= 0 возвращает 0 - это определённое поведение, а не ошибка:
// эффективность пустого набора равна нулю.
func Percentage(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return Round2(part / total * 100)
}

// Mean возвращает среднее арифметическое. Для пустого среза - 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
