package dashboard

import (
	"strings"
	"time"

	"cotizador/internal/models"
)

// window.go - разрешение относительного диапазона времени в абсолютное окно
//
// Пользовательский ввод никогда не приводит к ошибке: нераспознанный
// диапазон молча превращается в 30 дней, нераспознанный уровень - в "all".
// Это осознанное UX-решение: дашборд не должен падать из-за случайного
// query-параметра.

// Канонические диапазоны
const (
	Range7d  = "7d"
	Range30d = "30d"
	Range90d = "90d"

	// DefaultRange применяется для любого нераспознанного токена
	DefaultRange = Range30d
)

// rangeDays - длина канонического диапазона в днях
var rangeDays = map[string]int{
	Range7d:  7,
	Range30d: 30,
	Range90d: 90,
}

// Window - абсолютное временное окно [Start, End], End = "сейчас" (UTC)
type Window struct {
	Range string // канонический диапазон: 7d, 30d, 90d
	Start time.Time
	End   time.Time
}

// NormalizeRange приводит свободный ввод к каноническому диапазону.
//
// Принимаются варианты: "7", "7d", "last7days" (регистр и пробелы не важны)
// и аналогичные формы для 30 и 90 дней. Всё остальное - DefaultRange.
func NormalizeRange(token string) string {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(token), " ", ""))

	switch normalized {
	case "7", "7d", "last7days":
		return Range7d
	case "30", "30d", "last30days":
		return Range30d
	case "90", "90d", "last90days":
		return Range90d
	default:
		return DefaultRange
	}
}

// NormalizeLevel приводит фильтр уровня к одному из red/yellow/green/all.
// Пустой или нераспознанный ввод - "all".
func NormalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case models.AlertLevelRed:
		return models.AlertLevelRed
	case models.AlertLevelYellow:
		return models.AlertLevelYellow
	case models.AlertLevelGreen:
		return models.AlertLevelGreen
	default:
		return models.AlertLevelAll
	}
}

// ResolveWindow возвращает окно для диапазона, заякоренное в now.
// Чистая функция без побочных эффектов и без ошибок.
func ResolveWindow(token string, now time.Time) Window {
	canonical := NormalizeRange(token)
	days := rangeDays[canonical]

	end := now.UTC()
	return Window{
		Range: canonical,
		Start: end.AddDate(0, 0, -days),
		End:   end,
	}
}

// Contains проверяет попадание t в окно (границы включительно)
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Previous возвращает непосредственно предшествующий период той же длины:
// previousStart = start - (end - start), previousEnd = start.
// Используется трендовым анализом.
func (w Window) Previous() Window {
	length := w.End.Sub(w.Start)
	return Window{
		Range: w.Range,
		Start: w.Start.Add(-length),
		End:   w.Start,
	}
}
