package dashboard

// Thresholds - пороговые значения всех правил дашборда
//
// Вынесены в единую структуру (а не в глобальные константы), чтобы
// тесты могли подменять отдельные пороги, а конфигурация - переопределять
// их через переменные окружения.
//
// Два вида порогов:
//   - floor-пороги (нагрузка, дни простоя): значение >= порога - плохо
//   - ceiling-пороги (эффективность): значение <= порога - плохо
type Thresholds struct {
	// Нагрузка: количество активных бюджетов котировщика за период
	ActiveQuotationsYellow int
	ActiveQuotationsRed    int

	// Простой: целых дней с момента создания бюджета.
	// ИЗВЕСТНОЕ ОГРАНИЧЕНИЕ: поля "последнее изменение" в модели данных нет,
	// поэтому возраст с момента создания используется как сигнал простоя.
	// Недавно отредактированный, но старый бюджет неотличим от заброшенного.
	// Семантику сохраняем намеренно - см. DESIGN.md.
	DaysWithoutEditYellow int
	DaysWithoutEditRed    int

	// Эффективность: completed/total*100 (ceiling-пороги)
	EfficiencyYellow float64
	EfficiencyRed    float64

	// Тренды
	LoadIncreaseFactor   float64 // рост активных в N раз к прошлому периоду
	EfficiencyDropPoints float64 // падение эффективности в процентных пунктах
	DelayPercentYellow   float64 // доля просроченных среди активных, %
	DelayPercentRed      float64

	// Приоритетные клиенты
	RecurringCustomerMin int // бюджетов за период, чтобы клиент считался постоянным
	RecurringDelayDays   int // дней простоя активного бюджета постоянного клиента

	// Дорогие бюджеты
	HighValueThreshold float64 // сумма, выше которой бюджет считается крупным
	HighValueAgeDays   int     // дней, после которых крупный бюджет "в риске"

	// Координация
	ImbalanceFactor      float64 // превышение средней нагрузки в N раз
	CapacityWarningRatio float64 // доля от yellow-порога нагрузки
}

// DefaultThresholds возвращает пороги по умолчанию
func DefaultThresholds() Thresholds {
	return Thresholds{
		ActiveQuotationsYellow: 3,
		ActiveQuotationsRed:    5,

		DaysWithoutEditYellow: 7,
		DaysWithoutEditRed:    15,

		EfficiencyYellow: 50,
		EfficiencyRed:    30,

		LoadIncreaseFactor:   1.5,
		EfficiencyDropPoints: 15,
		DelayPercentYellow:   15,
		DelayPercentRed:      30,

		RecurringCustomerMin: 3,
		RecurringDelayDays:   15,

		HighValueThreshold: 100000,
		HighValueAgeDays:   10,

		ImbalanceFactor:      1.8,
		CapacityWarningRatio: 0.8,
	}
}
