package dashboard

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cotizador/internal/models"
)

// ============================================================
// МЕТРИКИ PROMETHEUS
// ============================================================

var (
	// evaluatorDuration - время работы каждого этапа оценки
	evaluatorDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cotizador",
		Subsystem: "dashboard",
		Name:      "evaluator_duration_seconds",
		Help:      "Длительность работы оценщиков алертов по этапам",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage"})

	// alertsEmitted - количество алертов после агрегации
	alertsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cotizador",
		Subsystem: "dashboard",
		Name:      "alerts_emitted_total",
		Help:      "Количество алертов, вошедших в итоговый ответ",
	}, []string{"category", "level"})

	// evaluationsTotal - количество полных прогонов движка
	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cotizador",
		Subsystem: "dashboard",
		Name:      "evaluations_total",
		Help:      "Количество прогонов движка алертов по результату",
	}, []string{"result"})

	// snapshotSize - размер последнего снимка данных
	snapshotSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "cotizador",
		Subsystem: "dashboard",
		Name:      "snapshot_size",
		Help:      "Количество записей в последнем снимке данных",
	}, []string{"entity"})
)

// observeStage записывает длительность этапа оценки
func observeStage(stage string, start time.Time) {
	evaluatorDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

// recordSnapshot фиксирует размер снимка, по которому шла оценка
func recordSnapshot(snap Snapshot) {
	snapshotSize.WithLabelValues("users").Set(float64(len(snap.Users)))
	snapshotSize.WithLabelValues("budgets").Set(float64(len(snap.Budgets)))
	snapshotSize.WithLabelValues("quotations").Set(float64(len(snap.Quotations)))
}

// recordAlerts фиксирует итоговый набор алертов
func recordAlerts(alerts []models.Alert) {
	for _, a := range alerts {
		alertsEmitted.WithLabelValues(a.Category, a.Level).Inc()
	}
}
