// Package metrics - метрики Prometheus для опроса и рассылки.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "slotnotifier"

var (
	// PollCycles - завершённые и пропущенные циклы опроса
	PollCycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poll",
			Name:      "cycles_total",
			Help:      "Poll cycles by result (completed, skipped, cancelled)",
		},
		[]string{"result"},
	)

	// PollDuration - длительность полного цикла
	PollDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "poll",
			Name:      "cycle_duration_seconds",
			Help:      "Duration of a full poll cycle",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// EntryOutcomes - исход обработки каждого сервиса
	EntryOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "poll",
			Name:      "entry_outcomes_total",
			Help:      "Per-service poll outcome (failed, no_term, unchanged, changed)",
		},
		[]string{"service", "outcome"},
	)

	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "bookero",
			Name:      "fetch_duration_seconds",
			Help:      "Time to fetch availability from the booking API",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"service", "status"},
	)

	notificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notifications",
			Name:      "sent_total",
			Help:      "Broadcast messages by delivery status",
		},
		[]string{"status"},
	)
)

// RecordFetch records a fetch attempt duration.
func RecordFetch(service string, ok bool, d time.Duration) {
	status := "ok"
	if !ok {
		status = "error"
	}
	fetchDuration.WithLabelValues(service, status).Observe(d.Seconds())
}

// RecordNotification records one broadcast delivery attempt.
func RecordNotification(ok bool) {
	if ok {
		notificationsSent.WithLabelValues("ok").Inc()
		return
	}
	notificationsSent.WithLabelValues("failed").Inc()
}
