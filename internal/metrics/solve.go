// Package metrics Prometheus-метрики решений и показатели процесса.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SolveMetrics счётчики и гистограммы запусков решений.
// Метрики регистрируются в переданном регистре, а не в глобальном,
// чтобы в одном процессе можно было держать несколько экземпляров.
type SolveMetrics struct {
	duration  *prometheus.HistogramVec
	solved    *prometheus.CounterVec
	failures  *prometheus.CounterVec
	cacheHits *prometheus.CounterVec
}

// NewSolveMetrics создаёт метрики и регистрирует их в reg
func NewSolveMetrics(reg prometheus.Registerer) *SolveMetrics {
	sm := &SolveMetrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "aoc",
			Name:      "solve_duration_seconds",
			Help:      "Длительность решения одной части.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"day", "part"}),
		solved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aoc",
			Name:      "solved_total",
			Help:      "Число успешно решённых частей.",
		}, []string{"day", "part"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aoc",
			Name:      "solve_errors_total",
			Help:      "Число решений, завершившихся ошибкой.",
		}, []string{"day", "part", "reason"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aoc",
			Name:      "cache_hits_total",
			Help:      "Ответы, взятые из кэша без решения.",
		}, []string{"day", "part"}),
	}

	reg.MustRegister(sm.duration, sm.solved, sm.failures, sm.cacheHits)
	return sm
}

func labels(day, part int) (string, string) {
	return strconv.Itoa(day), strconv.Itoa(part)
}

// ObserveSolved учитывает успешное решение
func (sm *SolveMetrics) ObserveSolved(day, part int, d time.Duration) {
	dl, pl := labels(day, part)
	sm.duration.WithLabelValues(dl, pl).Observe(d.Seconds())
	sm.solved.WithLabelValues(dl, pl).Inc()
}

// ObserveFailure учитывает ошибку решения с короткой причиной
func (sm *SolveMetrics) ObserveFailure(day, part int, reason string) {
	dl, pl := labels(day, part)
	sm.failures.WithLabelValues(dl, pl, reason).Inc()
}

// ObserveCacheHit учитывает ответ из кэша
func (sm *SolveMetrics) ObserveCacheHit(day, part int) {
	dl, pl := labels(day, part)
	sm.cacheHits.WithLabelValues(dl, pl).Inc()
}
