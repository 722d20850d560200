package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AutosaveMetrics records the outcome of debounced snapshot writes.
type AutosaveMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewAutosaveMetrics registers the autosave metrics on the provided registerer.
func NewAutosaveMetrics(reg prometheus.Registerer) *AutosaveMetrics {
	if reg == nil {
		return &AutosaveMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "autosave_write_duration_seconds",
		Help:    "Duration of snapshot writes in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "autosave_write_success",
		Help: "Successful snapshot writes.",
	}, []string{"backend"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "autosave_write_failure",
		Help: "Failed snapshot writes.",
	}, []string{"backend"})
	reg.MustRegister(duration, success, failure)
	return &AutosaveMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration of one write for the named backend.
func (a *AutosaveMetrics) ObserveDuration(backend string, duration time.Duration) {
	if a == nil || a.duration == nil {
		return
	}
	a.duration.WithLabelValues(normalizeLabel(backend)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named backend.
func (a *AutosaveMetrics) IncSuccess(backend string) {
	if a == nil || a.success == nil {
		return
	}
	a.success.WithLabelValues(normalizeLabel(backend)).Inc()
}

// IncFailure increments the failure counter for the named backend.
func (a *AutosaveMetrics) IncFailure(backend string) {
	if a == nil || a.failure == nil {
		return
	}
	a.failure.WithLabelValues(normalizeLabel(backend)).Inc()
}

func normalizeLabel(backend string) string {
	if backend == "" {
		return "unknown"
	}
	return backend
}
