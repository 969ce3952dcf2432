package scheduling

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// validationDuration tracks the time taken for conflict validation.
	validationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scheduling_validation_duration_seconds",
		Help:    "Time taken for sale conflict validation",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})

	// validationVerdicts counts verdicts by outcome.
	validationVerdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_validation_verdicts_total",
		Help: "Total validation verdicts by outcome",
	}, []string{"outcome"}) // outcome: valid, invalid

	// conflictsFound counts conflicts by kind.
	conflictsFound = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_conflicts_total",
		Help: "Total conflicts found by kind",
	}, []string{"kind"}) // kind: direct, cooldown

	// candidateCount tracks the size of candidate sets per validation.
	candidateCount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scheduling_validation_candidates_count",
		Help:    "Number of existing sales considered per validation",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})
)

// MetricsRecorder provides methods for recording validation metrics.
type MetricsRecorder struct{}

// NewMetricsRecorder creates a new metrics recorder.
func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{}
}

// RecordValidationDuration records how long a validation took.
func (m *MetricsRecorder) RecordValidationDuration(d time.Duration) {
	validationDuration.Observe(d.Seconds())
}

// RecordVerdict records a validation outcome and its conflict counts.
func (m *MetricsRecorder) RecordVerdict(v Verdict) {
	outcome := "valid"
	if !v.Valid {
		outcome = "invalid"
	}
	validationVerdicts.WithLabelValues(outcome).Inc()
	if n := len(v.DirectConflicts); n > 0 {
		conflictsFound.WithLabelValues("direct").Add(float64(n))
	}
	if n := len(v.CooldownConflicts); n > 0 {
		conflictsFound.WithLabelValues("cooldown").Add(float64(n))
	}
}

// RecordCandidateCount records the number of existing sales considered.
func (m *MetricsRecorder) RecordCandidateCount(n int) {
	candidateCount.Observe(float64(n))
}
