// Package metrics exposes Prometheus collectors for estimation runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"sun-to-sort/internal/estimate"
)

// Recorder holds the collectors. Register it once per registry.
type Recorder struct {
	estimations *prometheus.CounterVec
	payback     prometheus.Histogram
	undefined   prometheus.Counter
}

func NewRecorder() *Recorder {
	return &Recorder{
		estimations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sun_to_sort",
			Name:      "estimations_total",
			Help:      "Estimation runs by demand mode and energy-balance status.",
		}, []string{"mode", "status"}),
		payback: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sun_to_sort",
			Name:      "payback_period_years",
			Help:      "Computed payback periods.",
			Buckets:   []float64{1, 2, 3, 5, 7, 10, 15, 20, 30},
		}),
		undefined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sun_to_sort",
			Name:      "payback_undefined_total",
			Help:      "Estimations whose payback period was not computable.",
		}),
	}
}

// MustRegister registers all collectors with reg.
func (r *Recorder) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(r.estimations, r.payback, r.undefined)
}

// Observe records one estimation result. A nil Recorder is a no-op.
func (r *Recorder) Observe(res estimate.Result) {
	if r == nil {
		return
	}
	r.estimations.WithLabelValues(string(res.Mode), string(res.Status)).Inc()
	if res.PaybackPeriodYears == nil {
		r.undefined.Inc()
		return
	}
	r.payback.Observe(*res.PaybackPeriodYears)
}
