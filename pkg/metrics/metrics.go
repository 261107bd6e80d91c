package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

const namespace = "fieldcheck"

// Run outcomes used as the "outcome" label.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Recorder implements validation metrics on a Prometheus registry.
type Recorder struct {
	gatherer prometheus.Gatherer

	runsTotal    *prometheus.CounterVec
	resultsTotal *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
}

// NewRecorder registers the validation metrics on reg. A nil reg gets a
// fresh registry so tests and multiple servers never collide.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Recorder{
		gatherer: reg,
		runsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_runs_total",
				Help:      "Total number of validation runs by form and outcome",
			},
			[]string{"form", "outcome"},
		),
		resultsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_results_total",
				Help:      "Total number of field results by form, signature and validity",
			},
			[]string{"form", "signature", "valid"},
		),
		runDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "validation_run_duration_seconds",
				Help:      "Duration of validation runs in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"form"},
		),
	}
}

// ObserveRun records one ValidateAll call. Results are only counted when the
// run finished without error.
func (r *Recorder) ObserveRun(form string, results validator.Results, err error, d time.Duration) {
	outcome := OutcomeValid
	switch {
	case err != nil:
		outcome = OutcomeError
	case !results.AllValid():
		outcome = OutcomeInvalid
	}

	r.runsTotal.WithLabelValues(form, outcome).Inc()
	r.runDuration.WithLabelValues(form).Observe(d.Seconds())

	if err != nil {
		return
	}
	for _, res := range results {
		valid := "false"
		if res.Valid {
			valid = "true"
		}
		r.resultsTotal.WithLabelValues(form, res.Signature, valid).Inc()
	}
}

// Handler exposes the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
