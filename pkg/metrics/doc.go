// Package metrics records Prometheus metrics for validation runs.
//
// A Recorder registers three collectors on its own registry:
//
//	fieldcheck_validation_runs_total{form,outcome}          counter, outcome is valid, invalid or error
//	fieldcheck_validation_results_total{form,signature,valid} counter, one per field result
//	fieldcheck_validation_run_duration_seconds{form}        histogram
//
// Results are counted only for runs that completed; a run aborted by a spec
// error increments the error outcome and the duration histogram.
//
// # Usage
//
//	rec := metrics.NewRecorder(nil)
//	api := fieldcheck.NewAPI(engine, forms, fieldcheck.WithMetrics(rec))
//	// GET /metrics now serves rec.Handler()
//
// NewRecorder panics when the collectors are already registered on the given
// registry, as prometheus.MustRegister does.
package metrics
