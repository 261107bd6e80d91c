package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/metrics"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func scrape(t *testing.T, rec *metrics.Recorder) string {
	t.Helper()
	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	rec := metrics.NewRecorder(nil)

	rec.ObserveRun("signup", validator.Results{
		{FieldID: "email", Signature: "required", Valid: true},
		{FieldID: "email", Signature: "email", Valid: false},
	}, nil, 2*time.Millisecond)
	rec.ObserveRun("signup", validator.Results{
		{FieldID: "email", Signature: "required", Valid: true},
	}, nil, time.Millisecond)
	rec.ObserveRun("signup", nil, errors.New("boom"), time.Millisecond)

	out := scrape(t, rec)
	assert.Contains(t, out, `fieldcheck_validation_runs_total{form="signup",outcome="invalid"} 1`)
	assert.Contains(t, out, `fieldcheck_validation_runs_total{form="signup",outcome="valid"} 1`)
	assert.Contains(t, out, `fieldcheck_validation_runs_total{form="signup",outcome="error"} 1`)
	assert.Contains(t, out, `fieldcheck_validation_results_total{form="signup",signature="required",valid="true"} 2`)
	assert.Contains(t, out, `fieldcheck_validation_results_total{form="signup",signature="email",valid="false"} 1`)
	assert.Contains(t, out, `fieldcheck_validation_run_duration_seconds_count{form="signup"} 3`)
}

func TestRecorderSharedRegistry(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)
	rec.ObserveRun("login", validator.Results{{Signature: "required", Valid: true}}, nil, 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "fieldcheck_validation_runs_total")

	assert.Panics(t, func() { metrics.NewRecorder(reg) }, "registering twice on one registry")
}
