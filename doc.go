// Package fieldcheck exposes the validation engine over HTTP.
//
// An API serves a set of named forms loaded with pkg/specfile and validates
// submitted values against them:
//
//	GET  /health                  liveness probe
//	GET  /ready                   readiness probe
//	GET  /validators              registered validators and their templates
//	GET  /forms                   form names and spec counts
//	GET  /forms/{name}            one form as loaded
//	POST /forms/{name}/validate   validate a form-encoded or JSON body
//	GET  /metrics                 Prometheus metrics, with WithMetrics
//
// Every JSON body uses the JSONResponse envelope. Validation answers 200 when
// every result passed and 422 when any failed; both carry the full result
// list in data. Unknown forms answer 404, unreadable bodies 400 and spec
// resolution failures 500.
//
//	engine := validator.NewEngine(reg, validator.WithLogger(log))
//	api := fieldcheck.NewAPI(engine, forms, fieldcheck.WithLogger(log))
//	srv.Run(ctx, api.Router())
package fieldcheck
