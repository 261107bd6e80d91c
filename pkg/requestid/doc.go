// Package requestid tags every HTTP request with a correlation id.
//
// Middleware reuses the X-Request-ID header sent by the client when it is at
// most 128 characters of letters, digits, '-' and '_'. Otherwise it generates
// a UUID. The id is stored in the request context and echoed in the response
// header.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	log.InfoContext(r.Context(), "form validated") // carries request_id
//
// FromContext returns "" for contexts that did not pass through Middleware.
package requestid
