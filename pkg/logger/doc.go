// Package logger builds the structured slog loggers used across fieldcheck
// and provides attribute helpers that keep key names consistent.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithDevelopment / WithProduction / WithEnvironment pick per environment
//     defaults (text + debug, or JSON + info).
//   - WithFormat, WithLevel and WithOutput override the defaults.
//   - WithAttr attaches static attributes to every record.
//   - WithContextExtractors / WithContextValue inject attributes taken from
//     the context passed to the *Context logging methods.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "fieldcheck"),
//	    logger.WithLevel(level),
//	)
//	log.InfoContext(ctx, "validation run finished",
//	    logger.RunID(id),
//	    logger.Count("results", len(results)),
//	    logger.Duration(time.Since(start)),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally. Discard returns a logger that drops every record
// and is the default for components that were not given a logger.
package logger
