// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server.Run blocks until the context is cancelled, SIGINT or SIGTERM is
// received, or Shutdown is called, then drains in-flight requests within the
// shutdown timeout. Settings come from Option functions or from Config, which
// is tagged for pkg/config:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver
