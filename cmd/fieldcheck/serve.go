package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck"
	"github.com/dmitrymomot/fieldcheck/pkg/httpserver"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/metrics"
	"github.com/dmitrymomot/fieldcheck/pkg/specfile"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		specsDir string
		addr     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the forms in a directory over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if specsDir == "" {
				specsDir = a.cfg.SpecsDir
			}

			forms, err := specfile.LoadDir(ctx, specsDir)
			if err != nil {
				return err
			}
			a.log.InfoContext(ctx, "forms loaded",
				slog.String("dir", specsDir),
				logger.Count("forms", forms.Len()),
			)

			opts := []httpserver.Option{httpserver.WithLogger(a.log)}
			if addr != "" {
				opts = append(opts, httpserver.WithAddr(addr))
			}
			srv := httpserver.NewFromConfig(a.cfg.HTTP, opts...)

			api := fieldcheck.NewAPI(a.engine(), forms,
				fieldcheck.WithLogger(a.log),
				fieldcheck.WithMetrics(metrics.NewRecorder(nil)),
			)
			return srv.Run(ctx, api.Router())
		},
	}

	cmd.Flags().StringVarP(&specsDir, "specs-dir", "d", "", "directory of form files (overrides SPECS_DIR)")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
