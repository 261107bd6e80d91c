package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/pkg/clientip"
	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/message"
	"github.com/dmitrymomot/fieldcheck/pkg/pattern"
	"github.com/dmitrymomot/fieldcheck/pkg/requestid"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// app holds what every subcommand shares once the root has initialised.
type app struct {
	cfg      appConfig
	log      *slog.Logger
	registry *validator.Registry
	stdout   io.Writer
	stderr   io.Writer

	envFile  string
	logLevel string
	messages string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "fieldcheck",
		Short:         "Validate fields against declarative spec files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "load environment variables from this file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides LOG_LEVEL)")
	flags.StringVar(&a.messages, "messages", "", "YAML or JSON message catalog (overrides MESSAGES_FILE)")

	root.AddCommand(
		newCheckCmd(a),
		newServeCmd(a),
		newValidatorsCmd(a),
		newPatternCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	levelName := a.cfg.LogLevel
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return err
	}
	a.log = logger.New(
		logger.WithEnvironment(a.cfg.Env, a.cfg.ServiceName),
		logger.WithLevel(level),
		logger.WithOutput(a.stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)

	a.registry = validator.NewRegistry(
		validator.WithExtended(),
		validator.WithPatternCache(pattern.NewCache(a.cfg.cacheSize())),
	)

	catalogPath := a.cfg.MessagesFile
	if a.messages != "" {
		catalogPath = a.messages
	}
	if catalogPath == "" {
		return nil
	}
	catalog, err := message.LoadCatalog(cmd.Context(), catalogPath)
	if err != nil {
		return fmt.Errorf("messages: %w", err)
	}
	if err := a.registry.ApplyCatalog(catalog); err != nil {
		return fmt.Errorf("messages: %w", err)
	}
	a.log.DebugContext(cmd.Context(), "message catalog applied",
		slog.String("path", catalogPath),
		logger.Count("entries", len(catalog)),
	)
	return nil
}

func (a *app) engine() *validator.Engine {
	return validator.NewEngine(a.registry, validator.WithLogger(a.log))
}
