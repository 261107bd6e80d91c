package validator

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/message"
)

// Engine runs validation specs against a field accessor.
type Engine struct {
	registry *Registry
	resolver *Resolver
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the engine logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine over reg. A nil registry gets the built-ins.
func NewEngine(reg *Registry, opts ...EngineOption) *Engine {
	if reg == nil {
		reg = NewRegistry()
	}
	e := &Engine{
		registry: reg,
		resolver: NewResolver(reg),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine resolves against.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// ValidateAll resolves and runs every spec in order and returns one result
// per (spec, selected field) pair. The first resolution or validator error
// stops the run and is returned as a *SpecError identifying the failing spec.
func (e *Engine) ValidateAll(ctx context.Context, src field.Accessor, specs []Spec) (Results, error) {
	runID := uuid.NewString()
	log := e.logger.With(logger.RunID(runID))
	start := time.Now()

	results := make(Results, 0, len(specs))
	for i, spec := range specs {
		rs, err := e.resolver.Resolve(spec, src)
		if err != nil {
			return nil, e.fail(ctx, log, i, spec.Select, err)
		}
		log.DebugContext(ctx, "spec resolved",
			logger.SpecIndex(i),
			logger.Selector(rs.Selector),
			logger.Validator(rs.Signature),
			logger.Count("fields", len(rs.Fields)),
		)

		for _, f := range rs.Fields {
			valid, err := rs.Check(slices.Clip(results), f)
			if err != nil {
				return nil, e.fail(ctx, log, i, spec.Select, err)
			}

			tmpl := rs.InvalidMessage
			if valid {
				tmpl = rs.ValidMessage
			}
			name := f.DisplayName()
			results = append(results, Result{
				Name:      name,
				Selector:  rs.Selector,
				FieldID:   f.ID,
				Signature: rs.Signature,
				Valid:     valid,
				Message:   message.Render(tmpl, name, rs.Args...),
				Value:     f.Value,
			})
		}
	}

	log.InfoContext(ctx, "validation run finished",
		logger.Count("specs", len(specs)),
		logger.Count("results", len(results)),
		logger.Count("invalid", len(results.Invalid())),
		logger.Duration(time.Since(start)),
	)
	return results, nil
}

func (e *Engine) fail(ctx context.Context, log *slog.Logger, index int, selector string, err error) error {
	specErr := &SpecError{Index: index, Selector: selector, Err: err}
	log.ErrorContext(ctx, "validation run aborted",
		logger.SpecIndex(index),
		logger.Selector(selector),
		logger.Error(err),
	)
	return specErr
}
