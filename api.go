package fieldcheck

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fieldcheck/pkg/clientip"
	"github.com/dmitrymomot/fieldcheck/pkg/field"
	"github.com/dmitrymomot/fieldcheck/pkg/httpserver"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/metrics"
	"github.com/dmitrymomot/fieldcheck/pkg/requestid"
	"github.com/dmitrymomot/fieldcheck/pkg/specfile"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// DefaultMaxBodySize bounds request bodies accepted by the validate endpoint.
const DefaultMaxBodySize int64 = 1 << 20

// API serves validation forms over HTTP.
type API struct {
	engine      *validator.Engine
	forms       *specfile.Forms
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxBodySize int64
}

// APIOption configures an API.
type APIOption func(*API)

// WithLogger sets the API logger. Nil is ignored.
func WithLogger(l *slog.Logger) APIOption {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics records every validation run and serves GET /metrics.
func WithMetrics(m *metrics.Recorder) APIOption {
	return func(a *API) {
		a.metrics = m
	}
}

// WithMaxBodySize overrides DefaultMaxBodySize. Non-positive sizes are ignored.
func WithMaxBodySize(n int64) APIOption {
	return func(a *API) {
		if n > 0 {
			a.maxBodySize = n
		}
	}
}

// NewAPI creates an API. A nil engine gets the built-in validators and a nil
// form collection is empty.
func NewAPI(engine *validator.Engine, forms *specfile.Forms, opts ...APIOption) *API {
	if engine == nil {
		engine = validator.NewEngine(nil)
	}
	if forms == nil {
		forms = specfile.NewForms()
	}
	a := &API{
		engine:      engine,
		forms:       forms,
		logger:      logger.Discard(),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Router returns the HTTP routes of the API.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)

	r.NotFound(a.handle(func(*http.Request) Response { return JSONError(ErrNotFound) }))
	r.Get("/health", httpserver.HealthCheckHandler(a.logger))
	r.Get("/ready", httpserver.HealthCheckHandler(a.logger, httpserver.Probe{Name: "registry", Check: a.registryReady}))
	r.Get("/validators", a.handle(a.listValidators))
	r.Route("/forms", func(r chi.Router) {
		r.Get("/", a.handle(a.listForms))
		r.Get("/{name}", a.handle(a.getForm))
		r.Post("/{name}/validate", a.handle(a.validateForm))
	})
	if a.metrics != nil {
		r.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	}
	return r
}

func (a *API) handle(h func(r *http.Request) Response) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(r).Render(w, r); err != nil {
			a.logger.ErrorContext(r.Context(), "render response", logger.Error(err))
		}
	}
}

func (a *API) registryReady(context.Context) error {
	if len(a.engine.Registry().Names()) == 0 {
		return errNoValidators
	}
	return nil
}

type validatorInfo struct {
	Name           string `json:"name"`
	ValidMessage   string `json:"validMessage,omitempty"`
	InvalidMessage string `json:"invalidMessage,omitempty"`
}

func (a *API) listValidators(*http.Request) Response {
	entries := a.engine.Registry().Entries()
	out := make([]validatorInfo, len(entries))
	for i, e := range entries {
		out[i] = validatorInfo{Name: e.Name, ValidMessage: e.ValidMessage, InvalidMessage: e.InvalidMessage}
	}
	return JSON("validators", out, map[string]any{"count": len(out)})
}

type formInfo struct {
	Name  string `json:"name"`
	Specs int    `json:"specs"`
}

func (a *API) listForms(*http.Request) Response {
	names := a.forms.Names()
	out := make([]formInfo, 0, len(names))
	for _, name := range names {
		if f, err := a.forms.Get(name); err == nil {
			out = append(out, formInfo{Name: f.Name, Specs: len(f.Specs)})
		}
	}
	return JSON("forms", out, map[string]any{"count": len(out)})
}

func (a *API) getForm(r *http.Request) Response {
	form, err := a.forms.Get(chi.URLParam(r, "name"))
	if err != nil {
		return JSONError(ErrFormNotFound)
	}
	return JSON("form", form, nil)
}

func (a *API) validateForm(r *http.Request) Response {
	ctx := r.Context()
	form, err := a.forms.Get(chi.URLParam(r, "name"))
	if err != nil {
		return JSONError(ErrFormNotFound)
	}

	src, err := a.readFields(r, form.Labels)
	if err != nil {
		a.logger.WarnContext(ctx, "unreadable validation body", logger.Form(form.Name), logger.Error(err))
		return JSONError(err)
	}

	start := time.Now()
	results, err := a.engine.ValidateAll(ctx, src, form.ValidatorSpecs())
	if a.metrics != nil {
		a.metrics.ObserveRun(form.Name, results, err, time.Since(start))
	}
	if err != nil {
		a.logger.ErrorContext(ctx, "form validation failed", logger.Form(form.Name), logger.Error(err))
		return JSONError(err)
	}

	a.logger.InfoContext(ctx, "form validated",
		logger.Form(form.Name),
		logger.Count("results", len(results)),
		slog.Bool("valid", results.AllValid()),
		logger.Duration(time.Since(start)),
	)
	return ValidationReport(results, map[string]any{"form": form.Name})
}

// readFields builds the accessor from a JSON body, or from the posted form
// values for any other content type.
func (a *API) readFields(r *http.Request, labels field.Labels) (field.Accessor, error) {
	body := http.MaxBytesReader(nil, r.Body, a.maxBodySize)
	defer body.Close()

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		data, err := io.ReadAll(body)
		if err != nil {
			return nil, bodyError(err)
		}
		set, err := field.FromJSON(data, labels)
		if err != nil {
			return nil, errors.Join(ErrBadRequest, err)
		}
		return set, nil
	}

	r.Body = body
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(a.maxBodySize); err != nil {
			return nil, bodyError(err)
		}
		return field.FromForm(r.PostForm, labels), nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, bodyError(err)
	}
	return field.FromForm(r.PostForm, labels), nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errors.Join(ErrRequestTooLarge, err)
	}
	return errors.Join(ErrBadRequest, err)
}
