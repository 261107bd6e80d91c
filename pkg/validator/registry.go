package validator

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
	"github.com/dmitrymomot/fieldcheck/pkg/message"
	"github.com/dmitrymomot/fieldcheck/pkg/pattern"
)

// Func validates one field. prior holds the results produced earlier in the
// same run and must be treated as read-only.
type Func func(prior Results, f field.Field, args Args) (bool, error)

// Check is a validator with its arguments already bound.
type Check func(prior Results, f field.Field) (bool, error)

// Binder decodes arguments once and returns the bound check. Decoding errors
// surface while the spec is resolved instead of on every field.
type Binder func(args Args) (Check, error)

// Entry is a registered validator.
type Entry struct {
	Name           string
	Func           Func
	Bind           Binder
	ValidMessage   string
	InvalidMessage string
}

func (e Entry) bind(args Args) (Check, error) {
	if e.Bind != nil {
		return e.Bind(args)
	}
	fn := e.Func
	return func(prior Results, f field.Field) (bool, error) {
		return fn(prior, f, args)
	}, nil
}

// Registry maps validator names to entries. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]Entry
	patterns *pattern.Cache
}

type registryConfig struct {
	builtins bool
	extended bool
	patterns *pattern.Cache
}

// RegistryOption configures NewRegistry.
type RegistryOption func(*registryConfig)

// WithoutBuiltins creates an empty registry.
func WithoutBuiltins() RegistryOption {
	return func(c *registryConfig) { c.builtins = false }
}

// WithExtended also registers the format and cross-field validators.
func WithExtended() RegistryOption {
	return func(c *registryConfig) { c.extended = true }
}

// WithPatternCache shares a compiled pattern cache with the registry.
// Nil caches are ignored.
func WithPatternCache(cache *pattern.Cache) RegistryOption {
	return func(c *registryConfig) {
		if cache != nil {
			c.patterns = cache
		}
	}
}

// NewRegistry creates a registry with the built-in validators installed.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := &registryConfig{builtins: true}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.patterns == nil {
		cfg.patterns = pattern.NewCache(pattern.DefaultCacheSize)
	}

	r := &Registry{
		entries:  make(map[string]Entry),
		patterns: cfg.patterns,
	}
	if cfg.builtins {
		r.install(builtinEntries(r.patterns))
	}
	if cfg.extended {
		r.install(extendedEntries(r.patterns))
	}
	return r
}

func (r *Registry) install(entries []Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range entries {
		r.entries[e.Name] = e
	}
}

// Register adds or replaces a validator under name.
func (r *Registry) Register(name string, fn Func, validMessage, invalidMessage string) error {
	return r.RegisterEntry(Entry{
		Name:           name,
		Func:           fn,
		ValidMessage:   validMessage,
		InvalidMessage: invalidMessage,
	})
}

// RegisterEntry adds or replaces a fully described validator.
func (r *Registry) RegisterEntry(e Entry) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRegistration)
	}
	if e.Func == nil {
		return fmt.Errorf("%w: %q has no function", ErrInvalidRegistration, e.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.Name] = e
	return nil
}

// MustRegister is like Register but panics on invalid registrations.
func (r *Registry) MustRegister(name string, fn Func, validMessage, invalidMessage string) {
	if err := r.Register(name, fn, validMessage, invalidMessage); err != nil {
		panic(err)
	}
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Entries returns every entry sorted by name.
func (r *Registry) Entries() []Entry {
	names := r.Names()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		if e, ok := r.Lookup(name); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Invoke runs the validator registered under name directly.
func (r *Registry) Invoke(name string, prior Results, f field.Field, args Args) (bool, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnresolvedValidator, name)
	}
	return e.Func(prior, f, args)
}

// ApplyCatalog replaces default message templates with the ones from
// catalog. Empty catalog templates keep the current template. Every catalog
// name must already be registered.
func (r *Registry) ApplyCatalog(catalog message.Catalog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var unknown []string
	for name := range catalog {
		if _, ok := r.entries[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return fmt.Errorf("%w: catalog names %s", ErrUnresolvedValidator, strings.Join(unknown, ", "))
	}

	for name, tmpl := range catalog {
		e := r.entries[name]
		if tmpl.Valid != "" {
			e.ValidMessage = tmpl.Valid
		}
		if tmpl.Invalid != "" {
			e.InvalidMessage = tmpl.Invalid
		}
		r.entries[name] = e
	}
	return nil
}

// Patterns returns the compiled pattern cache used by pattern validators.
func (r *Registry) Patterns() *pattern.Cache {
	return r.patterns
}
