package validator

import (
	"fmt"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
)

// ResolvedSpec is a spec ready for execution.
type ResolvedSpec struct {
	Selector string
	Fields   []field.Field
	// Validator is the registry name, empty for custom functions.
	Validator      string
	Check          Check
	Args           Args
	Signature      string
	ValidMessage   string
	InvalidMessage string
}

// Resolver turns specs into resolved specs using a registry.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a resolver backed by reg. A nil registry gets the
// built-ins.
func NewResolver(reg *Registry) *Resolver {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Resolver{registry: reg}
}

// Resolve binds the spec's validator and arguments, fills in default
// messages and signature, and selects its fields from src.
func (r *Resolver) Resolve(spec Spec, src field.Accessor) (ResolvedSpec, error) {
	if src == nil {
		return ResolvedSpec{}, ErrNilAccessor
	}

	rs := ResolvedSpec{
		Selector:       spec.Select,
		Args:           spec.Args,
		Signature:      spec.Signature,
		ValidMessage:   spec.ValidMessage,
		InvalidMessage: spec.InvalidMessage,
	}

	switch ref := spec.Validate.(type) {
	case Named:
		entry, ok := r.registry.Lookup(ref.Name)
		if !ok {
			return ResolvedSpec{}, fmt.Errorf("%w: %q", ErrUnresolvedValidator, ref.Name)
		}
		if len(ref.Args) > 0 {
			rs.Args = ref.Args
		}
		check, err := entry.bind(rs.Args)
		if err != nil {
			return ResolvedSpec{}, fmt.Errorf("%s: %w", entry.Name, err)
		}
		rs.Validator = entry.Name
		rs.Check = check
		if rs.Signature == "" {
			rs.Signature = entry.Name
		}
		if rs.ValidMessage == "" {
			rs.ValidMessage = entry.ValidMessage
		}
		if rs.InvalidMessage == "" {
			rs.InvalidMessage = entry.InvalidMessage
		}

	case Custom:
		if ref.Func == nil {
			return ResolvedSpec{}, fmt.Errorf("%w: nil custom function", ErrUnresolvedValidator)
		}
		fn, args := ref.Func, rs.Args
		rs.Check = func(prior Results, f field.Field) (bool, error) {
			return fn(prior, f, args)
		}

	default:
		return ResolvedSpec{}, fmt.Errorf("%w: unsupported reference %T", ErrUnresolvedValidator, spec.Validate)
	}

	fields, err := src.Select(spec.Select)
	if err != nil {
		return ResolvedSpec{}, err
	}
	rs.Fields = fields

	return rs, nil
}
