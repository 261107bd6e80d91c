package validator

import "github.com/dmitrymomot/fieldcheck/pkg/signature"

// Ref identifies the validator a spec runs. It is either Named or Custom.
type Ref interface {
	ref()
}

// Named refers to a registry entry. Args parsed from an inline signature
// take precedence over Spec.Args.
type Named struct {
	Name string
	Args Args
}

// Custom runs a caller supplied function that is not in the registry.
type Custom struct {
	Func Func
}

func (Named) ref()  {}
func (Custom) ref() {}

// Sig parses a compact signature such as "lengthRange(2,10)" into a Named ref.
func Sig(s string) Named {
	parsed := signature.Parse(s)
	return Named{Name: parsed.Name, Args: StringArgs(parsed.Args)}
}

// Use wraps fn as a Custom ref.
func Use(fn Func) Custom {
	return Custom{Func: fn}
}

// Spec is a user-authored validation declaration.
type Spec struct {
	// Select is the field selector passed to the accessor.
	Select string
	// Validate names or supplies the validator.
	Validate Ref
	// Args are used when the ref carries no inline arguments.
	Args Args
	// Signature labels the results; defaults to the registry name.
	Signature string
	// ValidMessage and InvalidMessage override the registry templates.
	ValidMessage   string
	InvalidMessage string
}
