package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolvedValidator is returned when a spec names a validator that is
	// not registered or supplies a nil custom function.
	ErrUnresolvedValidator = errors.New("unresolved validator")

	// ErrMissingArgument is returned when a validator needs more arguments than supplied.
	ErrMissingArgument = errors.New("missing validator argument")

	// ErrInvalidArgument is returned when an argument cannot be decoded into the expected type.
	ErrInvalidArgument = errors.New("invalid validator argument")

	// ErrInvalidRegistration is returned for entries without a name or function.
	ErrInvalidRegistration = errors.New("invalid validator registration")

	// ErrNilAccessor is returned when a run is started without a field accessor.
	ErrNilAccessor = errors.New("nil field accessor")
)

// SpecError ties a resolution or execution failure to the spec that caused it.
type SpecError struct {
	Index    int
	Selector string
	Err      error
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("spec %d (%s): %v", e.Index, e.Selector, e.Err)
}

func (e *SpecError) Unwrap() error {
	return e.Err
}
