package field

import "errors"

var (
	// ErrInvalidSelector is returned for selectors with empty terms.
	ErrInvalidSelector = errors.New("invalid field selector")

	// ErrInvalidDocument is returned when a JSON source is not a valid JSON object or array.
	ErrInvalidDocument = errors.New("invalid JSON document")
)
