package specfile

import "errors"

var (
	ErrLoadingCancelled  = errors.New("loading spec file cancelled")
	ErrFailedToReadFile  = errors.New("failed to read spec file")
	ErrFailedToParse     = errors.New("failed to parse spec file")
	ErrUnsupportedFormat = errors.New("unsupported spec file format")
	ErrInvalidEntry      = errors.New("invalid spec entry")
	ErrFailedToReadDir   = errors.New("failed to read spec directory")
	ErrDuplicateForm     = errors.New("duplicate form name")
	ErrFormNotFound      = errors.New("form not found")
)
