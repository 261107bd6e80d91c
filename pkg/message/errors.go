package message

import "errors"

var (
	ErrLoadingCancelled    = errors.New("loading message catalog cancelled")
	ErrFailedToReadFile    = errors.New("failed to read message catalog file")
	ErrFailedToParse       = errors.New("failed to parse message catalog")
	ErrUnsupportedFormat   = errors.New("unsupported message catalog format")
	ErrInvalidCatalogEntry = errors.New("invalid message catalog entry")
)
