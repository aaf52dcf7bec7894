package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOffset   = errors.New("offset must not be negative")
	ErrInvalidLimit    = errors.New("invalid limit")
	ErrQueryTooLong    = errors.New("search term is too long")
	ErrInvalidFilter   = errors.New("filter must be a string, an array or an object")
	ErrEmptyIdentifier = errors.New("identifier list contains an empty value")
	ErrEmptyKeyID      = errors.New("publishable key id is required")
)
