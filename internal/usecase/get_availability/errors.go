package get_availability

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("get_availability: internal error")
)
