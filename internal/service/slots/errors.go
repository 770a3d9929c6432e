package slots

import "errors"

var (
	// ErrSlotNotFound is returned when the time slot does not exist
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("slots service: internal error")
)
