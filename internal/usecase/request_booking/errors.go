package request_booking

import "errors"

var (
	// ErrSlotNotFound is returned when the requested time slot does not exist
	ErrSlotNotFound = errors.New("request_booking: time slot not found")

	// ErrSlotInactive is returned when the requested time slot is soft-disabled
	ErrSlotInactive = errors.New("request_booking: time slot is inactive")

	// ErrSlotFull is returned when the slot has no remaining capacity.
	// This is an expected business rejection, not a system fault.
	ErrSlotFull = errors.New("request_booking: time slot is fully booked")

	// ErrStoreNotFound is returned when the slot's owning store does not exist
	ErrStoreNotFound = errors.New("request_booking: store not found")

	// ErrStoreInactive is returned when the slot's owning store is disabled
	ErrStoreInactive = errors.New("request_booking: store is inactive")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("request_booking: invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("request_booking: internal error")
)
