package storeservice

import "errors"

var (
	// ErrStoreNotFound is returned when the store does not exist
	ErrStoreNotFound = errors.New("store not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("storeservice client: internal error")

	// ErrInvalidResponse is returned on an unexpected response from the service
	ErrInvalidResponse = errors.New("storeservice client: invalid response")

	// ErrServiceDegraded is returned when graceful degradation is applied.
	// It signals that StoreService is unreachable and the caller should
	// proceed without store validation rather than fail the booking.
	ErrServiceDegraded = errors.New("storeservice unavailable: graceful degradation applied")
)
