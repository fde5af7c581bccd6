package util

import "errors"

var (
	// ErrInvalidArgument marks requests rejected before any store call.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStoreUnavailable marks connectivity and timeout failures of the entity store.
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotFound         = errors.New("not found")
)
