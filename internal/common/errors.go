// Package common defines sentinel errors shared by the cache layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrValidation marks input rejected before it reaches the store.
	ErrValidation = errors.New("validation error")

	// ErrDataIntegrity marks a stored row that does not have the expected shape.
	ErrDataIntegrity = errors.New("data integrity error")

	// ErrStorageUnavailable marks a store that cannot be opened, migrated or written.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
