package repo

import "errors"

var (
	// ErrStoreFailure wraps every failure of the backing store.
	ErrStoreFailure = errors.New("store failure")

	ErrUnknownWorksheet      = errors.New("unknown worksheet")
	ErrSessionNotFound       = errors.New("session not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrDuplicatedValueUnique = errors.New("unique constraint violation")
)
