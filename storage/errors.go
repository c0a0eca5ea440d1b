package storage

import "errors"

var (
	// ErrDirectoryUnavailable indicates the store directory could not be resolved or created.
	ErrDirectoryUnavailable = errors.New("storage: directory unavailable")

	// ErrInvalidName indicates the store name cannot be used as a directory name.
	ErrInvalidName = errors.New("storage: invalid store name")

	// ErrInvalidIdentifier indicates the identifier is empty after trimming or
	// would resolve outside the store directory.
	ErrInvalidIdentifier = errors.New("storage: invalid identifier")

	// ErrNoDataProvided indicates the data provider returned no bytes.
	ErrNoDataProvided = errors.New("storage: no data provided")

	// ErrIOFailure indicates a file read/write error.
	ErrIOFailure = errors.New("storage: I/O failure")

	// ErrClosed indicates an operation was submitted after Close.
	ErrClosed = errors.New("storage: store is closed")
)
