package storage

import "errors"

var (
	// ErrStorageIO is returned when a low-level I/O failure occurs during a storage operation.
	ErrStorageIO = errors.New("storage: I/O error")

	// ErrNoSnapshot is returned when a snapshot is requested but none has been saved.
	ErrNoSnapshot = errors.New("storage: no snapshot available")

	// ErrCorruptedSnapshot is returned when a stored snapshot is truncated or
	// fails its checksum.
	ErrCorruptedSnapshot = errors.New("storage: corrupted snapshot data")
)
