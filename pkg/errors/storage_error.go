package pkgerrors

import (
	"errors"
	"fmt"
)

// ErrPayloadTooLarge is returned when an upload body exceeds the per-file
// size ceiling while it is being decoded.
var ErrPayloadTooLarge = errors.New("file too large")

// ConfigurationError means the durable store was requested but its
// credentials are incomplete. Hint tells the operator what to set.
type ConfigurationError struct {
	Hint string
}

func (e *ConfigurationError) Error() string {
	return "cloud storage not configured"
}

// StorageError wraps a failure from the object store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
