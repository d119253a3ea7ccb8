package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a key with no object behind it.
var ErrNotFound = errors.New("object not found")

// Error tags a failed object-store operation. The HTTP boundary matches on
// this type to render storage failures; everything else about the failure
// stays in the wrapped error.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
