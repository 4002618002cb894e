package shortcuts

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is matched by every structural decode failure.
var ErrMalformedInput = errors.New("malformed shortcuts data")

// MalformedInputError describes where the decoder gave up.
type MalformedInputError struct {
	Offset int
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", ErrMalformedInput, e.Offset, e.Reason)
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func malformed(offset int, format string, args ...interface{}) error {
	return &MalformedInputError{
		Offset: offset,
		Reason: fmt.Sprintf(format, args...),
	}
}
