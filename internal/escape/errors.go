package escape

import (
	"errors"
	"fmt"
)

// DecodeError reports a malformed \u escape found by Decode.
type DecodeError struct {
	// Offset is the rune index of the backslash that starts the escape.
	Offset int

	// Sequence is the offending escape as it appeared in the input.
	Sequence string

	Reason string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to parse unicode value %q at offset %d: %s", e.Sequence, e.Offset, e.Reason)
}

// IsDecodeError returns true if err is, or wraps, a *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
