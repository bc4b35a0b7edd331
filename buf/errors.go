package buf

import "errors"

var (
	// ErrInvalidArgument reports a constructor input that no
	// construction form accepts, such as a negative size.
	ErrInvalidArgument = errors.New("buf: invalid argument")

	// ErrOutOfBounds reports a single-byte index outside [1, Len()].
	ErrOutOfBounds = errors.New("buf: index out of bounds")

	// ErrOutOfRange reports a slice range violating 1 <= start,
	// start <= last+1, last <= Len().
	ErrOutOfRange = errors.New("buf: slice range out of range")

	// ErrLengthMismatch reports a bulk copy between regions of
	// different lengths.
	ErrLengthMismatch = errors.New("buf: length mismatch")
)
