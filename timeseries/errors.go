package timeseries

import "errors"

// Errors returned by series constructors and accessors. They are always
// wrapped with context, so compare with errors.Is.
var (
	// ErrInvalidArgument reports a negative or otherwise meaningless
	// dimension given at construction.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrShapeMismatch reports a time axis whose length cannot be reconciled
	// with the dimensions of the value buffer.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrIndexOutOfRange reports an access outside the bounds of a time,
	// value or auxiliary axis.
	ErrIndexOutOfRange = errors.New("index out of range")
)
