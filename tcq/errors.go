package tcq

import "errors"

// Sentinel errors for Queue operations.
var (
	// ErrQueueFull indicates Put was called with no free capacity.
	ErrQueueFull = errors.New("tcq: queue is full")

	// ErrUnderflow indicates a pop or indexed access was attempted on more
	// segments than the queue currently holds.
	ErrUnderflow = errors.New("tcq: queue underflow")

	// ErrBadCapacity indicates New was called with a non-positive capacity.
	ErrBadCapacity = errors.New("tcq: capacity must be positive")
)
