package posemath

import "errors"

// Sentinel errors for posemath constructors.
var (
	// ErrZeroLength indicates a line or arc with no measurable extent.
	ErrZeroLength = errors.New("posemath: zero-length geometry")

	// ErrZeroRadius indicates a circle with a non-positive radius.
	ErrZeroRadius = errors.New("posemath: radius must be positive")

	// ErrCollinear indicates three points used to fit a circle are collinear
	// (or coincident), so no unique circle passes through them.
	ErrCollinear = errors.New("posemath: points are collinear")

	// ErrNotUnit indicates a vector could not be normalized (zero magnitude).
	ErrNotUnit = errors.New("posemath: cannot normalize zero vector")
)
