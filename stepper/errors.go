package stepper

import "errors"

// VelEpsilon is the velocity tolerance below which two speeds are treated
// as equal.
const VelEpsilon = 1e-6

// Sentinel errors for stepper primitives.
var (
	// ErrRampNeedsFinalVel indicates RampAccel was asked to ramp toward a
	// final velocity at or below VelEpsilon, which the ramp solver can't
	// divide by.
	ErrRampNeedsFinalVel = errors.New("stepper: ramp final velocity must exceed VelEpsilon")
)
