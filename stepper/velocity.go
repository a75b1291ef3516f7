package stepper

import (
	"math"

	"github.com/syncpath/tpcore/tc"
)

// saturate clamps x to [-limit, limit].
func saturate(x, limit float64) float64 {
	if limit < 0 {
		limit = -limit
	}
	if x > limit {
		return limit
	}
	if x < -limit {
		return -limit
	}
	return x
}

// TrapezoidalAccel solves for the acceleration and peak-velocity-this-cycle
// that get seg from its current velocity toward targetVel without
// overshooting its remaining distance, honoring finalvel as the velocity
// the segment must have left when it reaches target.
func TrapezoidalAccel(seg *tc.Segment, maxAccel, targetVel, velLimit, feedScale float64, isPureRotary, positionSynced bool) (accel, velDesired float64) {
	dx := seg.Target - seg.Progress
	vFinal := seg.FinalVel * feedScale
	discr := vFinal*vFinal +
		maxAccel*(2*dx-seg.CurrentVel*seg.CycleTime) +
		math.Pow(maxAccel*seg.CycleTime*0.5, 2)

	sqrtTerm := 0.0
	if discr > 0 {
		sqrtTerm = math.Sqrt(discr)
	}
	maxNewVel := -maxAccel*seg.CycleTime*0.5 + sqrtTerm

	newVel := saturate(maxNewVel, targetVel)
	if !isPureRotary && !positionSynced {
		newVel = saturate(newVel, velLimit)
	}

	accel = saturate((newVel-seg.CurrentVel)/seg.CycleTime, maxAccel)
	return accel, maxNewVel
}

// RampAccel solves for a single constant acceleration that carries seg's
// current velocity to finalVel over its remaining distance, used instead of
// TrapezoidalAccel when the planner chooses ramp (rather than trapezoidal)
// mode for a segment.
func RampAccel(seg *tc.Segment, finalVel, maxAccel float64) (float64, error) {
	if finalVel < VelEpsilon {
		return 0, ErrRampNeedsFinalVel
	}
	dx := seg.Target - seg.Progress
	velAvg := (seg.CurrentVel + finalVel) / 2
	dt := dx / velAvg
	if dt < 1e-16 {
		dt = 1e-16
	}
	accelFinal := (finalVel - seg.CurrentVel) / dt
	return saturate(accelFinal, maxAccel), nil
}

// UpdateDistFromAccel integrates seg's velocity and progress forward by one
// cycle at the given acceleration, targeting velDesired, and sets
// seg.OnFinalDecel to whether the segment has reached its final
// deceleration leg.
func UpdateDistFromAccel(seg *tc.Segment, accel, velDesired float64) {
	vNext := seg.CurrentVel + accel*seg.CycleTime
	if vNext < 0 {
		vNext = 0
		if (seg.Target - seg.Progress) < seg.CurrentVel*seg.CycleTime {
			seg.Progress = seg.Target
		}
	} else {
		displacement := (vNext + seg.CurrentVel) * 0.5 * seg.CycleTime
		seg.Progress += displacement
		if seg.Progress > seg.Target {
			seg.Progress = seg.Target
		}
	}
	seg.CurrentVel = vNext
	seg.OnFinalDecel = math.Abs(velDesired-seg.CurrentVel) < VelEpsilon && accel < 0
}
