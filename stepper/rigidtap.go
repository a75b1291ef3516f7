package stepper

import (
	"github.com/syncpath/tpcore/posemath"
	"github.com/syncpath/tpcore/tc"
)

// RigidTapEvent reports the side effects AdvanceRigidTap wants the caller
// to apply to the machine boundary; stepper itself never touches iocap.
type RigidTapEvent struct {
	// ReverseSpindle is true on the cycle the spindle direction should flip.
	ReverseSpindle bool
	// ClearSync is true once the tap has fully completed and the segment
	// should resume ordinary (unsynchronized) feed to its final placement.
	ClearSync bool
	// TargetVelOverride, if non-nil, is the velocity the segment should
	// target for its remaining (unsynchronized) travel.
	TargetVelOverride *float64
}

// AdvanceRigidTap drives the rigid-tap state machine one cycle forward.
// newSpindlePos is the current, signed cumulative spindle position in
// revolutions; spindleOffset is the
// planner's running spindle-to-position offset; maxVel is the segment's
// unsynchronized maximum velocity, used once the tap reaches final
// placement.
func AdvanceRigidTap(seg *tc.Segment, newSpindlePos, uuPerRev, spindleOffset, maxVel float64) RigidTapEvent {
	rt := &seg.RigidTap
	old := rt.PrevSpindlePos
	var event RigidTapEvent

	line, _ := seg.XYZ.(posemath.Line)
	currentPoint := line.PointAt(seg.Progress)

	switch rt.State {
	case tc.TapStateTapping:
		if seg.Progress >= rt.ReversalTarget {
			rt.State = tc.TapStateReversing
			event.ReverseSpindle = true
		}

	case tc.TapStateReversing:
		if newSpindlePos < old {
			rt.SpindleRevsAtReversal = newSpindlePos + spindleOffset
			aux, err := posemath.NewLine(currentPoint, rt.OriginalStart)
			if err == nil {
				rt.Aux = aux
				seg.XYZ = aux
				rt.ReversalTarget = aux.Length()
				seg.Target = aux.Length() + uuPerRev*tc.RigidTapOvershootRevs
				seg.Progress = 0
			}
			rt.State = tc.TapStateRetraction
		}

	case tc.TapStateRetraction:
		if seg.Progress >= rt.ReversalTarget {
			rt.State = tc.TapStateFinalReversal
			event.ReverseSpindle = true
		}

	case tc.TapStateFinalReversal:
		if newSpindlePos > old {
			aux, err := posemath.NewLine(currentPoint, rt.OriginalStart)
			if err == nil {
				rt.Aux = aux
				seg.XYZ = aux
				seg.Target = aux.Length()
				seg.Progress = 0
			}
			seg.Synchronized = tc.SyncNone
			rt.State = tc.TapStateFinalPlacement
			event.ClearSync = true
			v := maxVel
			event.TargetVelOverride = &v
		}

	case tc.TapStateFinalPlacement:
		// Ordinary unsynchronized move to target; nothing more to drive.
	}

	rt.PrevSpindlePos = newSpindlePos
	return event
}
