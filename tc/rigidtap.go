package tc

import "github.com/syncpath/tpcore/posemath"

// NewRigidTapSegment builds a KindRigidTap Segment for the forward (tapping)
// stroke along the given line. uuPerRev is the thread pitch (length units
// advanced per spindle revolution); reversalTarget is the hole depth at
// which the spindle reverses.
func NewRigidTapSegment(id int, forward posemath.Line, uuPerRev, reversalTarget float64) *Segment {
	target := forward.Length() + uuPerRev*RigidTapOvershootRevs
	return &Segment{
		ID: id, Kind: KindRigidTap, XYZ: forward,
		Target: target, NominalLength: target,
		TermCond: TermStop, IndexRotary: NoRotaryAxis,
		Synchronized: SyncPosition, UUPerRev: uuPerRev,
		RigidTap: RigidTapPayload{
			State:          TapStateTapping,
			ReversalTarget: reversalTarget,
			OriginalStart:  forward.Start,
		},
	}
}
