// Package tc: central Segment type, enums, and sentinel errors.
//
// Errors:
//
//	ErrGeometryDegenerate - zero-length or zero-radius geometry at construction.
//	ErrNoMotion           - none of the three triples carry any motion.
package tc

import (
	"errors"

	"github.com/syncpath/tpcore/posemath"
)

// Sentinel errors for segment construction and geometry queries.
var (
	// ErrGeometryDegenerate indicates a zero-length line or zero-radius arc
	// was supplied for a triple that is supposed to carry motion.
	ErrGeometryDegenerate = errors.New("tc: degenerate geometry")

	// ErrNoMotion indicates none of the XYZ/UVW/ABC triples carry any
	// displacement, so the segment has no arc length to execute.
	ErrNoMotion = errors.New("tc: segment has no motion on any triple")
)

// Kind tags the motion variant a Segment represents.
type Kind int

const (
	// KindLinear is a straight-line move.
	KindLinear Kind = iota
	// KindCircular is a circular or helical arc move.
	KindCircular
	// KindRigidTap is a spindle-synchronized tap-and-retract cycle.
	KindRigidTap
	// KindSphericalArc is a blend arc spliced between two segments.
	KindSphericalArc
)

// String renders the Kind for logging and status reporting.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindCircular:
		return "circular"
	case KindRigidTap:
		return "rigid-tap"
	case KindSphericalArc:
		return "spherical-arc"
	default:
		return "unknown"
	}
}

// TermCond describes how a segment terminates relative to its successor.
type TermCond int

const (
	// TermStop is an exact stop: velocity reaches zero at the segment end.
	TermStop TermCond = iota
	// TermParabolic overlaps deceleration/acceleration with the successor.
	TermParabolic
	// TermTangent blends continuously into the successor with no speed drop.
	TermTangent
)

func (t TermCond) String() string {
	switch t {
	case TermStop:
		return "stop"
	case TermParabolic:
		return "parabolic"
	case TermTangent:
		return "tangent"
	default:
		return "unknown"
	}
}

// SyncMode describes how a segment's feed tracks the spindle encoder.
type SyncMode int

const (
	// SyncNone is ordinary, unsynchronized feed.
	SyncNone SyncMode = iota
	// SyncVelocity tracks spindle angular velocity.
	SyncVelocity
	// SyncPosition tracks spindle angular position (rigid tapping, threading).
	SyncPosition
)

func (s SyncMode) String() string {
	switch s {
	case SyncNone:
		return "none"
	case SyncVelocity:
		return "velocity"
	case SyncPosition:
		return "position"
	default:
		return "unknown"
	}
}

// OptimizationState records whether the velocity optimizer clipped a
// segment's final velocity to its own maxvel ("hit a peak").
type OptimizationState int

const (
	// OptimNormal means the segment's finalvel was set by its successor's
	// deceleration requirement, not by its own maxvel.
	OptimNormal OptimizationState = iota
	// OptimAtMax means the segment's finalvel was clipped to maxvel.
	OptimAtMax
)

// NoRotaryAxis indicates a segment does not request a rotary-axis unlock.
// Rotary axes are addressed 1-based (1=A, 2=B, 3=C) precisely so the zero
// value of a MoveParams left unset by a caller means "no unlock", not "A".
const NoRotaryAxis = 0

// RigidTapOvershootRevs is the overshoot budget, in spindle revolutions,
// added to a rigid tap's forward and retraction stroke targets so the
// spindle reversal fires with room to spare rather than exactly at the
// segment's nominal end.
const RigidTapOvershootRevs = 10.0

// AccelMode selects which per-cycle acceleration solver a segment uses.
type AccelMode int

const (
	// AccelTrapezoidal is the general-purpose accel/decel solver, valid for
	// any term-cond.
	AccelTrapezoidal AccelMode = iota
	// AccelRamp targets a single constant acceleration for the remainder of
	// the segment; only meaningful when term-cond is Tangent, and falls
	// back to AccelTrapezoidal when finalvel is too small to ramp toward.
	AccelRamp
)

func (m AccelMode) String() string {
	switch m {
	case AccelTrapezoidal:
		return "trapezoidal"
	case AccelRamp:
		return "ramp"
	default:
		return "unknown"
	}
}

// Geometry is the shape common to posemath.Line and posemath.Circle: the
// operations a per-triple geometry must support so the stepper can treat
// lines, arcs, and blend arcs uniformly.
type Geometry interface {
	Length() float64
	PointAt(s float64) posemath.Vec3
	StartTangent() posemath.Vec3
	EndTangent() posemath.Vec3
}

var (
	_ Geometry = posemath.Line{}
	_ Geometry = posemath.Circle{}
)

// DIOEdge is a queued digital-output edge. Start/End values of -1 mean
// "no change"; 0/1 mean off/on. Start is applied on the segment's first
// advance, End when the segment is removed.
type DIOEdge struct {
	Index int
	Start int8
	End   int8
}

// AIOEdge is a queued analog-output edge. HasStart/HasEnd gate whether
// Start/End should be applied at all.
type AIOEdge struct {
	Index              int
	HasStart, HasEnd   bool
	Start, End         float64
}

// RigidTapFSMState enumerates the rigid-tap state machine.
type RigidTapFSMState int

const (
	TapStateTapping RigidTapFSMState = iota
	TapStateReversing
	TapStateRetraction
	TapStateFinalReversal
	TapStateFinalPlacement
)

func (s RigidTapFSMState) String() string {
	switch s {
	case TapStateTapping:
		return "tapping"
	case TapStateReversing:
		return "reversing"
	case TapStateRetraction:
		return "retraction"
	case TapStateFinalReversal:
		return "final-reversal"
	case TapStateFinalPlacement:
		return "final-placement"
	default:
		return "unknown"
	}
}

// RigidTapPayload carries the state private to a rigid-tap segment.
// PrevSpindlePos keeps the one-cycle-old spindle position on the segment
// itself rather than a hidden package-level variable, so concurrent taps
// on independent planners never collide.
type RigidTapPayload struct {
	State                 RigidTapFSMState
	ReversalTarget        float64
	SpindleRevsAtReversal float64
	PrevSpindlePos        float64
	OriginalStart         posemath.Vec3 // forward stroke's starting point, for rebuilding the retraction geometry
	Aux                   posemath.Line // auxiliary line regenerated at each state change
}

// Segment (TC) is one executable motion element: a geometry union plus
// kinematic state, sync flags, and I/O edges.
type Segment struct {
	ID    int
	Kind  Kind
	Label string // free-text diagnostic tag; never consulted by planner logic
	// CorrelationID optionally joins this segment to an upstream request for
	// external log correlation; never consulted by planner logic.
	CorrelationID string

	// Per-triple geometry. nil means that triple carries no motion this
	// segment; at least one of the three must be non-nil.
	XYZ, UVW, ABC Geometry

	Target        float64 // arc length of the segment
	Progress      float64 // consumed arc length this cycle
	NominalLength float64 // Target at insertion time; immutable post-insert

	ReqVel     float64
	TargetVel  float64
	MaxVel     float64
	CurrentVel float64
	FinalVel   float64
	MaxAccel   float64
	CycleTime  float64

	TermCond  TermCond
	AccelMode AccelMode
	Tolerance float64

	Synchronized SyncMode
	UUPerRev     float64

	BlendPrev       bool
	BlendingNext    bool
	VelAtBlendStart float64

	Active            bool
	Finalized         bool
	Splitting         bool
	OnFinalDecel      bool
	OptimizationState OptimizationState
	ActiveDepth       int

	Remove bool

	SyncDIO []DIOEdge
	SyncAIO []AIOEdge
	dioFired bool // internal: start edges already emitted

	IndexRotary int // rotary axis index to unlock, or NoRotaryAxis

	AtSpeed bool // segment requires spindle at-speed before activating

	RigidTap RigidTapPayload

	Metrics Metrics
}

// Metrics accumulates lightweight per-segment counters for diagnostics,
// never consulted by planner logic.
type Metrics struct {
	CyclesRun   int
	SplitsTaken int
}
