package tp

import (
	"math"

	"github.com/syncpath/tpcore/blend"
	"github.com/syncpath/tpcore/optimize"
	"github.com/syncpath/tpcore/posemath"
	"github.com/syncpath/tpcore/tc"
)

// MoveParams carries the kinematic limits and sync flags a single append
// call supplies for its segment.
type MoveParams struct {
	ReqVel       float64
	MaxVel       float64
	MaxAccel     float64
	Tolerance    float64
	Synchronized tc.SyncMode
	UUPerRev     float64
	AtSpeed      bool
	IndexRotary  int
	Label        string
	// CorrelationID optionally joins this segment to an upstream request
	// for external log correlation; never consulted by planner logic.
	CorrelationID string
}

func (p *Planner) finishAppend(seg *tc.Segment, mp MoveParams) error {
	if mp.MaxVel <= 0 {
		seg.MaxVel = p.opts.VMax
	} else {
		seg.MaxVel = mp.MaxVel
	}
	if seg.MaxVel > p.opts.VLimit {
		seg.MaxVel = p.opts.VLimit
	}
	if mp.MaxAccel <= 0 {
		seg.MaxAccel = p.opts.AMax
	} else {
		seg.MaxAccel = mp.MaxAccel
	}
	if seg.Kind == tc.KindCircular {
		if radius := circularRadius(seg); radius > 0 {
			if vNormal := math.Sqrt(seg.MaxAccel * p.opts.BlendOptions.AccRatioNormal * radius); vNormal < seg.MaxVel {
				seg.MaxVel = vNormal
			}
		}
	}
	seg.ReqVel = mp.ReqVel
	seg.TargetVel = seg.ReqVel
	seg.Tolerance = mp.Tolerance
	seg.Synchronized = mp.Synchronized
	seg.UUPerRev = mp.UUPerRev
	seg.AtSpeed = mp.AtSpeed
	seg.IndexRotary = mp.IndexRotary
	seg.Label = mp.Label
	seg.CorrelationID = mp.CorrelationID
	seg.CycleTime = p.opts.CycleTime
	seg.TermCond = p.defaultTerm
	seg.AccelMode = p.defaultAccelMode

	seg.SyncDIO, p.pendingDIO = p.pendingDIO, nil
	seg.SyncAIO, p.pendingAIO = p.pendingAIO, nil

	prevTail, prevErr := p.queue.Last()
	p.classifyCorner(seg)

	// The segment that sat at the back of the queue before this append had
	// its corner with seg classified above, so it is safe for the optimizer
	// to relax: finalize that prior tail, not seg itself (a blend arc the
	// classification spliced in is already finalized). seg only becomes
	// eligible for relaxation once ITS successor arrives and finalizes it in
	// turn.
	if prevErr == nil {
		prevTail.Finalized = true
	}
	if err := p.queue.Put(seg); err != nil {
		return err
	}
	return optimize.Run(p.queue, p.opts.OptimizeOptions)
}

// circularRadius returns the radius of whichever triple carries a circular
// arc, or 0 if none does.
func circularRadius(seg *tc.Segment) float64 {
	for _, g := range [...]tc.Geometry{seg.XYZ, seg.UVW, seg.ABC} {
		if c, ok := g.(posemath.Circle); ok {
			return c.Radius
		}
	}
	return 0
}

// effectiveTolerance returns seg's own declared tolerance, or a quarter of
// its nominal length when none was declared.
func effectiveTolerance(seg *tc.Segment) float64 {
	if seg.Tolerance > 0 {
		return seg.Tolerance
	}
	return seg.NominalLength / 4
}

// setParabolic marks last's corner with next as a Parabolic join: last
// terminates without a hard stop, next inherits blend_prev so the stepper
// halves its effective accel once overlap engages, and last's
// VelAtBlendStart records the velocity at which that overlap should begin.
func setParabolic(last, next *tc.Segment) {
	last.TermCond = tc.TermParabolic
	next.BlendPrev = true
	theta, _ := blend.FindIntersectionAngle(last.EndTangent(), next.StartTangent())
	vb1, _ := blend.ParabolicVelocity(theta, last.MaxAccel, last.Target, next.MaxAccel, next.Target, effectiveTolerance(next))
	last.VelAtBlendStart = vb1
}

// classifyCorner runs the tangency test against the segment currently at
// the back of the queue (if any) and, where both are lines, attempts a
// spherical blend arc; otherwise it falls back to a parabolic join or
// leaves the default termination condition alone.
func (p *Planner) classifyCorner(next *tc.Segment) {
	last, err := p.queue.Last()
	if err != nil || last.Kind == tc.KindRigidTap {
		return
	}

	lastLine, lastIsLine := last.XYZ.(posemath.Line)
	nextLine, nextIsLine := next.XYZ.(posemath.Line)
	bothLines := lastIsLine && nextIsLine

	class := blend.Classify(last.EndTangent(), next.StartTangent(), last.MaxAccel, last.CycleTime, last.ReqVel, bothLines)
	switch class {
	case blend.ClassTangent:
		last.TermCond = tc.TermTangent
	case blend.ClassParabolic:
		setParabolic(last, next)
	case blend.ClassBlend:
		params := blend.Params{
			PrevTarget:        last.Target,
			PrevNominalLength: last.NominalLength,
			PrevCycleTime:     last.CycleTime,
			NextTarget:        next.Target,
			VelBound:          posemath.Vec3{X: p.opts.VLimit, Y: p.opts.VLimit, Z: p.opts.VLimit},
			AccBound:          posemath.Vec3{X: last.MaxAccel, Y: last.MaxAccel, Z: last.MaxAccel},
			ReqVelPrev:        last.ReqVel,
			ReqVelNext:        next.ReqVel,
			MaxFeedScale:      1.0,
			Tolerance:         next.Tolerance,
		}
		result, err := blend.PlanLineLine(lastLine, nextLine, params, p.opts.BlendOptions)
		if err != nil {
			p.logf(LevelWarn, "segment %d: blend planning failed (%v), falling back to parabolic join", last.ID, err)
			setParabolic(last, next)
			return
		}

		trimmedNext, err := nextLine.TrimStart(result.DPlan)
		if err != nil {
			p.logf(LevelWarn, "segment %d: blend trim failed (%v), falling back to parabolic join", next.ID, err)
			setParabolic(last, next)
			return
		}
		next.XYZ = trimmedNext
		next.Target = trimmedNext.Length()

		if result.ConsumesPrev {
			popped, err := p.queue.PopBack()
			if err != nil || popped != last {
				setParabolic(last, next)
				return
			}
		} else if trimmed, err := lastLine.TrimEnd(result.DPlan); err == nil {
			last.XYZ = trimmed
			last.Target = trimmed.Length()
			last.TermCond = tc.TermTangent
		}

		arc := tc.NewBlendSegment(p.allocID(), result.Arc)
		arc.MaxVel = result.ActualVel
		arc.ReqVel = result.ActualVel
		arc.MaxAccel = last.MaxAccel
		arc.CycleTime = p.opts.CycleTime
		arc.Finalized = true
		_ = p.queue.Put(arc)
	}
}

func (p *Planner) allocID() int {
	p.nextID++
	return p.nextID
}

// AddLine appends a linear move. Pass nil for any triple with no motion.
func (p *Planner) AddLine(xyz, uvw, abc *posemath.Line, mp MoveParams) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.aborting {
		return ErrAborting
	}
	seg, err := tc.NewLineSegment(p.allocID(), xyz, uvw, abc)
	if err != nil {
		return err
	}
	return p.finishAppend(seg, mp)
}

// AddCircle appends a circular/helical move.
func (p *Planner) AddCircle(xyz, uvw, abc *posemath.Circle, mp MoveParams) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.aborting {
		return ErrAborting
	}
	seg, err := tc.NewArcSegment(p.allocID(), xyz, uvw, abc)
	if err != nil {
		return err
	}
	return p.finishAppend(seg, mp)
}

// AddRigidTap appends a rigid-tap cycle along the given forward stroke.
// Fails with ErrRigidTapRequiresSync unless mp.Synchronized requests
// spindle-position sync; a rigid tap cannot run unsynchronized.
func (p *Planner) AddRigidTap(forward posemath.Line, reversalTarget float64, mp MoveParams) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.aborting {
		return ErrAborting
	}
	if mp.Synchronized == tc.SyncNone {
		return ErrRigidTapRequiresSync
	}
	seg := tc.NewRigidTapSegment(p.allocID(), forward, mp.UUPerRev, reversalTarget)
	return p.finishAppend(seg, mp)
}
