package tp

import (
	"github.com/syncpath/tpcore/iocap"
	"github.com/syncpath/tpcore/stepper"
	"github.com/syncpath/tpcore/tc"
)

// RunCycle advances the queue by one servo tick: it gates on any pending
// rotary unlock or spindle at-speed condition (only while the segment has
// not yet activated), computes the active segment's target velocity
// (ordinary feed, or spindle-synced), solves this tick's acceleration
// (trapezoidal, or ramp when requested), integrates progress, advances a
// parabolic-overlap successor concurrently once engaged, fires any queued
// I/O edges, and pops the segment once it completes.
func (p *Planner) RunCycle(cap iocap.Capability) (Result, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.queue.Len() == 0 {
		return NoAction, nil
	}
	if p.paused {
		return Stopped, nil
	}

	seg, err := p.queue.Item(0)
	if err != nil {
		p.logf(LevelError, "queue front unreadable: %v", err)
		return Fail, err
	}

	if p.aborting {
		return p.runAbortCycle(seg)
	}

	if !seg.Active {
		if seg.IndexRotary != tc.NoRotaryAxis && !cap.RotaryIsUnlocked(seg.IndexRotary) {
			cap.SetRotaryUnlock(seg.IndexRotary, true)
			p.logf(LevelDebug, "segment %d waiting on rotary axis %d unlock", seg.ID, seg.IndexRotary)
			return Waiting, nil
		}
		if seg.AtSpeed && !cap.SpindleIsAtSpeed() {
			p.logf(LevelDebug, "segment %d waiting on spindle at-speed", seg.ID)
			return Waiting, nil
		}
		seg.Active = true
	}

	seg.FireStart(cap.DioWrite, cap.AioWrite)

	feedScale := cap.NetFeedScale()
	targetVel := p.computeTargetVel(seg, cap)
	seg.TargetVel = targetVel

	velBefore := seg.CurrentVel
	dxBefore := seg.Target - seg.Progress

	p.advanceSegment(seg, seg.MaxAccel, targetVel, feedScale, p.opts.VLimit)
	p.execID = seg.ID

	// A parabolic corner overlaps its successor's acceleration with this
	// segment's remaining deceleration once this segment's velocity decays
	// through the blend velocity planned at append time (not on the way up
	// to speed); the successor runs with halved effective accel (BlendPrev)
	// for the duration of the overlap.
	if seg.TermCond == tc.TermParabolic && seg.VelAtBlendStart > 0 &&
		(seg.BlendingNext || (velBefore > seg.VelAtBlendStart && seg.CurrentVel <= seg.VelAtBlendStart)) {
		if next, err := p.queue.Item(1); err == nil && next.Finalized {
			if !seg.BlendingNext {
				seg.BlendingNext = true
				next.Active = true
				next.FireStart(cap.DioWrite, cap.AioWrite)
				p.logf(LevelInfo, "segment %d entering parabolic overlap with segment %d", seg.ID, next.ID)
			}
			nextTargetVel := p.computeTargetVel(next, cap)
			nextAccel := next.MaxAccel
			if next.BlendPrev {
				nextAccel /= 2
			}
			p.advanceSegment(next, nextAccel, nextTargetVel, feedScale, p.opts.VLimit)
		}
	}

	if seg.Progress >= seg.Target-1e-9 {
		// The segment consumed its whole remaining distance before using the
		// whole cycle: time was left over this tick. That leftover is not
		// carried to the next queued segment; it's only recorded as a
		// diagnostic counter so callers can see how often queued motion runs
		// dry mid-cycle.
		avgVel := (velBefore + seg.CurrentVel) / 2
		if avgVel > stepper.VelEpsilon {
			timeUsed := dxBefore / avgVel
			if timeUsed < seg.CycleTime-1e-9 {
				seg.Splitting = true
				seg.Metrics.SplitsTaken++
			}
		}
		seg.Remove = true
		seg.FireEnd(cap.DioWrite, cap.AioWrite)
		p.currentPos = seg.Pose(seg.Target, p.currentPos)
		if _, err := p.queue.PopFront(); err != nil {
			p.logf(LevelError, "segment %d finished but could not pop: %v", seg.ID, err)
			return Fail, err
		}
		p.logf(LevelInfo, "segment %d (%s) complete", seg.ID, seg.Label)
		return Ok, nil
	}

	if seg.OnFinalDecel {
		return Slowing, nil
	}
	return Ok, nil
}

// advanceSegment solves this tick's acceleration for seg and integrates its
// velocity/progress forward, using maxAccel as seg's effective acceleration
// limit this tick (halved from seg.MaxAccel while a parabolic overlap's
// BlendPrev is in effect). It chooses AccelRamp when seg requests it and its
// term-cond (Tangent) and finalvel make ramping meaningful, falling back to
// the general trapezoidal solver otherwise.
func (p *Planner) advanceSegment(seg *tc.Segment, maxAccel, targetVel, feedScale, velLimit float64) {
	positionSynced := seg.Synchronized == tc.SyncPosition

	if seg.AccelMode == tc.AccelRamp && seg.TermCond == tc.TermTangent {
		if accel, err := stepper.RampAccel(seg, seg.FinalVel*feedScale, maxAccel); err == nil {
			stepper.UpdateDistFromAccel(seg, accel, targetVel)
			seg.Metrics.CyclesRun++
			return
		}
	}

	accel, velDesired := stepper.TrapezoidalAccel(seg, maxAccel, targetVel, velLimit, feedScale, false, positionSynced)
	stepper.UpdateDistFromAccel(seg, accel, velDesired)
	seg.Metrics.CyclesRun++
}

// runAbortCycle decelerates the active segment at its own maxaccel; once
// velocity reaches zero, the whole queue is discarded and execId resets to
// zero.
func (p *Planner) runAbortCycle(seg *tc.Segment) (Result, error) {
	accel, velDesired := stepper.TrapezoidalAccel(seg, seg.MaxAccel, 0, p.opts.VLimit, 1.0, false, false)
	stepper.UpdateDistFromAccel(seg, accel, velDesired)

	if seg.CurrentVel <= stepper.VelEpsilon {
		dropped := 0
		for p.queue.Len() > 0 {
			if _, err := p.queue.PopFront(); err != nil {
				break
			}
			dropped++
		}
		p.execID = 0
		p.aborting = false
		p.logf(LevelWarn, "abort complete, %d segment(s) discarded", dropped)
	}
	return Stopped, nil
}

// computeTargetVel returns the velocity the active segment should target
// this cycle: ordinary feed-scaled velocity, or one of the two spindle-sync
// laws, driving the rigid-tap state machine forward when applicable.
func (p *Planner) computeTargetVel(seg *tc.Segment, cap iocap.Capability) float64 {
	switch seg.Synchronized {
	case tc.SyncVelocity:
		return stepper.VelocitySyncTargetVel(cap.SpindleSpeedIn(), seg.UUPerRev)

	case tc.SyncPosition:
		raw := cap.SpindleRevs()
		revs := raw
		if seg.Kind == tc.KindRigidTap {
			switch seg.RigidTap.State {
			case tc.TapStateRetraction, tc.TapStateFinalReversal:
				revs = seg.RigidTap.SpindleRevsAtReversal - revs
			}
		}

		var counterPtr *int
		if p.spindle.syncAccelCounter > 0 {
			counterPtr = &p.spindle.syncAccelCounter
		}
		result := stepper.PositionSync(seg.Progress, seg.UUPerRev, revs, p.spindle.offset,
			p.spindle.oldRevs, seg.CycleTime, seg.MaxVel, seg.MaxAccel, counterPtr)
		targetVel := result.TargetVel

		if offset, latched := stepper.CheckRampLatch(seg.CurrentVel, targetVel, seg.Progress, seg.UUPerRev, revs, &p.spindle.syncAccelCounter); latched {
			p.spindle.offset = offset
		}
		p.spindle.oldRevs = revs

		if seg.Kind == tc.KindRigidTap {
			ev := stepper.AdvanceRigidTap(seg, raw, seg.UUPerRev, p.spindle.offset, seg.MaxVel)
			if ev.ReverseSpindle {
				p.spindle.direction = -p.spindle.direction
				cap.SetSpindleDirection(p.spindle.direction)
				p.logf(LevelInfo, "segment %d rigid tap reversed spindle direction, now entering %s", seg.ID, seg.RigidTap.State)
			}
			if ev.ClearSync && ev.TargetVelOverride != nil {
				targetVel = *ev.TargetVelOverride
			}
		}
		return targetVel

	default:
		feedScale := cap.NetFeedScale()
		target := seg.ReqVel * feedScale
		if target > seg.MaxVel {
			target = seg.MaxVel
		}
		return target
	}
}
