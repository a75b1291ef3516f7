package optimize

import (
	"math"

	"github.com/syncpath/tpcore/tc"
	"github.com/syncpath/tpcore/tcq"
)

// Run performs one reverse sweep over the tail of q, relaxing each tangent
// chain's final velocities backward from the most recently queued segment.
// It never blocks on, nor mutates, the segment currently executing at the
// front of the queue.
func Run(q *tcq.Queue, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	n := q.Len()
	hitPeaks := 0
	for x := 1; x <= opts.Depth+2; x++ {
		ind := n - x
		if ind < 0 {
			return nil
		}
		curr, err := q.Item(ind)
		if err != nil {
			return nil
		}
		if ind-1 < 0 {
			return nil
		}
		prev, err := q.Item(ind - 1)
		if err != nil {
			return nil
		}
		if !curr.Finalized {
			continue
		}
		if prev.TermCond != tc.TermTangent {
			return nil
		}
		if prev.Progress > 0 {
			return nil
		}
		if curr.AtSpeed {
			curr.FinalVel = 0
		}
		computeOptimalVelocity(curr, prev, opts)
		curr.ActiveDepth = x - 2 - hitPeaks
		if opts.Lazy {
			if prev.OptimizationState == tc.OptimAtMax {
				hitPeaks++
			} else {
				hitPeaks = 0
			}
			if hitPeaks >= opts.CutoffHits {
				return nil
			}
		}
	}
	return nil
}

// computeOptimalVelocity relaxes prev's final velocity so that curr, its
// tangent successor, can be entered without exceeding curr's own
// acceleration or either segment's maxvel.
func computeOptimalVelocity(curr, prev *tc.Segment, opts Options) {
	accThis := curr.MaxAccel
	vsBack := math.Sqrt(curr.FinalVel*curr.FinalVel + 2*accThis*curr.Target)
	vfLimit := math.Min(curr.MaxVel, prev.MaxVel)
	if vsBack >= vfLimit {
		vsBack = vfLimit
		prev.OptimizationState = tc.OptimAtMax
	} else {
		prev.OptimizationState = tc.OptimNormal
	}
	prev.FinalVel = vsBack

	minCycles := opts.MinSegmentCycles
	if minCycles <= 0 {
		minCycles = 1
	}
	if curr.CycleTime > 0 {
		curr.MaxVel = math.Min(curr.MaxVel, curr.Target/(curr.CycleTime*minCycles))
	}
}
