package tp

import (
	"sync"

	"github.com/syncpath/tpcore/posemath"
	"github.com/syncpath/tpcore/tc"
	"github.com/syncpath/tpcore/tcq"
)

// spindleState holds the planner's running spindle-sync bookkeeping,
// shared across whichever segment is currently position- or
// velocity-synced.
type spindleState struct {
	offset           float64
	syncAccelCounter int
	oldRevs          float64
	direction        int
}

// Planner (TP) is the trajectory planner's public surface: the append
// pipeline, the controller API, and RunCycle.
type Planner struct {
	mu sync.RWMutex

	opts Options

	queue *tcq.Queue

	nextID           int
	currentPos       posemath.Pose9
	defaultTerm      tc.TermCond
	defaultAccelMode tc.AccelMode

	pendingDIO []tc.DIOEdge
	pendingAIO []tc.AIOEdge

	execID int

	paused   bool
	aborting bool

	spindle spindleState
}

// New constructs a Planner with the given queue capacity.
func New(capacity int, opts ...Option) (*Planner, error) {
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}
	o := apply(opts...)
	if o.err != nil {
		return nil, ErrOptionViolation
	}
	q, err := tcq.New(capacity)
	if err != nil {
		return nil, err
	}
	return &Planner{opts: o, queue: q, defaultTerm: tc.TermStop}, nil
}

// Pause requests execution stop advancing the active segment after its
// current cycle, without discarding queued motion.
func (p *Planner) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = true
}

// Resume clears a prior Pause.
func (p *Planner) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = false
}

// Abort requests the queue be drained and execution stopped: RunCycle
// decelerates the active segment and reports Stopped; once its velocity
// reaches zero it discards the whole queue, resets the executing ID to 0
// and clears the abort, after which appends are accepted again.
func (p *Planner) Abort() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.aborting = true
	p.paused = false
}

// ClearAbort allows new motion to be appended again after an Abort.
func (p *Planner) ClearAbort() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.aborting = false
}

// SetCycleTime overrides the servo cycle period new segments inherit.
// Panics if seconds is not positive.
func (p *Planner) SetCycleTime(seconds float64) {
	if seconds <= 0 {
		panic("tp: CycleTime must be positive")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.CycleTime = seconds
}

// SetVMax overrides the default maximum velocity new segments inherit.
func (p *Planner) SetVMax(vmax float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.VMax = vmax
}

// SetVLimit overrides the hard velocity ceiling.
func (p *Planner) SetVLimit(vlimit float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.VLimit = vlimit
}

// SetAMax overrides the default maximum acceleration new segments inherit.
func (p *Planner) SetAMax(amax float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.AMax = amax
}

// SetID overrides the ID the next appended segment will receive.
func (p *Planner) SetID(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID = id
}

// SetTermCond overrides the termination condition newly appended segments
// default to when the append pipeline's own corner classification doesn't
// override it.
func (p *Planner) SetTermCond(cond tc.TermCond) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.defaultTerm = cond
}

// SetAccelMode overrides the acceleration solver newly appended segments
// default to. AccelRamp only takes effect on segments whose term-cond ends
// up Tangent; others still run AccelTrapezoidal regardless of this setting.
func (p *Planner) SetAccelMode(mode tc.AccelMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.defaultAccelMode = mode
}

// SetPos seeds the planner's notion of the machine's current pose, used as
// the starting point for the next appended segment. Only valid with an
// empty queue.
func (p *Planner) SetPos(pose posemath.Pose9) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.queue.Len() != 0 {
		return ErrQueueEmpty
	}
	p.currentPos = pose
	return nil
}

// SetDout queues a digital-output edge onto the next appended segment.
func (p *Planner) SetDout(index int, start, end int8) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pendingDIO = append(p.pendingDIO, tc.DIOEdge{Index: index, Start: start, End: end})
}

// SetAout queues an analog-output edge onto the next appended segment.
func (p *Planner) SetAout(index int, hasStart bool, start float64, hasEnd bool, end float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pendingAIO = append(p.pendingAIO, tc.AIOEdge{Index: index, HasStart: hasStart, Start: start, HasEnd: hasEnd, End: end})
}

// GetPos returns the planner's current pose estimate: the active segment's
// interpolated position (plus the successor's displacement so far while a
// parabolic overlap is engaged), or the last commanded pose if the queue is
// empty.
func (p *Planner) GetPos() posemath.Pose9 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if seg, err := p.queue.Item(0); err == nil {
		pos := seg.Pose(seg.Progress, p.currentPos)
		if seg.BlendingNext {
			if next, err := p.queue.Item(1); err == nil {
				pos = pos.Add(next.Pose(next.Progress, p.currentPos).Sub(next.Pose(0, p.currentPos)))
			}
		}
		return pos
	}
	return p.currentPos
}

// GetExecID returns the ID of the segment currently executing, or 0 if the
// queue is empty.
func (p *Planner) GetExecID() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.queue.Len() == 0 {
		return 0
	}
	return p.execID
}

// GetMotionType returns the Kind of the segment currently executing.
func (p *Planner) GetMotionType() (tc.Kind, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	seg, err := p.queue.Item(0)
	if err != nil {
		return 0, ErrQueueEmpty
	}
	return seg.Kind, nil
}

// RigidTapState returns the FSM state of the currently executing rigid-tap
// segment. It returns an error if the queue is empty or the active segment
// is not a rigid tap.
func (p *Planner) RigidTapState() (tc.RigidTapFSMState, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	seg, err := p.queue.Item(0)
	if err != nil {
		return 0, ErrQueueEmpty
	}
	if seg.Kind != tc.KindRigidTap {
		return 0, ErrNotRigidTap
	}
	return seg.RigidTap.State, nil
}

// Status is a snapshot of the motion-status block: current velocity,
// distance-to-go, executing segment ID, and motion type. While a parabolic
// overlap is engaged (the head segment's BlendingNext is set), CurrentVel
// sums both the head's and its successor's velocity, matching what the
// machine is physically doing during the overlap window.
type Status struct {
	CurrentVel      float64
	DistanceToGo    float64
	ExecID          int
	MotionType      tc.Kind
	HasActiveMotion bool
}

// GetStatus returns the current motion-status snapshot. HasActiveMotion is
// false (and the remaining fields zeroed) when the queue is empty.
func (p *Planner) GetStatus() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	seg, err := p.queue.Item(0)
	if err != nil {
		return Status{}
	}
	currentVel := seg.CurrentVel
	if seg.BlendingNext {
		if next, err := p.queue.Item(1); err == nil {
			currentVel += next.CurrentVel
		}
	}
	return Status{
		CurrentVel:      currentVel,
		DistanceToGo:    seg.Target - seg.Progress,
		ExecID:          seg.ID,
		MotionType:      seg.Kind,
		HasActiveMotion: true,
	}
}

// IsDone reports whether the queue has drained.
func (p *Planner) IsDone() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.queue.Len() == 0
}

// QueueDepth returns the number of segments currently queued.
func (p *Planner) QueueDepth() int {
	return p.queue.Len()
}

// ActiveDepth returns the active segment's optimizer lookahead depth, or 0
// if the queue is empty.
func (p *Planner) ActiveDepth() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	seg, err := p.queue.Item(0)
	if err != nil {
		return 0
	}
	return seg.ActiveDepth
}
