package tp

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/syncpath/tpcore/iocap"
	"github.com/syncpath/tpcore/posemath"
	"github.com/syncpath/tpcore/tc"
)

// ScenarioSuite exercises end-to-end motion scenarios: single-segment
// motion, tangent chaining, corner blending, rigid tapping, abort, and
// synchronized I/O.
type ScenarioSuite struct {
	suite.Suite
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

func line(t *testing.T, start, end posemath.Vec3) posemath.Line {
	t.Helper()
	l, err := posemath.NewLine(start, end)
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	return l
}

// S1: single line to stop.
func (s *ScenarioSuite) TestS1_SingleLineToStop() {
	p, err := New(4, WithCycleTime(0.001), WithAMax(100), WithVMax(50), WithVLimit(100))
	s.Require().NoError(err)
	s.Require().NoError(p.SetPos(posemath.Pose9{}))
	p.SetTermCond(tc.TermStop)

	l := line(s.T(), posemath.Vec3{}, posemath.Vec3{X: 10})
	s.Require().NoError(p.AddLine(&l, nil, nil, MoveParams{ReqVel: 50, MaxVel: 100, MaxAccel: 100}))

	sim := iocap.NewSimulated(1.0)
	var peakVel float64
	for i := 0; i < 100000 && !p.IsDone(); i++ {
		seg, err := p.queue.Item(0)
		s.Require().NoError(err)
		if seg.CurrentVel > peakVel {
			peakVel = seg.CurrentVel
		}
		_, err = p.RunCycle(sim)
		s.Require().NoError(err)
	}
	s.Require().True(p.IsDone())
	s.LessOrEqual(peakVel, 50.0+1e-6)
	s.InDelta(10.0, p.GetPos().X, 1e-3)
}

// S2: tangent chain never drops speed below the shared reqvel.
func (s *ScenarioSuite) TestS2_TangentChain() {
	p, err := New(4, WithCycleTime(0.001), WithAMax(200), WithVMax(100), WithVLimit(100))
	s.Require().NoError(err)
	s.Require().NoError(p.SetPos(posemath.Pose9{}))
	p.SetTermCond(tc.TermTangent)

	l1 := line(s.T(), posemath.Vec3{}, posemath.Vec3{X: 10})
	l2 := line(s.T(), posemath.Vec3{X: 10}, posemath.Vec3{X: 20})
	s.Require().NoError(p.AddLine(&l1, nil, nil, MoveParams{ReqVel: 50, MaxVel: 100, MaxAccel: 200}))
	s.Require().NoError(p.AddLine(&l2, nil, nil, MoveParams{ReqVel: 50, MaxVel: 100, MaxAccel: 200}))

	first, err := p.queue.Item(0)
	s.Require().NoError(err)
	s.Equal(tc.TermTangent, first.TermCond)
	s.InDelta(50, first.FinalVel, 1e-6)
}

// S3: a sharp corner between two lines inserts a spherical blend arc.
func (s *ScenarioSuite) TestS3_LineLineBlendArc() {
	p, err := New(4,
		WithCycleTime(0.001), WithAMax(200), WithVMax(100), WithVLimit(100))
	s.Require().NoError(err)
	s.Require().NoError(p.SetPos(posemath.Pose9{}))
	p.SetTermCond(tc.TermParabolic)

	l1 := line(s.T(), posemath.Vec3{}, posemath.Vec3{X: 10})
	l2 := line(s.T(), posemath.Vec3{X: 10}, posemath.Vec3{X: 10, Y: 10})
	s.Require().NoError(p.AddLine(&l1, nil, nil, MoveParams{ReqVel: 100, MaxVel: 100, MaxAccel: 200, Tolerance: 0.1}))
	s.Require().NoError(p.AddLine(&l2, nil, nil, MoveParams{ReqVel: 100, MaxVel: 100, MaxAccel: 200, Tolerance: 0.1}))

	s.Equal(3, p.queue.Len())
	arc, err := p.queue.Item(1)
	s.Require().NoError(err)
	s.Equal(tc.KindSphericalArc, arc.Kind)
	s.Greater(arc.Target, 0.0)
}

// S4: a full rigid-tap cycle returns the tool to its pre-tap pose.
func (s *ScenarioSuite) TestS4_RigidTap() {
	p, err := New(4, WithCycleTime(0.001), WithAMax(400), WithVMax(120), WithVLimit(200))
	s.Require().NoError(err)
	s.Require().NoError(p.SetPos(posemath.Pose9{}))

	forward := line(s.T(), posemath.Vec3{}, posemath.Vec3{Z: -10})
	s.Require().NoError(p.AddRigidTap(forward, 10, MoveParams{
		ReqVel: 60, MaxVel: 120, MaxAccel: 400,
		Synchronized: tc.SyncPosition, UUPerRev: 1.0,
	}))

	sim := iocap.NewSimulated(1.0)
	seenStates := map[tc.RigidTapFSMState]bool{}
	for i := 0; i < 200000 && !p.IsDone(); i++ {
		seg, err := p.queue.Item(0)
		s.Require().NoError(err)
		if seg.Kind == tc.KindRigidTap {
			seenStates[seg.RigidTap.State] = true
			switch seg.RigidTap.State {
			case tc.TapStateTapping:
				sim.AdvanceSpindle(0.02)
			case tc.TapStateReversing, tc.TapStateRetraction:
				sim.AdvanceSpindle(-0.02)
			case tc.TapStateFinalReversal:
				sim.AdvanceSpindle(0.02)
			}
		}
		_, err = p.RunCycle(sim)
		s.Require().NoError(err)
	}
	s.Require().True(p.IsDone())
	s.True(seenStates[tc.TapStateTapping])
	s.True(seenStates[tc.TapStateReversing])
	s.True(seenStates[tc.TapStateRetraction])
	s.True(seenStates[tc.TapStateFinalReversal])
	s.InDelta(0, p.GetPos().Z, 1e-2)
}

// S5: abort mid-motion decelerates, then clears the queue.
func (s *ScenarioSuite) TestS5_AbortMidMotion() {
	p, err := New(4, WithCycleTime(0.001), WithAMax(200), WithVMax(100), WithVLimit(100))
	s.Require().NoError(err)
	s.Require().NoError(p.SetPos(posemath.Pose9{}))
	p.SetTermCond(tc.TermTangent)

	l1 := line(s.T(), posemath.Vec3{}, posemath.Vec3{X: 10})
	l2 := line(s.T(), posemath.Vec3{X: 10}, posemath.Vec3{X: 20})
	s.Require().NoError(p.AddLine(&l1, nil, nil, MoveParams{ReqVel: 50, MaxVel: 100, MaxAccel: 200}))
	s.Require().NoError(p.AddLine(&l2, nil, nil, MoveParams{ReqVel: 50, MaxVel: 100, MaxAccel: 200}))

	sim := iocap.NewSimulated(1.0)
	for {
		seg, err := p.queue.Item(0)
		s.Require().NoError(err)
		if seg.Progress >= 5 {
			break
		}
		_, err = p.RunCycle(sim)
		s.Require().NoError(err)
	}

	p.Abort()
	for i := 0; i < 100000 && !p.IsDone(); i++ {
		_, err := p.RunCycle(sim)
		s.Require().NoError(err)
	}
	s.Require().True(p.IsDone())
	s.Equal(0, p.GetExecID())
}

// S6: a queued DIO edge fires exactly once, on the segment's first cycle.
func (s *ScenarioSuite) TestS6_DIOEdge() {
	p, err := New(4, WithCycleTime(0.001), WithAMax(100), WithVMax(50), WithVLimit(100))
	s.Require().NoError(err)
	s.Require().NoError(p.SetPos(posemath.Pose9{}))

	p.SetDout(0, 1, 1)
	l := line(s.T(), posemath.Vec3{}, posemath.Vec3{X: 10})
	s.Require().NoError(p.AddLine(&l, nil, nil, MoveParams{ReqVel: 50, MaxVel: 100, MaxAccel: 100}))

	sim := iocap.NewSimulated(1.0)
	writes := 0
	for i := 0; i < 100000 && !p.IsDone(); i++ {
		before := sim.DioState(0)
		_, err := p.RunCycle(sim)
		s.Require().NoError(err)
		if sim.DioState(0) != before {
			writes++
		}
	}
	s.True(sim.DioState(0))
	s.Equal(1, writes)
}
