package tp_test

import (
	"fmt"

	"github.com/syncpath/tpcore/iocap"
	"github.com/syncpath/tpcore/posemath"
	"github.com/syncpath/tpcore/tc"
	"github.com/syncpath/tpcore/tp"
)

// ExamplePlanner_lineToStop queues a single line and runs it to
// completion against a simulated machine.
func ExamplePlanner_lineToStop() {
	planner, err := tp.New(4, tp.WithCycleTime(0.001), tp.WithAMax(200), tp.WithVMax(50), tp.WithVLimit(100))
	if err != nil {
		panic(err)
	}
	if err := planner.SetPos(posemath.Pose9{}); err != nil {
		panic(err)
	}

	l, err := posemath.NewLine(posemath.Vec3{}, posemath.Vec3{X: 10})
	if err != nil {
		panic(err)
	}
	if err := planner.AddLine(&l, nil, nil, tp.MoveParams{ReqVel: 50, MaxVel: 50, MaxAccel: 200}); err != nil {
		panic(err)
	}

	sim := iocap.NewSimulated(1.0)
	for !planner.IsDone() {
		if _, err := planner.RunCycle(sim); err != nil {
			panic(err)
		}
	}

	pos := planner.GetPos()
	fmt.Printf("done at x=%.0f\n", pos.X)
	// Output: done at x=10
}

// ExamplePlanner_tangentChain runs two collinear lines joined by a tangent
// corner. With only two segments queued the first is never relaxed by the
// optimizer (its successor is the unfinalized queue tail), so its final
// velocity stays 0 and motion slows to a stop at the join.
func ExamplePlanner_tangentChain() {
	planner, err := tp.New(4, tp.WithCycleTime(0.001), tp.WithAMax(400), tp.WithVMax(100), tp.WithVLimit(100))
	if err != nil {
		panic(err)
	}
	if err := planner.SetPos(posemath.Pose9{}); err != nil {
		panic(err)
	}
	planner.SetTermCond(tc.TermTangent)

	l1, _ := posemath.NewLine(posemath.Vec3{}, posemath.Vec3{X: 10})
	l2, _ := posemath.NewLine(posemath.Vec3{X: 10}, posemath.Vec3{X: 20})
	if err := planner.AddLine(&l1, nil, nil, tp.MoveParams{ReqVel: 50, MaxVel: 100, MaxAccel: 400}); err != nil {
		panic(err)
	}
	if err := planner.AddLine(&l2, nil, nil, tp.MoveParams{ReqVel: 50, MaxVel: 100, MaxAccel: 400}); err != nil {
		panic(err)
	}

	sim := iocap.NewSimulated(1.0)
	for !planner.IsDone() {
		if _, err := planner.RunCycle(sim); err != nil {
			panic(err)
		}
	}
	fmt.Printf("queue drained: %v\n", planner.IsDone())
	// Output: queue drained: true
}

// ExamplePlanner_cornerBlend shows a 90-degree corner between two lines
// spliced with a spherical blend arc rather than coming to a full stop.
func ExamplePlanner_cornerBlend() {
	planner, err := tp.New(8, tp.WithCycleTime(0.001), tp.WithAMax(400), tp.WithVMax(50), tp.WithVLimit(100))
	if err != nil {
		panic(err)
	}
	if err := planner.SetPos(posemath.Pose9{}); err != nil {
		panic(err)
	}

	l1, _ := posemath.NewLine(posemath.Vec3{}, posemath.Vec3{X: 10})
	l2, _ := posemath.NewLine(posemath.Vec3{X: 10}, posemath.Vec3{X: 10, Y: 10})
	if err := planner.AddLine(&l1, nil, nil, tp.MoveParams{ReqVel: 30, MaxVel: 50, MaxAccel: 400, Tolerance: 0.05}); err != nil {
		panic(err)
	}
	if err := planner.AddLine(&l2, nil, nil, tp.MoveParams{ReqVel: 30, MaxVel: 50, MaxAccel: 400, Tolerance: 0.05}); err != nil {
		panic(err)
	}

	fmt.Printf("segments queued: %d\n", planner.QueueDepth())
	// Output: segments queued: 3
}

// ExamplePlanner_rigidTap drives a tapping cycle forward and back through
// its reversal and retraction states.
func ExamplePlanner_rigidTap() {
	planner, err := tp.New(4, tp.WithCycleTime(0.001), tp.WithAMax(400), tp.WithVMax(60), tp.WithVLimit(120))
	if err != nil {
		panic(err)
	}
	if err := planner.SetPos(posemath.Pose9{}); err != nil {
		panic(err)
	}

	forward, _ := posemath.NewLine(posemath.Vec3{}, posemath.Vec3{Z: -10})
	if err := planner.AddRigidTap(forward, 10, tp.MoveParams{
		ReqVel: 40, MaxVel: 60, MaxAccel: 400,
		Synchronized: tc.SyncPosition, UUPerRev: 1.0,
	}); err != nil {
		panic(err)
	}

	sim := iocap.NewSimulated(1.0)
	for i := 0; i < 200000 && !planner.IsDone(); i++ {
		if state, err := planner.RigidTapState(); err == nil {
			switch state {
			case tc.TapStateTapping, tc.TapStateFinalReversal:
				sim.AdvanceSpindle(0.02)
			case tc.TapStateReversing, tc.TapStateRetraction:
				sim.AdvanceSpindle(-0.02)
			}
		}
		if _, err := planner.RunCycle(sim); err != nil {
			panic(err)
		}
	}

	pos := planner.GetPos()
	fmt.Printf("tool returned near z=0: %v\n", pos.Z > -0.5 && pos.Z < 0.5)
	// Output: tool returned near z=0: true
}
