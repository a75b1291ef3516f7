package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/sync/errgroup"

	"github.com/syncpath/tpcore/iocap"
	"github.com/syncpath/tpcore/posemath"
	"github.com/syncpath/tpcore/tc"
	"github.com/syncpath/tpcore/tp"
)

// runScenario warms up the simulated capability, replays every move in sc
// through a Planner, and prints a per-cycle trace.
func runScenario(sc Scenario, maxCycles int) error {
	planner, err := tp.New(sc.QueueDepth,
		tp.WithCycleTime(sc.CycleTime),
		tp.WithVMax(orDefault(sc.VMax, 100)),
		tp.WithVLimit(orDefault(sc.VLimit, 200)),
		tp.WithAMax(orDefault(sc.AMax, 500)),
	)
	if err != nil {
		return fmt.Errorf("tpsim: building planner: %w", err)
	}
	if err := planner.SetPos(posemath.Pose9{}); err != nil {
		return fmt.Errorf("tpsim: seeding position: %w", err)
	}

	sim := iocap.NewSimulated(1.0)

	// Concurrent warm-up: command the spindle to speed 0 and lock rotary
	// axes 1-3, before the serial per-cycle loop starts. Neither step
	// depends on the other, so they run as a fan-out rather than two
	// sequential round trips.
	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		sim.SetSpindleSpeed(0)
		return nil
	})
	g.Go(func() error {
		for axis := 1; axis <= 3; axis++ {
			sim.SetRotaryUnlock(axis, false)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("tpsim: warm-up: %w", err)
	}

	for i, mv := range sc.Moves {
		correlationID := uuid.NewString()
		if err := appendMove(planner, mv, correlationID); err != nil {
			return fmt.Errorf("tpsim: move %d (%s): %w", i, mv.Label, err)
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"cycle", "result", "exec id", "x", "y", "z", "vel"})

	cycles := 0
	for !planner.IsDone() && cycles < maxCycles {
		result, err := planner.RunCycle(sim)
		if err != nil {
			return fmt.Errorf("tpsim: cycle %d: %w", cycles, err)
		}
		pos := planner.GetPos()
		table.Append([]string{
			fmt.Sprintf("%d", cycles),
			result.String(),
			fmt.Sprintf("%d", planner.GetExecID()),
			fmt.Sprintf("%.4f", pos.X),
			fmt.Sprintf("%.4f", pos.Y),
			fmt.Sprintf("%.4f", pos.Z),
			fmt.Sprintf("%.3f", sim.SpindleSpeedIn()),
		})
		cycles++
		time.Sleep(0) // yield; tpsim is a playback tool, not a real-time loop
	}
	table.Render()
	return nil
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func appendMove(planner *tp.Planner, mv Move, correlationID string) error {
	start := posemath.Vec3{X: mv.Start.X, Y: mv.Start.Y, Z: mv.Start.Z}
	end := posemath.Vec3{X: mv.End.X, Y: mv.End.Y, Z: mv.End.Z}

	mp := tp.MoveParams{
		ReqVel:        mv.ReqVel,
		MaxVel:        mv.MaxVel,
		MaxAccel:      mv.MaxAccel,
		Tolerance:     mv.Tolerance,
		Label:         mv.Label,
		CorrelationID: correlationID,
	}

	switch mv.Type {
	case "line":
		l, err := posemath.NewLine(start, end)
		if err != nil {
			return err
		}
		return planner.AddLine(&l, nil, nil, mp)

	case "circle":
		center := posemath.Vec3{X: mv.Center.X, Y: mv.Center.Y, Z: mv.Center.Z}
		arc, err := posemath.NewArcFromPoints(start, end, center)
		if err != nil {
			return err
		}
		return planner.AddCircle(&arc, nil, nil, mp)

	case "rigidtap":
		l, err := posemath.NewLine(start, end)
		if err != nil {
			return err
		}
		mp.Synchronized = tc.SyncPosition
		mp.UUPerRev = mv.UUPerRev
		return planner.AddRigidTap(l, mv.ReversalTarget, mp)

	default:
		return fmt.Errorf("unknown move type %q", mv.Type)
	}
}
