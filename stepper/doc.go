// Package stepper implements the per-cycle motion primitives the planner's
// RunCycle orchestrates each servo tick: the trapezoidal and ramp
// acceleration solvers, the distance-from-acceleration integrator, the
// rigid-tap state machine driver, and the velocity/position spindle-sync
// laws.
//
// Every function here is a pure transformation of a single *tc.Segment (and
// occasionally its queued successor): no I/O, no queue access, no locking.
// The controller in package tp owns the queue and the machine boundary; it
// calls into stepper once per cycle per active segment.
package stepper
