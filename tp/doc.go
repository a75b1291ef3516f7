// Package tp implements Planner, the trajectory planner's public surface:
// the append pipeline that turns requested moves into queued Segments
// (classifying, and where possible blending, each new corner), the
// controller API the rest of the motion controller uses to steer execution,
// and RunCycle, which drives the queue forward by one servo tick using the
// primitives in package stepper.
//
// Planner is constructed with functional options (New(capacity, opts...)).
// A single sync.RWMutex guards the whole Planner — unlike a
// split-lock design, the append pipeline and RunCycle always need both the
// queue and the spindle/sync state together, so one lock is simpler with no
// loss of real concurrency.
package tp
