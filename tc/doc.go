// Package tc defines TC, the single executable motion element the planner
// queues, blends, optimizes, and steps: one Segment per line, circular/
// helical arc, rigid-tap cycle, or spherical blend arc.
//
// A Segment embeds an independent posemath geometry for each of the three
// Cartesian triples a move may carry — translational XYZ, tool-axis UVW,
// rotary ABC — tagged by a Kind discriminant, alongside the kinematic state
// (target/progress/velocities/acceleration), termination and synchronization
// flags, and any queued digital/analog I/O edges.
package tc
