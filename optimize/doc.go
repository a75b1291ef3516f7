// Package optimize implements the reverse-sweep velocity optimizer: walking
// backward from the most recently queued segment toward the one currently
// executing, propagating each segment's required entry velocity onto its
// predecessor so a chain of tangent segments can corner without an
// unnecessary mid-chain slowdown ("rising tide" relaxation).
//
// The sweep stops the moment it reaches a non-tangent join, a segment that
// has already started moving, or (in lazy mode) enough consecutive segments
// already pinned to their own maxvel that relaxing further back can't
// change anything.
package optimize
