// Package tcq implements TCQ, the fixed-capacity segment queue the planner
// appends to and the stepper consumes from.
//
// The backing store is a caller-sized array addressed as a ring, so Put and
// PopFront run in O(1) with no allocation once the queue is warm. Item(i)
// gives the stepper direct indexed access to the first few queued segments
// for blend lookahead and the reverse-sweep optimizer, without exposing the
// ring's internal wraparound.
package tcq
