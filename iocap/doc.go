// Package iocap defines Capability, the narrow boundary interface between
// the trajectory planner and the machine it drives. The planner core never
// touches hardware, a fieldbus, or a simulator directly;
// it only calls Capability, so any backend — real servo drives, a HAL-style
// shared-memory bridge, or the in-process simulator cmd/tpsim uses for
// scenario playback — can sit behind it.
package iocap
