package tp

// Result is RunCycle's per-tick outcome.
type Result int

const (
	// Ok means the cycle advanced normally.
	Ok Result = iota
	// Fail means the cycle could not be executed (the queue front could not
	// be read, or a finished segment could not be popped).
	Fail
	// NoAction means there was nothing to do: the queue is empty.
	NoAction
	// Waiting means execution is stalled on an external condition (spindle
	// not at speed, rotary axis not yet unlocked).
	Waiting
	// Stopped means the planner is paused or has been aborted.
	Stopped
	// Slowing means the cycle advanced but the active segment is in its
	// final deceleration leg.
	Slowing
)

// String renders the Result for logging.
func (r Result) String() string {
	switch r {
	case Ok:
		return "ok"
	case Fail:
		return "fail"
	case NoAction:
		return "no-action"
	case Waiting:
		return "waiting"
	case Stopped:
		return "stopped"
	case Slowing:
		return "slowing"
	default:
		return "unknown"
	}
}
