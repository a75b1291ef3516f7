package tp

import "errors"

// Sentinel errors for Planner construction and the controller API.
var (
	// ErrOptionViolation indicates an Option supplied to New was internally
	// inconsistent (e.g. OptimizeOptions with a non-positive Depth).
	ErrOptionViolation = errors.New("tp: option violation")

	// ErrBadCapacity indicates New was called with a non-positive queue
	// capacity.
	ErrBadCapacity = errors.New("tp: capacity must be positive")

	// ErrQueueEmpty indicates a controller call that requires an active
	// segment was made while the queue is empty.
	ErrQueueEmpty = errors.New("tp: queue is empty")

	// ErrAborting indicates a append was attempted while the planner is
	// mid-abort and not yet ready to accept new motion.
	ErrAborting = errors.New("tp: planner is aborting")

	// ErrNotRigidTap indicates RigidTapState was called while the active
	// segment is not a rigid tap.
	ErrNotRigidTap = errors.New("tp: active segment is not a rigid tap")

	// ErrRigidTapRequiresSync indicates AddRigidTap was called with
	// Synchronized == tc.SyncNone; a rigid tap cannot run unsynchronized.
	ErrRigidTapRequiresSync = errors.New("tp: rigid tap requires synchronized != SyncNone")
)
