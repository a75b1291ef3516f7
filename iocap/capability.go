package iocap

// Capability is the full set of machine inputs the stepper reads and
// outputs it writes each servo cycle.
type Capability interface {
	// NetFeedScale is the feed override currently in effect (input).
	NetFeedScale() float64

	// SetSpindleSpeed commands the spindle's target speed (output).
	SetSpindleSpeed(speed float64)
	// SetSpindleDirection commands the spindle's rotation sign: -1, 0, or 1
	// (output).
	SetSpindleDirection(direction int)

	// SpindleRevs returns the cumulative, signed spindle position in
	// revolutions since the last index pulse (input).
	SpindleRevs() float64
	// SpindleSpeedIn returns the measured spindle speed feedback (input).
	SpindleSpeedIn() float64
	// SpindleIsAtSpeed reports whether the spindle has reached its
	// commanded speed (input).
	SpindleIsAtSpeed() bool
	// SetSpindleIndexEnable arms (true) or disarms (false) index-pulse
	// capture, used to latch a reference revolution count for rigid tapping
	// (output).
	SetSpindleIndexEnable(enable bool)

	// DioWrite sets digital output index on or off (output).
	DioWrite(index int, on bool)
	// AioWrite sets analog output index to value (output).
	AioWrite(index int, value float64)

	// SetRotaryUnlock commands the rotary axis's brake/clamp to unlock
	// (true) or relock (false) before/after an indexing move (output).
	SetRotaryUnlock(axis int, unlock bool)
	// RotaryIsUnlocked reports whether the rotary axis's brake has
	// confirmed unlocked (input).
	RotaryIsUnlocked(axis int) bool

	// JointAccLimit returns the configured acceleration limit for the given
	// joint index (input).
	JointAccLimit(axis int) float64
	// JointVelLimit returns the configured velocity limit for the given
	// joint index (input).
	JointVelLimit(axis int) float64
}
