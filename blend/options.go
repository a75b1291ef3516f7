package blend

// Options tunes the blend planner's numeric margins. The zero value is not
// meant to be used directly; start from DefaultOptions.
type Options struct {
	// AccRatioNormal scales a segment's bounding accel into the normal
	// (centripetal) accel budget available for cornering.
	AccRatioNormal float64
	// Greediness bounds how much of each neighboring line's own length may
	// be offered up to the blend, so a blend never eats more than half of
	// either line by default.
	Greediness float64
	// PosEpsilon is the minimum usable blend radius.
	PosEpsilon float64
	// MinArcLength is the minimum usable blend arc length.
	MinArcLength float64
	// GapCycles is the number of servo cycles below which a shortened prior
	// line is folded into the blend arc instead of kept as its own segment.
	GapCycles float64
}

// Option mutates an Options in place; apply with Apply or pass to the
// planner's constructors.
type Option func(*Options)

// DefaultOptions returns the planner's default blend margins.
func DefaultOptions() Options {
	return Options{
		AccRatioNormal: 1.0,
		Greediness:     0.5,
		PosEpsilon:     1e-6,
		MinArcLength:   1e-4,
		GapCycles:      2,
	}
}

// WithAccRatioNormal overrides the normal-acceleration ratio.
// Panics if ratio is not in (0, 1].
func WithAccRatioNormal(ratio float64) Option {
	if ratio <= 0 || ratio > 1 {
		panic("blend: AccRatioNormal must be in (0, 1]")
	}
	return func(o *Options) { o.AccRatioNormal = ratio }
}

// WithGreediness overrides how much of each line's length the blend may
// consume. Panics if greediness is not in (0, 1].
func WithGreediness(greediness float64) Option {
	if greediness <= 0 || greediness > 1 {
		panic("blend: Greediness must be in (0, 1]")
	}
	return func(o *Options) { o.Greediness = greediness }
}

// WithGapCycles overrides the fold-in-if-shorter-than threshold.
// Panics if cycles is not positive.
func WithGapCycles(cycles float64) Option {
	if cycles <= 0 {
		panic("blend: GapCycles must be positive")
	}
	return func(o *Options) { o.GapCycles = cycles }
}

// Apply folds a list of Options onto DefaultOptions.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
