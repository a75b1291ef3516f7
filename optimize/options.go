package optimize

import "errors"

// ErrBadDepth indicates Options.Depth was non-positive.
var ErrBadDepth = errors.New("optimize: Depth must be positive")

// Options tunes how far back, and how eagerly, the sweep relaxes.
type Options struct {
	// Depth bounds how many segments behind the queue tail the sweep visits.
	Depth int
	// Lazy enables early exit once CutoffHits consecutive segments have
	// been pinned to their own maxvel: relaxing further back them cannot
	// improve anything, so the sweep stops paying for it.
	Lazy bool
	// CutoffHits is the number of AtMax segments that triggers early exit
	// in lazy mode.
	CutoffHits int
	// MinSegmentCycles is the minimum number of servo cycles a segment must
	// be able to run across at its own maxvel (TP_MIN_SEGMENT_CYCLES).
	MinSegmentCycles float64
}

// Validate checks Options for internal consistency.
func (o Options) Validate() error {
	if o.Depth <= 0 {
		return ErrBadDepth
	}
	return nil
}

// DefaultOptions returns the optimizer's default sweep parameters.
func DefaultOptions() Options {
	return Options{
		Depth:            4,
		Lazy:             true,
		CutoffHits:       2,
		MinSegmentCycles: 4.0,
	}
}

// Option mutates an Options in place.
type Option func(*Options)

// WithDepth overrides the sweep depth. Panics if depth is not positive.
func WithDepth(depth int) Option {
	if depth <= 0 {
		panic("optimize: Depth must be positive")
	}
	return func(o *Options) { o.Depth = depth }
}

// WithLazy overrides whether the sweep exits early once enough segments
// have hit their own maxvel.
func WithLazy(lazy bool) Option {
	return func(o *Options) { o.Lazy = lazy }
}

// Apply folds a list of Options onto DefaultOptions.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
