package tp

import (
	"log"
	"os"

	"github.com/syncpath/tpcore/blend"
	"github.com/syncpath/tpcore/optimize"
)

// Options configures a Planner at construction time.
type Options struct {
	CycleTime float64
	VMax      float64
	VLimit    float64
	AMax      float64

	BlendOptions    blend.Options
	OptimizeOptions optimize.Options

	Logger   *log.Logger
	LogLevel Level

	err error
}

// DefaultOptions returns the planner's default configuration: a 1ms servo
// cycle, generous velocity/accel ceilings meant to be tightened by the
// caller, and a stderr logger at LevelInfo.
func DefaultOptions() Options {
	return Options{
		CycleTime:       0.001,
		VMax:            100,
		VLimit:          100,
		AMax:            500,
		BlendOptions:    blend.DefaultOptions(),
		OptimizeOptions: optimize.DefaultOptions(),
		Logger:          log.New(os.Stderr, "tp: ", log.LstdFlags),
		LogLevel:        LevelInfo,
	}
}

// Option mutates an Options in place; invalid arguments panic immediately
// at the call site rather than surfacing as a deferred Validate error,
// matching this codebase's functional-option convention.
type Option func(*Options)

// WithCycleTime overrides the servo cycle period. Panics if seconds is not
// positive.
func WithCycleTime(seconds float64) Option {
	if seconds <= 0 {
		panic("tp: CycleTime must be positive")
	}
	return func(o *Options) { o.CycleTime = seconds }
}

// WithVMax overrides the default maximum velocity new segments inherit.
// Panics if vmax is not positive.
func WithVMax(vmax float64) Option {
	if vmax <= 0 {
		panic("tp: VMax must be positive")
	}
	return func(o *Options) { o.VMax = vmax }
}

// WithVLimit overrides the hard velocity ceiling applied regardless of a
// segment's own requested or maximum velocity. Panics if vlimit is not
// positive.
func WithVLimit(vlimit float64) Option {
	if vlimit <= 0 {
		panic("tp: VLimit must be positive")
	}
	return func(o *Options) { o.VLimit = vlimit }
}

// WithAMax overrides the default maximum acceleration new segments
// inherit. Panics if amax is not positive.
func WithAMax(amax float64) Option {
	if amax <= 0 {
		panic("tp: AMax must be positive")
	}
	return func(o *Options) { o.AMax = amax }
}

// WithBlendOptions overrides the blend planner's margins.
func WithBlendOptions(opts blend.Options) Option {
	return func(o *Options) { o.BlendOptions = opts }
}

// WithOptimizeOptions overrides the velocity optimizer's sweep parameters.
func WithOptimizeOptions(opts optimize.Options) Option {
	return func(o *Options) { o.OptimizeOptions = opts }
}

// WithLogger overrides the planner's diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithLogLevel sets the minimum severity the planner actually writes;
// messages above this level (in verbosity) are discarded before formatting.
func WithLogLevel(level Level) Option {
	return func(o *Options) { o.LogLevel = level }
}

// apply folds opts onto DefaultOptions, recording the first option
// violation encountered (currently only possible via a misconfigured
// sub-Options like OptimizeOptions) for New to surface as
// ErrOptionViolation.
func apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.OptimizeOptions.Validate(); err != nil {
		o.err = err
	}
	return o
}
