package blend

import "errors"

// Sentinel errors for blend planning.
var (
	// ErrBlendUnsupported indicates a geometry combination other than
	// line-line (arc/line, line/arc, arc/arc) was requested; the caller
	// should fall back to a parabolic join instead.
	ErrBlendUnsupported = errors.New("blend: only line-line geometry is supported")

	// ErrRadiusTooSmall indicates the tolerance-limited blend radius
	// collapsed to (near) zero, so no usable arc exists for this corner.
	ErrRadiusTooSmall = errors.New("blend: resulting radius below minimum")

	// ErrArcTooShort indicates the resulting arc length is below the
	// minimum the stepper can reliably execute.
	ErrArcTooShort = errors.New("blend: resulting arc length below minimum")
)
