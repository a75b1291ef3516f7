package blend

import (
	"math"

	"github.com/syncpath/tpcore/posemath"
)

// Classification is the outcome of the corner tangency test.
type Classification int

const (
	// ClassTangent means the corner's bend angle is within the margin the
	// requested feed and accel already tolerate: no blend is needed.
	ClassTangent Classification = iota
	// ClassBlend means the corner needs, and geometrically supports, a
	// spherical blend arc (both neighbors are lines).
	ClassBlend
	// ClassParabolic means the corner needs slowing but the geometry isn't
	// a supported blend combination; use a velocity-overlap join instead.
	ClassParabolic
)

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// FindIntersectionAngle returns half the supplementary angle between two
// unit tangents (theta) and the full bend angle (phi = pi - 2*theta).
// phi is zero for collinear tangents (no corner at all).
func FindIntersectionAngle(u1, u2 posemath.Vec3) (theta, phi float64) {
	dot := clampUnit(u1.Dot(u2))
	theta = math.Acos(-dot) / 2
	phi = math.Pi - 2*theta
	return theta, phi
}

// calculateInscribedDiameter returns the largest diameter, along axis
// `normal`, of the box inscribed by per-axis bounds that still fits inside
// the bounding limits when projected onto the plane perpendicular to
// normal. Axes nearly parallel to normal contribute no constraint.
func calculateInscribedDiameter(normal, bounds posemath.Vec3) float64 {
	axes := [3]posemath.Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	boundVals := [3]float64{bounds.X, bounds.Y, bounds.Z}
	diameter := math.Inf(1)
	for i, e := range axes {
		proj := e.Dot(normal)
		perp := e.Sub(normal.Scale(proj))
		scale := perp.Norm()
		if scale < posemath.Epsilon {
			continue
		}
		extent := boundVals[i] / scale
		if extent < diameter {
			diameter = extent
		}
	}
	return diameter
}

// Classify runs the corner tangency test: uReq is the requested feed along
// the corner, accMargin the acceleration budget available for cornering,
// cycleTime the servo period, and bothLines reports whether both
// neighboring segments are lines (the only combination PlanLineLine
// supports).
func Classify(prevTangent, nextTangent posemath.Vec3, accMargin, cycleTime, uReq float64, bothLines bool) Classification {
	_, phi := FindIntersectionAngle(prevTangent, nextTangent)
	if phi <= posemath.Epsilon {
		return ClassTangent
	}
	vReq := uReq
	if vReq < posemath.Epsilon {
		vReq = posemath.Epsilon
	}
	phiMax := accMargin * cycleTime / vReq
	if phi <= phiMax {
		return ClassTangent
	}
	if !bothLines {
		return ClassParabolic
	}
	return ClassBlend
}

// ParabolicVelocity computes the blend velocity each neighbor of a Parabolic
// corner should have reached before the stepper begins overlapping their
// execution: vb1/a1 == vb2/a2 (equal blend time), scaled down from each
// segment's own reachable triangular-profile peak velocity v_hat =
// sqrt(a*target) by whichever neighbor reaches its blend time first, and
// further clipped by the tolerance-derived chord speed 2*sqrt(a*tolerance/cos
// theta) when theta is non-degenerate.
func ParabolicVelocity(theta, a1, target1, a2, target2, tolerance float64) (vb1, vb2 float64) {
	vHat1 := math.Sqrt(a1 * target1)
	vHat2 := math.Sqrt(a2 * target2)
	k := math.Min(vHat1/a1, vHat2/a2)
	vb1, vb2 = k*a1, k*a2

	if cosTheta := math.Cos(theta); cosTheta > posemath.Epsilon {
		chord1 := 2 * math.Sqrt(a1*tolerance/cosTheta)
		chord2 := 2 * math.Sqrt(a2*tolerance/cosTheta)
		vb1 = math.Min(vb1, chord1)
		vb2 = math.Min(vb2, chord2)
	}
	return vb1, vb2
}

// Params bounds a single line-line blend computation.
type Params struct {
	// PrevTarget is the prior line's remaining arc length at blend time.
	PrevTarget float64
	// PrevNominalLength is the prior line's full length at insertion.
	PrevNominalLength float64
	// PrevCycleTime is the prior segment's servo period.
	PrevCycleTime float64
	// NextTarget is the next line's full length.
	NextTarget float64
	// VelBound and AccBound are the per-axis velocity/acceleration limits
	// (e.g. joint.vel_limit / joint.acc_limit projected into Cartesian
	// space) used to size the cornering envelope.
	VelBound, AccBound posemath.Vec3
	// ReqVelPrev, ReqVelNext are each line's own requested feed.
	ReqVelPrev, ReqVelNext float64
	// MaxFeedScale is the feed override currently in effect.
	MaxFeedScale float64
	// Tolerance is the maximum path deviation the blend may introduce.
	Tolerance float64
}

// Result is a fully planned spherical blend arc plus the trims its
// neighbors need.
type Result struct {
	Arc posemath.Circle
	// DPlan is the arc-length each neighbor gives up to the blend.
	DPlan float64
	// ConsumesPrev reports whether the prior line's remaining length after
	// trimming is short enough (per Options.GapCycles) to fold entirely
	// into the arc rather than keep as its own segment.
	ConsumesPrev bool
	// ActualVel is the velocity the arc can be safely run at.
	ActualVel float64
}

// PlanLineLine constructs the tangent spherical blend arc joining prev and
// next: the corner normal and inscribed-diameter bound, the tolerance- and
// acceleration-limited blend radius, and the trim each line takes to make
// room for the arc.
func PlanLineLine(prev, next posemath.Line, p Params, opts Options) (Result, error) {
	u1 := prev.EndTangent()
	u2 := next.StartTangent()
	theta, phi := FindIntersectionAngle(u1, u2)
	if phi <= posemath.Epsilon {
		return Result{}, ErrRadiusTooSmall
	}

	binormal, err := u1.Cross(u2).Unit()
	if err != nil {
		return Result{}, ErrRadiusTooSmall
	}
	normal, err := u2.Sub(u1).Unit()
	if err != nil {
		return Result{}, ErrRadiusTooSmall
	}

	aMax := calculateInscribedDiameter(binormal, p.AccBound)
	aNMax := aMax * opts.AccRatioNormal

	vReq := math.Min(p.ReqVelPrev, p.ReqVelNext)
	vGoal := vReq * p.MaxFeedScale
	if vBound := calculateInscribedDiameter(binormal, p.VelBound); vBound < vGoal {
		vGoal = vBound
	}

	l1 := math.Min(p.PrevTarget, p.PrevNominalLength*opts.Greediness)
	l2 := p.NextTarget * opts.Greediness

	hTol := p.Tolerance / (1 - math.Sin(theta))
	dTol := math.Cos(theta) * hTol
	dGeom := math.Min(math.Min(l1, l2), dTol)

	rGeom := math.Tan(theta) * dGeom
	if rGeom <= opts.PosEpsilon {
		return Result{}, ErrRadiusTooSmall
	}

	vNormal := math.Sqrt(aNMax * rGeom)
	vPlan := math.Min(vNormal, vGoal)
	rPlan := vPlan * vPlan / aNMax
	dPlan := rPlan / math.Tan(theta)
	actualVel := math.Min(vPlan, vReq)

	sArc := rPlan * phi
	if rPlan <= opts.PosEpsilon {
		return Result{}, ErrRadiusTooSmall
	}
	if sArc <= opts.MinArcLength {
		return Result{}, ErrArcTooShort
	}

	centerDist := rPlan / math.Sin(theta)
	joinPoint := prev.End
	arcCenter := joinPoint.Add(normal.Scale(centerDist))
	arcStart := joinPoint.Sub(u1.Scale(dPlan))
	arcEnd := joinPoint.Add(u2.Scale(dPlan))

	arc, err := posemath.NewArcFromPoints(arcStart, arcEnd, arcCenter)
	if err != nil {
		return Result{}, err
	}

	lPrevRemaining := p.PrevTarget - dPlan
	prevSegTime := lPrevRemaining / math.Max(vPlan, posemath.Epsilon)
	consume := prevSegTime < opts.GapCycles*p.PrevCycleTime

	return Result{Arc: arc, DPlan: dPlan, ConsumesPrev: consume, ActualVel: actualVel}, nil
}
