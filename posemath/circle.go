package posemath

import "math"

// Circle is a circular or helical arc: a planar circular path around Normal,
// optionally combined with a constant linear Rise (turning it into a helix).
// A spherical blend arc is represented as a Circle with a zero Rise and a
// short sweep Angle.
type Circle struct {
	Center   Vec3    // center of the circular component
	Normal   Vec3    // unit rotation axis (right-hand rule: Angle > 0 sweeps StartVec toward Normal×StartVec)
	StartVec Vec3    // unit vector from Center to the arc's start point
	Radius   float64 // > 0
	Angle    float64 // total sweep angle in radians (may exceed 2π for multi-turn helices)
	Rise     Vec3    // total linear displacement accumulated over the full sweep (zero for a planar arc)
	length   float64 // cached arc length
}

// NewArc builds a Circle directly from its abstracted parameters.
// Returns ErrZeroRadius if radius <= 0, ErrZeroLength if the resulting path
// has no measurable extent (zero radius*angle and zero rise).
func NewArc(center, normal, startVec Vec3, radius, angle float64, rise Vec3) (Circle, error) {
	if radius <= Epsilon {
		return Circle{}, ErrZeroRadius
	}
	n, err := normal.Unit()
	if err != nil {
		return Circle{}, err
	}
	sv, err := startVec.Unit()
	if err != nil {
		return Circle{}, err
	}
	c := Circle{Center: center, Normal: n, StartVec: sv, Radius: radius, Angle: angle, Rise: rise}
	c.length = math.Hypot(radius*angle, rise.Norm())
	if c.length <= Epsilon {
		return Circle{}, ErrZeroLength
	}
	return c, nil
}

// NewArcFromPoints builds a zero-rise (planar) arc from its start point,
// end point, and center: the radius, rotation axis, and sweep angle are
// derived from the three points rather than supplied directly.
func NewArcFromPoints(start, end, center Vec3) (Circle, error) {
	r1 := start.Sub(center)
	r2 := end.Sub(center)
	radius := r1.Norm()
	if radius <= Epsilon {
		return Circle{}, ErrZeroRadius
	}
	normal, err := r1.Cross(r2).Unit()
	if err != nil {
		return Circle{}, ErrCollinear
	}
	startVec, err := r1.Unit()
	if err != nil {
		return Circle{}, ErrZeroRadius
	}
	// Sweep angle via atan2 of the sine (normal . (r1 x r2) magnitude sign
	// already folded into normal's construction) and cosine (r1 . r2) components.
	cosAngle := clampUnit(r1.Dot(r2) / (radius * radius))
	sinAngle := r1.Cross(r2).Norm() / (radius * radius)
	angle := math.Atan2(sinAngle, cosAngle)
	return NewArc(center, normal, startVec, radius, angle, Vec3{})
}

func clampUnit(x float64) float64 {
	if x > 1.0 {
		return 1.0
	}
	if x < -1.0 {
		return -1.0
	}
	return x
}

// Length returns the arc length of the circular/helical path.
func (c Circle) Length() float64 { return c.length }

// rotate applies Rodrigues' rotation formula: rotates v by angle radians
// about the unit axis c.Normal.
func (c Circle) rotate(v Vec3, angle float64) Vec3 {
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	return v.Scale(cosA).
		Add(c.Normal.Cross(v).Scale(sinA)).
		Add(c.Normal.Scale(c.Normal.Dot(v) * (1 - cosA)))
}

// fraction converts an arc-length offset into [0,1] progress along the path.
func (c Circle) fraction(s float64) float64 {
	if c.length <= Epsilon {
		return 0
	}
	return s / c.length
}

// PointAt returns the point at arc-length s along the path, measured from
// the start. Callers are responsible for clamping s to [0, Length()].
func (c Circle) PointAt(s float64) Vec3 {
	t := c.fraction(s)
	rotated := c.rotate(c.StartVec, c.Angle*t).Scale(c.Radius)
	return c.Center.Add(rotated).Add(c.Rise.Scale(t))
}

// tangentAt returns the unit tangent at arc-length s.
func (c Circle) tangentAt(s float64) Vec3 {
	t := c.fraction(s)
	rotated := c.rotate(c.StartVec, c.Angle*t)
	angular := c.Normal.Cross(rotated).Scale(c.Radius * c.Angle)
	d := angular.Add(c.Rise)
	u, err := d.Unit()
	if err != nil {
		// Degenerate (pure point motion); fall back to the rotated radius
		// direction so callers always get a finite unit vector.
		return rotated
	}
	return u
}

// StartTangent returns the unit tangent at the start of the arc.
func (c Circle) StartTangent() Vec3 { return c.tangentAt(0) }

// EndTangent returns the unit tangent at the end of the arc.
func (c Circle) EndTangent() Vec3 { return c.tangentAt(c.length) }

// EndPoint returns the point at the end of the arc.
func (c Circle) EndPoint() Vec3 { return c.PointAt(c.length) }

// StartPoint returns the point at the start of the arc.
func (c Circle) StartPoint() Vec3 { return c.PointAt(0) }
