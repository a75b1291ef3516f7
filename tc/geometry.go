package tc

import "github.com/syncpath/tpcore/posemath"

// Pose evaluates the segment at cumulative arc-length s (clamped to
// [0, Target]): each non-nil triple replaces the matching triple of base
// with its absolute point, and nil triples keep base's values. Each non-nil
// triple is
// parameterized by the same progress *fraction* s/Target scaled onto that
// triple's own Length, so all three triples that carry motion complete
// together at s == Target regardless of their individual arc lengths.
func (s *Segment) Pose(progress float64, base posemath.Pose9) posemath.Pose9 {
	if progress < 0 {
		progress = 0
	}
	if progress > s.Target {
		progress = s.Target
	}
	frac := 0.0
	if s.Target > posemath.Epsilon {
		frac = progress / s.Target
	}
	out := base
	if s.XYZ != nil {
		out = out.WithTranslation(s.XYZ.PointAt(frac * s.XYZ.Length()))
	}
	if s.UVW != nil {
		out = out.WithTool(s.UVW.PointAt(frac * s.UVW.Length()))
	}
	if s.ABC != nil {
		out = out.WithRotary(s.ABC.PointAt(frac * s.ABC.Length()))
	}
	return out
}

// StartTangent returns the unit tangent of the dominant (longest) triple at
// the segment's start, used by the blend planner's tangency test.
func (s *Segment) StartTangent() posemath.Vec3 {
	g := s.dominant()
	if g == nil {
		return posemath.Vec3{}
	}
	return g.StartTangent()
}

// EndTangent returns the unit tangent of the dominant (longest) triple at
// the segment's end.
func (s *Segment) EndTangent() posemath.Vec3 {
	g := s.dominant()
	if g == nil {
		return posemath.Vec3{}
	}
	return g.EndTangent()
}

// dominant returns the triple with the greatest arc length (the first one
// listed on ties, in order XYZ, UVW, ABC). This differs from newTarget,
// which picks a segment's overall Target by priority XYZ > UVW > ABC
// regardless of length.
func (s *Segment) dominant() Geometry {
	var best Geometry
	bestLen := -1.0
	for _, g := range []Geometry{s.XYZ, s.UVW, s.ABC} {
		if g == nil {
			continue
		}
		if g.Length() > bestLen {
			best, bestLen = g, g.Length()
		}
	}
	return best
}

// newTarget derives a segment's overall Target arc length from its triples,
// preferring XYZ, then UVW, then ABC.
func newTarget(xyz, uvw, abc Geometry) (float64, error) {
	switch {
	case xyz != nil:
		return xyz.Length(), nil
	case uvw != nil:
		return uvw.Length(), nil
	case abc != nil:
		return abc.Length(), nil
	default:
		return 0, ErrNoMotion
	}
}

// NewLineSegment builds a linear Segment from up to three per-triple lines.
// Pass nil for triples with no motion.
func NewLineSegment(id int, xyz, uvw, abc *posemath.Line) (*Segment, error) {
	g := func(l *posemath.Line) Geometry {
		if l == nil {
			return nil
		}
		return *l
	}
	xg, ug, ag := g(xyz), g(uvw), g(abc)
	target, err := newTarget(xg, ug, ag)
	if err != nil {
		return nil, err
	}
	return &Segment{
		ID: id, Kind: KindLinear, XYZ: xg, UVW: ug, ABC: ag,
		Target: target, NominalLength: target, TermCond: TermStop,
		IndexRotary: NoRotaryAxis,
	}, nil
}

// NewArcSegment builds a circular/helical Segment. Only the XYZ triple may
// be circular in practice (tool and rotary triples ride along linearly, if
// at all), but all three are accepted for symmetry with NewLineSegment.
func NewArcSegment(id int, xyz, uvw, abc *posemath.Circle) (*Segment, error) {
	g := func(c *posemath.Circle) Geometry {
		if c == nil {
			return nil
		}
		return *c
	}
	xg, ug, ag := g(xyz), g(uvw), g(abc)
	target, err := newTarget(xg, ug, ag)
	if err != nil {
		return nil, err
	}
	return &Segment{
		ID: id, Kind: KindCircular, XYZ: xg, UVW: ug, ABC: ag,
		Target: target, NominalLength: target, TermCond: TermStop,
		IndexRotary: NoRotaryAxis,
	}, nil
}

// NewBlendSegment wraps a spherical blend arc (always a planar XYZ circle)
// as a Segment that tangentially joins its neighbors.
func NewBlendSegment(id int, arc posemath.Circle) *Segment {
	return &Segment{
		ID: id, Kind: KindSphericalArc, XYZ: arc,
		Target: arc.Length(), NominalLength: arc.Length(),
		TermCond: TermTangent, IndexRotary: NoRotaryAxis,
	}
}
