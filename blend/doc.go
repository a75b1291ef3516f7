// Package blend computes the spherical-arc transition the planner splices
// between two line segments that meet at an angle too sharp to traverse at
// full speed without a corner violation, but not yet supported enough to
// blend two arcs or a line and an arc together.
//
// Classify performs the tangency test that decides whether a corner needs
// any blend at all. PlanLineLine performs the full construction: normals,
// the inscribed-diameter velocity/acceleration bound, the tolerance-limited
// blend radius, and the trim each neighboring line takes to make room for
// the arc. For arc/line, line/arc, and arc/arc combinations Classify reports
// ClassParabolic instead of ClassBlend, and the planner's append pipeline
// uses a parabolic (velocity-overlap) join for those.
package blend
