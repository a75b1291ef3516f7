package posemath

// Pose9 is the 9-axis Cartesian pose exchanged at the planner's public
// boundary: translational XYZ, rotary ABC, and tool-axis UVW.
type Pose9 struct {
	X, Y, Z float64
	A, B, C float64
	U, V, W float64
}

// Translation returns the XYZ triple as a Vec3.
func (p Pose9) Translation() Vec3 { return Vec3{p.X, p.Y, p.Z} }

// Rotary returns the ABC triple as a Vec3.
func (p Pose9) Rotary() Vec3 { return Vec3{p.A, p.B, p.C} }

// Tool returns the UVW triple as a Vec3.
func (p Pose9) Tool() Vec3 { return Vec3{p.U, p.V, p.W} }

// WithTranslation returns a copy of p with its XYZ triple replaced.
func (p Pose9) WithTranslation(v Vec3) Pose9 {
	p.X, p.Y, p.Z = v.X, v.Y, v.Z
	return p
}

// WithRotary returns a copy of p with its ABC triple replaced.
func (p Pose9) WithRotary(v Vec3) Pose9 {
	p.A, p.B, p.C = v.X, v.Y, v.Z
	return p
}

// WithTool returns a copy of p with its UVW triple replaced.
func (p Pose9) WithTool(v Vec3) Pose9 {
	p.U, p.V, p.W = v.X, v.Y, v.Z
	return p
}

// Add returns the component-wise sum of two poses (used to combine a
// primary segment's displacement with a parabolic-overlap successor's
// displacement during blending).
func (p Pose9) Add(q Pose9) Pose9 {
	return Pose9{
		X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z,
		A: p.A + q.A, B: p.B + q.B, C: p.C + q.C,
		U: p.U + q.U, V: p.V + q.V, W: p.W + q.W,
	}
}

// Sub returns the component-wise difference p-q.
func (p Pose9) Sub(q Pose9) Pose9 {
	return Pose9{
		X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z,
		A: p.A - q.A, B: p.B - q.B, C: p.C - q.C,
		U: p.U - q.U, V: p.V - q.V, W: p.W - q.W,
	}
}
