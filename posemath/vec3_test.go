package posemath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syncpath/tpcore/posemath"
)

func TestVec3_Unit(t *testing.T) {
	v := posemath.Vec3{X: 3, Y: 4}
	u, err := v.Unit()
	require.NoError(t, err)
	require.InDelta(t, 1.0, u.Norm(), 1e-9)
	require.InDelta(t, 0.6, u.X, 1e-9)
	require.InDelta(t, 0.8, u.Y, 1e-9)
}

func TestVec3_UnitZero(t *testing.T) {
	_, err := posemath.Vec3{}.Unit()
	require.ErrorIs(t, err, posemath.ErrNotUnit)
}

func TestVec3_CrossDot(t *testing.T) {
	x := posemath.Vec3{X: 1}
	y := posemath.Vec3{Y: 1}
	z := x.Cross(y)
	require.InDelta(t, 0, z.X, 1e-9)
	require.InDelta(t, 0, z.Y, 1e-9)
	require.InDelta(t, 1, z.Z, 1e-9)
	require.InDelta(t, 0, x.Dot(y), 1e-9)
}

func TestLine_TrimStartEnd(t *testing.T) {
	l, err := posemath.NewLine(posemath.Vec3{}, posemath.Vec3{X: 10})
	require.NoError(t, err)

	trimmed, err := l.TrimStart(3)
	require.NoError(t, err)
	require.InDelta(t, 7, trimmed.Length(), 1e-9)
	require.InDelta(t, 3, trimmed.Start.X, 1e-9)

	shortened, err := l.TrimEnd(4)
	require.NoError(t, err)
	require.InDelta(t, 6, shortened.Length(), 1e-9)
	require.InDelta(t, 6, shortened.End.X, 1e-9)
}

func TestNewLine_ZeroLength(t *testing.T) {
	_, err := posemath.NewLine(posemath.Vec3{X: 1}, posemath.Vec3{X: 1})
	require.ErrorIs(t, err, posemath.ErrZeroLength)
}

func TestCircle_QuarterTurn(t *testing.T) {
	arc, err := posemath.NewArc(posemath.Vec3{}, posemath.Vec3{Z: 1}, posemath.Vec3{X: 1}, 2, 1.5707963267948966, posemath.Vec3{})
	require.NoError(t, err)
	require.InDelta(t, 2*1.5707963267948966, arc.Length(), 1e-9)

	end := arc.PointAt(arc.Length())
	require.InDelta(t, 0, end.X, 1e-6)
	require.InDelta(t, 2, end.Y, 1e-6)
}

func TestNewArcFromPoints(t *testing.T) {
	arc, err := posemath.NewArcFromPoints(posemath.Vec3{X: 1}, posemath.Vec3{Y: 1}, posemath.Vec3{})
	require.NoError(t, err)
	require.InDelta(t, 1, arc.Radius, 1e-9)
	require.InDelta(t, 1.5707963267948966, arc.Angle, 1e-6)
}

func TestNewArcFromPoints_Collinear(t *testing.T) {
	_, err := posemath.NewArcFromPoints(posemath.Vec3{X: 1}, posemath.Vec3{X: 2}, posemath.Vec3{})
	require.ErrorIs(t, err, posemath.ErrCollinear)
}
