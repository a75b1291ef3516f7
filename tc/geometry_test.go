package tc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syncpath/tpcore/posemath"
	"github.com/syncpath/tpcore/tc"
)

func TestNewLineSegment_XYZOnly(t *testing.T) {
	line, err := posemath.NewLine(posemath.Vec3{}, posemath.Vec3{X: 10})
	require.NoError(t, err)

	seg, err := tc.NewLineSegment(1, &line, nil, nil)
	require.NoError(t, err)
	require.Equal(t, tc.KindLinear, seg.Kind)
	require.InDelta(t, 10, seg.Target, 1e-9)
	require.InDelta(t, 10, seg.NominalLength, 1e-9)

	mid := seg.Pose(5, posemath.Pose9{})
	require.InDelta(t, 5, mid.X, 1e-9)
	require.InDelta(t, 0, mid.Y, 1e-9)
}

func TestNewLineSegment_NoMotion(t *testing.T) {
	_, err := tc.NewLineSegment(1, nil, nil, nil)
	require.ErrorIs(t, err, tc.ErrNoMotion)
}

func TestSegment_PoseSynchronizesTriples(t *testing.T) {
	xyz, err := posemath.NewLine(posemath.Vec3{}, posemath.Vec3{X: 10})
	require.NoError(t, err)
	abc, err := posemath.NewLine(posemath.Vec3{}, posemath.Vec3{X: 90})
	require.NoError(t, err)

	seg, err := tc.NewLineSegment(1, &xyz, nil, &abc)
	require.NoError(t, err)
	require.InDelta(t, 10, seg.Target, 1e-9) // XYZ dominates (priority XYZ > UVW > ABC)

	half := seg.Pose(5, posemath.Pose9{})
	require.InDelta(t, 5, half.X, 1e-9)
	require.InDelta(t, 45, half.A, 1e-9) // ABC completes at the same progress fraction
}

func TestSegment_StartEndTangent(t *testing.T) {
	xyz, err := posemath.NewLine(posemath.Vec3{}, posemath.Vec3{X: 10})
	require.NoError(t, err)
	seg, err := tc.NewLineSegment(1, &xyz, nil, nil)
	require.NoError(t, err)

	require.InDelta(t, 1, seg.StartTangent().X, 1e-9)
	require.InDelta(t, 1, seg.EndTangent().X, 1e-9)
}

func TestDIOEdge_FireStartOnce(t *testing.T) {
	seg := &tc.Segment{SyncDIO: []tc.DIOEdge{{Index: 3, Start: 1, End: -1}}}
	var fired []int
	seg.FireStart(func(index int, on bool) { fired = append(fired, index) }, nil)
	seg.FireStart(func(index int, on bool) { fired = append(fired, index) }, nil)
	require.Equal(t, []int{3}, fired)
}
