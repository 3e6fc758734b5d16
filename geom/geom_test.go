package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTetVolumeUnit(t *testing.T) {
	p0 := Vec3{0, 0, 0}
	p1 := Vec3{1, 0, 0}
	p2 := Vec3{0, 1, 0}
	p3 := Vec3{0, 0, 1}
	v := TetVolume(p0, p1, p2, p3)
	require.InDelta(t, 1.0/6.0, v, 1e-12)
}

func TestTetVolumeReversedIsNegative(t *testing.T) {
	p0 := Vec3{0, 0, 0}
	p1 := Vec3{1, 0, 0}
	p2 := Vec3{0, 1, 0}
	p3 := Vec3{0, 0, 1}
	v := TetVolume(p0, p2, p1, p3)
	if v >= 0 {
		t.Errorf("expected negative volume for reversed winding, got %f", v)
	}
}

func TestTriUnitNormalIsUnit(t *testing.T) {
	n := TriUnitNormal(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0})
	require.InDelta(t, 1.0, n.Len(), 1e-12)
	require.InDelta(t, 1.0, n[2], 1e-12)
}

func TestQuadUnitNormalPlanar(t *testing.T) {
	n := QuadUnitNormal(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{1, 1, 0}, Vec3{0, 1, 0})
	require.InDelta(t, 1.0, math.Abs(n[2]), 1e-12)
}

func TestSafeAcosClamps(t *testing.T) {
	require.Equal(t, math.Pi, SafeAcos(-1.5))
	require.Equal(t, 0.0, SafeAcos(1.5))
	require.InDelta(t, math.Pi/2, SafeAcos(0), 1e-12)
}

func TestPyrVolumeUnit(t *testing.T) {
	// Square base at z=0, apex at (0.5,0.5,1): volume = 1/3 * base area * height
	v := PyrVolume(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{1, 1, 0}, Vec3{0, 1, 0}, Vec3{0.5, 0.5, 1})
	require.InDelta(t, 1.0/3.0, v, 1e-12)
}
