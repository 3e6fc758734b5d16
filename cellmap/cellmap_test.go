package cellmap

import (
	"testing"

	"github.com/SajedehK/ExaMesh/geom"
	"github.com/stretchr/testify/require"
)

func unitCubeCorners() [8]geom.Vec3 {
	return [8]geom.Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
}

func TestHexLengthScaleMatchesLagrangeWhenUniform(t *testing.T) {
	corners := unitCubeCorners()
	var ones [8]float64
	for i := range ones {
		ones[i] = 1
	}
	lengthScaleMap := NewHexMap(LengthScale, corners, ones)
	lagrangeMap := NewHexMap(Lagrange, corners, ones)

	for _, p := range [][3]float64{{0.1, 0.2, 0.3}, {0.5, 0.5, 0.5}, {0.9, 0.1, 0.7}} {
		a := lengthScaleMap.Eval(p[0], p[1], p[2])
		b := lagrangeMap.Eval(p[0], p[1], p[2])
		require.InDelta(t, b[0], a[0], 1e-12)
		require.InDelta(t, b[1], a[1], 1e-12)
		require.InDelta(t, b[2], a[2], 1e-12)
	}
}

func TestHexMapCornersExact(t *testing.T) {
	corners := unitCubeCorners()
	var ones [8]float64
	for i := range ones {
		ones[i] = 1
	}
	m := NewHexMap(Lagrange, corners, ones)
	require.Equal(t, geom.Vec3{0, 0, 0}, m.Eval(0, 0, 0))
	require.Equal(t, geom.Vec3{1, 1, 1}, m.Eval(1, 1, 1))
}

func TestHexMapFaceZ0StaysAtZ0(t *testing.T) {
	corners := unitCubeCorners()
	var ones [8]float64
	for i := range ones {
		ones[i] = 1
	}
	m := NewHexMap(Lagrange, corners, ones)
	p := m.Eval(0.37, 0.81, 0)
	require.Equal(t, 0.0, p[2])
}

func TestTetMapCorners(t *testing.T) {
	corners := [4]geom.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	var ones [4]float64
	for i := range ones {
		ones[i] = 1
	}
	m := NewTetMap(Lagrange, corners, ones)
	require.Equal(t, corners[0], m.Eval(0, 0, 0))
	require.Equal(t, corners[1], m.Eval(1, 0, 0))
	require.Equal(t, corners[3], m.Eval(0, 0, 1))
}
