package lengthscale

import (
	"math"
	"testing"

	"github.com/SajedehK/ExaMesh/geom"
	"github.com/SajedehK/ExaMesh/mesh"
	"github.com/stretchr/testify/require"
)

func unitTetMesh() *mesh.Mesh {
	m := mesh.New()
	m.AddVertex(geom.Vec3{0, 0, 0})
	m.AddVertex(geom.Vec3{1, 0, 0})
	m.AddVertex(geom.Vec3{0, 1, 0})
	m.AddVertex(geom.Vec3{0, 0, 1})
	m.AddTet(mesh.Tet{0, 1, 2, 3})
	return m
}

func unitCubeHexMesh() *mesh.Mesh {
	m := mesh.New()
	m.AddVertex(geom.Vec3{0, 0, 0})
	m.AddVertex(geom.Vec3{1, 0, 0})
	m.AddVertex(geom.Vec3{1, 1, 0})
	m.AddVertex(geom.Vec3{0, 1, 0})
	m.AddVertex(geom.Vec3{0, 0, 1})
	m.AddVertex(geom.Vec3{1, 0, 1})
	m.AddVertex(geom.Vec3{1, 1, 1})
	m.AddVertex(geom.Vec3{0, 1, 1})
	m.AddHex(mesh.Hex{0, 1, 2, 3, 4, 5, 6, 7})
	return m
}

func TestEstimateTetAllPositiveFinite(t *testing.T) {
	m := unitTetMesh()
	ls := Estimate(m)
	require.Len(t, ls, 4)
	for _, v := range ls {
		require.Greater(t, v, 0.0)
		require.False(t, math.IsInf(v, 0) || math.IsNaN(v))
	}
}

func TestEstimateHexAllPositiveFinite(t *testing.T) {
	m := unitCubeHexMesh()
	ls := Estimate(m)
	require.Len(t, ls, 8)
	for _, v := range ls {
		require.Greater(t, v, 0.0)
	}
}

func TestEstimateInstallsOnMesh(t *testing.T) {
	m := unitTetMesh()
	Estimate(m)
	require.True(t, m.HasLengthScale())
	require.Greater(t, m.GetLengthScale(0), 0.0)
}
