package driver

import (
	"testing"

	"github.com/SajedehK/ExaMesh/cellmap"
	"github.com/SajedehK/ExaMesh/geom"
	"github.com/SajedehK/ExaMesh/mesh"
	"github.com/stretchr/testify/require"
)

// twoUnitTetsShareFace builds two coarse tets sharing the face (0,1,2), far
// enough apart in shape that a coordinate-bisection split with
// maxCellsPerPart=1 places each tet in its own part.
func twoUnitTetsShareFace() *mesh.Mesh {
	m := mesh.New()
	m.AddVertex(geom.Vec3{0, 0, 0})  // 0
	m.AddVertex(geom.Vec3{1, 0, 0})  // 1
	m.AddVertex(geom.Vec3{0, 1, 0})  // 2
	m.AddVertex(geom.Vec3{0, 0, 1})  // 3
	m.AddVertex(geom.Vec3{0, 0, -1}) // 4
	m.AddTet(mesh.Tet{0, 1, 2, 3})
	m.AddTet(mesh.Tet{2, 1, 0, 4})
	return m
}

func TestRunSinglePartRoundTrip(t *testing.T) {
	coarse := twoUnitTetsShareFace()
	res, err := Run(coarse, Config{N: 2, MaxCellsPerPart: 100, MapType: cellmap.Lagrange})
	require.NoError(t, err)
	require.Equal(t, 1, res.Stats.NumParts)
	require.Equal(t, 16, res.Stats.FineCellsTotal) // 2 coarse tets * 8 fine tets each
	require.Len(t, res.Parts, 1)
}

func TestRunTwoPartsReconcilesSharedFace(t *testing.T) {
	coarse := twoUnitTetsShareFace()
	res, err := Run(coarse, Config{N: 2, MaxCellsPerPart: 1, MapType: cellmap.Lagrange})
	require.NoError(t, err)
	require.Equal(t, 2, res.Stats.NumParts)
	require.Len(t, res.Parts, 2)
	// the shared face's 3 corners plus its 3 edge midpoints (N=2 has no
	// face-interior point yet) are each realized independently by the two
	// parts and must reconcile to exactly 6 matched pairs (12 records).
	require.Len(t, res.IdenticalVerts, 12)
}

func TestRunTwoPartsReconcilesSharedFaceInterior(t *testing.T) {
	coarse := twoUnitTetsShareFace()
	res, err := Run(coarse, Config{N: 3, MaxCellsPerPart: 1, MapType: cellmap.Lagrange})
	require.NoError(t, err)
	require.Equal(t, 2, res.Stats.NumParts)
	// N=3 gives the shared triangular face 3 corners, 2 midpoints per edge
	// (6), and 1 strictly-interior point: 10 shared vertices, 20 records.
	require.Len(t, res.IdenticalVerts, 20)
}

func TestRunRejectsInvalidN(t *testing.T) {
	coarse := twoUnitTetsShareFace()
	_, err := Run(coarse, Config{N: 0, MaxCellsPerPart: 10})
	require.Error(t, err)
}
