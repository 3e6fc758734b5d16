package divide

import (
	"testing"

	"github.com/SajedehK/ExaMesh/cellmap"
	"github.com/SajedehK/ExaMesh/geom"
	"github.com/SajedehK/ExaMesh/mesh"
	"github.com/stretchr/testify/require"
)

func TestEdgeKeyCanonical(t *testing.T) {
	k1, swapped1 := NewEdgeKey(5, 2)
	k2, swapped2 := NewEdgeKey(2, 5)
	require.Equal(t, k1, k2)
	require.True(t, swapped1)
	require.False(t, swapped2)
}

func TestTriFaceKeyPermutationRoundTrips(t *testing.T) {
	key, perm := NewTriFaceKey([3]int{9, 3, 6})
	require.Equal(t, TriFaceKey{3, 6, 9}, key)
	w := canonWeight(perm, [3]int{10, 20, 30}) // local0=9 -> weight10, local1=3->20, local2=6->30
	// canonical order is (3,6,9) -> weights (20,30,10)
	require.Equal(t, [3]int{20, 30, 10}, w)
}

func TestQuadFaceKeyRotationInvariant(t *testing.T) {
	k1, _, _ := NewQuadFaceKey([4]int{1, 2, 3, 4})
	k2, _, _ := NewQuadFaceKey([4]int{2, 3, 4, 1})
	require.Equal(t, k1, k2)
}

func TestSquareTransformIsInvolutionAtIdentity(t *testing.T) {
	s, u := squareTransform(2, 3, 5, 0, false)
	require.Equal(t, 2, s)
	require.Equal(t, 3, u)
}

func unitTetCoarse() *mesh.Mesh {
	m := mesh.New()
	m.AddVertex(geom.Vec3{0, 0, 0})
	m.AddVertex(geom.Vec3{1, 0, 0})
	m.AddVertex(geom.Vec3{0, 1, 0})
	m.AddVertex(geom.Vec3{0, 0, 1})
	m.AddTet(mesh.Tet{0, 1, 2, 3})
	return m
}

func TestTetDividerN2ProducesEightTets(t *testing.T) {
	src := unitTetCoarse()
	out := mesh.New()
	ctx := NewContext(src, out, 2)
	d := NewTetDivider(ctx, src.GetTetConn(0), cellmap.Lagrange)
	RunDivider(d)
	require.Equal(t, 8, out.NumTets())
}

func TestTetDividerN1IsIdentity(t *testing.T) {
	src := unitTetCoarse()
	out := mesh.New()
	ctx := NewContext(src, out, 1)
	d := NewTetDivider(ctx, src.GetTetConn(0), cellmap.Lagrange)
	RunDivider(d)
	require.Equal(t, 1, out.NumTets())
	require.Equal(t, 4, out.NumVerts())
}

func unitHexCoarse() *mesh.Mesh {
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

func TestHexDividerN2ProducesEightHexesAndTwentySevenVerts(t *testing.T) {
	src := unitHexCoarse()
	out := mesh.New()
	ctx := NewContext(src, out, 2)
	d := NewHexDivider(ctx, src.GetHexConn(0), cellmap.Lagrange)
	RunDivider(d)
	require.Equal(t, 8, out.NumHexes())
	require.Equal(t, 27, out.NumVerts())
}

func unitPrismCoarse() *mesh.Mesh {
	m := mesh.New()
	m.AddVertex(geom.Vec3{0, 0, 0})
	m.AddVertex(geom.Vec3{1, 0, 0})
	m.AddVertex(geom.Vec3{0, 1, 0})
	m.AddVertex(geom.Vec3{0, 0, 1})
	m.AddVertex(geom.Vec3{1, 0, 1})
	m.AddVertex(geom.Vec3{0, 1, 1})
	m.AddPrism(mesh.Prism{0, 1, 2, 3, 4, 5})
	return m
}

func TestPrismDividerN2ProducesEightPrisms(t *testing.T) {
	src := unitPrismCoarse()
	out := mesh.New()
	ctx := NewContext(src, out, 2)
	d := NewPrismDivider(ctx, src.GetPrismConn(0), cellmap.Lagrange)
	RunDivider(d)
	require.Equal(t, 8, out.NumPrisms())
}

// TestTwoTetsShareFaceVertices checks that two coarse tets sharing a face
// resolve that face's interior vertices to identical fine-vertex IDs.
func TestTwoTetsShareFaceVertices(t *testing.T) {
	src := mesh.New()
	src.AddVertex(geom.Vec3{0, 0, 0})  // 0
	src.AddVertex(geom.Vec3{1, 0, 0})  // 1
	src.AddVertex(geom.Vec3{0, 1, 0})  // 2
	src.AddVertex(geom.Vec3{0, 0, 1})  // 3 (apex of tet A, opposite shared face 0,1,2)
	src.AddVertex(geom.Vec3{0, 0, -1}) // 4 (apex of tet B, opposite shared face 0,1,2)
	ta := src.AddTet(mesh.Tet{0, 1, 2, 3})
	tb := src.AddTet(mesh.Tet{2, 1, 0, 4}) // same face, opposite winding

	out := mesh.New()
	ctx := NewContext(src, out, 3)
	da := NewTetDivider(ctx, src.GetTetConn(ta), cellmap.Lagrange)
	db := NewTetDivider(ctx, src.GetTetConn(tb), cellmap.Lagrange)
	RunDivider(da)
	RunDivider(db)

	// the shared face (0,1,2) has exactly one interior point at N=3
	key, _ := NewTriFaceKey([3]int{0, 1, 2})
	grid := ctx.Arena.triFaces[key]
	require.Len(t, grid, 1)
}
