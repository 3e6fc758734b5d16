package divide

import (
	"github.com/SajedehK/ExaMesh/cellmap"
	"github.com/SajedehK/ExaMesh/geom"
	"github.com/SajedehK/ExaMesh/mesh"
)

// PyramidDivider refines one coarse pyramid by splitting its base quad
// along whichever diagonal is shorter in world space (the same
// shortest-diagonal rule octahedron splitting uses) into two tets sharing
// the apex, then refining each with the standard tet lattice walk. The two
// genuine half-base triangles and the four genuine side faces reconcile
// through the normal triangular-face arena exactly as a neighboring tet's
// faces would; the internal diagonal seam is a synthetic face that no
// other coarse cell can ever reference, so sharing the same global arena
// for it is harmless.
type PyramidDivider struct {
	ctx    *Context
	coarse mesh.Pyramid
	tets   [2]*TetDivider
}

// PyramidTets returns the two coarse tets a pyramid with vertex ids c
// (corners 0-3 the base quad in winding order, corner 4 the apex) splits
// into, using src's coordinates to pick the shorter base diagonal — the
// same rule octahedron splitting uses, and the one NewPyramidDivider
// actually refines. Reconciliation (driver.boundaryRecords) calls this to
// walk the same two tets' edges/faces without building a full divider.
func PyramidTets(src *mesh.Mesh, c mesh.Pyramid) (mesh.Tet, mesh.Tet) {
	var p [5]geom.Vec3
	for i, v := range c {
		p[i] = src.GetCoords(v)
	}
	d02 := p[0].Sub(p[2]).Dot(p[0].Sub(p[2]))
	d13 := p[1].Sub(p[3]).Dot(p[1].Sub(p[3]))

	if d02 <= d13 {
		return mesh.Tet{c[0], c[1], c[2], c[4]}, mesh.Tet{c[0], c[2], c[3], c[4]}
	}
	return mesh.Tet{c[0], c[1], c[3], c[4]}, mesh.Tet{c[1], c[2], c[3], c[4]}
}

// NewPyramidDivider builds a divider for the coarse pyramid with vertex ids
// c (corners 0-3 the base quad in winding order, corner 4 the apex).
func NewPyramidDivider(ctx *Context, c mesh.Pyramid, mapType cellmap.MappingType) *PyramidDivider {
	t0, t1 := PyramidTets(ctx.Src, c)
	return &PyramidDivider{
		ctx:    ctx,
		coarse: c,
		tets: [2]*TetDivider{
			NewTetDivider(ctx, t0, mapType),
			NewTetDivider(ctx, t1, mapType),
		},
	}
}

func (d *PyramidDivider) DivideEdges() {
	d.tets[0].DivideEdges()
	d.tets[1].DivideEdges()
}

func (d *PyramidDivider) DivideFaces() {
	d.tets[0].DivideFaces()
	d.tets[1].DivideFaces()
}

func (d *PyramidDivider) DivideInterior() {
	d.tets[0].DivideInterior()
	d.tets[1].DivideInterior()
}

func (d *PyramidDivider) CreateNewCells() {
	d.tets[0].CreateNewCells()
	d.tets[1].CreateNewCells()
}
