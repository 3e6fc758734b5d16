package divide

import (
	"github.com/SajedehK/ExaMesh/cellmap"
	"github.com/SajedehK/ExaMesh/geom"
	"github.com/SajedehK/ExaMesh/mesh"
)

// hexCornerBits gives the (i,j,k) corner of the unit cube — low=0, high=1 —
// for each of the hex's 8 local corner indices, matching HexMap's corner
// order.
var hexCornerBits = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

func hexCornerIndex(i01, j01, k01 int) int {
	for idx, b := range hexCornerBits {
		if b[0] == i01 && b[1] == j01 && b[2] == k01 {
			return idx
		}
	}
	panic("divide: invalid hex corner bits")
}

// HexEdges returns the global vertex-id pairs for hex c's 12 edges, derived
// from hexCornerBits: an edge joins any two corners differing in exactly one
// axis bit.
func HexEdges(c mesh.Hex) [12][2]int {
	var out [12][2]int
	n := 0
	for a := 0; a < 8; a++ {
		for b := a + 1; b < 8; b++ {
			diff := 0
			for d := 0; d < 3; d++ {
				if hexCornerBits[a][d] != hexCornerBits[b][d] {
					diff++
				}
			}
			if diff == 1 {
				out[n] = [2]int{c[a], c[b]}
				n++
			}
		}
	}
	return out
}

// hexFaceCorners returns the local corner indices of the face where axis
// fixedAxis is held at val, walked in cyclic (non-crossed) order around the
// other two axes.
func hexFaceCorners(fixedAxis, val int) [4]int {
	other0, other1 := 0, 0
	k := 0
	for a := 0; a < 3; a++ {
		if a != fixedAxis {
			if k == 0 {
				other0 = a
			} else {
				other1 = a
			}
			k++
		}
	}
	cycle := [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	var out [4]int
	for pos, pair := range cycle {
		for ci, b := range hexCornerBits {
			if b[fixedAxis] == val && b[other0] == pair[0] && b[other1] == pair[1] {
				out[pos] = ci
			}
		}
	}
	return out
}

// HexFaces returns the global vertex-id quadruples for hex c's 6 faces, each
// in a valid cyclic (non-crossed) winding.
func HexFaces(c mesh.Hex) [6][4]int {
	var out [6][4]int
	n := 0
	for axis := 0; axis < 3; axis++ {
		for _, val := range [2]int{0, 1} {
			fc := hexFaceCorners(axis, val)
			out[n] = [4]int{c[fc[0]], c[fc[1]], c[fc[2]], c[fc[3]]}
			n++
		}
	}
	return out
}

// level classifies x in [0,n] as low (0), high (2), or interior (1).
func level(x, n int) int {
	switch {
	case x == 0:
		return 0
	case x == n:
		return 2
	default:
		return 1
	}
}

func bitOf(lvl int) int {
	if lvl == 2 {
		return 1
	}
	return 0
}

// HexDivider refines one coarse hexahedron into an N x N x N grid of fine
// hexes.
type HexDivider struct {
	ctx      *Context
	coarse   mesh.Hex
	m        *cellmap.HexMap
	interior map[[3]int]int
}

// NewHexDivider builds a divider for the coarse hex with vertex ids c.
func NewHexDivider(ctx *Context, c mesh.Hex, mapType cellmap.MappingType) *HexDivider {
	var corners [8]geom.Vec3
	var ls [8]float64
	for i, v := range c {
		corners[i] = ctx.Src.GetCoords(v)
		ls[i] = lengthScaleOf(ctx.Src, v)
	}
	return &HexDivider{ctx: ctx, coarse: c, m: cellmap.NewHexMap(mapType, corners, ls)}
}

func (d *HexDivider) eval(i, j, k int) geom.Vec3 {
	n := d.ctx.N
	return d.m.Eval(float64(i)/float64(n), float64(j)/float64(n), float64(k)/float64(n))
}

func (d *HexDivider) vertexAt(i, j, k int) int {
	n := d.ctx.N
	li, lj, lk := level(i, n), level(j, n), level(k, n)
	fixed := 0
	if li != 1 {
		fixed++
	}
	if lj != 1 {
		fixed++
	}
	if lk != 1 {
		fixed++
	}
	switch fixed {
	case 3:
		return d.ctx.Corner(d.coarse[hexCornerIndex(bitOf(li), bitOf(lj), bitOf(lk))])
	case 2:
		return d.edgeVertex(i, j, k, li, lj, lk)
	case 1:
		return d.faceVertex(i, j, k, li, lj, lk)
	default:
		if d.interior == nil {
			d.interior = make(map[[3]int]int)
		}
		key := [3]int{i, j, k}
		if id, ok := d.interior[key]; ok {
			return id
		}
		id := d.ctx.Out.AddVertex(d.eval(i, j, k))
		d.interior[key] = id
		return id
	}
}

func (d *HexDivider) edgeVertex(i, j, k, li, lj, lk int) int {
	n := d.ctx.N
	switch {
	case li == 1: // free along i, j,k fixed
		c0 := d.coarse[hexCornerIndex(0, bitOf(lj), bitOf(lk))]
		c1 := d.coarse[hexCornerIndex(1, bitOf(lj), bitOf(lk))]
		ids := d.ctx.Edge(c0, c1, func(t float64) geom.Vec3 { return d.m.Eval(t, float64(j)/float64(n), float64(k)/float64(n)) })
		return ids[i-1]
	case lj == 1:
		c0 := d.coarse[hexCornerIndex(bitOf(li), 0, bitOf(lk))]
		c1 := d.coarse[hexCornerIndex(bitOf(li), 1, bitOf(lk))]
		ids := d.ctx.Edge(c0, c1, func(t float64) geom.Vec3 { return d.m.Eval(float64(i)/float64(n), t, float64(k)/float64(n)) })
		return ids[j-1]
	default:
		c0 := d.coarse[hexCornerIndex(bitOf(li), bitOf(lj), 0)]
		c1 := d.coarse[hexCornerIndex(bitOf(li), bitOf(lj), 1)]
		ids := d.ctx.Edge(c0, c1, func(t float64) geom.Vec3 { return d.m.Eval(float64(i)/float64(n), float64(j)/float64(n), t) })
		return ids[k-1]
	}
}

func (d *HexDivider) faceVertex(i, j, k, li, lj, lk int) int {
	n := d.ctx.N
	switch {
	case li != 1: // i fixed, free in j,k
		bi := bitOf(li)
		c := [4]int{
			d.coarse[hexCornerIndex(bi, 0, 0)], d.coarse[hexCornerIndex(bi, 1, 0)],
			d.coarse[hexCornerIndex(bi, 1, 1)], d.coarse[hexCornerIndex(bi, 0, 1)],
		}
		get := d.ctx.QuadFace(c, func(p, q int) geom.Vec3 { return d.m.Eval(float64(i)/float64(n), float64(p)/float64(n), float64(q)/float64(n)) })
		return get(j, k)
	case lj != 1: // j fixed, free in i,k
		bj := bitOf(lj)
		c := [4]int{
			d.coarse[hexCornerIndex(0, bj, 0)], d.coarse[hexCornerIndex(1, bj, 0)],
			d.coarse[hexCornerIndex(1, bj, 1)], d.coarse[hexCornerIndex(0, bj, 1)],
		}
		get := d.ctx.QuadFace(c, func(p, q int) geom.Vec3 { return d.m.Eval(float64(p)/float64(n), float64(j)/float64(n), float64(q)/float64(n)) })
		return get(i, k)
	default: // k fixed, free in i,j
		bk := bitOf(lk)
		c := [4]int{
			d.coarse[hexCornerIndex(0, 0, bk)], d.coarse[hexCornerIndex(1, 0, bk)],
			d.coarse[hexCornerIndex(1, 1, bk)], d.coarse[hexCornerIndex(0, 1, bk)],
		}
		get := d.ctx.QuadFace(c, func(p, q int) geom.Vec3 { return d.m.Eval(float64(p)/float64(n), float64(q)/float64(n), float64(k)/float64(n)) })
		return get(i, j)
	}
}

// DivideEdges pre-populates the arena entries for this hex's 12 edges.
func (d *HexDivider) DivideEdges() {
	n := d.ctx.N
	if n < 2 {
		return
	}
	for _, lvl := range [][2]int{{0, 0}, {0, n}, {n, 0}, {n, n}} {
		d.vertexAt(1, lvl[0], lvl[1])
		d.vertexAt(lvl[0], 1, lvl[1])
		d.vertexAt(lvl[0], lvl[1], 1)
	}
}

// DivideFaces pre-populates the arena entries for this hex's 6 faces.
func (d *HexDivider) DivideFaces() {
	n := d.ctx.N
	if n < 2 {
		return
	}
	for p := 1; p < n; p++ {
		for q := 1; q < n; q++ {
			d.vertexAt(0, p, q)
			d.vertexAt(n, p, q)
			d.vertexAt(p, 0, q)
			d.vertexAt(p, n, q)
			d.vertexAt(p, q, 0)
			d.vertexAt(p, q, n)
		}
	}
}

// DivideInterior pre-populates this hex's strictly interior vertices.
func (d *HexDivider) DivideInterior() {
	n := d.ctx.N
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			for k := 1; k < n; k++ {
				d.vertexAt(i, j, k)
			}
		}
	}
}

// CreateNewCells appends the N^3 fine hexes to the output mesh.
func (d *HexDivider) CreateNewCells() {
	n := d.ctx.N
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				d.ctx.Out.AddHex(mesh.Hex{
					d.vertexAt(i, j, k), d.vertexAt(i+1, j, k), d.vertexAt(i+1, j+1, k), d.vertexAt(i, j+1, k),
					d.vertexAt(i, j, k+1), d.vertexAt(i+1, j, k+1), d.vertexAt(i+1, j+1, k+1), d.vertexAt(i, j+1, k+1),
				})
			}
		}
	}
}
