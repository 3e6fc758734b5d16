package divide

import (
	"github.com/SajedehK/ExaMesh/cellmap"
	"github.com/SajedehK/ExaMesh/geom"
	"github.com/SajedehK/ExaMesh/mesh"
)

// tetFaceCorners gives, for each of a tet's 4 faces, the local corner
// indices in winding order — the faceVertIndices table TetDivider.h uses.
var tetFaceCorners = [4][3]int{{0, 1, 2}, {0, 3, 1}, {1, 3, 2}, {2, 3, 0}}

// tetEdgeCorners gives the local corner pair for each of a tet's 6 edges —
// TetDivider.h's edgeVertIndices table.
var tetEdgeCorners = [6][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

// TetEdges returns the global vertex-id pairs for tet c's 6 edges, for
// callers (reconciliation) that need to look up Arena entries without
// constructing a divider.
func TetEdges(c mesh.Tet) [6][2]int {
	var out [6][2]int
	for i, e := range tetEdgeCorners {
		out[i] = [2]int{c[e[0]], c[e[1]]}
	}
	return out
}

// TetFaces returns the global vertex-id triples for tet c's 4 faces.
func TetFaces(c mesh.Tet) [4][3]int {
	var out [4][3]int
	for i, f := range tetFaceCorners {
		out[i] = [3]int{c[f[0]], c[f[1]], c[f[2]]}
	}
	return out
}

// TetDivider refines one coarse tetrahedron into a lattice of N^3 fine
// tets, walking the barycentric lattice layer by layer along the w axis
// (toward corner 3) and decomposing each layer's interior rhombic cells
// into upright tets, octahedra split via the shortest internal diagonal,
// and inverted tets (spec.md §4.5).
type TetDivider struct {
	ctx      *Context
	coarse   mesh.Tet
	m        *cellmap.TetMap
	interior map[[3]int]int
}

// NewTetDivider builds a divider for the coarse tet with vertex ids c,
// using the requested cell map.
func NewTetDivider(ctx *Context, c mesh.Tet, mapType cellmap.MappingType) *TetDivider {
	var corners [4]geom.Vec3
	var ls [4]float64
	for i, v := range c {
		corners[i] = ctx.Src.GetCoords(v)
		ls[i] = lengthScaleOf(ctx.Src, v)
	}
	return &TetDivider{
		ctx:    ctx,
		coarse: c,
		m:      cellmap.NewTetMap(mapType, corners, ls),
	}
}

func lengthScaleOf(m *mesh.Mesh, v int) float64 {
	if m.HasLengthScale() {
		return m.GetLengthScale(v)
	}
	return 1
}

// edgeUVW computes the (u,v,w) cell-map argument for the lattice point at
// fraction t along the edge between local tet corners idx0 and idx1
// (idx0 < idx1), where u,v,w are the barycentric weights on corners 1,2,3.
func edgeUVW(idx0, idx1 int, t float64) (float64, float64, float64) {
	var c [3]float64
	if idx0 != 0 {
		c[idx0-1] = 1 - t
	}
	c[idx1-1] = t
	return c[0], c[1], c[2]
}

// faceUVW computes the (u,v,w) cell-map argument for the lattice point on
// the face opposite local corner zeroIdx, with local barycentric weights
// (p,q,r) (summing to n) on the face's other three corners faceLocal in
// ascending order.
func faceUVW(faceLocal [3]int, p, q, r, n int) (float64, float64, float64) {
	var c [3]float64
	vals := [3]int{p, q, r}
	for i, idx := range faceLocal {
		if idx != 0 {
			c[idx-1] = float64(vals[i]) / float64(n)
		}
	}
	return c[0], c[1], c[2]
}

// oppositeCorner returns the tet corner index not present in face.
func oppositeCorner(face [3]int) int {
	for c := 0; c < 4; c++ {
		if c != face[0] && c != face[1] && c != face[2] {
			return c
		}
	}
	panic("divide: degenerate tet face")
}

func otherThree(excl int) [3]int {
	var out [3]int
	k := 0
	for i := 0; i < 4; i++ {
		if i != excl {
			out[k] = i
			k++
		}
	}
	return out
}

// vertexAt returns the fine-vertex ID at barycentric lattice point (i,j,k),
// i,j,k >= 0, i+j+k <= N — creating (or finding, if shared) it as needed.
func (d *TetDivider) vertexAt(i, j, k int) int {
	n := d.ctx.N
	l := n - i - j - k
	a := [4]int{l, i, j, k}
	var nz, nzIdx [4]int
	nCount := 0
	for idx, v := range a {
		if v != 0 {
			nzIdx[nCount] = idx
			nCount++
		} else {
			nz[idx] = 1
		}
	}
	switch nCount {
	case 1:
		return d.ctx.Corner(d.coarse[nzIdx[0]])
	case 2:
		idx0, idx1 := nzIdx[0], nzIdx[1]
		ids := d.ctx.Edge(d.coarse[idx0], d.coarse[idx1], func(t float64) geom.Vec3 {
			u, v, w := edgeUVW(idx0, idx1, t)
			return d.m.Eval(u, v, w)
		})
		return ids[a[idx1]-1]
	case 3:
		zeroIdx := 0
		for idx, v := range a {
			if v == 0 {
				zeroIdx = idx
			}
		}
		faceLocal := otherThree(zeroIdx)
		faceCoarse := [3]int{d.coarse[faceLocal[0]], d.coarse[faceLocal[1]], d.coarse[faceLocal[2]]}
		get := d.ctx.TriFace(faceCoarse, func(p, q, r int) geom.Vec3 {
			u, v, w := faceUVW(faceLocal, p, q, r, n)
			return d.m.Eval(u, v, w)
		})
		return get(a[faceLocal[0]], a[faceLocal[1]], a[faceLocal[2]])
	default:
		if d.interior == nil {
			d.interior = make(map[[3]int]int)
		}
		key := [3]int{i, j, k}
		if id, ok := d.interior[key]; ok {
			return id
		}
		id := d.ctx.Out.AddVertex(d.m.Eval(float64(i)/float64(n), float64(j)/float64(n), float64(k)/float64(n)))
		d.interior[key] = id
		return id
	}
}

// DivideEdges pre-populates the arena entries for this tet's 6 edges.
func (d *TetDivider) DivideEdges() {
	for _, e := range tetEdgeCorners {
		if d.ctx.N < 2 {
			continue
		}
		idx0, idx1 := e[0], e[1]
		var a [4]int
		if idx0 != 0 {
			a[idx0] = d.ctx.N - 1
		}
		a[idx1] = 1
		d.vertexAt(a[1], a[2], a[3])
	}
}

// DivideFaces pre-populates the arena entries for this tet's 4 faces.
func (d *TetDivider) DivideFaces() {
	if d.ctx.N < 3 {
		return
	}
	for _, face := range tetFaceCorners {
		opp := oppositeCorner(face)
		fl := otherThree(opp)
		for p := 1; p+1 < d.ctx.N; p++ {
			for q := 1; p+q < d.ctx.N; q++ {
				var a [4]int
				a[fl[0]] = p
				a[fl[1]] = q
				a[fl[2]] = d.ctx.N - p - q
				d.vertexAt(a[1], a[2], a[3])
			}
		}
	}
}

// DivideInterior pre-populates this tet's strictly interior vertices.
func (d *TetDivider) DivideInterior() {
	n := d.ctx.N
	for i := 1; i < n; i++ {
		for j := 1; i+j < n; j++ {
			for k := 1; i+j+k < n; k++ {
				d.vertexAt(i, j, k)
			}
		}
	}
}

// CreateNewCells walks the barycentric lattice and appends the resulting
// N^3 fine tets to the output mesh.
func (d *TetDivider) CreateNewCells() {
	refineTetLattice(d.ctx, d.vertexAt)
}

// refineTetLattice implements the layer-by-layer tet subdivision shared by
// TetDivider and PyramidDivider's two synthetic tets.
func refineTetLattice(ctx *Context, vertexAt func(i, j, k int) int) {
	n := ctx.N
	pos := func(id int) geom.Vec3 { return ctx.Out.GetCoords(id) }
	for k := 0; k < n; k++ {
		mLayer := n - k
		for i := 0; i <= mLayer-1; i++ {
			for j := 0; i+j <= mLayer-1; j++ {
				p0 := vertexAt(i, j, k)
				p1 := vertexAt(i+1, j, k)
				p2 := vertexAt(i, j+1, k)
				p3 := vertexAt(i, j, k+1)
				ctx.Out.AddTet(mesh.Tet{p0, p1, p2, p3})
			}
		}
		for i := 0; i <= mLayer-2; i++ {
			for j := 0; i+j <= mLayer-2; j++ {
				a := vertexAt(i+1, j, k)
				b := vertexAt(i, j+1, k)
				c := vertexAt(i+1, j+1, k)
				d := vertexAt(i+1, j, k+1)
				e := vertexAt(i, j, k+1)
				f := vertexAt(i, j+1, k+1)
				for _, t := range splitOctahedron(a, b, c, d, e, f, pos) {
					ctx.Out.AddTet(mesh.Tet(t))
				}
			}
		}
		for i := 0; i <= mLayer-3; i++ {
			for j := 0; i+j <= mLayer-3; j++ {
				ctx.Out.AddTet(mesh.Tet{vertexAt(i+1, j+1, k), vertexAt(i, j+1, k+1), vertexAt(i+1, j, k+1), vertexAt(i+1, j+1, k+1)})
			}
		}
	}
}
