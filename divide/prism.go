package divide

import (
	"github.com/SajedehK/ExaMesh/cellmap"
	"github.com/SajedehK/ExaMesh/geom"
	"github.com/SajedehK/ExaMesh/mesh"
)

// prismEdgeCorners gives the local corner pair for each of a prism's 9
// edges: 3 base, 3 top, 3 vertical.
var prismEdgeCorners = [9][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {0, 3}, {1, 4}, {2, 5}}

// prismTriFaceCorners gives the local corners of a prism's 2 triangular end
// faces.
var prismTriFaceCorners = [2][3]int{{0, 1, 2}, {3, 4, 5}}

// prismQuadFaceCorners gives the local corners of a prism's 3 quadrilateral
// side faces, matching the winding vertexAt's baseNZ==2 branch builds.
var prismQuadFaceCorners = [3][4]int{{1, 2, 5, 4}, {0, 2, 5, 3}, {0, 1, 4, 3}}

// PrismEdges returns the global vertex-id pairs for prism c's 9 edges.
func PrismEdges(c mesh.Prism) [9][2]int {
	var out [9][2]int
	for i, e := range prismEdgeCorners {
		out[i] = [2]int{c[e[0]], c[e[1]]}
	}
	return out
}

// PrismTriFaces returns the global vertex-id triples for prism c's 2
// triangular end faces.
func PrismTriFaces(c mesh.Prism) [2][3]int {
	var out [2][3]int
	for i, f := range prismTriFaceCorners {
		out[i] = [3]int{c[f[0]], c[f[1]], c[f[2]]}
	}
	return out
}

// PrismQuadFaces returns the global vertex-id quadruples for prism c's 3
// quadrilateral side faces.
func PrismQuadFaces(c mesh.Prism) [3][4]int {
	var out [3][4]int
	for i, f := range prismQuadFaceCorners {
		out[i] = [4]int{c[f[0]], c[f[1]], c[f[2]], c[f[3]]}
	}
	return out
}

// PrismDivider refines one coarse triangular prism into an N x N x N grid
// of fine prisms: a triangular lattice in (i,j) crossed with a regular
// extrusion lattice in k.
type PrismDivider struct {
	ctx      *Context
	coarse   mesh.Prism
	m        *cellmap.PrismMap
	interior map[[3]int]int
}

// NewPrismDivider builds a divider for the coarse prism with vertex ids c.
// Corners 0,1,2 are the bottom triangle, 3,4,5 the top triangle directly
// above them (cellmap.NewPrismMap's convention).
func NewPrismDivider(ctx *Context, c mesh.Prism, mapType cellmap.MappingType) *PrismDivider {
	var corners [6]geom.Vec3
	var ls [6]float64
	for i, v := range c {
		corners[i] = ctx.Src.GetCoords(v)
		ls[i] = lengthScaleOf(ctx.Src, v)
	}
	return &PrismDivider{ctx: ctx, coarse: c, m: cellmap.NewPrismMap(mapType, corners, ls)}
}

func (d *PrismDivider) eval(i, j, k int) geom.Vec3 {
	n := d.ctx.N
	return d.m.Eval(float64(i)/float64(n), float64(j)/float64(n), float64(k)/float64(n))
}

// vertexAt classifies a lattice point by its base triangle barycentric
// weights (a0=n-i-j, a1=i, a2=j) and its extrusion level k.
func (d *PrismDivider) vertexAt(i, j, k int) int {
	n := d.ctx.N
	a := [3]int{n - i - j, i, j}
	baseNZ, baseZeroIdx := 0, -1
	for idx, v := range a {
		if v != 0 {
			baseNZ++
		} else {
			baseZeroIdx = idx
		}
	}
	lk := level(k, n)

	switch {
	case baseNZ == 1 && lk != 1:
		baseCorner := 0
		for idx, v := range a {
			if v != 0 {
				baseCorner = idx
			}
		}
		return d.ctx.Corner(d.coarse[baseCorner+3*bitOf(lk)])
	case baseNZ == 1 && lk == 1:
		baseCorner := 0
		for idx, v := range a {
			if v != 0 {
				baseCorner = idx
			}
		}
		ids := d.ctx.Edge(d.coarse[baseCorner], d.coarse[baseCorner+3], func(t float64) geom.Vec3 {
			return d.m.Eval(float64(i)/float64(n), float64(j)/float64(n), t)
		})
		return ids[k-1]
	case baseNZ == 2 && lk != 1:
		e0, e1 := otherTwo(baseZeroIdx)
		off := 3 * bitOf(lk)
		ids := d.ctx.Edge(d.coarse[e0+off], d.coarse[e1+off], func(t float64) geom.Vec3 {
			u, v := baseEdgeUV(e0, e1, t)
			return d.m.Eval(u, v, float64(k)/float64(n))
		})
		pos := a[e1]
		return ids[pos-1]
	case baseNZ == 2 && lk == 1:
		e0, e1 := otherTwo(baseZeroIdx)
		c := [4]int{d.coarse[e0], d.coarse[e1], d.coarse[e1+3], d.coarse[e0+3]}
		get := d.ctx.QuadFace(c, func(p, q int) geom.Vec3 {
			u, v := baseEdgeUV(e0, e1, float64(p)/float64(n))
			return d.m.Eval(u, v, float64(q)/float64(n))
		})
		return get(a[e1], k)
	case baseNZ == 3 && lk != 1:
		off := 3 * bitOf(lk)
		face := [3]int{d.coarse[off], d.coarse[1+off], d.coarse[2+off]}
		get := d.ctx.TriFace(face, func(p, q, r int) geom.Vec3 {
			return d.m.Eval(float64(q)/float64(n), float64(r)/float64(n), float64(k)/float64(n))
		})
		return get(a[0], a[1], a[2])
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

func otherTwo(excl int) (int, int) {
	var out [2]int
	k := 0
	for i := 0; i < 3; i++ {
		if i != excl {
			out[k] = i
			k++
		}
	}
	return out[0], out[1]
}

// baseEdgeUV gives the (u,v) prism-map argument for fraction t along the
// base-triangle edge between local corners e0 and e1.
func baseEdgeUV(e0, e1 int, t float64) (float64, float64) {
	var c [2]float64
	if e0 != 0 {
		c[e0-1] = 1 - t
	}
	c[e1-1] = t
	return c[0], c[1]
}

// DivideEdges pre-populates this prism's 9 edges.
func (d *PrismDivider) DivideEdges() {
	n := d.ctx.N
	if n < 2 {
		return
	}
	d.vertexAt(1, 0, 0)
	d.vertexAt(0, 1, 0)
	d.vertexAt(n-1, 1, 0)
	d.vertexAt(1, 0, n)
	d.vertexAt(0, 1, n)
	d.vertexAt(n-1, 1, n)
	d.vertexAt(0, 0, 1)
	d.vertexAt(n, 0, 1)
	d.vertexAt(0, n, 1)
}

// DivideFaces pre-populates this prism's 2 triangular end faces and 3
// quadrilateral side faces.
func (d *PrismDivider) DivideFaces() {
	n := d.ctx.N
	for i := 1; i < n; i++ {
		for j := 1; i+j < n; j++ {
			d.vertexAt(i, j, 0)
			d.vertexAt(i, j, n)
		}
	}
	for k := 1; k < n; k++ {
		d.vertexAt(1, 0, k)
		d.vertexAt(0, 1, k)
		d.vertexAt(n-1, 1, k)
	}
}

// DivideInterior pre-populates this prism's strictly interior vertices.
func (d *PrismDivider) DivideInterior() {
	n := d.ctx.N
	for i := 1; i < n; i++ {
		for j := 1; i+j < n; j++ {
			for k := 1; k < n; k++ {
				d.vertexAt(i, j, k)
			}
		}
	}
}

// CreateNewCells appends the N^3 fine prisms to the output mesh.
func (d *PrismDivider) CreateNewCells() {
	n := d.ctx.N
	for i := 0; i < n; i++ {
		for j := 0; i+j < n; j++ {
			for k := 0; k < n; k++ {
				d.ctx.Out.AddPrism(mesh.Prism{
					d.vertexAt(i, j, k), d.vertexAt(i+1, j, k), d.vertexAt(i, j+1, k),
					d.vertexAt(i, j, k+1), d.vertexAt(i+1, j, k+1), d.vertexAt(i, j+1, k+1),
				})
				if i+j+1 < n {
					d.ctx.Out.AddPrism(mesh.Prism{
						d.vertexAt(i+1, j, k), d.vertexAt(i+1, j+1, k), d.vertexAt(i, j+1, k),
						d.vertexAt(i+1, j, k+1), d.vertexAt(i+1, j+1, k+1), d.vertexAt(i, j+1, k+1),
					})
				}
			}
		}
	}
}
