package divide

import (
	"github.com/SajedehK/ExaMesh/geom"
	"github.com/SajedehK/ExaMesh/mesh"
)

// Arena holds the canonical edge/face reconciliation tables for one part's
// refinement pass. It is never shared across parts (spec.md §4.5).
type Arena struct {
	edges     map[EdgeKey][]int
	triFaces  map[TriFaceKey]map[[3]int]int
	quadFaces map[QuadFaceKey]map[[2]int]int
}

// NewArena returns an empty reconciliation arena.
func NewArena() *Arena {
	return &Arena{
		edges:     make(map[EdgeKey][]int),
		triFaces:  make(map[TriFaceKey]map[[3]int]int),
		quadFaces: make(map[QuadFaceKey]map[[2]int]int),
	}
}

// Context is the shared state one part's refinement pass threads through
// every cell divider: the read-only coarse mesh, the fine mesh under
// construction, the subdivision factor, and the reconciliation arena.
type Context struct {
	Src     *mesh.Mesh
	Out     *mesh.Mesh
	N       int
	vertMap map[int]int
	Arena   *Arena
}

// NewContext prepares a refinement context for one part.
func NewContext(src *mesh.Mesh, out *mesh.Mesh, n int) *Context {
	return &Context{Src: src, Out: out, N: n, vertMap: make(map[int]int), Arena: NewArena()}
}

// FineIDOf returns the fine-mesh vertex ID that coarse vertex coarseID was
// mapped to, if any cell divider has touched that corner yet.
func (ctx *Context) FineIDOf(coarseID int) (int, bool) {
	v, ok := ctx.vertMap[coarseID]
	return v, ok
}

// Corner returns the fine-mesh vertex ID corresponding to coarse vertex id,
// copying the coarse vertex into the fine mesh the first time it is seen.
func (ctx *Context) Corner(coarseID int) int {
	if v, ok := ctx.vertMap[coarseID]; ok {
		return v
	}
	v := ctx.Out.AddVertex(ctx.Src.GetCoords(coarseID))
	ctx.vertMap[coarseID] = v
	return v
}

// Edge returns the N-1 interior fine-vertex IDs of the edge (a,b), ordered
// from a to b, creating them via eval(t) (t=0 at a, t=1 at b) on first
// touch and reusing them (reversed as needed) on subsequent touches by a
// neighboring cell.
func (ctx *Context) Edge(a, b int, eval func(t float64) geom.Vec3) []int {
	key, swapped := NewEdgeKey(a, b)
	if existing, ok := ctx.Arena.edges[key]; ok {
		if swapped {
			return reverseInts(existing)
		}
		return existing
	}
	ids := make([]int, ctx.N-1)
	for i := 1; i < ctx.N; i++ {
		ids[i-1] = ctx.Out.AddVertex(eval(float64(i) / float64(ctx.N)))
	}
	if swapped {
		ctx.Arena.edges[key] = reverseInts(ids)
	} else {
		ctx.Arena.edges[key] = ids
	}
	return ids
}

// EdgeVerts returns the interior fine-vertex IDs already recorded for edge
// (a,b), ordered from a to b, without creating them. It reports false if no
// cell divider has touched that edge yet.
func (ctx *Context) EdgeVerts(a, b int) ([]int, bool) {
	key, swapped := NewEdgeKey(a, b)
	existing, ok := ctx.Arena.edges[key]
	if !ok {
		return nil, false
	}
	if swapped {
		return reverseInts(existing), true
	}
	return existing, true
}

// TriFaceVerts returns the interior fine-vertex IDs already recorded for
// the triangular face with corners c (in any winding of the same three
// vertices), without creating them. It reports false if no cell divider
// has touched that face yet.
func (ctx *Context) TriFaceVerts(c [3]int) ([]int, bool) {
	key, _ := NewTriFaceKey(c)
	grid, ok := ctx.Arena.triFaces[key]
	if !ok {
		return nil, false
	}
	ids := make([]int, 0, len(grid))
	for _, id := range grid {
		ids = append(ids, id)
	}
	return ids, true
}

// QuadFaceVerts returns the interior fine-vertex IDs already recorded for
// the quadrilateral face with corners c (in any rotation/reflection of the
// same cyclic sequence), without creating them. It reports false if no cell
// divider has touched that face yet.
func (ctx *Context) QuadFaceVerts(c [4]int) ([]int, bool) {
	key, _, _ := NewQuadFaceKey(c)
	grid, ok := ctx.Arena.quadFaces[key]
	if !ok {
		return nil, false
	}
	ids := make([]int, 0, len(grid))
	for _, id := range grid {
		ids = append(ids, id)
	}
	return ids, true
}

func reverseInts(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

// TriFace returns a lookup function for the interior fine vertices of a
// triangular face with local corners c (c[0],c[1],c[2] in the caller's own
// winding), keyed by local barycentric weights (i,j,k), i+j+k=N, i,j,k>0.
// eval(i,j,k) computes the world position for that local weight triple. The
// full interior grid is built once, on whichever cell touches the face
// first; later touches read it back through their own local weights.
func (ctx *Context) TriFace(c [3]int, eval func(i, j, k int) geom.Vec3) func(i, j, k int) int {
	key, perm := NewTriFaceKey(c)
	grid, ok := ctx.Arena.triFaces[key]
	if !ok {
		grid = make(map[[3]int]int)
		for i := 1; i < ctx.N; i++ {
			for j := 1; i+j < ctx.N; j++ {
				k := ctx.N - i - j
				id := ctx.Out.AddVertex(eval(i, j, k))
				grid[canonWeight(perm, [3]int{i, j, k})] = id
			}
		}
		ctx.Arena.triFaces[key] = grid
	}
	return func(i, j, k int) int {
		return grid[canonWeight(perm, [3]int{i, j, k})]
	}
}

// QuadFace returns a lookup function for the interior fine vertices of a
// quadrilateral face with local corners c (in the caller's own winding),
// keyed by local bilinear lattice coordinates (p,q) in (0,N)x(0,N).
// eval(p,q) computes the world position for that local lattice point.
func (ctx *Context) QuadFace(c [4]int, eval func(p, q int) geom.Vec3) func(p, q int) int {
	key, rot, flip := NewQuadFaceKey(c)
	grid, ok := ctx.Arena.quadFaces[key]
	if !ok {
		grid = make(map[[2]int]int)
		for p := 1; p < ctx.N; p++ {
			for q := 1; q < ctx.N; q++ {
				id := ctx.Out.AddVertex(eval(p, q))
				s, t := squareTransform(p, q, ctx.N, rot, flip)
				grid[[2]int{s, t}] = id
			}
		}
		ctx.Arena.quadFaces[key] = grid
	}
	return func(p, q int) int {
		s, t := squareTransform(p, q, ctx.N, rot, flip)
		return grid[[2]int{s, t}]
	}
}
