// Package mesh defines the polymorphic coarse/fine mesh container: vertex
// coordinates plus per-cell-type connectivity arrays, with the uniform
// accessor contract the refinement engine is built against.
package mesh

import (
	"fmt"

	"github.com/SajedehK/ExaMesh/geom"
)

// CellTag identifies an element or boundary-face shape using the external
// record tags spec.md §6 names (the ones CGNS/UGRID/VTK readers emit).
type CellTag int

const (
	TagTri     CellTag = 5
	TagQuad    CellTag = 7
	TagTet     CellTag = 10
	TagPyramid CellTag = 12
	TagPrism   CellTag = 14
	TagHex     CellTag = 17
	// High-order variants, named for completeness of the external record
	// contract; this repository only ever emits the linear tags above.
	TagTri10    CellTag = 26
	TagQuad16   CellTag = 28
	TagTet20    CellTag = 30
	TagPyr30    CellTag = 33
	TagPrism40  CellTag = 36
	TagHex64    CellTag = 39
)

func (t CellTag) String() string {
	switch t {
	case TagTri:
		return "Tri"
	case TagQuad:
		return "Quad"
	case TagTet:
		return "Tet"
	case TagPyramid:
		return "Pyramid"
	case TagPrism:
		return "Prism"
	case TagHex:
		return "Hex"
	default:
		return fmt.Sprintf("CellTag(%d)", int(t))
	}
}

// MaxDivs is the compile-time bound on the subdivision factor N (spec.md §9);
// config.Validate rejects a larger N. Face-interior vertex grids are held in
// maps, so the bound does not size any storage.
const MaxDivs = 50

// Tet, Pyramid, Prism, Hex are the fixed-arity coarse/fine element
// connectivity records, each a tuple of vertex indices.
type (
	Tet     [4]int
	Pyramid [5]int
	Prism   [6]int
	Hex     [8]int
	BTri    [3]int
	BQuad   [4]int
)

// Mesh is the vertex-coordinate plus per-cell-type connectivity container
// used for both coarse input meshes and per-part fine output meshes. All
// mutation is expected to happen through the Add* appenders before the mesh
// is handed to a reader; once refinement begins the mesh is treated as
// read-only and is safe for concurrent reads from multiple workers.
type Mesh struct {
	verts      []geom.Vec3
	lenScale   []float64 // parallel to verts; nil until an estimator runs
	bdryVerts  []int     // subset of vertex indices lying on the outer boundary

	tets    []Tet
	pyrs    []Pyramid
	prisms  []Prism
	hexes   []Hex
	bTris   []BTri
	bQuads  []BQuad
}

// New returns an empty mesh ready for appending.
func New() *Mesh {
	return &Mesh{}
}

// --- appenders -------------------------------------------------------------

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(p geom.Vec3) int {
	m.verts = append(m.verts, p)
	return len(m.verts) - 1
}

// SetBoundaryVerts records which vertex indices lie on the outer mesh
// boundary (as opposed to a partition boundary, tracked separately by the
// reconciliation protocol).
func (m *Mesh) SetBoundaryVerts(ids []int) { m.bdryVerts = ids }

func (m *Mesh) AddTet(c Tet) int       { m.tets = append(m.tets, c); return len(m.tets) - 1 }
func (m *Mesh) AddPyramid(c Pyramid) int { m.pyrs = append(m.pyrs, c); return len(m.pyrs) - 1 }
func (m *Mesh) AddPrism(c Prism) int   { m.prisms = append(m.prisms, c); return len(m.prisms) - 1 }
func (m *Mesh) AddHex(c Hex) int       { m.hexes = append(m.hexes, c); return len(m.hexes) - 1 }
func (m *Mesh) AddBdryTri(c BTri) int   { m.bTris = append(m.bTris, c); return len(m.bTris) - 1 }
func (m *Mesh) AddBdryQuad(c BQuad) int { m.bQuads = append(m.bQuads, c); return len(m.bQuads) - 1 }

// SetLengthScale installs the per-vertex length-scale array computed by the
// lengthscale estimator. It must have exactly NumVerts entries.
func (m *Mesh) SetLengthScale(ls []float64) {
	if len(ls) != len(m.verts) {
		panic(fmt.Sprintf("mesh: length scale array has %d entries, mesh has %d vertices", len(ls), len(m.verts)))
	}
	m.lenScale = ls
}

// --- accessor contract (spec.md §4.2) --------------------------------------

func (m *Mesh) NumVerts() int     { return len(m.verts) }
func (m *Mesh) NumBdryVerts() int { return len(m.bdryVerts) }
func (m *Mesh) NumTets() int      { return len(m.tets) }
func (m *Mesh) NumPyramids() int  { return len(m.pyrs) }
func (m *Mesh) NumPrisms() int    { return len(m.prisms) }
func (m *Mesh) NumHexes() int     { return len(m.hexes) }
func (m *Mesh) NumBdryTris() int  { return len(m.bTris) }
func (m *Mesh) NumBdryQuads() int { return len(m.bQuads) }

func (m *Mesh) GetTetConn(i int) Tet         { return m.tets[i] }
func (m *Mesh) GetPyrConn(i int) Pyramid     { return m.pyrs[i] }
func (m *Mesh) GetPrismConn(i int) Prism     { return m.prisms[i] }
func (m *Mesh) GetHexConn(i int) Hex         { return m.hexes[i] }
func (m *Mesh) GetBdryTriConn(i int) BTri    { return m.bTris[i] }
func (m *Mesh) GetBdryQuadConn(i int) BQuad  { return m.bQuads[i] }

// GetCoords returns the position of vertex v.
func (m *Mesh) GetCoords(v int) geom.Vec3 { return m.verts[v] }

// GetLengthScale returns the length scale at vertex v. Panics if the
// estimator has not run; callers that need a map must run lengthscale first.
func (m *Mesh) GetLengthScale(v int) float64 {
	if m.lenScale == nil {
		panic("mesh: GetLengthScale called before a length-scale estimator populated the mesh")
	}
	return m.lenScale[v]
}

// HasLengthScale reports whether SetLengthScale has been called.
func (m *Mesh) HasLengthScale() bool { return m.lenScale != nil }

// CellCoords returns the world-space coordinates of a coarse cell's corners
// in local corner order, given its vertex-index tuple.
func CellCoords(m *Mesh, verts []int) []geom.Vec3 {
	pts := make([]geom.Vec3, len(verts))
	for i, v := range verts {
		pts[i] = m.GetCoords(v)
	}
	return pts
}

// Summary reports coarse-mesh statistics the way ExaMesh.cxx::printMeshSizeStats
// does. The CLI does not call it.
func (m *Mesh) Summary() string {
	return fmt.Sprintf(
		"verts=%d bdryTris=%d bdryQuads=%d tets=%d pyramids=%d prisms=%d hexes=%d total=%d",
		m.NumVerts(), m.NumBdryTris(), m.NumBdryQuads(), m.NumTets(), m.NumPyramids(),
		m.NumPrisms(), m.NumHexes(),
		m.NumTets()+m.NumPyramids()+m.NumPrisms()+m.NumHexes(),
	)
}
