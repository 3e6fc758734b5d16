// Package partition splits a coarse mesh's cells into contiguous,
// geometrically compact groups so each group's refinement can run as an
// independent unit of work.
package partition

import (
	"sort"

	"github.com/SajedehK/ExaMesh/geom"
	"github.com/SajedehK/ExaMesh/mesh"
)

// CellPartData is one coarse cell's identity and centroid, the only fields
// the partitioner consults.
type CellPartData struct {
	CellIndex int
	ShapeTag  mesh.CellTag
	Centroid  geom.Vec3
}

// Part is a half-open range [First,Last) into the sorted CellPartData slice
// the partitioner returns, naming which coarse cells belong to one part.
type Part struct {
	First, Last int
}

// Count returns the number of cells in the part.
func (p Part) Count() int { return p.Last - p.First }

// BuildCellPartData collects every coarse cell's shape tag and centroid, in
// the fixed tet/pyramid/prism/hex appender order the mesh package uses.
func BuildCellPartData(m *mesh.Mesh) []CellPartData {
	data := make([]CellPartData, 0, m.NumTets()+m.NumPyramids()+m.NumPrisms()+m.NumHexes())
	for i := 0; i < m.NumTets(); i++ {
		c := m.GetTetConn(i)
		data = append(data, CellPartData{i, mesh.TagTet, centroidOf(m, c[:])})
	}
	for i := 0; i < m.NumPyramids(); i++ {
		c := m.GetPyrConn(i)
		data = append(data, CellPartData{i, mesh.TagPyramid, centroidOf(m, c[:])})
	}
	for i := 0; i < m.NumPrisms(); i++ {
		c := m.GetPrismConn(i)
		data = append(data, CellPartData{i, mesh.TagPrism, centroidOf(m, c[:])})
	}
	for i := 0; i < m.NumHexes(); i++ {
		c := m.GetHexConn(i)
		data = append(data, CellPartData{i, mesh.TagHex, centroidOf(m, c[:])})
	}
	return data
}

func centroidOf(m *mesh.Mesh, verts []int) geom.Vec3 {
	var sum geom.Vec3
	for _, v := range verts {
		sum = sum.Add(m.GetCoords(v))
	}
	return sum.Scale(1 / float64(len(verts)))
}

// NumParts returns the number of parts the policy requires: the cell count
// divided by maxCellsPerPart, rounded up, clamped to at least 1 and to at
// most the cell count. maxCellsPerPart is always the governing input — the
// caller never hardcodes a part count.
func NumParts(numCells, maxCellsPerPart int) int {
	if numCells == 0 {
		return 1
	}
	if maxCellsPerPart <= 0 {
		maxCellsPerPart = numCells
	}
	p := (numCells + maxCellsPerPart - 1) / maxCellsPerPart
	if p < 1 {
		p = 1
	}
	if p > numCells {
		p = numCells
	}
	return p
}

// Partition reorders data in place into P contiguous, geometrically compact
// groups by recursively bisecting along the axis of maximum centroid spread
// at the median centroid coordinate, and returns the resulting parts as
// half-open ranges. P is clamped to len(data) when it exceeds the cell
// count.
func Partition(data []CellPartData, p int) []Part {
	n := len(data)
	if p < 1 {
		p = 1
	}
	if p > n {
		p = n
	}
	if n == 0 {
		return []Part{{0, 0}}
	}
	parts := make([]Part, 0, p)
	bisect(data, 0, n, p, &parts)
	sort.Slice(parts, func(i, j int) bool { return parts[i].First < parts[j].First })
	return parts
}

// bisect recursively splits data[lo:hi] into p contiguous parts, appending
// each resulting leaf range to out.
func bisect(data []CellPartData, lo, hi, p int, out *[]Part) {
	if p <= 1 || hi-lo <= 1 {
		*out = append(*out, Part{lo, hi})
		return
	}
	axis := maxSpreadAxis(data[lo:hi])
	sort.Slice(data[lo:hi], func(i, j int) bool {
		return coord(data[lo+i].Centroid, axis) < coord(data[lo+j].Centroid, axis)
	})
	mid := lo + (hi-lo)/2
	pLeft := p / 2
	pRight := p - pLeft
	bisect(data, lo, mid, pLeft, out)
	bisect(data, mid, hi, pRight, out)
}

func maxSpreadAxis(data []CellPartData) int {
	lo, hi := data[0].Centroid, data[0].Centroid
	for _, d := range data[1:] {
		for a := 0; a < 3; a++ {
			if d.Centroid[a] < lo[a] {
				lo[a] = d.Centroid[a]
			}
			if d.Centroid[a] > hi[a] {
				hi[a] = d.Centroid[a]
			}
		}
	}
	axis, best := 0, hi[0]-lo[0]
	for a := 1; a < 3; a++ {
		if spread := hi[a] - lo[a]; spread > best {
			axis, best = a, spread
		}
	}
	return axis
}

func coord(v geom.Vec3, axis int) float64 { return v[axis] }
