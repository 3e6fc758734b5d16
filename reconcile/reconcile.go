// Package reconcile implements the cross-partition boundary vertex protocol:
// each part's refined vertices that lie on a partition boundary are gathered
// to a coordinator, sorted, and reduced to the set of records that coincide
// geometrically across two different parts.
package reconcile

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/SajedehK/ExaMesh/geom"
)

// VertPartBoundary is one refined vertex lying on a partition boundary,
// exchanged across parts to identify cross-partition duplicates. The field
// names and types mirror the MPI wire record spec.md §4.7/§6 describes:
// int32 vertex ID, int32 partition ID, three float64 coordinates.
type VertPartBoundary struct {
	ID    int32
	Part  int32
	Coord geom.Vec3
}

// Equal reports whether a and b are the same geometric vertex seen from two
// different partitions: different Part, and all three coordinates agree
// within eps.
func Equal(a, b VertPartBoundary, eps float64) bool {
	if a.Part == b.Part {
		return false
	}
	return math.Abs(a.Coord[0]-b.Coord[0]) < eps &&
		math.Abs(a.Coord[1]-b.Coord[1]) < eps &&
		math.Abs(a.Coord[2]-b.Coord[2]) < eps
}

// SortBuffer orders x lexicographically by (z, y, x) using a single
// three-key comparator, per REDESIGN FLAG (iii) — one comparator-based sort
// in place of three successive stable passes.
func SortBuffer(x []VertPartBoundary) {
	sort.Slice(x, func(i, j int) bool {
		a, b := x[i].Coord, x[j].Coord
		if a[2] != b[2] {
			return a[2] < b[2]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[0] < b[0]
	})
}

// FindIdenticalVerts returns every record in the already-sorted buffer x
// that geometrically coincides (within eps) with at least one other record
// from a different partition. Because the buffer is sorted by z first,
// every candidate for sorted[i] lies after it within the run of records
// whose z is less than eps above sorted[i]'s, so only that run is compared.
func FindIdenticalVerts(sorted []VertPartBoundary, eps float64) []VertPartBoundary {
	if len(sorted) < 2 {
		return nil
	}
	var out []VertPartBoundary
	matched := make([]bool, len(sorted))
	for i := 0; i+1 < len(sorted); i++ {
		for j := i + 1; j < len(sorted) && sorted[j].Coord[2]-sorted[i].Coord[2] < eps; j++ {
			if Equal(sorted[i], sorted[j], eps) {
				matched[i] = true
				matched[j] = true
			}
		}
	}
	for i, m := range matched {
		if m {
			out = append(out, sorted[i])
		}
	}
	return out
}

// WriteIdenticalVerts writes each identical-vertex record as a whitespace-
// separated line (partition, ID, x, y, z), mirroring the original's debug
// dump format.
func WriteIdenticalVerts(w io.Writer, x []VertPartBoundary) error {
	for _, v := range x {
		if _, err := fmt.Fprintf(w, "%d\t%d\t%g\t%g\t%g\n", v.Part, v.ID, v.Coord[0], v.Coord[1], v.Coord[2]); err != nil {
			return err
		}
	}
	return nil
}

// WriteBuffer writes the full unreduced buffer in the same format as
// WriteIdenticalVerts, for debugging the sort/reduction pass itself.
func WriteBuffer(w io.Writer, x []VertPartBoundary) error {
	return WriteIdenticalVerts(w, x)
}

// Collectives abstracts the MPI broadcast/gather operations the parallel
// driver needs, so the reconciliation algorithm above is exercised without
// depending on an MPI runtime being present (spec.md places "MPI transport
// mechanics below the point of exchanging typed records" out of scope).
type Collectives interface {
	// GatherCounts reports localCount to the coordinator and returns the
	// per-part counts on the coordinator (rank 0); other ranks get nil.
	GatherCounts(rank int, localCount int) []int
	// GatherRecords combines every rank's local records into one buffer on
	// the coordinator; other ranks get nil.
	GatherRecords(rank int, local []VertPartBoundary, counts []int) []VertPartBoundary
	// BroadcastRecords distributes the coordinator's reduced buffer to every
	// rank.
	BroadcastRecords(rank int, recs []VertPartBoundary) []VertPartBoundary
}

// LocalCollectives implements Collectives for a single process running all
// parts in sequence, the in-process analogue the spec's scheduling model
// calls for when no MPI runtime is wired in.
type LocalCollectives struct {
	counts  [][]int
	records [][]VertPartBoundary
	final   []VertPartBoundary
}

// NewLocalCollectives prepares a collectives implementation for nParts
// parts.
func NewLocalCollectives(nParts int) *LocalCollectives {
	return &LocalCollectives{
		counts:  make([][]int, nParts),
		records: make([][]VertPartBoundary, nParts),
	}
}

func (c *LocalCollectives) GatherCounts(rank int, localCount int) []int {
	counts := make([]int, len(c.records))
	counts[rank] = localCount
	c.counts[rank] = counts
	if rank != 0 {
		return nil
	}
	merged := make([]int, len(c.counts))
	for r, cc := range c.counts {
		if cc != nil {
			merged[r] = cc[r]
		}
	}
	return merged
}

func (c *LocalCollectives) GatherRecords(rank int, local []VertPartBoundary, counts []int) []VertPartBoundary {
	c.records[rank] = local
	if rank != 0 {
		return nil
	}
	var buf []VertPartBoundary
	for _, r := range c.records {
		buf = append(buf, r...)
	}
	return buf
}

func (c *LocalCollectives) BroadcastRecords(rank int, recs []VertPartBoundary) []VertPartBoundary {
	if rank == 0 {
		c.final = recs
	}
	return c.final
}
