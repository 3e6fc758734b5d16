// Package divide implements the per-shape cell divider family: given a
// coarse tetrahedron, pyramid, prism, or hex and a subdivision factor N, it
// produces the fine vertices and fine-cell connectivity for that cell,
// consulting a shared reconciliation arena so that sibling cells agree on
// the vertex IDs of shared edges and faces.
package divide

// EdgeKey canonicalizes an unordered pair of coarse-mesh vertex IDs so two
// cells that share an edge resolve to the same arena entry regardless of
// which direction each cell traverses the edge.
type EdgeKey [2]int

// NewEdgeKey returns the canonical key for the edge (a,b) plus whether a and
// b were swapped to reach canonical (low,high) order.
func NewEdgeKey(a, b int) (EdgeKey, bool) {
	if a < b {
		return EdgeKey{a, b}, false
	}
	return EdgeKey{b, a}, true
}

// TriFaceKey canonicalizes an unordered triple of coarse-mesh vertex IDs
// (ascending) identifying a triangular face.
type TriFaceKey [3]int

// NewTriFaceKey returns the canonical key for face corners c (in the
// caller's own local order) plus the permutation mapping each local corner
// slot to its rank (0,1,2) in the canonical ascending order.
func NewTriFaceKey(c [3]int) (TriFaceKey, [3]int) {
	idx := [3]int{0, 1, 2}
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && c[idx[j-1]] > c[idx[j]]; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}
	key := TriFaceKey{c[idx[0]], c[idx[1]], c[idx[2]]}
	var localToCanon [3]int
	for canon, local := range idx {
		localToCanon[local] = canon
	}
	return key, localToCanon
}

// canonWeight reorders a local barycentric weight triple (w0 on local corner
// 0, etc.) into the canonical ascending-corner order given the permutation
// NewTriFaceKey returned.
func canonWeight(localToCanon [3]int, w [3]int) [3]int {
	var out [3]int
	for local, canon := range localToCanon {
		out[canon] = w[local]
	}
	return out
}

// QuadFaceKey canonicalizes a cyclic quadrilateral face (4 coarse-mesh
// vertex IDs in the winding order the owning cell uses) so two cells
// sharing a quad face agree on a single rotation/reflection of it.
type QuadFaceKey [4]int

// NewQuadFaceKey returns the canonical key for the cyclic corner sequence c,
// the rotation amount, and whether the canonical form reverses c's winding.
func NewQuadFaceKey(c [4]int) (QuadFaceKey, int, bool) {
	minAt := 0
	for i := 1; i < 4; i++ {
		if c[i] < c[minAt] {
			minAt = i
		}
	}
	fwd := [4]int{c[minAt], c[(minAt+1)%4], c[(minAt+2)%4], c[(minAt+3)%4]}
	rev := [4]int{c[minAt], c[(minAt+3)%4], c[(minAt+2)%4], c[(minAt+1)%4]}
	if lessTail(rev, fwd) {
		return QuadFaceKey(rev), minAt, true
	}
	return QuadFaceKey(fwd), minAt, false
}

// lessTail compares two 4-tuples known to share element 0, by elements 1..3.
func lessTail(a, b [4]int) bool {
	for i := 1; i < 4; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// squareTransform maps a local bilinear lattice coordinate (p,q), p,q in
// [0,N], to the canonical coordinate under the rotation/reflection
// NewQuadFaceKey computed, by applying that same dihedral symmetry of the
// [0,N]^2 square to (p,q): the rotation first, then the reflection across
// the diagonal when flip is set.
func squareTransform(p, q, n, rot int, flip bool) (int, int) {
	var s, t int
	switch ((rot % 4) + 4) % 4 {
	case 0:
		s, t = p, q
	case 1:
		s, t = q, n-p
	case 2:
		s, t = n-p, n-q
	default:
		s, t = n-q, p
	}
	if flip {
		s, t = t, s
	}
	return s, t
}
