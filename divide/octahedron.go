package divide

import "github.com/SajedehK/ExaMesh/geom"

// splitOctahedron decomposes the octahedron formed by down-triangle (A,B,C)
// at layer k and up-triangle (D,E,F) at layer k+1 — with band edges A-D,
// A-E, B-E, B-F, C-F, C-D — into 4 tets, using whichever of the three main
// diagonals (A-F, B-D, C-E) is shortest in world space
// (stuffTetsIntoOctahedron's shortest-internal-diagonal rule).
func splitOctahedron(a, b, c, d, e, f int, pos func(int) geom.Vec3) [4][4]int {
	dAF := pos(a).Sub(pos(f)).Dot(pos(a).Sub(pos(f)))
	dBD := pos(b).Sub(pos(d)).Dot(pos(b).Sub(pos(d)))
	dCE := pos(c).Sub(pos(e)).Dot(pos(c).Sub(pos(e)))

	switch {
	case dAF <= dBD && dAF <= dCE:
		return [4][4]int{{a, f, b, c}, {a, f, c, d}, {a, f, d, e}, {a, f, e, b}}
	case dBD <= dAF && dBD <= dCE:
		return [4][4]int{{b, d, a, c}, {b, d, c, f}, {b, d, f, e}, {b, d, e, a}}
	default:
		return [4][4]int{{c, e, a, b}, {c, e, b, f}, {c, e, f, d}, {c, e, d, a}}
	}
}
