package cellmap

import "github.com/SajedehK/ExaMesh/geom"

// TetMap maps the reference tetrahedron {u,v,w >= 0, u+v+w <= 1} — corner 0
// at the origin, corners 1/2/3 at u=1/v=1/w=1 respectively, matching
// TetDivider's uvwIJK table — to world space.
type TetMap struct {
	p        [4]geom.Vec3
	easeU, easeV, easeW func(float64) float64
}

// NewTetMap builds the map of the requested type from the tet's four corner
// positions and, for the LengthScale type, the per-vertex length scales at
// those same four corners.
func NewTetMap(mt MappingType, corners [4]geom.Vec3, lenScale [4]float64) *TetMap {
	m := &TetMap{p: corners}
	if mt == Lagrange {
		m.easeU, m.easeV, m.easeW = identityEase, identityEase, identityEase
		return m
	}
	m.easeU = axisEase{lenScale[0], lenScale[1]}.ease
	m.easeV = axisEase{lenScale[0], lenScale[2]}.ease
	m.easeW = axisEase{lenScale[0], lenScale[3]}.ease
	return m
}

func (m *TetMap) Eval(u, v, w float64) geom.Vec3 {
	up, vp, wp := m.easeU(u), m.easeV(v), m.easeW(w)
	l0 := 1 - up - vp - wp
	return geom.Vec3{
		l0*m.p[0][0] + up*m.p[1][0] + vp*m.p[2][0] + wp*m.p[3][0],
		l0*m.p[0][1] + up*m.p[1][1] + vp*m.p[2][1] + wp*m.p[3][1],
		l0*m.p[0][2] + up*m.p[1][2] + vp*m.p[2][2] + wp*m.p[3][2],
	}
}
