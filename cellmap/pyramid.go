package cellmap

import "github.com/SajedehK/ExaMesh/geom"

// PyramidMap maps the reference pyramid — base quad {u,v in [0,1]} at w=0
// (corners 0,1,2,3) collapsing linearly to the apex (corner 4) at w=1 — to
// world space.
type PyramidMap struct {
	p                    [5]geom.Vec3
	easeU, easeV, easeW func(float64) float64
}

func NewPyramidMap(mt MappingType, corners [5]geom.Vec3, lenScale [5]float64) *PyramidMap {
	m := &PyramidMap{p: corners}
	if mt == Lagrange {
		m.easeU, m.easeV, m.easeW = identityEase, identityEase, identityEase
		return m
	}
	m.easeU = axisEase{avg(lenScale[0], lenScale[3]), avg(lenScale[1], lenScale[2])}.ease
	m.easeV = axisEase{avg(lenScale[0], lenScale[1]), avg(lenScale[2], lenScale[3])}.ease
	m.easeW = axisEase{avg(lenScale[0], lenScale[1], lenScale[2], lenScale[3]), lenScale[4]}.ease
	return m
}

func (m *PyramidMap) Eval(u, v, w float64) geom.Vec3 {
	up, vp, wp := m.easeU(u), m.easeV(v), m.easeW(w)
	n := [4]float64{
		(1 - up) * (1 - vp),
		up * (1 - vp),
		up * vp,
		(1 - up) * vp,
	}
	var base geom.Vec3
	for i, ni := range n {
		base[0] += ni * m.p[i][0]
		base[1] += ni * m.p[i][1]
		base[2] += ni * m.p[i][2]
	}
	return geom.Vec3{
		(1-wp)*base[0] + wp*m.p[4][0],
		(1-wp)*base[1] + wp*m.p[4][1],
		(1-wp)*base[2] + wp*m.p[4][2],
	}
}
