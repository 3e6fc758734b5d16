package cellmap

import "github.com/SajedehK/ExaMesh/geom"

// PrismMap maps the reference triangular prism — base triangle {u,v >= 0,
// u+v <= 1} at w=0 (corners 0,1,2), the same triangle at w=1 (corners 3,4,5,
// vertically above 0,1,2) — to world space.
type PrismMap struct {
	p                    [6]geom.Vec3
	easeU, easeV, easeW func(float64) float64
}

func NewPrismMap(mt MappingType, corners [6]geom.Vec3, lenScale [6]float64) *PrismMap {
	m := &PrismMap{p: corners}
	if mt == Lagrange {
		m.easeU, m.easeV, m.easeW = identityEase, identityEase, identityEase
		return m
	}
	m.easeU = axisEase{lenScale[0], lenScale[1]}.ease
	m.easeV = axisEase{lenScale[0], lenScale[2]}.ease
	m.easeW = axisEase{avg(lenScale[0], lenScale[1], lenScale[2]), avg(lenScale[3], lenScale[4], lenScale[5])}.ease
	return m
}

func (m *PrismMap) Eval(u, v, w float64) geom.Vec3 {
	up, vp, wp := m.easeU(u), m.easeV(v), m.easeW(w)
	l0 := 1 - up - vp
	n := [6]float64{
		l0 * (1 - wp),
		up * (1 - wp),
		vp * (1 - wp),
		l0 * wp,
		up * wp,
		vp * wp,
	}
	var out geom.Vec3
	for i, ni := range n {
		out[0] += ni * m.p[i][0]
		out[1] += ni * m.p[i][1]
		out[2] += ni * m.p[i][2]
	}
	return out
}
