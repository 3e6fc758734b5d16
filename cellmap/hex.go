package cellmap

import "github.com/SajedehK/ExaMesh/geom"

// HexMap maps the reference cube [0,1]^3 to world space using the standard
// trilinear corner basis; corners 0..3 are the bottom face (w=0), 4..7 the
// top face (w=1), with vertical edges 0-4, 1-5, 2-6, 3-7 — the ordering
// DG3D/mesh's GetElementFaces uses for hexahedra.
type HexMap struct {
	p                    [8]geom.Vec3
	easeU, easeV, easeW func(float64) float64
}

func NewHexMap(mt MappingType, corners [8]geom.Vec3, lenScale [8]float64) *HexMap {
	m := &HexMap{p: corners}
	if mt == Lagrange {
		m.easeU, m.easeV, m.easeW = identityEase, identityEase, identityEase
		return m
	}
	m.easeU = axisEase{avg(lenScale[0], lenScale[3], lenScale[4], lenScale[7]), avg(lenScale[1], lenScale[2], lenScale[5], lenScale[6])}.ease
	m.easeV = axisEase{avg(lenScale[0], lenScale[1], lenScale[4], lenScale[5]), avg(lenScale[2], lenScale[3], lenScale[6], lenScale[7])}.ease
	m.easeW = axisEase{avg(lenScale[0], lenScale[1], lenScale[2], lenScale[3]), avg(lenScale[4], lenScale[5], lenScale[6], lenScale[7])}.ease
	return m
}

func (m *HexMap) Eval(u, v, w float64) geom.Vec3 {
	up, vp, wp := m.easeU(u), m.easeV(v), m.easeW(w)
	n := [8]float64{
		(1 - up) * (1 - vp) * (1 - wp),
		up * (1 - vp) * (1 - wp),
		up * vp * (1 - wp),
		(1 - up) * vp * (1 - wp),
		(1 - up) * (1 - vp) * wp,
		up * (1 - vp) * wp,
		up * vp * wp,
		(1 - up) * vp * wp,
	}
	var out geom.Vec3
	for i, ni := range n {
		out[0] += ni * m.p[i][0]
		out[1] += ni * m.p[i][1]
		out[2] += ni * m.p[i][2]
	}
	return out
}
