// Package cellmap provides the per-shape parametric maps (u,v,w) -> (x,y,z)
// that the cell divider family evaluates to place edge, face, and interior
// vertices. Two flavours share an identical signature per shape: a
// length-scale-weighted map that grades spacing near small features, and a
// plain (degenerate-to-linear, since only corner data is available) Lagrange
// map used when no such grading is wanted.
package cellmap

import "github.com/SajedehK/ExaMesh/geom"

// MappingType selects which map a divider builds.
type MappingType int

const (
	LengthScale MappingType = iota
	Lagrange
)

func (t MappingType) String() string {
	if t == Lagrange {
		return "Lagrange"
	}
	return "LengthScale"
}

// Mapping evaluates the world-space position of a reference-element
// parametric coordinate. The reference domain is shape-specific; see the
// per-shape constructors.
type Mapping interface {
	Eval(u, v, w float64) geom.Vec3
}

// axisEase holds the two representative length scales bounding one
// parametric axis of a cell, used to reparametrize that axis before corner
// blending.
type axisEase struct{ lo, hi float64 }

// ease reparametrizes t in [0,1] using a cubic Hermite curve from (0,0) to
// (1,1) whose endpoint slopes are set from the bounding length scales. When
// lo == hi the slopes are both 1 and the curve reduces exactly to the
// identity t -> t (see hermite01 below) — this is what makes the
// LengthScale mapping coincide with the Lagrange mapping whenever the mesh's
// length scales are uniform (spec scenario S4).
func (a axisEase) ease(t float64) float64 {
	if a.lo == a.hi {
		return t
	}
	m0 := 2 * a.lo / (a.lo + a.hi)
	m1 := 2 * a.hi / (a.lo + a.hi)
	return hermite01(t, m0, m1)
}

func identityEase(t float64) float64 { return t }

// hermite01 evaluates the cubic Hermite curve from p0=0 to p1=1 at parameter
// t, with endpoint derivatives m0 and m1. It satisfies hermite01(t,1,1) == t
// for all t: with both derivatives equal to the secant slope (1-0)/1 = 1, the
// cubic Hermite basis functions h01+h10+h11 sum to exactly t (a standard
// identity of the Hermite basis), making the curve linear in that case.
func hermite01(t, m0, m1 float64) float64 {
	t2 := t * t
	t3 := t2 * t
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h10*m0 + h01 + h11*m1
}

func avg(vs ...float64) float64 {
	var s float64
	for _, v := range vs {
		s += v
	}
	return s / float64(len(vs))
}
