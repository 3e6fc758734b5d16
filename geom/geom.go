// Package geom provides the vector and volume primitives that the length-scale
// estimator and cell maps build on: triangle and quad unit normals, tetrahedron
// and pyramid signed volume, and a domain-clamped arccosine.
package geom

import "math"

// Vec3 is a point or vector in R3.
type Vec3 [3]float64

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a[0] * s, a[1] * s, a[2] * s}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a Vec3) Len() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalize returns a unit vector along a. Undefined (produces Inf/NaN) for a
// zero-length input, matching the original's unguarded 1/sqrt(dot) macro.
func (a Vec3) Normalize() Vec3 {
	return a.Scale(1. / a.Len())
}

// Centroid averages a set of points.
func Centroid(pts ...Vec3) Vec3 {
	var c Vec3
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Scale(1. / float64(len(pts)))
}

// TriUnitNormal returns the unit normal of the triangle (p0,p1,p2) oriented by
// the right-hand rule. Undefined when the triangle's edges are collinear.
func TriUnitNormal(p0, p1, p2 Vec3) Vec3 {
	e01 := p1.Sub(p0)
	e02 := p2.Sub(p0)
	return e01.Cross(e02).Normalize()
}

// QuadUnitNormal returns the unit normal of a possibly non-planar quad
// (p0,p1,p2,p3), averaging the two triangular splits via bisector vectors.
func QuadUnitNormal(p0, p1, p2, p3 Vec3) Vec3 {
	b := Vec3{
		0.25 * (p0[0] + p3[0] - p1[0] - p2[0]),
		0.25 * (p0[1] + p3[1] - p1[1] - p2[1]),
		0.25 * (p0[2] + p3[2] - p1[2] - p2[2]),
	}
	c := Vec3{
		0.25 * (p0[0] + p1[0] - p3[0] - p2[0]),
		0.25 * (p0[1] + p1[1] - p3[1] - p2[1]),
		0.25 * (p0[2] + p1[2] - p3[2] - p2[2]),
	}
	return b.Cross(c).Normalize()
}

// TetVolume returns the signed volume of the tetrahedron (p0,p1,p2,p3); may be
// negative for reversed connectivity.
func TetVolume(p0, p1, p2, p3 Vec3) float64 {
	e01 := p1.Sub(p0)
	e02 := p2.Sub(p0)
	e03 := p3.Sub(p0)
	n := e01.Cross(e02)
	return n.Dot(e03) / 6
}

// PyrVolume returns the signed volume of a pyramid with (possibly non-planar)
// quad base (p0,p1,p2,p3) and apex.
func PyrVolume(p0, p1, p2, p3, apex Vec3) float64 {
	b := Vec3{
		0.25 * (p0[0] + p3[0] - p1[0] - p2[0]),
		0.25 * (p0[1] + p3[1] - p1[1] - p2[1]),
		0.25 * (p0[2] + p3[2] - p1[2] - p2[2]),
	}
	c := Vec3{
		0.25 * (p0[0] + p1[0] - p3[0] - p2[0]),
		0.25 * (p0[1] + p1[1] - p3[1] - p2[1]),
		0.25 * (p0[2] + p1[2] - p3[2] - p2[2]),
	}
	e := apex.Sub(Centroid(p0, p1, p2, p3))
	n := b.Cross(c)
	return n.Dot(e) / 0.75
}

// SafeAcos clamps arg to [-1,1] before taking the arccosine, so that
// floating-point overshoot on a near-parallel or near-antiparallel pair of
// normals never produces NaN.
func SafeAcos(arg float64) float64 {
	if arg < -1 {
		return math.Pi
	}
	if arg > 1 {
		return 0
	}
	return math.Acos(arg)
}
