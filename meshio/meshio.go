// Package meshio provides a minimal ASCII mesh reader and writer standing in
// for the CGNS/UGRID/VTK external collaborators spec.md §6 names — this
// repository's domain is refinement, not file-format plumbing, so the
// format here is deliberately small. Write emits vertices and volume cells
// only; boundary faces and per-vertex length scales are not written.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SajedehK/ExaMesh/geom"
	"github.com/SajedehK/ExaMesh/mesh"
)

// su2ElementType maps this package's on-disk element code to an SU2-style
// integer tag, following the convention ReadSU2/getNumNodesSU2 use in the
// teacher's own SU2 reader (10=tet, 12=hex, 13=prism, 14=pyramid) — reused
// here rather than mesh.CellTag's CGNS-flavoured tags, since this format's
// job is to be a legible stand-in for an external reader, not to exercise
// our own internal tag values.
const (
	su2Tet     = 10
	su2Hex     = 12
	su2Prism   = 13
	su2Pyramid = 14
	su2Tri     = 5
	su2Quad    = 9
)

// Read parses a coarse mesh from r in the NPOIN=/NELEM=/NMARK= line-oriented
// format the teacher's own SU2 reader expects, adapted to our fixed-arity
// per-shape connectivity arrays in place of gocfd's single generic
// `[][]int` element list.
func Read(r io.Reader) (*mesh.Mesh, error) {
	m := mesh.New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		switch {
		case strings.HasPrefix(line, "NPOIN="):
			n, err := parseCount(line, "NPOIN=")
			if err != nil {
				return nil, err
			}
			for i := 0; i < n; i++ {
				if !sc.Scan() {
					return nil, fmt.Errorf("meshio: truncated NPOIN section at point %d", i)
				}
				f := strings.Fields(sc.Text())
				if len(f) < 3 {
					return nil, fmt.Errorf("meshio: malformed point line %q", sc.Text())
				}
				x, err1 := strconv.ParseFloat(f[0], 64)
				y, err2 := strconv.ParseFloat(f[1], 64)
				z, err3 := strconv.ParseFloat(f[2], 64)
				if err1 != nil || err2 != nil || err3 != nil {
					return nil, fmt.Errorf("meshio: malformed point coordinates %q", sc.Text())
				}
				m.AddVertex(geom.Vec3{x, y, z})
			}
		case strings.HasPrefix(line, "NELEM="):
			n, err := parseCount(line, "NELEM=")
			if err != nil {
				return nil, err
			}
			for i := 0; i < n; i++ {
				if !sc.Scan() {
					return nil, fmt.Errorf("meshio: truncated NELEM section at element %d", i)
				}
				if err := addElement(m, sc.Text()); err != nil {
					return nil, err
				}
			}
		case strings.HasPrefix(line, "NMARK="):
			n, err := parseCount(line, "NMARK=")
			if err != nil {
				return nil, err
			}
			if err := skipMarkers(sc, n); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseCount(line, prefix string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(strings.TrimPrefix(line, prefix), "%d", &n); err != nil {
		return 0, fmt.Errorf("meshio: malformed %q: %w", line, err)
	}
	return n, nil
}

func addElement(m *mesh.Mesh, line string) error {
	f := strings.Fields(line)
	if len(f) < 2 {
		return fmt.Errorf("meshio: malformed element line %q", line)
	}
	code, err := strconv.Atoi(f[0])
	if err != nil {
		return fmt.Errorf("meshio: malformed element type in %q", line)
	}
	want := map[int]int{su2Tet: 4, su2Hex: 8, su2Prism: 6, su2Pyramid: 5, su2Tri: 3, su2Quad: 4}[code]
	if want == 0 {
		return nil // element type code this reader does not recognize
	}
	if len(f) < 1+want {
		return fmt.Errorf("meshio: element line %q too short for type %d", line, code)
	}
	verts := make([]int, want)
	for i := 0; i < want; i++ {
		v, err := strconv.Atoi(f[1+i])
		if err != nil {
			return fmt.Errorf("meshio: malformed vertex index in %q", line)
		}
		verts[i] = v
	}
	switch code {
	case su2Tet:
		m.AddTet(mesh.Tet{verts[0], verts[1], verts[2], verts[3]})
	case su2Hex:
		m.AddHex(mesh.Hex{verts[0], verts[1], verts[2], verts[3], verts[4], verts[5], verts[6], verts[7]})
	case su2Prism:
		m.AddPrism(mesh.Prism{verts[0], verts[1], verts[2], verts[3], verts[4], verts[5]})
	case su2Pyramid:
		m.AddPyramid(mesh.Pyramid{verts[0], verts[1], verts[2], verts[3], verts[4]})
	case su2Tri:
		m.AddBdryTri(mesh.BTri{verts[0], verts[1], verts[2]})
	case su2Quad:
		m.AddBdryQuad(mesh.BQuad{verts[0], verts[1], verts[2], verts[3]})
	}
	return nil
}

func skipMarkers(sc *bufio.Scanner, nMarkers int) error {
	for i := 0; i < nMarkers; i++ {
		if !sc.Scan() {
			return fmt.Errorf("meshio: truncated NMARK section at marker %d", i)
		}
		tagLine := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(tagLine, "MARKER_TAG=") {
			return fmt.Errorf("meshio: expected MARKER_TAG=, got %q", tagLine)
		}
		if !sc.Scan() {
			return fmt.Errorf("meshio: truncated marker element count for marker %d", i)
		}
		n, err := parseCount(strings.TrimSpace(sc.Text()), "MARKER_ELEMS=")
		if err != nil {
			return err
		}
		for j := 0; j < n; j++ {
			if !sc.Scan() {
				return fmt.Errorf("meshio: truncated marker %d element list", i)
			}
		}
	}
	return nil
}

// Write emits m in the same NPOIN=/NELEM= format Read consumes, suitable for
// a per-part fine-mesh dump.
func Write(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "NDIME=3\n")
	fmt.Fprintf(bw, "NPOIN=%d\n", m.NumVerts())
	for i := 0; i < m.NumVerts(); i++ {
		c := m.GetCoords(i)
		fmt.Fprintf(bw, "%g %g %g %d\n", c[0], c[1], c[2], i)
	}
	total := m.NumTets() + m.NumHexes() + m.NumPrisms() + m.NumPyramids()
	fmt.Fprintf(bw, "NELEM=%d\n", total)
	id := 0
	for i := 0; i < m.NumTets(); i++ {
		c := m.GetTetConn(i)
		fmt.Fprintf(bw, "%d %d %d %d %d %d\n", su2Tet, c[0], c[1], c[2], c[3], id)
		id++
	}
	for i := 0; i < m.NumHexes(); i++ {
		c := m.GetHexConn(i)
		fmt.Fprintf(bw, "%d %d %d %d %d %d %d %d %d %d\n", su2Hex, c[0], c[1], c[2], c[3], c[4], c[5], c[6], c[7], id)
		id++
	}
	for i := 0; i < m.NumPrisms(); i++ {
		c := m.GetPrismConn(i)
		fmt.Fprintf(bw, "%d %d %d %d %d %d %d %d\n", su2Prism, c[0], c[1], c[2], c[3], c[4], c[5], id)
		id++
	}
	for i := 0; i < m.NumPyramids(); i++ {
		c := m.GetPyrConn(i)
		fmt.Fprintf(bw, "%d %d %d %d %d %d %d\n", su2Pyramid, c[0], c[1], c[2], c[3], c[4], id)
		id++
	}
	return bw.Flush()
}
