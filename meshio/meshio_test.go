package meshio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadParsesPointsAndTet(t *testing.T) {
	src := strings.Join([]string{
		"NDIME=3",
		"NPOIN=4",
		"0.0 0.0 0.0 0",
		"1.0 0.0 0.0 1",
		"0.0 1.0 0.0 2",
		"0.0 0.0 1.0 3",
		"NELEM=1",
		"10 0 1 2 3 0",
		"NMARK=0",
		"",
	}, "\n")

	m, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 4, m.NumVerts())
	require.Equal(t, 1, m.NumTets())
	require.Equal(t, [4]int{0, 1, 2, 3}, [4]int(m.GetTetConn(0)))
}

func TestReadSkipsMarkerSection(t *testing.T) {
	src := strings.Join([]string{
		"NPOIN=3",
		"0 0 0 0",
		"1 0 0 1",
		"0 1 0 2",
		"NELEM=0",
		"NMARK=1",
		"MARKER_TAG=wall",
		"MARKER_ELEMS=1",
		"5 0 1 2 0",
		"",
	}, "\n")

	m, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, m.NumVerts())
	require.Equal(t, 0, m.NumTets())
}

func TestWriteThenReadRoundTripsHex(t *testing.T) {
	src := strings.Join([]string{
		"NPOIN=8",
		"0 0 0 0", "1 0 0 1", "1 1 0 2", "0 1 0 3",
		"0 0 1 4", "1 0 1 5", "1 1 1 6", "0 1 1 7",
		"NELEM=1",
		"12 0 1 2 3 4 5 6 7 0",
		"NMARK=0",
		"",
	}, "\n")
	m, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1, m.NumHexes())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, m))

	m2, err := Read(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, m.NumVerts(), m2.NumVerts())
	require.Equal(t, m.NumHexes(), m2.NumHexes())
	require.Equal(t, m.GetHexConn(0), m2.GetHexConn(0))
}
