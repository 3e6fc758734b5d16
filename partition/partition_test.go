package partition

import (
	"math/rand"
	"testing"

	"github.com/SajedehK/ExaMesh/geom"
	"github.com/SajedehK/ExaMesh/mesh"
	"github.com/stretchr/testify/require"
)

func TestNumPartsNeverHardcodedAtTwo(t *testing.T) {
	require.Equal(t, 4, NumParts(1000, 250))
	require.Equal(t, 1, NumParts(10, 250))
	require.Equal(t, 10, NumParts(10, 1)) // clamped to cell count, not to 2
	require.Equal(t, 1, NumParts(0, 250))
}

func TestPartitionOnRandomCellsCoversDisjointRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	data := make([]CellPartData, 1000)
	for i := range data {
		data[i] = CellPartData{
			CellIndex: i,
			ShapeTag:  mesh.TagTet,
			Centroid:  geom.Vec3{r.Float64(), r.Float64(), r.Float64()},
		}
	}
	p := NumParts(len(data), 250)
	require.GreaterOrEqual(t, p, 4)
	parts := Partition(data, p)
	require.Len(t, parts, p)

	total := 0
	for i, part := range parts {
		require.Less(t, part.First, part.Last)
		total += part.Count()
		if i > 0 {
			require.Equal(t, parts[i-1].Last, part.First, "parts must be contiguous")
		}
	}
	require.Equal(t, 0, parts[0].First)
	require.Equal(t, 1000, parts[len(parts)-1].Last)
	require.Equal(t, 1000, total)
}

func TestPartitionClampsWhenPExceedsCellCount(t *testing.T) {
	data := []CellPartData{
		{0, mesh.TagTet, geom.Vec3{0, 0, 0}},
		{1, mesh.TagTet, geom.Vec3{1, 0, 0}},
	}
	parts := Partition(data, 10)
	require.Len(t, parts, 2)
}

func TestBuildCellPartDataCountsAllShapes(t *testing.T) {
	m := mesh.New()
	for i := 0; i < 4; i++ {
		m.AddVertex(geom.Vec3{float64(i), 0, 0})
	}
	m.AddTet(mesh.Tet{0, 1, 2, 3})
	data := BuildCellPartData(m)
	require.Len(t, data, 1)
	require.Equal(t, mesh.TagTet, data[0].ShapeTag)
}
