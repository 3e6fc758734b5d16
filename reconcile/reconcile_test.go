package reconcile

import (
	"bytes"
	"testing"

	"github.com/SajedehK/ExaMesh/geom"
	"github.com/stretchr/testify/require"
)

func TestEqualRequiresDifferentPartitions(t *testing.T) {
	a := VertPartBoundary{ID: 1, Part: 0, Coord: geom.Vec3{0, 0, 0}}
	b := VertPartBoundary{ID: 2, Part: 0, Coord: geom.Vec3{0, 0, 0}}
	require.False(t, Equal(a, b, 1e-9), "same partition can never be a duplicate")

	c := VertPartBoundary{ID: 3, Part: 1, Coord: geom.Vec3{1e-10, 0, 0}}
	require.True(t, Equal(a, c, 1e-9))
}

func TestSortBufferOrdersByZThenYThenX(t *testing.T) {
	buf := []VertPartBoundary{
		{ID: 1, Coord: geom.Vec3{2, 2, 1}},
		{ID: 2, Coord: geom.Vec3{1, 1, 0}},
		{ID: 3, Coord: geom.Vec3{0, 2, 1}},
	}
	SortBuffer(buf)
	require.Equal(t, []int32{2, 3, 1}, []int32{buf[0].ID, buf[1].ID, buf[2].ID})
}

func TestFindIdenticalVertsOnSharedPartitionBoundary(t *testing.T) {
	buf := []VertPartBoundary{
		{ID: 10, Part: 0, Coord: geom.Vec3{0.5, 0, 0}},
		{ID: 20, Part: 1, Coord: geom.Vec3{0.5, 0, 0}},
		{ID: 11, Part: 0, Coord: geom.Vec3{0.6, 0, 0}},
	}
	SortBuffer(buf)
	dup := FindIdenticalVerts(buf, 1e-9)
	require.Len(t, dup, 2)
	ids := map[int32]bool{}
	for _, v := range dup {
		ids[v.ID] = true
	}
	require.True(t, ids[10])
	require.True(t, ids[20])
	require.False(t, ids[11])
}

func TestWriteIdenticalVerts(t *testing.T) {
	var buf bytes.Buffer
	err := WriteIdenticalVerts(&buf, []VertPartBoundary{{ID: 5, Part: 2, Coord: geom.Vec3{1, 2, 3}}})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "2\t5\t1\t2\t3")
}

func TestLocalCollectivesRoundTrip(t *testing.T) {
	c := NewLocalCollectives(2)
	c.GatherCounts(1, 3)
	counts := c.GatherCounts(0, 2)
	require.Equal(t, []int{2, 3}, counts)

	c.GatherRecords(1, []VertPartBoundary{{ID: 7, Part: 1}}, counts)
	merged := c.GatherRecords(0, []VertPartBoundary{{ID: 5, Part: 0}}, counts)
	require.Len(t, merged, 2)

	got := c.BroadcastRecords(0, merged)
	require.Equal(t, merged, got)
	gotOther := c.BroadcastRecords(1, nil)
	require.Equal(t, merged, gotOther)
}
