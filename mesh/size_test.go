package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeMeshSizeTetN2(t *testing.T) {
	in := MeshSize{NTets: 1}
	out, ok := computeMeshSize(in, 2)
	require.True(t, ok)
	require.Equal(t, int64(8), out.NTets)
	require.Equal(t, int64(10), out.NVerts) // 4 corners + 6 edge mids, N=2 tet lattice = C(5,3)=10... see tetLatticePoints
}

func TestComputeMeshSizePyramidRoutesToTets(t *testing.T) {
	in := MeshSize{NPyrs: 1}
	out, ok := computeMeshSize(in, 2)
	require.True(t, ok)
	require.Equal(t, int64(0), out.NPyrs)
	require.Equal(t, int64(16), out.NTets) // split into 2 tets, each N=2 lattice = 8 fine tets
}

func TestComputeMeshSizeOverflow(t *testing.T) {
	in := MeshSize{NHexes: IndexMax}
	_, ok := computeMeshSize(in, 50)
	require.False(t, ok)
}

func TestComputeMeshSizeIdentityN1(t *testing.T) {
	in := MeshSize{NTets: 3, NHexes: 2, NBdryTris: 4, NBdryQuads: 1}
	out, ok := computeMeshSize(in, 1)
	require.True(t, ok)
	require.Equal(t, in.NTets, out.NTets)
	require.Equal(t, in.NHexes, out.NHexes)
	require.Equal(t, in.NBdryTris, out.NBdryTris)
	require.Equal(t, in.NBdryQuads, out.NBdryQuads)
}
