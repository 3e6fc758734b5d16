package config

import (
	"testing"

	"github.com/SajedehK/ExaMesh/cellmap"
	"github.com/stretchr/testify/require"
)

func TestParseAndValidateDefaults(t *testing.T) {
	var rc RunConfig
	err := rc.Parse([]byte(`
InputPath: mesh.su2
SubdivisionFactor: 3
MaxCellsPerPart: 500
`))
	require.NoError(t, err)
	require.NoError(t, rc.Validate())
	require.Equal(t, ".", rc.OutputDir)
	require.Equal(t, "LengthScale", rc.MappingType)
	require.Equal(t, 1e-9, rc.Epsilon)
	require.Equal(t, cellmap.LengthScale, rc.CellMapType())
}

func TestValidateRejectsMissingInput(t *testing.T) {
	rc := RunConfig{N: 2, MaxCellsPerPart: 10}
	require.Error(t, rc.Validate())
}

func TestValidateRejectsUnknownMappingType(t *testing.T) {
	rc := RunConfig{InputPath: "x", N: 2, MaxCellsPerPart: 10, MappingType: "bogus"}
	require.Error(t, rc.Validate())
}

func TestLagrangeMapType(t *testing.T) {
	rc := RunConfig{InputPath: "x", N: 2, MaxCellsPerPart: 10, MappingType: "Lagrange"}
	require.NoError(t, rc.Validate())
	require.Equal(t, cellmap.Lagrange, rc.CellMapType())
}
