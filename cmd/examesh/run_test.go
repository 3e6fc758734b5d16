package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func unitTetFile(t *testing.T) string {
	t.Helper()
	src := strings.Join([]string{
		"NPOIN=4",
		"0 0 0 0",
		"1 0 0 1",
		"0 1 0 2",
		"0 0 1 3",
		"NELEM=1",
		"10 0 1 2 3 0",
		"NMARK=0",
		"",
	}, "\n")
	dir := t.TempDir()
	path := filepath.Join(dir, "tet.mesh")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// resetFlags restores rootCmd's flags to their defaults between tests,
// since rootCmd and viper are both package-level singletons.
func resetFlags(t *testing.T) {
	t.Helper()
	viper.Reset()
	require.NoError(t, rootCmd.Flags().Set("input", ""))
	require.NoError(t, rootCmd.Flags().Set("output-dir", "."))
	require.NoError(t, rootCmd.Flags().Set("subdivision", "2"))
	require.NoError(t, rootCmd.Flags().Set("max-cells-per-part", "50000"))
	require.NoError(t, rootCmd.Flags().Set("mapping", "LengthScale"))
	require.NoError(t, rootCmd.Flags().Set("verbose", "false"))
	require.NoError(t, rootCmd.Flags().Set("profile", "false"))
	require.NoError(t, rootCmd.Flags().Set("perfstat", "false"))
	for _, name := range []string{"input", "output-dir", "subdivision", "max-cells-per-part",
		"partition-count", "mapping", "epsilon", "verbose", "profile", "perfstat"} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
}

func TestRunRefineWritesFineMesh(t *testing.T) {
	resetFlags(t)
	meshPath := unitTetFile(t)
	outDir := t.TempDir()

	rootCmd.SetArgs([]string{
		"--input", meshPath,
		"--output-dir", outDir,
		"--subdivision", "2",
		"--max-cells-per-part", "100",
	})
	require.NoError(t, rootCmd.Execute())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "part_0000.mesh", entries[0].Name())
}

func TestRunRefineRejectsMissingInput(t *testing.T) {
	resetFlags(t)
	outDir := t.TempDir()
	rootCmd.SetArgs([]string{"--output-dir", outDir})
	require.Error(t, rootCmd.Execute())
}
