package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SajedehK/ExaMesh/config"
	"github.com/SajedehK/ExaMesh/driver"
	"github.com/SajedehK/ExaMesh/internal/perfstat"
	"github.com/SajedehK/ExaMesh/mesh"
	"github.com/SajedehK/ExaMesh/meshio"
)

func runRefine(cmd *cobra.Command, args []string) error {
	if viper.GetBool("profile") {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	rc := config.RunConfig{
		InputPath:       viper.GetString("input"),
		OutputDir:       viper.GetString("output-dir"),
		N:               viper.GetInt("subdivision"),
		MaxCellsPerPart: viper.GetInt("max-cells-per-part"),
		PartitionCount:  viper.GetInt("partition-count"),
		MappingType:     viper.GetString("mapping"),
		Epsilon:         viper.GetFloat64("epsilon"),
		Verbose:         viper.GetBool("verbose"),
	}
	if err := rc.Validate(); err != nil {
		return err
	}
	if rc.Verbose {
		rc.Print()
	}

	rec := newRecorder()

	var coarse *mesh.Mesh
	err := rec.Phase("read", func() error {
		in, openErr := os.Open(rc.InputPath)
		if openErr != nil {
			return openErr
		}
		defer in.Close()
		m, readErr := meshio.Read(in)
		if readErr != nil {
			return readErr
		}
		coarse = m
		return nil
	})
	if err != nil {
		return fmt.Errorf("examesh: reading %s: %w", rc.InputPath, err)
	}
	if _, ok := mesh.ComputeFineMeshSize(coarse, rc.N); !ok {
		log.Printf("examesh: refining %s at N=%d would overflow the mesh index type", rc.InputPath, rc.N)
		os.Exit(2)
	}

	var result *driver.Result
	err = rec.Phase("refine", func() error {
		r, runErr := driver.Run(coarse, driver.Config{
			N:               rc.N,
			MaxCellsPerPart: rc.MaxCellsPerPart,
			MapType:         rc.CellMapType(),
			Epsilon:         rc.Epsilon,
		})
		result = r
		return runErr
	})
	if err != nil {
		return fmt.Errorf("examesh: refining %s: %w", rc.InputPath, err)
	}

	if err := os.MkdirAll(rc.OutputDir, 0o755); err != nil {
		return fmt.Errorf("examesh: %w", err)
	}
	err = rec.Phase("write", func() error {
		for i, part := range result.Parts {
			path := filepath.Join(rc.OutputDir, fmt.Sprintf("part_%04d.mesh", i))
			if werr := writePart(path, part); werr != nil {
				return werr
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("examesh: writing output: %w", err)
	}

	log.Printf("examesh: %d partitions, %d fine vertices, %d fine cells, %d identical boundary vertices reconciled",
		result.Stats.NumParts, result.Stats.FineVertsTotal, result.Stats.FineCellsTotal, result.Stats.IdenticalVerts)

	if viper.GetBool("perfstat") {
		rec.Report(os.Stdout)
	}
	return nil
}

func writePart(path string, part *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return meshio.Write(f, part)
}

// newRecorder opens a hardware counter source when --perfstat was
// requested; a failed open (common outside a privileged environment)
// degrades to an uninstrumented Recorder rather than aborting the run.
func newRecorder() *perfstat.Recorder {
	if !viper.GetBool("perfstat") {
		return perfstat.NewRecorder(nil)
	}
	src, err := perfstat.NewHardwareSource()
	if err != nil {
		log.Printf("examesh: %v", err)
		return perfstat.NewRecorder(nil)
	}
	return perfstat.NewRecorder(src)
}
