package main

import (
	"log"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd is examesh's only real command; refine's flags are bound directly
// to it rather than split into subcommands, the way the teacher's own
// 1D/2D commands each own one flag set under a shared rootCmd.
var rootCmd = &cobra.Command{
	Use:   "examesh",
	Short: "Batch refinement of mixed-element volume meshes",
	Long: `examesh reads a coarse tetrahedral/pyramid/prism/hexahedral volume
mesh, partitions it, refines every cell by a uniform subdivision factor,
reconciles the vertices partitions share, and writes the resulting fine
mesh(es).`,
	RunE: runRefine,
}

// Execute runs rootCmd, the way a cobra-generated main.go calls cmd.Execute.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.examesh.yaml)")

	rootCmd.Flags().StringP("input", "i", "", "input mesh file (required)")
	rootCmd.Flags().StringP("output-dir", "o", ".", "directory fine meshes are written to")
	rootCmd.Flags().IntP("subdivision", "n", 2, "uniform subdivision factor")
	rootCmd.Flags().Int("max-cells-per-part", 50000, "maximum cells per partition; the source of truth for partition count")
	rootCmd.Flags().Int("partition-count", 0, "accepted but not used: max-cells-per-part sets the partition count")
	rootCmd.Flags().String("mapping", "LengthScale", "cell map: LengthScale or Lagrange")
	rootCmd.Flags().Float64("epsilon", 0, "reconciliation distance tolerance (0 selects the default)")
	rootCmd.Flags().BoolP("verbose", "v", false, "print resolved configuration and per-part statistics")
	rootCmd.Flags().Bool("profile", false, "write a CPU profile of the run to cpu.pprof")
	rootCmd.Flags().Bool("perfstat", false, "report hardware performance counters per phase")

	for _, name := range []string{"input", "output-dir", "subdivision", "max-cells-per-part",
		"partition-count", "mapping", "epsilon", "verbose", "profile", "perfstat"} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
}

// initConfig follows the same search order cobra's own scaffold generates:
// an explicit --config path, else $HOME/.examesh.yaml, with EXAMESH_-prefixed
// environment variables overriding either.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Print(err)
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".examesh")
	}

	viper.SetEnvPrefix("EXAMESH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Printf("examesh: using config file: %s", viper.ConfigFileUsed())
	}
}
