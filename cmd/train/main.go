package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Aakash2700/sih-project/logger"
	"github.com/Aakash2700/sih-project/ml"
)

var (
	outDir  string
	samples int
	trees   int
	seed    int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "train",
		Short: "Train the water safety and disease classifiers on synthetic data",
	}
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "models_data", "artifact output directory")
	rootCmd.PersistentFlags().IntVar(&trees, "trees", 100, "number of trees in the forest")

	safetyCmd := &cobra.Command{
		Use:   "safety",
		Short: "Train the binary water safety classifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			artifact, err := ml.TrainSafety(seed, samples, trees)
			if err != nil {
				return err
			}
			path := filepath.Join(outDir, ml.SafetyArtifactFile)
			if err := ml.SaveArtifact(path, artifact); err != nil {
				return err
			}
			fmt.Printf("safety model written to %s\n", path)
			return nil
		},
	}
	safetyCmd.Flags().IntVar(&samples, "samples", 1000, "synthetic sample count")
	safetyCmd.Flags().Int64Var(&seed, "seed", 42, "random seed")

	diseaseCmd := &cobra.Command{
		Use:   "disease",
		Short: "Train the multiclass disease classifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			artifact, err := ml.TrainDisease(seed, samples, trees)
			if err != nil {
				return err
			}
			path := filepath.Join(outDir, ml.DiseaseArtifactFile)
			if err := ml.SaveArtifact(path, artifact); err != nil {
				return err
			}
			fmt.Printf("disease model written to %s\n", path)
			return nil
		},
	}
	diseaseCmd.Flags().IntVar(&samples, "samples", 800, "synthetic sample count")
	diseaseCmd.Flags().Int64Var(&seed, "seed", 123, "random seed")

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Train both classifiers with their default seeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			safety, err := ml.TrainSafety(42, 1000, trees)
			if err != nil {
				return err
			}
			if err := ml.SaveArtifact(filepath.Join(outDir, ml.SafetyArtifactFile), safety); err != nil {
				return err
			}
			disease, err := ml.TrainDisease(123, 800, trees)
			if err != nil {
				return err
			}
			if err := ml.SaveArtifact(filepath.Join(outDir, ml.DiseaseArtifactFile), disease); err != nil {
				return err
			}
			fmt.Printf("models written to %s\n", outDir)
			return nil
		},
	}

	rootCmd.AddCommand(safetyCmd, diseaseCmd, allCmd)

	logger.Init("info")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
