package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goshape/pkg/analysis"
	"github.com/spf13/cobra"
)

var measureCmd = &cobra.Command{
	Use:   "measure [points-file]",
	Short: "Evaluate the measurements of a shape from its control points",
	Args:  cobra.ExactArgs(1),
	Run:   runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)
}

func runMeasure(cmd *cobra.Command, args []string) {
	sh, store, err := loadShape(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Shape: %s (%d control points)\n", sh.Kind(), store.Count())
	fmt.Println("======")

	values, err := analysis.EvaluateMeasurements(sh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, v := range values {
		fmt.Printf("  %s\n", analysis.FormatMeasurement(v))
	}
}
