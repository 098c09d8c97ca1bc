package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goshape/pkg/shape"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the control point constraints and measurements of a shape kind",
	Args:  cobra.NoArgs,
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	kind, err := shape.ParseKind(shapeKind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	constraint, err := shape.ConstraintFor(kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Shape: %s\n", kind)
	fmt.Println("======")
	if constraint.Unbounded() {
		fmt.Println("Control points: unbounded, even count, minimum 4")
	} else {
		fmt.Printf("Control points: required %d, maximum %d\n",
			constraint.Required, constraint.Maximum)
	}

	fmt.Println("\nMeasurements:")
	for _, m := range shape.MeasurementsFor(kind) {
		state := "disabled"
		if m.Enabled {
			state = "enabled"
		}
		fmt.Printf("  %-12s %-4s (%s)\n", m.Name, m.Units, state)
	}
}
