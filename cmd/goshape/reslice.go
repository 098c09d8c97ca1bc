package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/philipparndt/goshape/pkg/analysis"
	"github.com/philipparndt/goshape/pkg/shape"
	"github.com/spf13/cobra"
)

var resliceCmd = &cobra.Command{
	Use:   "reslice [points-file]",
	Short: "Derive the reslice plane of a shape from its control points",
	Long: `Derive the oriented plane used to align a 2D slice view with the shape.
Spheres orient by their two points, rings and disks by their three-point
plane. Tubes define no reslice plane.`,
	Args: cobra.ExactArgs(1),
	Run:  runReslice,
}

func init() {
	rootCmd.AddCommand(resliceCmd)
}

func runReslice(cmd *cobra.Command, args []string) {
	sh, _, err := loadShape(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	plane, err := sh.ReslicePlane()
	if errors.Is(err, shape.ErrNoReslicePlane) {
		fmt.Printf("Shape %s defines no reslice plane here.\n", sh.Kind())
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Reslice plane")
	fmt.Println("=============")
	fmt.Printf("  normal:  %s\n", analysis.FormatVector(plane.Normal))
	fmt.Printf("  tangent: %s\n", analysis.FormatVector(plane.Tangent))
	fmt.Printf("  origin:  %s\n", analysis.FormatVector(plane.Origin))
}
