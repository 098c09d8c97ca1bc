package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goshape/version"
	"github.com/spf13/cobra"
)

var shapeKind string

var rootCmd = &cobra.Command{
	Use:   "goshape",
	Short: "Inspect and edit parametric shape markups",
	Long: `goshape works on the control points of parametric shape markups
(sphere, ring, disk, tube). It derives radii, disk point spacing and reslice
planes, evaluates the measurements a shape declares, and applies radius edits
back to the points.

Control points are read from a plain text file with one "x y z" line per
point; lines starting with # are ignored.`,
	Version: version.GetFullVersion(),
}

func main() {
	rootCmd.PersistentFlags().StringVar(&shapeKind, "shape", "sphere",
		"shape kind: sphere, ring, disk or tube")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
