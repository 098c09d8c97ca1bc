package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/philipparndt/goshape/pkg/analysis"
	"github.com/philipparndt/goshape/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [points-file]",
	Short: "Re-evaluate measurements whenever the points file changes",
	Args:  cobra.ExactArgs(1),
	Run:   runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	report := func() {
		sh, store, err := loadShape(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("\n%s — %s (%d control points)\n", filename, sh.Kind(), store.Count())
		values, err := analysis.EvaluateMeasurements(sh)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		for _, v := range values {
			fmt.Printf("  %s\n", analysis.FormatMeasurement(v))
		}
	}
	report()

	fw, err := watcher.NewFileWatcher(200 * time.Millisecond)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	if err := fw.Watch(filename, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fw.Start()
	fmt.Println("\nWatching for changes, press Ctrl+C to stop...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
}
