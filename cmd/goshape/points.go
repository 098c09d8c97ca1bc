package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/goshape/pkg/analysis"
	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/shape"
)

// readPoints parses a points file: one "x y z" line per control point,
// blank lines and lines starting with # are skipped.
func readPoints(filename string) ([]geometry.Vector3, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open points file: %w", err)
	}
	defer file.Close()

	var points []geometry.Vector3
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 coordinates, got %d", lineNo, len(fields))
		}
		coords := make([]float64, 3)
		for i, field := range fields {
			if coords[i], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, fmt.Errorf("line %d: invalid coordinate %q", lineNo, field)
			}
		}
		points = append(points, geometry.NewVector3(coords[0], coords[1], coords[2]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read points file: %w", err)
	}
	return points, nil
}

// loadShape builds a shape of the --shape kind over the points in filename.
// The shape is created before the points are appended, so the kind switch
// does not clear them; points beyond the kind's maximum are truncated.
func loadShape(filename string) (*shape.Shape, *shape.MemoryStore, error) {
	kind, err := shape.ParseKind(shapeKind)
	if err != nil {
		return nil, nil, err
	}
	points, err := readPoints(filename)
	if err != nil {
		return nil, nil, err
	}

	store := shape.NewMemoryStore()
	sh, err := shape.New(store, kind)
	if err != nil {
		return nil, nil, err
	}
	store.Subscribe(sh.OnPointUndefined)

	max := sh.Constraint().Maximum
	for i, p := range points {
		if max > 0 && i >= max {
			break
		}
		store.Append(p)
	}
	return sh, store, nil
}

func printPoints(store *shape.MemoryStore) {
	for i := 0; i < store.Count(); i++ {
		fmt.Printf("  point %d: %s\n", i, analysis.FormatVector(store.PositionAt(i)))
	}
}
