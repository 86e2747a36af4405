package main

import (
	"fmt"
	"log"

	"github.com/conic-go/goecos/conic"
	"github.com/conic-go/goecos/ecos"
)

func main() {
	// Minimize: x + y + 3
	// Subject to: x + y = 4, x >= 0, y >= 0
	problem := &conic.Problem{
		C:      []float64{1.0, 1.0},
		Offset: 3.0,
		A: conic.Matrix{
			Rows: 1, Cols: 2,
			Nonzeros: []conic.Nonzero{{Row: 0, Col: 0, Val: 1.0}, {Row: 0, Col: 1, Val: 1.0}},
		},
		B: []float64{4.0},
		G: conic.Matrix{
			Rows: 2, Cols: 2,
			Nonzeros: []conic.Nonzero{{Row: 0, Col: 0, Val: -1.0}, {Row: 1, Col: 1, Val: -1.0}},
		},
		H:    []float64{0.0, 0.0},
		Dims: conic.ConeDims{Linear: 2},
	}

	// Requires building with -tags ecos and the ECOS library installed.
	engine, err := ecos.NewNativeEngine()
	if err != nil {
		log.Fatal(err)
	}

	result, err := ecos.New(engine).Solve(problem, ecos.WithVerbose(false))
	if err != nil {
		log.Fatal(err)
	}

	if result.IsOptimal() {
		fmt.Printf("x = %.2f, y = %.2f\n", result.X[0], result.X[1])
		fmt.Printf("Objective = %.2f\n", result.Value)
	} else {
		fmt.Println("Status:", result.Status)
	}
}
