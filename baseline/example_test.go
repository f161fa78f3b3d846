package baseline_test

import (
	"fmt"

	"github.com/cwbudde/algo-baseline/baseline"
)

func ExampleCompute() {
	// An alternating comb: peaks of 5 over a background of 1.
	signal := []float64{5, 1, 5, 1, 5, 1, 5}

	floor, err := baseline.Compute(signal,
		baseline.WithMinMaxRadius(1),
		baseline.WithSmoothRadius(1),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(floor)

	// Output:
	// [1 1 1 1 1 1 1]
}

func ExampleNewRoller() {
	r, err := baseline.NewRoller(7,
		baseline.WithMinMaxRadius(1),
		baseline.WithSmoothRadius(0),
	)
	if err != nil {
		panic(err)
	}

	floor, err := r.Compute([]float64{2, 2, 9, 2, 2, 2, 2})
	if err != nil {
		panic(err)
	}

	fmt.Println(floor)

	// Output:
	// [2 2 2 2 2 2 2]
}
