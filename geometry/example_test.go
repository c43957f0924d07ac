package geometry_test

import (
	"fmt"

	"github.com/roadquarry/quarrynet/geometry"
	"github.com/roadquarry/quarrynet/quarryconf"
)

// ExampleSplitAt demonstrates cutting a straight ten-unit polyline into two
// halves at its midpoint.
func ExampleSplitAt() {
	pl := geometry.Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}}

	a, b, err := geometry.SplitAt(pl, 5, quarryconf.DefaultTolerance())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("len(a)=%.0f len(b)=%.0f\n", geometry.Length(a), geometry.Length(b))
	// Output: len(a)=5 len(b)=5
}
