package splitter_test

import (
	"fmt"

	"github.com/roadquarry/quarrynet/geometry"
	"github.com/roadquarry/quarrynet/quarryconf"
	"github.com/roadquarry/quarrynet/quarrynet"
	"github.com/roadquarry/quarrynet/splitter"
)

// Two quarries at the ends of a single 10-unit road: the splitter cuts at
// the midpoint and each quarry paves its own half.
func ExampleSplitter_Calculate() {
	cfg := quarryconf.New()
	net, err := quarrynet.NewNetwork(
		[]quarrynet.VertexID{1, 2},
		map[quarrynet.VertexID]float64{1: 1000, 2: 1000},
		[]quarrynet.EdgeInput{
			{U: 1, V: 2, Polyline: geometry.Polyline{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		},
		cfg,
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	result, err := splitter.New(net, cfg).Calculate()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("splits: %d\n", result.SplitCount)
	for _, e := range net.Edges() {
		q, _ := net.AssignedQuarry(e.Key)
		fmt.Printf("edge %d-%d length %.0f quarry %d\n", e.Key.Lo, e.Key.Hi, e.Weight, q)
	}
	// Output:
	// splits: 1
	// edge 1-3 length 5 quarry 1
	// edge 2-3 length 5 quarry 2
}
