// Command quarrynet reads a plain-text road network description, runs the
// edges splitter, and prints the per-edge quarry assignment together with
// the remaining stockpile of every quarry.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/roadquarry/quarrynet/quarryconf"
	"github.com/roadquarry/quarrynet/quarrynet"
	"github.com/roadquarry/quarrynet/splitter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		roadWidth  float64
		roadHeight float64
		unitCost   float64
		maxDepth   int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "quarrynet <network-file>",
		Short: "Assign road segments to quarries by splitting network edges",
		Long: `quarrynet reads a road network with quarry stockpiles, splits every
edge at the points where the feeding quarry changes or runs out of
material, and reports which quarry supplies each resulting segment.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.Nop()
			if verbose {
				logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
					Level(zerolog.DebugLevel).
					With().Timestamp().Logger()
			}

			cfg := quarryconf.New(
				quarryconf.WithRoadDimensions(roadWidth, roadHeight),
				quarryconf.WithUnitCost(unitCost),
				quarryconf.WithMaxSplitDepth(maxDepth),
				quarryconf.WithLogger(logger),
			)

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			net, err := parseNetwork(f, cfg)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			result, err := splitter.New(net, cfg).Calculate()
			if err != nil {
				// The network is observably partial; still print what was
				// built before surfacing the failure.
				printReport(cmd, net, nil)
				return err
			}

			printReport(cmd, net, result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&roadWidth, "road-width", 1, "road cross-section width")
	cmd.Flags().Float64Var(&roadHeight, "road-height", 1, "road cross-section height")
	cmd.Flags().Float64Var(&unitCost, "unit-cost", 1, "haul cost per unit length and distance")
	cmd.Flags().IntVar(&maxDepth, "max-depth", quarryconf.DefaultMaxSplitDepth, "recursion depth limit for edge splitting")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log split decisions to stderr")

	return cmd
}

func printReport(cmd *cobra.Command, net *quarrynet.Network, result *splitter.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "edges:")
	for _, e := range net.Edges() {
		origin, _ := net.OriginalEdgeOf(e.Key)
		if q, ok := net.AssignedQuarry(e.Key); ok {
			fmt.Fprintf(out, "  %d-%d  length=%.3f  quarry=%d  from=%d-%d\n",
				e.Key.Lo, e.Key.Hi, e.Weight, q, origin.Lo, origin.Hi)
		} else {
			fmt.Fprintf(out, "  %d-%d  length=%.3f  quarry=UNASSIGNED  from=%d-%d\n",
				e.Key.Lo, e.Key.Hi, e.Weight, origin.Lo, origin.Hi)
		}
	}

	fmt.Fprintln(out, "quarries:")
	for _, q := range net.Quarries() {
		remaining, err := net.Capacity(q)
		if err != nil {
			continue
		}
		fmt.Fprintf(out, "  %d  remaining=%.3f\n", q, remaining)
	}

	if result != nil {
		fmt.Fprintf(out, "total volume used: %.3f\n", result.TotalVolumeUsed)
		fmt.Fprintf(out, "total haul cost:   %.3f\n", result.TotalCost)
		fmt.Fprintf(out, "splits performed:  %d\n", result.SplitCount)
	}
}
