package cmd

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/torusnet/noc/config"
	"github.com/sarchlab/torusnet/noc/routing"
	"github.com/sarchlab/torusnet/noc/topology"
	"github.com/sarchlab/torusnet/noc/topology/cake"
	"github.com/sarchlab/torusnet/noc/topology/unitorus"
)

var buildCmd = &cobra.Command{
	Use:   "build [config-file]",
	Short: "Build a topology from a .env-style config file and print a summary.",
	Long: `build reads the given .env-style file into a key=value map, looks ` +
		`up "topology" to decide between unitorus and cake, builds the ` +
		`network, confirms its routing_function is registered, and prints a ` +
		`one-line summary.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		m, err := godotenv.Read(args[0])
		if err != nil {
			log.Fatalf("reading config file: %v", err)
		}

		buildAndReport(xid.New().String(), m)
		atexit.Exit(0)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

// buildAndReport builds the topology m names and prints a one-line summary
// tagged with runID, a correlation id for this invocation.
func buildAndReport(runID string, m map[string]string) {
	name, ok := config.RoutingFunctionName(m)
	if !ok {
		log.Fatalf("missing required key routing_function")
	}
	if _, ok := routing.Lookup(name); !ok {
		log.Fatalf("routing_function %q is not registered", name)
	}

	switch m["topology"] {
	case "cake":
		n := cake.Build(config.ParseCake(m), topology.DefaultAllocator())
		fmt.Printf(
			"[%s] cake: %d nodes, %d channels, %dx%dx%d, %d elevators, routing=%s\n",
			runID, n.NumNodes(), n.NumChannels(), n.X(), n.Y(), n.Z(), len(n.Elevators()), name,
		)
	case "unitorus":
		n := unitorus.Build(config.ParseUniTorus(m), topology.DefaultAllocator())
		fmt.Printf(
			"[%s] unitorus: %d nodes, %d channels, %d dims, capacity=%d, routing=%s\n",
			runID, n.NumNodes(), n.NumChannels(), n.NumDims(), n.Capacity(), name,
		)
	default:
		log.Fatalf("topology %q is not one of unitorus, cake", m["topology"])
	}
}
