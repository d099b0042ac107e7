package topology

import "math/rand/v2"

// SeedRandomFaults marks a deterministic, seeded sample of output ports
// faulty across the network. It exists only to give the advisory
// faulty-output bit (see routers.Router.MarkFaultyOutput) a concrete,
// testable producer; random fault injection itself is out of scope for this
// module beyond this minimal helper; a full fault model belongs to the
// router collaborator or scheduler.
func SeedRandomFaults(n *Network, seed uint64, fraction float64) {
	if fraction <= 0 {
		return
	}

	rng := rand.New(rand.NewPCG(seed, seed))

	for _, r := range n.Routers {
		for o := 0; o < r.NumOutputs(); o++ {
			if rng.Float64() < fraction {
				r.MarkFaultyOutput(o, true)
			}
		}
	}
}
