package topology_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/torusnet/noc/topology"
	"github.com/sarchlab/torusnet/noc/topology/unitorus"
)

var _ = Describe("SeedRandomFaults", func() {
	It("marks no ports when fraction is zero", func() {
		n := unitorus.Build(unitorus.Config{Sizes: []int{4, 4}}, topology.DefaultAllocator())
		topology.SeedRandomFaults(n.Network, 1, 0)

		for _, r := range n.Routers {
			for o := 0; o < r.NumOutputs(); o++ {
				Expect(r.IsFaultyOutput(o)).To(BeFalse())
			}
		}
	})

	It("marks every port faulty when fraction is 1", func() {
		n := unitorus.Build(unitorus.Config{Sizes: []int{4, 4}}, topology.DefaultAllocator())
		topology.SeedRandomFaults(n.Network, 1, 1)

		for _, r := range n.Routers {
			for o := 0; o < r.NumOutputs(); o++ {
				Expect(r.IsFaultyOutput(o)).To(BeTrue())
			}
		}
	})

	It("is deterministic for a fixed seed", func() {
		a := unitorus.Build(unitorus.Config{Sizes: []int{4, 4}}, topology.DefaultAllocator())
		b := unitorus.Build(unitorus.Config{Sizes: []int{4, 4}}, topology.DefaultAllocator())

		topology.SeedRandomFaults(a.Network, 42, 0.5)
		topology.SeedRandomFaults(b.Network, 42, 0.5)

		for id := range a.Routers {
			for o := 0; o < a.Routers[id].NumOutputs(); o++ {
				Expect(a.Routers[id].IsFaultyOutput(o)).To(Equal(b.Routers[id].IsFaultyOutput(o)))
			}
		}
	})
})
