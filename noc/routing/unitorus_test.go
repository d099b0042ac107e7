package routing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/torusnet/noc/routing"
	"github.com/sarchlab/torusnet/noc/topology"
	"github.com/sarchlab/torusnet/noc/topology/unitorus"
)

var _ = Describe("dim_order_unitorus_unitorus", func() {
	It("picks the first differing dimension, and ejects at the destination", func() {
		n := unitorus.Build(unitorus.Config{Sizes: []int{4, 4}}, topology.DefaultAllocator())
		fn, ok := routing.Lookup("dim_order_unitorus_unitorus")
		Expect(ok).To(BeTrue())

		r := n.Router(0)

		Expect(fn(r.Metadata(), n.CoordsToNode([]int{2, 0}))).To(Equal(0))
		Expect(fn(r.Metadata(), n.CoordsToNode([]int{0, 3}))).To(Equal(1))
		Expect(fn(r.Metadata(), n.CoordsToNode([]int{0, 0}))).To(Equal(2))
	})

	It("routes correctly for a network built earlier, after a differently-sized network is built", func() {
		a := unitorus.Build(unitorus.Config{Sizes: []int{4, 4, 4}}, topology.DefaultAllocator())
		unitorus.Build(unitorus.Config{Sizes: []int{3, 3}}, topology.DefaultAllocator())

		fn, ok := routing.Lookup("dim_order_unitorus_unitorus")
		Expect(ok).To(BeTrue())

		r := a.Router(0)
		Expect(fn(r.Metadata(), a.CoordsToNode([]int{0, 0, 2}))).To(Equal(2))
	})
})
