package topology_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/torusnet/noc/routers"
	"github.com/sarchlab/torusnet/noc/topology"
	"github.com/sarchlab/torusnet/noc/topology/unitorus"
)

var _ = Describe("DefaultAllocator", func() {
	It("builds a channel inventory with distinct ids and injection/ejection endpoints", func() {
		inv := topology.DefaultAllocator().Allocate(4, 2)

		Expect(inv.Channels).To(HaveLen(4))
		Expect(inv.CreditChannels).To(HaveLen(4))
		Expect(inv.Injection).To(HaveLen(2))
		Expect(inv.Ejection).To(HaveLen(2))

		for i, ch := range inv.Channels {
			Expect(ch.ID).To(Equal(i))
		}

		Expect(inv.Injection[1].Dst).To(Equal(1))
		Expect(inv.Ejection[1].Src).To(Equal(1))
	})
})

var _ = Describe("ChannelAllocator", func() {
	It("is called by a topology builder with the sizes it computed", func() {
		ctrl := gomock.NewController(GinkgoT())
		alloc := topology.NewMockChannelAllocator(ctrl)

		alloc.EXPECT().
			Allocate(3, 3).
			Return(topology.DefaultAllocator().Allocate(3, 3))

		unitorus.Build(unitorus.Config{Sizes: []int{3}}, alloc)
	})
})

var _ = Describe("Network", func() {
	It("reports NumNodes and NumChannels from the router set and inventory", func() {
		inv := topology.DefaultAllocator().Allocate(2, 2)
		n := &topology.Network{Routers: []*routers.Router{routers.New(0), routers.New(1)}, Inventory: inv}

		Expect(n.NumNodes()).To(Equal(2))
		Expect(n.NumChannels()).To(Equal(2))
	})

	It("accepts a network where every channel is wired exactly once each way", func() {
		inv := topology.DefaultAllocator().Allocate(1, 2)
		r0, r1 := routers.New(0), routers.New(1)

		inv.Channels[0].Src, inv.Channels[0].Dst = 0, 1
		r0.AddOutputChannel(inv.Channels[0], inv.CreditChannels[0])
		r1.AddInputChannel(inv.Channels[0], inv.CreditChannels[0])

		n := &topology.Network{Routers: []*routers.Router{r0, r1}, Inventory: inv}

		Expect(n.CheckChannelCoverage).NotTo(Panic())
	})

	It("panics with InternalAssertionError when a channel is never registered as an input", func() {
		inv := topology.DefaultAllocator().Allocate(1, 2)
		r0, r1 := routers.New(0), routers.New(1)

		r0.AddOutputChannel(inv.Channels[0], inv.CreditChannels[0])

		n := &topology.Network{Routers: []*routers.Router{r0, r1}, Inventory: inv}

		defer func() {
			r := recover()
			Expect(r).To(BeAssignableToTypeOf(&topology.InternalAssertionError{}))
		}()

		n.CheckChannelCoverage()
	})

	It("panics with InternalAssertionError when a channel is registered as an output twice", func() {
		inv := topology.DefaultAllocator().Allocate(1, 2)
		r0, r1 := routers.New(0), routers.New(1)

		r0.AddOutputChannel(inv.Channels[0], inv.CreditChannels[0])
		r1.AddOutputChannel(inv.Channels[0], inv.CreditChannels[0])
		r1.AddInputChannel(inv.Channels[0], inv.CreditChannels[0])

		n := &topology.Network{Routers: []*routers.Router{r0, r1}, Inventory: inv}

		defer func() {
			r := recover()
			Expect(r).To(BeAssignableToTypeOf(&topology.InternalAssertionError{}))
		}()

		n.CheckChannelCoverage()
	})
})
