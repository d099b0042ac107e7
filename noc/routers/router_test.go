package routers_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/torusnet/noc/messaging"
	"github.com/sarchlab/torusnet/noc/routers"
)

var _ = Describe("Router", func() {
	var r *routers.Router

	BeforeEach(func() {
		r = routers.New(5)
	})

	It("starts with no ports and NoMetadata", func() {
		Expect(r.ID()).To(Equal(5))
		Expect(r.NumInputs()).To(Equal(0))
		Expect(r.NumOutputs()).To(Equal(0))
		Expect(r.Metadata()).To(Equal(routers.NoMetadata{}))
	})

	It("assigns sequential indices to registered channels", func() {
		idx0 := r.AddOutputChannel(&messaging.FlitChannel{ID: 0}, &messaging.CreditChannel{ID: 0})
		idx1 := r.AddOutputChannel(&messaging.FlitChannel{ID: 1}, &messaging.CreditChannel{ID: 1})

		Expect(idx0).To(Equal(0))
		Expect(idx1).To(Equal(1))
		Expect(r.NumOutputs()).To(Equal(2))
		Expect(r.OutputChannel(1).ID).To(Equal(1))
	})

	It("reports OutputIndexCount before the next add, for index capture", func() {
		Expect(r.OutputIndexCount()).To(Equal(0))
		r.AddOutputChannel(&messaging.FlitChannel{}, &messaging.CreditChannel{})
		captured := r.OutputIndexCount()
		r.AddOutputChannel(&messaging.FlitChannel{}, &messaging.CreditChannel{})

		Expect(captured).To(Equal(1))
	})

	It("panics when a channel pair is incomplete", func() {
		Expect(func() {
			r.AddOutputChannel(nil, &messaging.CreditChannel{})
		}).To(Panic())
	})

	It("tracks the advisory faulty-output bit without acting on it", func() {
		Expect(r.IsFaultyOutput(0)).To(BeFalse())
		r.MarkFaultyOutput(0, true)
		Expect(r.IsFaultyOutput(0)).To(BeTrue())
		r.MarkFaultyOutput(0, false)
		Expect(r.IsFaultyOutput(0)).To(BeFalse())
	})

	It("stores and returns topology-specific metadata", func() {
		md := routers.CakeMetadata{X: 1, Y: 2, Z: 3, ZUp: -1, ZDown: -1}
		r.SetMetadata(md)
		Expect(r.Metadata()).To(Equal(md))
	})
})
