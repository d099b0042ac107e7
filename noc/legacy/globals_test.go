package legacy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/torusnet/noc/legacy"
)

var _ = Describe("SetDimensionHints", func() {
	It("records N, K, and a copy of the dimension sizes", func() {
		legacy.SetDimensionHints(3, 4, []int{4, 5, 6})

		Expect(legacy.N()).To(Equal(3))
		Expect(legacy.K()).To(Equal(4))
		Expect(legacy.DimSizes()).To(Equal([]int{4, 5, 6}))
	})

	It("returns an independent copy from DimSizes", func() {
		sizes := []int{2, 2}
		legacy.SetDimensionHints(2, 2, sizes)

		got := legacy.DimSizes()
		got[0] = 99

		Expect(legacy.DimSizes()).To(Equal([]int{2, 2}))
	})

	It("reflects the most recent call", func() {
		legacy.SetDimensionHints(1, 8, []int{8})
		legacy.SetDimensionHints(2, 3, []int{3, 3})

		Expect(legacy.N()).To(Equal(2))
		Expect(legacy.DimSizes()).To(Equal([]int{3, 3}))
	})
})
