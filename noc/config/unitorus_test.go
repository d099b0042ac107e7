package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/torusnet/noc/config"
)

var _ = Describe("ParseUniTorus", func() {
	It("parses dim_sizes with braces and commas", func() {
		cfg := config.ParseUniTorus(map[string]string{"dim_sizes": "{4,4,4}"})
		Expect(cfg.Sizes).To(Equal([]int{4, 4, 4}))
		Expect(cfg.Bandwidth).To(BeNil())
	})

	It("parses optional per-dimension attributes", func() {
		cfg := config.ParseUniTorus(map[string]string{
			"dim_sizes":     "3 3",
			"dim_latency":   "2,5",
			"dim_bandwidth": "1,2",
		})
		Expect(cfg.Latency).To(Equal([]int{2, 5}))
		Expect(cfg.Bandwidth).To(Equal([]int{1, 2}))
	})

	It("parses unitorus_debug as a boolean flag", func() {
		cfg := config.ParseUniTorus(map[string]string{
			"dim_sizes":      "4",
			"unitorus_debug": "1",
		})
		Expect(cfg.Debug).To(BeTrue())
	})

	It("panics with BadConfigError when dim_sizes is missing", func() {
		defer func() {
			r := recover()
			Expect(r).To(BeAssignableToTypeOf(&config.BadConfigError{}))
		}()

		config.ParseUniTorus(map[string]string{})
	})

	It("panics with BadConfigError when a list has the wrong cardinality", func() {
		defer func() {
			r := recover()
			Expect(r).To(BeAssignableToTypeOf(&config.BadConfigError{}))
		}()

		config.ParseUniTorus(map[string]string{
			"dim_sizes":   "4,4",
			"dim_latency": "1",
		})
	})

	It("panics with BadConfigError on an unparseable token", func() {
		defer func() {
			r := recover()
			Expect(r).To(BeAssignableToTypeOf(&config.BadConfigError{}))
		}()

		config.ParseUniTorus(map[string]string{"dim_sizes": "4,four"})
	})
})
