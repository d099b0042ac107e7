// Package unitorus builds an N-dimensional unidirectional torus: one
// positive-direction wrap-around link per dimension, with per-dimension
// bandwidth, latency, and penalty attributes.
package unitorus

import (
	"fmt"

	"github.com/sarchlab/torusnet/noc/legacy"
	"github.com/sarchlab/torusnet/noc/routers"
	"github.com/sarchlab/torusnet/noc/topology"
)

// Config is the validated, typed configuration a UniTorus is built from.
// noc/config produces one of these from a map[string]string; tests and
// other callers may also construct one directly, in which case Build still
// validates it.
type Config struct {
	// Sizes holds one positive entry per dimension, length D >= 1.
	Sizes []int

	// Bandwidth, Latency, Penalty are parallel to Sizes. A nil slice means
	// "use the default for every dimension" (1, 1, 0 respectively).
	Bandwidth []int
	Latency   []int
	Penalty   []int

	// Debug is informational only; it has no effect on the built network.
	Debug bool
}

// Network is a built UniTorus: the shared Network aggregate plus the
// coordinate algebra and per-dimension attributes the builder fixed.
type Network struct {
	*topology.Network

	sizes     []int
	bandwidth []int
	latency   []int
	penalty   []int

	// strides[d] = product of sizes[0..d) : the mixed-radix weight of
	// dimension d in the node-id encoding.
	strides []int
}

// NumDims returns the number of dimensions the torus was built with.
func (n *Network) NumDims() int { return len(n.sizes) }

// DimSize returns the size of dimension d.
func (n *Network) DimSize(d int) int { return n.sizes[d] }

// DimBandwidth returns the bandwidth attribute of dimension d.
func (n *Network) DimBandwidth(d int) int { return n.bandwidth[d] }

// DimLatency returns the latency attribute of dimension d.
func (n *Network) DimLatency(d int) int { return n.latency[d] }

// DimPenalty returns the penalty attribute of dimension d.
func (n *Network) DimPenalty(d int) int { return n.penalty[d] }

// Capacity returns the sum of the per-dimension bandwidths. Per-node
// bandwidth cancels against network size in the underlying ratio, so this
// is exactly Sigma_d bandwidth[d], independent of the torus's size.
func (n *Network) Capacity() int {
	total := 0
	for _, b := range n.bandwidth {
		total += b
	}

	return total
}

// NodeToCoords decodes a node id into its per-dimension coordinates,
// least-significant dimension first: coord[d] = (id / prod_{i<d} sizes[i])
// mod sizes[d].
func (n *Network) NodeToCoords(node int) []int {
	coords := make([]int, len(n.sizes))
	for d, stride := range n.strides {
		coords[d] = (node / stride) % n.sizes[d]
	}

	return coords
}

// CoordsToNode is the inverse of NodeToCoords.
func (n *Network) CoordsToNode(coords []int) int {
	node := 0
	for d, c := range coords {
		node += c * n.strides[d]
	}

	return node
}

// channel returns the channel id for the positive wrap link of dimension d
// out of node.
func channel(node, dims, d int) int {
	return node*dims + d
}

// Build constructs a UniTorus network from cfg using alloc to obtain the
// channel inventory. It panics with a *BadConfig (see validate) if cfg is
// malformed, since construction never returns a partial network.
func Build(cfg Config, alloc topology.ChannelAllocator) *Network {
	cfg = withDefaults(cfg)
	validate(cfg)

	dims := len(cfg.Sizes)
	size := 1
	for _, s := range cfg.Sizes {
		size *= s
	}

	strides := make([]int, dims)
	stride := 1
	for d := 0; d < dims; d++ {
		strides[d] = stride
		stride *= cfg.Sizes[d]
	}

	channels := dims * size

	n := &Network{
		sizes:     append([]int(nil), cfg.Sizes...),
		bandwidth: cfg.Bandwidth,
		latency:   cfg.Latency,
		penalty:   cfg.Penalty,
		strides:   strides,
	}

	inv := alloc.Allocate(channels, size)
	n.Network = &topology.Network{
		Routers:   make([]*routers.Router, size),
		Inventory: inv,
	}

	for node := 0; node < size; node++ {
		r := routers.New(node)
		r.SetMetadata(routers.UniTorusMetadata{
			Coords: n.NodeToCoords(node),
			Sizes:  n.sizes,
		})
		n.Routers[node] = r
	}

	for node := 0; node < size; node++ {
		coords := n.NodeToCoords(node)

		for d := 0; d < dims; d++ {
			nextCoords := append([]int(nil), coords...)
			nextCoords[d] = (nextCoords[d] + 1) % cfg.Sizes[d]
			next := n.CoordsToNode(nextCoords)

			ch := channel(node, dims, d)
			flit := inv.Channels[ch]
			credit := inv.CreditChannels[ch]
			flit.Src, flit.Dst = node, next
			credit.Src, credit.Dst = next, node

			n.Routers[node].AddOutputChannel(flit, credit)
			n.Routers[next].AddInputChannel(flit, credit)

			flit.SetLatency(cfg.Latency[d])
			credit.SetLatency(cfg.Latency[d])
		}
	}

	for node := 0; node < size; node++ {
		n.Routers[node].AddInputChannel(inv.Injection[node], inv.InjectionCredit[node])
		n.Routers[node].AddOutputChannel(inv.Ejection[node], inv.EjectionCredit[node])
		inv.Injection[node].SetLatency(1)
		inv.InjectionCredit[node].SetLatency(1)
		inv.Ejection[node].SetLatency(1)
		inv.EjectionCredit[node].SetLatency(1)
	}

	legacy.SetDimensionHints(dims, cfg.Sizes[0], cfg.Sizes)

	n.CheckChannelCoverage()

	return n
}

func withDefaults(cfg Config) Config {
	dims := len(cfg.Sizes)

	if cfg.Bandwidth == nil {
		cfg.Bandwidth = fillDefault(dims, 1)
	}
	if cfg.Latency == nil {
		cfg.Latency = fillDefault(dims, 1)
	}
	if cfg.Penalty == nil {
		cfg.Penalty = fillDefault(dims, 0)
	}

	return cfg
}

func fillDefault(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// BadConfig is the error type Build panics with when cfg fails validation.
// It is distinct from (and does not depend on) noc/config's BadConfigError
// so this package has no import-cycle risk with the config-ingest layer;
// noc/config does not call Build, so a BadConfig reaches the caller of
// Build as is.
type BadConfig struct {
	Reason string
}

func (e *BadConfig) Error() string {
	return "bad unitorus config: " + e.Reason
}

func validate(cfg Config) {
	dims := len(cfg.Sizes)
	if dims == 0 {
		panic(&BadConfig{Reason: "dim_sizes must have at least one dimension"})
	}

	for d, s := range cfg.Sizes {
		if s <= 0 {
			panic(&BadConfig{Reason: fmt.Sprintf("dim_sizes[%d] = %d, must be positive", d, s)})
		}
	}

	requirePositive(dims, cfg.Bandwidth, "dim_bandwidth")
	requirePositive(dims, cfg.Latency, "dim_latency")
	requireNonNegative(dims, cfg.Penalty, "dim_penalty")
}

func requirePositive(dims int, values []int, name string) {
	if len(values) != dims {
		panic(&BadConfig{Reason: fmt.Sprintf("%s has %d values, want %d", name, len(values), dims)})
	}
	for i, v := range values {
		if v <= 0 {
			panic(&BadConfig{Reason: fmt.Sprintf("%s[%d] = %d, must be positive", name, i, v)})
		}
	}
}

func requireNonNegative(dims int, values []int, name string) {
	if len(values) != dims {
		panic(&BadConfig{Reason: fmt.Sprintf("%s has %d values, want %d", name, len(values), dims)})
	}
	for i, v := range values {
		if v < 0 {
			panic(&BadConfig{Reason: fmt.Sprintf("%s[%d] = %d, must be non-negative", name, i, v)})
		}
	}
}
