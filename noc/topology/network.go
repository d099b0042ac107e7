// Package topology holds the Network aggregate shared by the UniTorus and
// Cake builders, and the ChannelAllocator collaborator its sizing hands off
// to.
package topology

import (
	"fmt"

	"github.com/sarchlab/torusnet/noc/messaging"
	"github.com/sarchlab/torusnet/noc/routers"
)

// InternalAssertionError reports a post-wiring invariant violation. Unlike
// BadConfigError and OutOfRangeError, it indicates a bug in the builder,
// not a user error.
type InternalAssertionError struct {
	Msg string
}

func (e *InternalAssertionError) Error() string {
	return "internal assertion failed: " + e.Msg
}

// Inventory is the heterogeneous channel set a ChannelAllocator hands back:
// the network-wide directed flit/credit channels, plus the per-node
// injection and ejection channel pairs.
type Inventory struct {
	Channels       []*messaging.FlitChannel
	CreditChannels []*messaging.CreditChannel

	Injection       []*messaging.FlitChannel
	InjectionCredit []*messaging.CreditChannel
	Ejection        []*messaging.FlitChannel
	EjectionCredit  []*messaging.CreditChannel
}

// ChannelAllocator builds the directed channel inventory for a network of
// the given size. Real deployments back this with the flit/credit
// primitives the discrete-event scheduler owns; those primitives are an
// external collaborator from this module's point of view. DefaultAllocator
// returns a minimal allocator that builds bare messaging types, sufficient
// for everything this module needs: channel identity, endpoints, and
// latency bookkeeping.
type ChannelAllocator interface {
	Allocate(numChannels, numNodes int) *Inventory
}

type defaultAllocator struct{}

// DefaultAllocator returns the in-memory ChannelAllocator that builds bare
// messaging channel records.
func DefaultAllocator() ChannelAllocator {
	return defaultAllocator{}
}

func (defaultAllocator) Allocate(numChannels, numNodes int) *Inventory {
	inv := &Inventory{
		Channels:       make([]*messaging.FlitChannel, numChannels),
		CreditChannels: make([]*messaging.CreditChannel, numChannels),

		Injection:       make([]*messaging.FlitChannel, numNodes),
		InjectionCredit: make([]*messaging.CreditChannel, numNodes),
		Ejection:        make([]*messaging.FlitChannel, numNodes),
		EjectionCredit:  make([]*messaging.CreditChannel, numNodes),
	}

	for c := 0; c < numChannels; c++ {
		inv.Channels[c] = &messaging.FlitChannel{ID: c}
		inv.CreditChannels[c] = &messaging.CreditChannel{ID: c}
	}

	for n := 0; n < numNodes; n++ {
		inv.Injection[n] = &messaging.FlitChannel{ID: n, Dst: n}
		inv.InjectionCredit[n] = &messaging.CreditChannel{ID: n, Dst: n}
		inv.Ejection[n] = &messaging.FlitChannel{ID: n, Src: n}
		inv.EjectionCredit[n] = &messaging.CreditChannel{ID: n, Src: n}
	}

	return inv
}

// Network is the aggregate every topology builder returns: the router set
// indexed by node id, and the channel inventory those routers were wired
// from. Its wiring is fixed once a builder returns it; the only later change
// this package makes is SeedRandomFaults setting advisory faulty-output bits.
type Network struct {
	Routers   []*routers.Router
	Inventory *Inventory
}

// Router returns the router for the given node id.
func (n *Network) Router(id int) *routers.Router {
	return n.Routers[id]
}

// NumNodes returns the number of routers in the network.
func (n *Network) NumNodes() int {
	return len(n.Routers)
}

// NumChannels returns the number of network-wide directed channels (not
// counting injection/ejection pairs).
func (n *Network) NumChannels() int {
	return len(n.Inventory.Channels)
}

// CheckChannelCoverage verifies the channel-coverage invariant: every
// network-wide channel was registered as an output on exactly one router
// and an input on exactly one router. It panics with an
// InternalAssertionError if not, since a violation indicates a builder bug.
func (n *Network) CheckChannelCoverage() {
	// Counted by channel identity, not ID: injection/ejection channels reuse
	// the IDs 0..nodes-1 of the network-wide channels.
	outputCount := make(map[*messaging.FlitChannel]int, len(n.Inventory.Channels))
	inputCount := make(map[*messaging.FlitChannel]int, len(n.Inventory.Channels))

	for _, r := range n.Routers {
		for i := 0; i < r.NumOutputs(); i++ {
			outputCount[r.OutputChannel(i)]++
		}
		for i := 0; i < r.NumInputs(); i++ {
			inputCount[r.InputChannel(i)]++
		}
	}

	for _, ch := range n.Inventory.Channels {
		if outputCount[ch] != 1 {
			panic(&InternalAssertionError{
				Msg: fmt.Sprintf("channel %d is an output on %d routers, want exactly 1", ch.ID, outputCount[ch]),
			})
		}
		if inputCount[ch] != 1 {
			panic(&InternalAssertionError{
				Msg: fmt.Sprintf("channel %d is an input on %d routers, want exactly 1", ch.ID, inputCount[ch]),
			})
		}
	}
}
