// Package routers defines the Router metadata surface: the fixed record
// every router carries once a topology has finished wiring it.
//
// A Router here is a construction-time bookkeeping object: it records which
// channels were registered as its inputs and outputs, in the order the
// builder registered them, and it carries the topology-specific Metadata a
// routing function later reads. It does not model buffering, arbitration,
// or switch allocation — those belong to the router's internal pipeline,
// which this module treats as an external collaborator.
package routers

import (
	"fmt"

	"github.com/sarchlab/torusnet/noc/messaging"
)

// Router is one node's router, addressed by its node id.
type Router struct {
	id int

	inputs  []port
	outputs []port

	faultyOutputs map[int]bool

	metadata Metadata
}

type port struct {
	flit   *messaging.FlitChannel
	credit *messaging.CreditChannel
}

// New creates a router for the given node id with no metadata attached and
// no ports registered yet. Ports are appended by AddInputChannel and
// AddOutputChannel as the topology builder wires the network.
func New(id int) *Router {
	return &Router{
		id:            id,
		faultyOutputs: make(map[int]bool),
		metadata:      NoMetadata{},
	}
}

// ID returns the router's node id.
func (r *Router) ID() int {
	return r.id
}

// AddInputChannel registers a channel pair as the router's next input and
// returns the index it was assigned.
func (r *Router) AddInputChannel(flit *messaging.FlitChannel, credit *messaging.CreditChannel) int {
	r.channelMustBeGiven(flit, credit)

	r.inputs = append(r.inputs, port{flit: flit, credit: credit})

	return len(r.inputs) - 1
}

// AddOutputChannel registers a channel pair as the router's next output and
// returns the index it was assigned. Callers that need to record this index
// (the recorded output-port indices in Cake's router metadata) must capture
// OutputIndexCount before calling AddOutputChannel.
func (r *Router) AddOutputChannel(flit *messaging.FlitChannel, credit *messaging.CreditChannel) int {
	r.channelMustBeGiven(flit, credit)

	r.outputs = append(r.outputs, port{flit: flit, credit: credit})

	return len(r.outputs) - 1
}

func (r *Router) channelMustBeGiven(flit *messaging.FlitChannel, credit *messaging.CreditChannel) {
	if flit == nil || credit == nil {
		panic(fmt.Sprintf("router %d: both a flit channel and its credit channel are required", r.id))
	}
}

// OutputIndexCount returns the number of output channels registered so far.
// The topology builder captures this immediately before adding an output
// channel whose index it needs to remember.
func (r *Router) OutputIndexCount() int {
	return len(r.outputs)
}

// NumInputs returns the number of input channels registered so far.
func (r *Router) NumInputs() int {
	return len(r.inputs)
}

// NumOutputs returns the number of output channels registered so far.
func (r *Router) NumOutputs() int {
	return len(r.outputs)
}

// InputChannel returns the flit channel registered at the given input
// index.
func (r *Router) InputChannel(i int) *messaging.FlitChannel {
	return r.inputs[i].flit
}

// InputCreditChannel returns the credit channel registered at the given
// input index.
func (r *Router) InputCreditChannel(i int) *messaging.CreditChannel {
	return r.inputs[i].credit
}

// OutputChannel returns the flit channel registered at the given output
// index.
func (r *Router) OutputChannel(i int) *messaging.FlitChannel {
	return r.outputs[i].flit
}

// OutputCreditChannel returns the credit channel registered at the given
// output index.
func (r *Router) OutputCreditChannel(i int) *messaging.CreditChannel {
	return r.outputs[i].credit
}

// SetMetadata attaches topology-specific metadata to the router, replacing
// any set earlier. Called by the builder during construction.
func (r *Router) SetMetadata(m Metadata) {
	r.metadata = m
}

// Metadata returns the router's topology-specific metadata.
func (r *Router) Metadata() Metadata {
	return r.metadata
}

// MarkFaultyOutput sets or clears the advisory faulty bit on an output
// port. The core never reads this bit itself; it exists so a router
// collaborator or scheduler can exclude the port from allocation.
func (r *Router) MarkFaultyOutput(output int, faulty bool) {
	if faulty {
		r.faultyOutputs[output] = true
		return
	}

	delete(r.faultyOutputs, output)
}

// IsFaultyOutput reports whether the given output port is marked faulty.
func (r *Router) IsFaultyOutput(output int) bool {
	return r.faultyOutputs[output]
}
