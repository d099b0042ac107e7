// Package messaging holds the directed link records that a topology wires
// routers together with.
//
// A FlitChannel and its CreditChannel are kept deliberately inert: no queue,
// no send/receive behavior, no timing simulation. Flit movement and credit
// accounting are owned by the router collaborator and the discrete-event
// scheduler, both external to this module.
package messaging

import "fmt"

// FlitChannel is a directed link carrying flits from one router's output
// port to another router's input port.
type FlitChannel struct {
	ID int

	// Src and Dst are the node ids of the channel's two endpoints. Within
	// this package only String reads them.
	Src, Dst int

	// Latency is the number of cycles a flit spends in flight on this
	// channel. Set once by the topology builder.
	Latency int
}

// SetLatency sets the channel's flight latency.
func (c *FlitChannel) SetLatency(l int) {
	c.Latency = l
}

// String returns a human-readable label for debugging and log output.
func (c *FlitChannel) String() string {
	return fmt.Sprintf("flit-chan(%d: %d->%d, lat=%d)", c.ID, c.Src, c.Dst, c.Latency)
}

// CreditChannel mirrors a FlitChannel in the reverse direction, carrying
// buffer-availability credits back to the sender. It is always paired
// one-to-one with a FlitChannel of the same ID.
type CreditChannel struct {
	ID int

	Src, Dst int

	Latency int
}

// SetLatency sets the credit channel's flight latency.
func (c *CreditChannel) SetLatency(l int) {
	c.Latency = l
}

// String returns a human-readable label for debugging and log output.
func (c *CreditChannel) String() string {
	return fmt.Sprintf("credit-chan(%d: %d->%d, lat=%d)", c.ID, c.Src, c.Dst, c.Latency)
}
