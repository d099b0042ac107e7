package routers

// Metadata is the tagged variant of topological metadata a router carries.
// Exactly one concrete type is attached to a given Router: NoMetadata for a
// router that belongs to no topology-specific scheme, UniTorusMetadata, or
// CakeMetadata. The routing function dispatches on the concrete type.
type Metadata interface {
	isMetadata()
}

// NoMetadata marks a router with no topology-specific metadata attached.
type NoMetadata struct{}

func (NoMetadata) isMetadata() {}

// UniTorusMetadata records a UniTorus router's position in the coordinate
// space it was built from, and the sizes of that space, so a routing
// function can decode a destination node id without consulting any global
// state.
type UniTorusMetadata struct {
	// Coords holds one entry per dimension, least-significant dimension
	// first, matching the builder's node<->coords bijection.
	Coords []int

	// Sizes holds the size of each dimension, parallel to Coords.
	Sizes []int
}

func (UniTorusMetadata) isMetadata() {}

// CakeMetadata records a Cake router's coordinates, the layer sizes it was
// built with, its preferred elevator target, and the output-port index
// registered for each cardinal direction. A port field is -1 when that
// direction does not apply to this router.
type CakeMetadata struct {
	X, Y, Z          int
	SizeX, SizeY, SizeZ int
	ElevX, ElevY     int

	// XPlus, YPlus, ZUp, ZDown, Eject are the output-port indices recorded
	// during wiring. ZUp and ZDown are -1 for a non-elevator router.
	XPlus, YPlus, ZUp, ZDown, Eject int
}

func (CakeMetadata) isMetadata() {}

// IsElevator reports whether this router hosts vertical links.
func (m CakeMetadata) IsElevator() bool {
	return m.ZUp >= 0 && m.ZDown >= 0
}
