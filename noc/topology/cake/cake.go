// Package cake builds the Cake topology: stacked 2D unidirectional tori
// ("layers") connected by sparse vertical bidirectional "elevator" links at
// configured (x,y) coordinates, with a per-node preferred-elevator mapping.
package cake

import (
	"fmt"

	"github.com/sarchlab/torusnet/noc/legacy"
	"github.com/sarchlab/torusnet/noc/routers"
	"github.com/sarchlab/torusnet/noc/topology"
)

// Coord is an (x,y) coordinate pair, used both for elevator declarations
// and for elevator-mapping targets.
type Coord struct {
	X, Y int
}

// Config is the validated, typed configuration a Cake is built from.
// noc/config produces one of these from a map[string]string; tests and
// other callers may also construct one directly, in which case Build still
// validates it.
type Config struct {
	X, Y, Z int

	// Elevators lists the (x,y) coordinates that host vertical links, in
	// declaration order. Duplicates are allowed; Build collapses them, so
	// elevator index 0 is the first distinct pair declared.
	Elevators []Coord

	// Mapping is a Y-by-X table; Mapping[y][x] names the preferred
	// elevator coordinate a packet at (x,y,*) steers toward when it must
	// change layer. A nil Mapping means "use the identity default": see
	// DESIGN.md for why the default is not required to name a declared
	// elevator.
	Mapping [][]Coord
}

// Network is a built Cake: the shared Network aggregate plus the sizes and
// elevator bookkeeping the builder fixed.
type Network struct {
	*topology.Network

	x, y, z int

	elevators []Coord
	elevIndex map[Coord]int
	mapping   [][]Coord
}

// X, Y, Z return the per-dimension sizes the network was built with.
func (n *Network) X() int { return n.x }
func (n *Network) Y() int { return n.y }
func (n *Network) Z() int { return n.z }

// Elevators returns the declared elevator coordinates, in declaration
// order.
func (n *Network) Elevators() []Coord {
	return append([]Coord(nil), n.elevators...)
}

// IsElevator reports whether (x,y) hosts vertical links.
func (n *Network) IsElevator(x, y int) bool {
	_, ok := n.elevIndex[Coord{x, y}]
	return ok
}

// PreferredElevator returns the elevator mapping entry for (x,y).
func (n *Network) PreferredElevator(x, y int) Coord {
	return n.mapping[y][x]
}

// NodeID flattens (x,y,z) to a node id using Cake's fixed major order:
// id = z*(X*Y) + y*X + x.
func (n *Network) NodeID(x, y, z int) int {
	return z*(n.x*n.y) + y*n.x + x
}

// Coords is the inverse of NodeID.
func (n *Network) Coords(id int) (x, y, z int) {
	plane := n.x * n.y
	z = id / plane
	rem := id % plane
	y = rem / n.x
	x = rem % n.x

	return x, y, z
}

func inplaneChannel(node int) int {
	return node * 2
}

func upChannel(inplaneChannels, elevIdx, layers, z int) int {
	return inplaneChannels + (elevIdx*layers+z)*2
}

func downChannel(inplaneChannels, elevIdx, layers, z int) int {
	return inplaneChannels + (elevIdx*layers+z)*2 + 1
}

// Build constructs a Cake network from cfg using alloc to obtain the
// channel inventory. It panics with a *BadConfig or *OutOfRange (see
// validate) if cfg is malformed.
func Build(cfg Config, alloc topology.ChannelAllocator) *Network {
	validate(cfg)
	cfg.Elevators = dedupeElevators(cfg.Elevators)

	size := cfg.X * cfg.Y * cfg.Z
	inplaneChannels := 2 * size
	verticalChannels := 2 * len(cfg.Elevators) * cfg.Z
	channels := inplaneChannels + verticalChannels

	elevIndex := make(map[Coord]int, len(cfg.Elevators))
	for i, e := range cfg.Elevators {
		elevIndex[e] = i
	}

	mapping := cfg.Mapping
	if mapping == nil {
		mapping = identityMapping(cfg.X, cfg.Y)
	}

	n := &Network{
		x: cfg.X, y: cfg.Y, z: cfg.Z,
		elevators: append([]Coord(nil), cfg.Elevators...),
		elevIndex: elevIndex,
		mapping:   mapping,
	}

	inv := alloc.Allocate(channels, size)
	n.Network = &topology.Network{
		Routers:   make([]*routers.Router, size),
		Inventory: inv,
	}

	for id := 0; id < size; id++ {
		x, y, z := n.Coords(id)
		r := routers.New(id)

		pref := mapping[y][x]
		md := routers.CakeMetadata{
			X: x, Y: y, Z: z,
			SizeX: cfg.X, SizeY: cfg.Y, SizeZ: cfg.Z,
			ElevX: pref.X, ElevY: pref.Y,
			ZUp: -1, ZDown: -1, Eject: -1,
		}
		r.SetMetadata(md)
		n.Routers[id] = r
	}

	n.wireXPlus(inv)
	n.wireYPlus(inv)
	n.wireVertical(inv, inplaneChannels)
	n.wireInjectionEjection(inv)

	legacy.SetDimensionHints(2, cfg.X, []int{cfg.X, cfg.Y})

	n.CheckChannelCoverage()
	n.checkPortInvariants()

	return n
}

func (n *Network) wireXPlus(inv *topology.Inventory) {
	for z := 0; z < n.z; z++ {
		for y := 0; y < n.y; y++ {
			for x := 0; x < n.x; x++ {
				from := n.NodeID(x, y, z)
				to := n.NodeID((x+1)%n.x, y, z)
				ch := inplaneChannel(from)

				flit, credit := inv.Channels[ch], inv.CreditChannels[ch]
				flit.Src, flit.Dst = from, to
				credit.Src, credit.Dst = to, from

				outIdx := n.Routers[from].OutputIndexCount()
				n.Routers[from].AddOutputChannel(flit, credit)
				n.setCakePort(from, func(m *routers.CakeMetadata) { m.XPlus = outIdx })
				n.Routers[to].AddInputChannel(flit, credit)

				flit.SetLatency(1)
				credit.SetLatency(1)
			}
		}
	}
}

func (n *Network) wireYPlus(inv *topology.Inventory) {
	for z := 0; z < n.z; z++ {
		for y := 0; y < n.y; y++ {
			for x := 0; x < n.x; x++ {
				from := n.NodeID(x, y, z)
				to := n.NodeID(x, (y+1)%n.y, z)
				ch := inplaneChannel(from) + 1

				flit, credit := inv.Channels[ch], inv.CreditChannels[ch]
				flit.Src, flit.Dst = from, to
				credit.Src, credit.Dst = to, from

				outIdx := n.Routers[from].OutputIndexCount()
				n.Routers[from].AddOutputChannel(flit, credit)
				n.setCakePort(from, func(m *routers.CakeMetadata) { m.YPlus = outIdx })
				n.Routers[to].AddInputChannel(flit, credit)

				flit.SetLatency(1)
				credit.SetLatency(1)
			}
		}
	}
}

func (n *Network) wireVertical(inv *topology.Inventory, inplaneChannels int) {
	for ei, e := range n.elevators {
		for z := 0; z < n.z; z++ {
			from := n.NodeID(e.X, e.Y, z)

			toUp := n.NodeID(e.X, e.Y, (z+1)%n.z)
			chUp := upChannel(inplaneChannels, ei, n.z, z)
			flitUp, creditUp := inv.Channels[chUp], inv.CreditChannels[chUp]
			flitUp.Src, flitUp.Dst = from, toUp
			creditUp.Src, creditUp.Dst = toUp, from

			outIdxUp := n.Routers[from].OutputIndexCount()
			n.Routers[from].AddOutputChannel(flitUp, creditUp)
			n.setCakePort(from, func(m *routers.CakeMetadata) { m.ZUp = outIdxUp })
			n.Routers[toUp].AddInputChannel(flitUp, creditUp)
			flitUp.SetLatency(1)
			creditUp.SetLatency(1)

			toDown := n.NodeID(e.X, e.Y, (z-1+n.z)%n.z)
			chDown := downChannel(inplaneChannels, ei, n.z, z)
			flitDown, creditDown := inv.Channels[chDown], inv.CreditChannels[chDown]
			flitDown.Src, flitDown.Dst = from, toDown
			creditDown.Src, creditDown.Dst = toDown, from

			outIdxDown := n.Routers[from].OutputIndexCount()
			n.Routers[from].AddOutputChannel(flitDown, creditDown)
			n.setCakePort(from, func(m *routers.CakeMetadata) { m.ZDown = outIdxDown })
			n.Routers[toDown].AddInputChannel(flitDown, creditDown)
			flitDown.SetLatency(1)
			creditDown.SetLatency(1)
		}
	}
}

func (n *Network) wireInjectionEjection(inv *topology.Inventory) {
	for id := 0; id < len(n.Routers); id++ {
		n.Routers[id].AddInputChannel(inv.Injection[id], inv.InjectionCredit[id])

		ejectIdx := n.Routers[id].OutputIndexCount()
		n.Routers[id].AddOutputChannel(inv.Ejection[id], inv.EjectionCredit[id])
		n.setCakePort(id, func(m *routers.CakeMetadata) { m.Eject = ejectIdx })

		inv.Injection[id].SetLatency(1)
		inv.InjectionCredit[id].SetLatency(1)
		inv.Ejection[id].SetLatency(1)
		inv.EjectionCredit[id].SetLatency(1)
	}
}

func (n *Network) setCakePort(id int, set func(*routers.CakeMetadata)) {
	md := n.Routers[id].Metadata().(routers.CakeMetadata)
	set(&md)
	n.Routers[id].SetMetadata(md)
}

// dedupeElevators collapses duplicate coordinates, keeping the index of
// the first declaration of each distinct pair.
func dedupeElevators(elevators []Coord) []Coord {
	out := make([]Coord, 0, len(elevators))
	seen := make(map[Coord]bool, len(elevators))

	for _, e := range elevators {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}

	return out
}

func identityMapping(x, y int) [][]Coord {
	m := make([][]Coord, y)
	for ry := 0; ry < y; ry++ {
		m[ry] = make([]Coord, x)
		for rx := 0; rx < x; rx++ {
			m[ry][rx] = Coord{rx, ry}
		}
	}

	return m
}

// checkPortInvariants verifies the §4.3 ordering invariant: elevator
// routers register xp < yp < zup < zdn < eject; non-elevator routers
// register xp < yp < eject with zup = zdn = -1.
func (n *Network) checkPortInvariants() {
	for _, r := range n.Routers {
		md := r.Metadata().(routers.CakeMetadata)

		if md.IsElevator() {
			if !(md.XPlus == 0 && md.YPlus == 1 && md.ZUp == 2 && md.ZDown == 3 && md.Eject == 4) {
				panic(&topology.InternalAssertionError{
					Msg: fmt.Sprintf("router %d: elevator port order violated: %+v", r.ID(), md),
				})
			}
			continue
		}

		if !(md.XPlus == 0 && md.YPlus == 1 && md.Eject == 2 && md.ZUp == -1 && md.ZDown == -1) {
			panic(&topology.InternalAssertionError{
				Msg: fmt.Sprintf("router %d: non-elevator port order violated: %+v", r.ID(), md),
			})
		}
	}
}

// BadConfig is the error type Build panics with when cfg fails validation.
type BadConfig struct {
	Reason string
}

func (e *BadConfig) Error() string {
	return "bad cake config: " + e.Reason
}

// OutOfRange is the error type Build panics with when cfg names a
// coordinate outside its dimension extent.
type OutOfRange struct {
	Reason string
}

func (e *OutOfRange) Error() string {
	return "cake config out of range: " + e.Reason
}

func validate(cfg Config) {
	if cfg.X <= 0 || cfg.Y <= 0 || cfg.Z <= 0 {
		panic(&BadConfig{Reason: fmt.Sprintf("sizes must be positive, got x=%d y=%d z=%d", cfg.X, cfg.Y, cfg.Z)})
	}

	for _, e := range cfg.Elevators {
		if e.X < 0 || e.X >= cfg.X || e.Y < 0 || e.Y >= cfg.Y {
			panic(&OutOfRange{Reason: fmt.Sprintf("elevator coordinate (%d,%d) outside [0,%d)x[0,%d)", e.X, e.Y, cfg.X, cfg.Y)})
		}
	}

	if cfg.Mapping == nil {
		return
	}

	if len(cfg.Mapping) != cfg.Y {
		panic(&BadConfig{Reason: fmt.Sprintf("elevator_mapping_coords has %d rows, want %d", len(cfg.Mapping), cfg.Y)})
	}

	for ry, row := range cfg.Mapping {
		if len(row) != cfg.X {
			panic(&BadConfig{Reason: fmt.Sprintf("elevator_mapping_coords row %d has %d entries, want %d", ry, len(row), cfg.X)})
		}
		for rx, c := range row {
			if c.X < 0 || c.X >= cfg.X || c.Y < 0 || c.Y >= cfg.Y {
				panic(&OutOfRange{Reason: fmt.Sprintf("elevator_mapping_coords[%d][%d] = (%d,%d) outside [0,%d)x[0,%d)", ry, rx, c.X, c.Y, cfg.X, cfg.Y)})
			}
		}
	}
}
