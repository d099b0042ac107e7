package routing

import "github.com/sarchlab/torusnet/noc/routers"

func init() {
	Register("dor_cake", dorCake)
}

// dorCake implements the dimension-ordered policy of a Cake routing
// function: eject at the destination; otherwise steer X then Y toward the
// preferred elevator to change layer, or continue X then Y toward the
// destination within the layer. Because every in-plane link is the
// positive wrap, "steer toward coordinate c" only ever means "send X+ (or
// Y+) unless already at c".
func dorCake(metadata any, dest int) int {
	md := metadata.(routers.CakeMetadata)
	dx, dy, dz := decodeCakeCoords(dest, md.SizeX, md.SizeY)

	if dx == md.X && dy == md.Y && dz == md.Z {
		return md.Eject
	}

	if dz != md.Z {
		if md.X != md.ElevX {
			return md.XPlus
		}
		if md.Y != md.ElevY {
			return md.YPlus
		}

		return chooseVertical(md, dz)
	}

	if dx != md.X {
		return md.XPlus
	}

	return md.YPlus
}

// chooseVertical picks Z+ or Z- by the shorter modular distance from the
// router's layer to dz, ties broken to Z+. It is called once the router
// sits at its preferred elevator coordinate. The builder does not check that
// mapping entries name declared elevators, so if that coordinate hosts no
// vertical links, both port slots are -1 and so is the result.
func chooseVertical(md routers.CakeMetadata, dz int) int {
	if md.SizeZ <= 1 {
		return md.ZUp
	}

	forward := ((dz-md.Z)%md.SizeZ + md.SizeZ) % md.SizeZ
	backward := md.SizeZ - forward

	if backward < forward {
		return md.ZDown
	}

	return md.ZUp
}

// decodeCakeCoords is the inverse of the Cake builder's NodeID flattening,
// z*(X*Y) + y*X + x, duplicated here rather than shared so the two
// topologies' flatten routines stay independent per their differing
// mixed-radix order.
func decodeCakeCoords(node, sizeX, sizeY int) (x, y, z int) {
	plane := sizeX * sizeY
	z = node / plane
	rem := node % plane
	y = rem / sizeX
	x = rem % sizeX

	return x, y, z
}
