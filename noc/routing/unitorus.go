package routing

import "github.com/sarchlab/torusnet/noc/routers"

func init() {
	Register("dim_order_unitorus_unitorus", dimOrderUniTorus)
}

// dimOrderUniTorus implements the UniTorus port-ordering invariant: output
// port d is the positive wrap link of dimension d, output port D is
// ejection. It decodes dest into per-dimension coordinates using the
// router's own metadata, the same bijection UniTorusMetadata.Coords was
// built from, then picks the first dimension where the router's own
// coordinate differs.
func dimOrderUniTorus(metadata any, dest int) int {
	md := metadata.(routers.UniTorusMetadata)
	destCoords := decodeCoords(dest, md.Sizes)

	for d, c := range md.Coords {
		if c != destCoords[d] {
			return d
		}
	}

	return len(md.Coords)
}

// decodeCoords mirrors unitorus.Network.NodeToCoords: least-significant
// dimension first.
func decodeCoords(node int, sizes []int) []int {
	coords := make([]int, len(sizes))
	stride := 1

	for d, size := range sizes {
		coords[d] = (node / stride) % size
		stride *= size
	}

	return coords
}
