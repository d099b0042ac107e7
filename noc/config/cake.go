package config

import "github.com/sarchlab/torusnet/noc/topology/cake"

// ParseCake reads a Cake Config out of a raw key/value map. dim_sizes must
// carry 2 or 3 values (X, Y, optional Z defaulting to 1). elevator_coords
// (alias elevatorcoords) is a flat list of (x,y) pairs; elevator_mapping_
// coords (alias elevatormapping) is 2*X*Y integers, row-major Y rows of X
// pairs. Both are optional: missing elevator_coords means no elevators,
// and missing elevator_mapping_coords means cake.Build falls back to its
// identity default. cake.Build still applies the topology's own semantic
// validation once this returns.
func ParseCake(m map[string]string) cake.Config {
	sizesStr, _, ok := lookup(m, "dim_sizes")
	if !ok {
		panic(&BadConfigError{Key: "dim_sizes", Reason: "required key is missing"})
	}

	sizes := parseIntStream("dim_sizes", sizesStr)
	if len(sizes) < 2 || len(sizes) > 3 {
		panic(&BadConfigError{
			Key: "dim_sizes", Value: sizesStr,
			Reason: "cake requires 2 or 3 values (X, Y, optional Z)",
		})
	}

	cfg := cake.Config{X: sizes[0], Y: sizes[1], Z: 1}
	if len(sizes) == 3 {
		cfg.Z = sizes[2]
	}

	if v, _, ok := lookup(m, "elevator_coords", "elevatorcoords"); ok {
		cfg.Elevators = parseCoordList("elevator_coords", v)
	}

	if v, _, ok := lookup(m, "elevator_mapping_coords", "elevatormapping"); ok {
		cfg.Mapping = parseMapping("elevator_mapping_coords", v, cfg.X, cfg.Y)
	}

	return cfg
}

// parseCoordList parses value as a flat list of integers and regroups it
// into (x,y) pairs, in order.
func parseCoordList(key, value string) []cake.Coord {
	flat := parseIntStream(key, value)
	if len(flat)%2 != 0 {
		panic(&BadConfigError{
			Key: key, Value: value,
			Reason: "must list an even number of integers (x,y pairs)",
		})
	}

	coords := make([]cake.Coord, len(flat)/2)
	for i := range coords {
		coords[i] = cake.Coord{X: flat[2*i], Y: flat[2*i+1]}
	}

	return coords
}

// parseMapping parses value as 2*x*y integers and regroups them into a
// y-by-x table of (x,y) pairs, row-major.
func parseMapping(key, value string, x, y int) [][]cake.Coord {
	flat := parseIntStream(key, value)
	want := 2 * x * y
	if len(flat) != want {
		panic(&BadConfigError{
			Key: key, Value: value,
			Reason: "must list exactly 2*X*Y integers",
		})
	}

	mapping := make([][]cake.Coord, y)
	i := 0
	for ry := 0; ry < y; ry++ {
		mapping[ry] = make([]cake.Coord, x)
		for rx := 0; rx < x; rx++ {
			mapping[ry][rx] = cake.Coord{X: flat[i], Y: flat[i+1]}
			i += 2
		}
	}

	return mapping
}
