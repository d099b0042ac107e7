package config

import "github.com/sarchlab/torusnet/noc/topology/unitorus"

// ParseUniTorus reads a UniTorus Config out of a raw key/value map, using
// the tokenizer grammar parseIntStream defines. dim_sizes is required,
// fixing the dimensionality; dim_bandwidth, dim_latency, and dim_penalty
// are optional but, if present, must each carry exactly one value per
// dimension. unitorus.Build still applies the topology's own semantic
// validation (positivity, etc.) once this returns.
func ParseUniTorus(m map[string]string) unitorus.Config {
	sizesStr, _, ok := lookup(m, "dim_sizes")
	if !ok {
		panic(&BadConfigError{Key: "dim_sizes", Reason: "required key is missing"})
	}

	sizes := parseIntStream("dim_sizes", sizesStr)
	dims := len(sizes)

	cfg := unitorus.Config{Sizes: sizes}

	if v, _, ok := lookup(m, "dim_bandwidth"); ok {
		cfg.Bandwidth = parseDimList("dim_bandwidth", v, dims)
	}
	if v, _, ok := lookup(m, "dim_latency"); ok {
		cfg.Latency = parseDimList("dim_latency", v, dims)
	}
	if v, _, ok := lookup(m, "dim_penalty"); ok {
		cfg.Penalty = parseDimList("dim_penalty", v, dims)
	}

	if v, _, ok := lookup(m, "unitorus_debug"); ok {
		flag := parseDimList("unitorus_debug", v, 1)
		cfg.Debug = flag[0] != 0
	}

	return cfg
}

// parseDimList parses value as an integer list and checks it carries
// exactly dims entries.
func parseDimList(key, value string, dims int) []int {
	list := parseIntStream(key, value)
	if len(list) != dims {
		panic(&BadConfigError{
			Key: key, Value: value,
			Reason: "must list exactly one value per dimension",
		})
	}

	return list
}
