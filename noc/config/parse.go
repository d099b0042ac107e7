package config

import (
	"strconv"
	"strings"
)

// parseIntStream tokenizes value under the permissive list grammar the
// config-ingest contract defines: '{', '}', '[', ']', and whitespace all
// act as separators; commas separate scalar fields within a separator-
// delimited run. Trailing commas are tolerated. The result is the flat
// stream of integers found, in order; callers regroup it per schema.
func parseIntStream(key, value string) []int {
	replacer := strings.NewReplacer("{", " ", "}", " ", "[", " ", "]", " ")
	cleaned := replacer.Replace(value)

	var nums []int

	for _, field := range strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}) {
		n, err := strconv.Atoi(field)
		if err != nil {
			panic(&BadConfigError{
				Key: key, Value: value,
				Reason: "expected a base-10 integer list, found token " + strconv.Quote(field),
			})
		}

		nums = append(nums, n)
	}

	return nums
}

// RoutingFunctionName returns the value of the routing_function key, which
// every topology config requires: the name it's registered under in
// noc/routing's registry.
func RoutingFunctionName(m map[string]string) (string, bool) {
	v, _, ok := lookup(m, "routing_function")
	return v, ok
}

// lookup returns the first non-empty value among the given keys, trying
// each in order, and the key it was found under. It returns "", "", false
// if none of the keys are present or all are empty.
func lookup(m map[string]string, keys ...string) (value, foundKey string, ok bool) {
	for _, k := range keys {
		if v, present := m[k]; present && v != "" {
			return v, k, true
		}
	}

	return "", "", false
}
