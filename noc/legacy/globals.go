// Package legacy holds the process-wide dimension hints kept only for
// compatibility with generic routing helpers written against the original
// simulator's globals. New routing functions should read a router's
// metadata instead of these; nothing in this module reads them back.
package legacy

import "sync"

var (
	mu         sync.Mutex
	dimCount   int
	leadingDim int
	dimSizes   []int
)

// SetDimensionHints records the dimension count, the size of the leading
// dimension, and a copy of the full dimension-size sequence. Called once by
// each topology builder at the end of construction.
func SetDimensionHints(n, k int, sizes []int) {
	mu.Lock()
	defer mu.Unlock()

	dimCount = n
	leadingDim = k
	dimSizes = append([]int(nil), sizes...)
}

// N returns the last-recorded dimension count (gN in the original).
func N() int {
	mu.Lock()
	defer mu.Unlock()

	return dimCount
}

// K returns the last-recorded leading dimension size (gK in the original).
func K() int {
	mu.Lock()
	defer mu.Unlock()

	return leadingDim
}

// DimSizes returns a copy of the last-recorded dimension-size sequence
// (gDimSizes in the original).
func DimSizes() []int {
	mu.Lock()
	defer mu.Unlock()

	return append([]int(nil), dimSizes...)
}
