// Package routing holds the process-wide routing-function registry and the
// two dimension-ordered routing functions the topology builders assume a
// downstream routing engine will look up by name.
package routing

import (
	"reflect"
	"sync"
)

// Function decides the outgoing port index for a flit at router metadata R
// bound for destination node d. It reads only R and d, never global state.
type Function func(metadata any, dest int) int

var (
	mu       sync.Mutex
	registry = map[string]Function{}
)

// Register adds fn under name. Registration is idempotent within a process
// lifetime: registering the same name twice with functions that are not
// identical is a programming error and panics; re-registering the exact
// same value is a no-op.
func Register(name string, fn Function) {
	mu.Lock()
	defer mu.Unlock()

	if existing, ok := registry[name]; ok {
		if sameFunction(existing, fn) {
			return
		}
		panic(&DuplicateRegistrationError{Name: name})
	}

	registry[name] = fn
}

// Lookup returns the function registered under name, if any.
func Lookup(name string) (Function, bool) {
	mu.Lock()
	defer mu.Unlock()

	fn, ok := registry[name]
	return fn, ok
}

// sameFunction reports whether a and b are the same compiled function,
// using their code pointers. Two closures over different state compare
// unequal even if they were built from the same function literal; that is
// the conservative direction to err in here.
func sameFunction(a, b Function) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// DuplicateRegistrationError reports an attempt to register two distinct
// functions under the same name.
type DuplicateRegistrationError struct {
	Name string
}

func (e *DuplicateRegistrationError) Error() string {
	return "routing function " + e.Name + " already registered with a different function"
}
