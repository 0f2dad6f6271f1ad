package arenabridge

import (
	"fmt"
	"sync/atomic"
)

// Refs is an explicit reference count with a release hook. It re-expresses
// the host object model's counting: construction leaves the count at one,
// and the transition to zero runs the release hook exactly once.
//
// Embed Refs in a wrapper type and call InitRefs during construction.
type Refs struct {
	n       atomic.Int64
	release func()
}

// InitRefs sets the count to one and installs the release hook.
func (r *Refs) InitRefs(release func()) {
	r.n.Store(1)
	r.release = release
}

// Ref increments the reference count. Reviving a released object is an
// invariant violation.
func (r *Refs) Ref() {
	if r.n.Add(1) <= 1 {
		panic("arenabridge: Ref on released object")
	}
}

// Unref decrements the reference count, running the release hook when the
// count reaches zero. Unref below zero is an invariant violation.
func (r *Refs) Unref() {
	n := r.n.Add(-1)
	switch {
	case n == 0:
		if r.release != nil {
			r.release()
		}
	case n < 0:
		panic(fmt.Sprintf("arenabridge: Unref below zero (count %d)", n))
	}
}

// RefCount returns the current count. Intended for tests and diagnostics.
func (r *Refs) RefCount() int64 {
	return r.n.Load()
}
