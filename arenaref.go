package arenabridge

import (
	"github.com/wippyai/arena-bridge/arena"
)

// ArenaRef is the host-visible owner of one native arena. Exactly one
// ArenaRef represents a given arena; every wrapper that exposes memory
// allocated from it holds a counted reference to the ArenaRef. When the
// last reference is dropped the arena is freed, cascading to every record
// allocated from it. There is no separate free operation.
type ArenaRef struct {
	Refs
	a *arena.Arena
}

// NewArenaRef allocates a fresh arena and the ArenaRef owning it.
func NewArenaRef() *ArenaRef {
	return WrapArena(arena.New())
}

// WrapArena adopts an existing arena handle. The ArenaRef owns it
// exclusively from this point; the caller must not Free it directly.
func WrapArena(a *arena.Arena) *ArenaRef {
	r := &ArenaRef{a: a}
	r.InitRefs(r.releaseArena)
	return r
}

func (r *ArenaRef) releaseArena() {
	r.a.Free()
}

// Arena returns the underlying arena handle for allocation. The handle is
// valid only while the caller holds a reference to r.
func (r *ArenaRef) Arena() *arena.Arena {
	return r.a
}

// Fuse joins r's arena with other's into one lifetime group, so memory
// from either stays valid while any wrapper holds either side alive.
func (r *ArenaRef) Fuse(other *ArenaRef) {
	r.a.Fuse(other.a)
}
