package arena

import (
	"unsafe"
)

const (
	alignment    = 8
	minBlockSize = 256
	maxBlockSize = 64 * 1024
)

// Arena is a bump allocator over a chain of fixed blocks.
// The zero value is not usable; call New.
type Arena struct {
	head      []byte   // current block; len is the bump offset, cap is fixed
	blocks    [][]byte // every block ever allocated, kept alive until group release
	nextBlock int
	space     uint64

	// fuse group bookkeeping. parent is nil on a group root; the root
	// tracks the group's members and how many are still unfreed.
	parent  *Arena
	members []*Arena
	live    int
	freed   bool
}

// New creates an empty arena. The first block is allocated lazily.
func New() *Arena {
	a := &Arena{nextBlock: minBlockSize, live: 1}
	a.members = []*Arena{a}
	return a
}

// Alloc returns a zeroed, 8-byte-aligned allocation of at least size bytes.
// The returned memory is address-stable until the arena's fuse group is
// released. Alloc panics if the arena has been freed.
func (a *Arena) Alloc(size uintptr) unsafe.Pointer {
	if a.freed {
		panic("arena: Alloc on freed arena")
	}
	n := int((size + alignment - 1) &^ (alignment - 1))
	if n == 0 {
		n = alignment
	}
	if cap(a.head)-len(a.head) < n {
		a.grow(n)
	}
	off := len(a.head)
	a.head = a.head[: off+n : cap(a.head)]
	a.space += uint64(n)
	return unsafe.Pointer(&a.head[off])
}

func (a *Arena) grow(n int) {
	size := a.nextBlock
	if size < n {
		size = n
	}
	if a.nextBlock < maxBlockSize {
		a.nextBlock *= 2
	}
	a.head = make([]byte, 0, size)
	a.blocks = append(a.blocks, a.head)
}

// Fuse joins the lifetime groups of a and b. Afterwards, neither group's
// memory is released until every arena in the combined group has been
// freed. Fusing an arena with itself or with a member of its own group is
// a no-op.
func (a *Arena) Fuse(b *Arena) {
	if a.freed || b.freed {
		panic("arena: Fuse on freed arena")
	}
	ra, rb := a.root(), b.root()
	if ra == rb {
		return
	}
	ra.live += rb.live
	ra.members = append(ra.members, rb.members...)
	rb.members = nil
	rb.parent = ra
	rb.live = 0
}

// Free marks the arena freed. Once every member of its fuse group has been
// freed, the whole group's memory is released in one step. Double free is
// an invariant violation.
func (a *Arena) Free() {
	if a.freed {
		panic("arena: double Free")
	}
	a.freed = true
	r := a.root()
	r.live--
	if r.live == 0 {
		for _, m := range r.members {
			m.head = nil
			m.blocks = nil
		}
	}
}

// Freed reports whether Free has been called on this arena.
func (a *Arena) Freed() bool {
	return a.freed
}

// Released reports whether the arena's fuse group has released its memory,
// invalidating every allocation made from any member.
func (a *Arena) Released() bool {
	return a.root().live == 0
}

// SpaceAllocated returns the total bytes allocated across the arena's fuse
// group. The count survives Free; it reflects what the group handed out,
// not what is currently valid.
func (a *Arena) SpaceAllocated() uint64 {
	var total uint64
	for _, m := range a.root().members {
		total += m.space
	}
	return total
}

func (a *Arena) root() *Arena {
	r := a
	for r.parent != nil {
		r = r.parent
	}
	// path compression
	for n := a; n != r; {
		next := n.parent
		n.parent = r
		n = next
	}
	return r
}

// Allocate returns a pointer to a zeroed T allocated in the arena.
// T must not contain Go pointers to memory outside the arena's fuse group.
func Allocate[T any](a *Arena) *T {
	var x T
	return (*T)(a.Alloc(unsafe.Sizeof(x)))
}

// MakeSlice returns a slice of T with the given length and capacity backed
// by arena memory. Appending beyond the capacity reallocates onto the Go
// heap and escapes the arena's lifetime; size the capacity up front.
func MakeSlice[T any](a *Arena, length, capacity int) []T {
	if capacity == 0 {
		return nil
	}
	var x T
	p := (*T)(a.Alloc(unsafe.Sizeof(x) * uintptr(capacity)))
	return unsafe.Slice(p, capacity)[:length]
}
