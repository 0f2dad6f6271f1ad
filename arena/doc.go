// Package arena implements a bump allocator with fused lifetime groups.
//
// An Arena hands out address-stable allocations from a chain of fixed
// blocks and releases everything it allocated in one operation. Arenas can
// be fused into a lifetime group: the group's memory is released only once
// every member has been freed, so a record allocated in one arena may
// safely reference memory in any fused sibling.
//
//	a := arena.New()
//	rec := arena.Allocate[Record](a)
//	buf := arena.MakeSlice[byte](a, 0, 128)
//	...
//	a.Free() // releases rec, buf, and everything else at once
//
// Allocations are zeroed and 8-byte aligned. Records stored in an arena
// must not hold Go pointers to memory outside their own fuse group; the
// garbage collector does not scan arena blocks.
//
// An Arena is not safe for concurrent use.
package arena
