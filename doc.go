// Package arenabridge bridges a reference-counted host object model and
// bulk-allocated arena memory owned by a native data layer.
//
// Native records (for example, parsed protocol message descriptors) live in
// arenas: bump-allocated regions that are freed as a single unit. Host-side
// code sees each record through a wrapper object. This package keeps the two
// lifetime models consistent: every record has at most one live wrapper,
// wrappers hold their owning arena alive for as long as they exist, and the
// identity cache never points at reclaimed memory.
//
// # Architecture Overview
//
// The library is organized into a few packages with distinct responsibilities:
//
//	arena-bridge/        Root package: State, wrapper protocol, ArenaRef, Refs
//	├── arena/           Bump allocator with fused lifetime groups
//	├── objcache/        Object identity cache (weak entries, observers)
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Create a State, allocate records, and wrap them:
//
//	st := arenabridge.NewState()
//	defer st.Close()
//
//	aref := arenabridge.NewArenaRef()
//	rec := arena.Allocate[Record](aref.Arena())
//
//	w, err := arenabridge.Wrap(st, arenabridge.KeyOf(unsafe.Pointer(rec)),
//		func() (*RecordWrapper, error) {
//			w := &RecordWrapper{rec: rec}
//			w.InitWrapper(st, arenabridge.KeyOf(unsafe.Pointer(rec)), aref)
//			return w, nil
//		})
//
// Repeated Wrap calls for the same record return the identical wrapper with
// its reference count bumped; the wrapper's last Unref removes its cache
// entry and drops its hold on the arena.
//
// # Reference Counting
//
// The host object model's reference counting is explicit. Wrappers embed
// Refs; construction leaves the count at one, Ref and Unref adjust it, and
// the count reaching zero runs the wrapper's release hook. The identity
// cache holds entries weakly: only Get takes a reference on behalf of the
// caller.
//
// # Thread Safety
//
// Internal tables are guarded, but a State and the wrappers created through
// it are NOT safe for concurrent use; confine them to a single goroutine or
// synchronize access externally. The construction protocol is deliberately
// not atomic so that building one wrapper may re-enter it for other records.
//
// # Memory Model
//
// Arena memory is released only when the last wrapper holding a counted
// reference to its ArenaRef (or fuse group) is released. There is no
// separate free operation. After release, record pointers into the arena
// are invalid by contract.
package arenabridge
