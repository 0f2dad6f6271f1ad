// Package objcache implements the object identity cache: a table mapping
// native record addresses to their host wrapper objects.
//
// The cache guarantees that every native record has at most one live
// wrapper. Entries are weak with respect to reference counting: Add does
// not Ref the wrapper, and the wrapper's release hook must Delete its
// entry before the wrapper is reclaimed. Get, by contrast, always Refs the
// wrapper before returning it, so callers receive an owned reference and
// never a borrow.
//
// Violating the identity invariant (duplicate Add, Delete of a missing
// entry) is a programmer error and panics. A broken identity invariant
// cannot be recovered from: continuing would hand out duplicate wrappers
// or dereference reclaimed ones.
//
// The map itself is guarded by a lock, but the get-or-create protocol
// built on top of it is not atomic; see the root package for the
// single-goroutine contract.
package objcache
