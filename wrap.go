package arenabridge

import (
	"fmt"

	"github.com/wippyai/arena-bridge/errors"
)

// GetOrCreate returns the host wrapper for the record identified by key,
// consulting the identity cache first. On a hit the cached wrapper is
// returned with its reference count bumped. On a miss, build constructs
// the wrapper; it must return a fully initialized object with a reference
// count of one (InitWrapper does this). The new wrapper is registered
// only after build succeeds, so a failed construction never leaves a cache
// entry behind.
//
// build may re-enter GetOrCreate for other keys, for example to wrap a
// containing record first. Re-entering for the same key is a caller bug
// and trips the duplicate-insert invariant.
func GetOrCreate(st *State, key Key, build func() (Object, error)) (Object, error) {
	if obj, ok := st.Cache().Get(key); ok {
		return obj, nil
	}
	obj, err := build()
	if err != nil {
		return nil, errors.ConstructionFailed(uintptr(key), err)
	}
	st.Cache().Add(key, obj)
	return obj, nil
}

// Wrap is a typed convenience over GetOrCreate. A cached entry of a
// different dynamic type than T means two wrapper types claimed the same
// record, which breaks identity; that panics rather than erroring.
func Wrap[T Object](st *State, key Key, build func() (T, error)) (T, error) {
	var zero T
	obj, err := GetOrCreate(st, key, func() (Object, error) {
		w, err := build()
		if err != nil {
			return nil, err
		}
		return w, nil
	})
	if err != nil {
		return zero, err
	}
	w, ok := obj.(T)
	if !ok {
		panic(fmt.Sprintf("arenabridge: wrapper type confusion for key %#x: cached %T", uintptr(key), obj))
	}
	return w, nil
}

// Wrapper is the embeddable base for record wrapper types. It carries the
// record's cache key, a counted hold on the owning arena, and the
// reference count. Its release hook deregisters the cache entry and drops
// the arena hold, in that order.
type Wrapper struct {
	Refs
	st   *State
	aref *ArenaRef
	key  Key
}

// InitWrapper wires the base: it takes a reference on aref (which may be
// nil for records not backed by arena memory), records the key, and sets
// the reference count to one. Call it exactly once, before the wrapper is
// published anywhere the cache could see it.
func (w *Wrapper) InitWrapper(st *State, key Key, aref *ArenaRef) {
	w.st = st
	w.key = key
	w.aref = aref
	if aref != nil {
		aref.Ref()
	}
	w.InitRefs(w.releaseWrapper)
}

func (w *Wrapper) releaseWrapper() {
	w.st.Cache().Delete(w.key)
	if w.aref != nil {
		w.aref.Unref()
	}
}

// Key returns the record's cache key.
func (w *Wrapper) Key() Key {
	return w.key
}

// ArenaRef returns the wrapper's hold on the owning arena, or nil.
// The reference is borrowed; Ref it to retain it independently.
func (w *Wrapper) ArenaRef() *ArenaRef {
	return w.aref
}
