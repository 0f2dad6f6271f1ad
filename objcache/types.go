package objcache

import "unsafe"

// Key identifies a native record by its memory address. Addresses are
// stable for the lifetime of the record's owning arena group, so a Key is
// a valid identity exactly as long as some wrapper holds that group alive.
type Key uintptr

// KeyOf returns the cache key for a record pointer.
func KeyOf(p unsafe.Pointer) Key {
	return Key(uintptr(p))
}

// Object is the host-side surface of a reference-counted wrapper.
// Ref and Unref adjust the wrapper's reference count; the count reaching
// zero triggers the wrapper's release hook.
type Object interface {
	Ref()
	Unref()
}

// EventType classifies cache lifecycle events.
type EventType uint8

const (
	EventAdded EventType = iota
	EventRemoved
)

// Event describes a single cache mutation.
type Event struct {
	Object Object
	Key    Key
	Type   EventType
}

// Observer receives notifications about cache mutations.
type Observer interface {
	OnCacheEvent(Event)
}
