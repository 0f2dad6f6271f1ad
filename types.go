package arenabridge

import (
	"unsafe"

	"github.com/wippyai/arena-bridge/objcache"
)

// Key identifies a native record by its memory address.
type Key = objcache.Key

// Object is the host-side surface of a reference-counted wrapper.
type Object = objcache.Object

// KeyOf returns the cache key for a record pointer.
func KeyOf(p unsafe.Pointer) Key {
	return objcache.KeyOf(p)
}
