package objcache

import (
	"fmt"
	"sync"
)

// Cache maps native record addresses to live host wrappers.
type Cache struct {
	entries   map[Key]Object
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[Key]Object, 64),
	}
}

// Add inserts key → obj without taking a reference. The caller must hold a
// live reference to obj, and obj's release hook must Delete the entry.
// A duplicate key means two live wrappers exist for one record; that is an
// identity-invariant violation and panics.
func (c *Cache) Add(key Key, obj Object) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		panic("objcache: Add on closed cache")
	}
	if _, ok := c.entries[key]; ok {
		c.mu.Unlock()
		panic(fmt.Sprintf("objcache: duplicate entry for key %#x", uintptr(key)))
	}
	c.entries[key] = obj
	c.mu.Unlock()

	c.notify(Event{Type: EventAdded, Key: key, Object: obj})
}

// Delete removes the entry for key. A missing entry means the cache has
// already lost track of a live wrapper; that is an identity-invariant
// violation and panics.
//
// Delete remains valid after Close so wrappers released during host
// teardown can still deregister.
func (c *Cache) Delete(key Key) {
	c.mu.Lock()
	obj, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		panic(fmt.Sprintf("objcache: Delete of missing key %#x", uintptr(key)))
	}
	delete(c.entries, key)
	c.mu.Unlock()

	c.notify(Event{Type: EventRemoved, Key: key, Object: obj})
}

// Get looks up key. On a hit it Refs the wrapper before returning, so the
// caller owns the returned reference. On a miss it returns (nil, false).
func (c *Cache) Get(key Key) (Object, bool) {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		panic("objcache: Get on closed cache")
	}
	obj, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	obj.Ref()
	return obj, true
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Each calls fn for every entry until fn returns false. Entries are
// borrowed for the duration of the call; fn must Ref anything it retains.
func (c *Cache) Each(fn func(Key, Object) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for k, o := range c.entries {
		if !fn(k, o) {
			return
		}
	}
}

// Subscribe adds an observer for cache mutations.
func (c *Cache) Subscribe(o Observer) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	c.observers = append(c.observers, o)
}

// Unsubscribe removes an observer.
func (c *Cache) Unsubscribe(o Observer) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	for i, obs := range c.observers {
		if obs == o {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return
		}
	}
}

// Close stops accepting Add and Get and returns the number of entries
// still registered. Remaining entries are deliberately not invalidated:
// their owners still hold counted references, and each entry is removed
// when its wrapper's release hook runs.
func (c *Cache) Close() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0
	}
	c.closed = true
	return len(c.entries)
}

func (c *Cache) notify(e Event) {
	c.obsMu.RLock()
	defer c.obsMu.RUnlock()
	for _, o := range c.observers {
		o.OnCacheEvent(e)
	}
}
