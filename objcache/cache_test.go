package objcache

import (
	"testing"
)

// fakeObject counts Ref/Unref calls without any release behavior.
type fakeObject struct {
	refs int
}

func (o *fakeObject) Ref()   { o.refs++ }
func (o *fakeObject) Unref() { o.refs-- }

type testObserver struct {
	events []Event
}

func (o *testObserver) OnCacheEvent(e Event) {
	o.events = append(o.events, e)
}

func TestCache_AddGetDelete(t *testing.T) {
	c := New()
	obj := &fakeObject{refs: 1}

	c.Add(1000, obj)
	if obj.refs != 1 {
		t.Fatalf("Add must not take a reference, refs=%d", obj.refs)
	}

	got, ok := c.Get(1000)
	if !ok {
		t.Fatal("Get missed a registered key")
	}
	if got != obj {
		t.Fatalf("Get returned %v, want %v", got, obj)
	}
	if obj.refs != 2 {
		t.Fatalf("Get must take exactly one reference, refs=%d", obj.refs)
	}

	c.Delete(1000)
	if _, ok := c.Get(1000); ok {
		t.Fatal("Get hit after Delete")
	}
}

func TestCache_GetMiss(t *testing.T) {
	c := New()
	obj, ok := c.Get(42)
	if ok || obj != nil {
		t.Fatalf("expected miss, got (%v, %v)", obj, ok)
	}
}

func TestCache_DuplicateAddPanics(t *testing.T) {
	c := New()
	c.Add(7, &fakeObject{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate Add")
		}
	}()
	c.Add(7, &fakeObject{})
}

func TestCache_DeleteMissPanics(t *testing.T) {
	c := New()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Delete of missing key")
		}
	}()
	c.Delete(7)
}

func TestCache_Observer(t *testing.T) {
	c := New()
	obs := &testObserver{}
	c.Subscribe(obs)

	obj := &fakeObject{}
	c.Add(1, obj)
	c.Delete(1)

	if len(obs.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventAdded || obs.events[0].Key != 1 || obs.events[0].Object != obj {
		t.Fatalf("bad add event: %+v", obs.events[0])
	}
	if obs.events[1].Type != EventRemoved || obs.events[1].Key != 1 {
		t.Fatalf("bad remove event: %+v", obs.events[1])
	}

	c.Unsubscribe(obs)
	c.Add(2, obj)
	if len(obs.events) != 2 {
		t.Fatal("observer notified after Unsubscribe")
	}
}

func TestCache_LenEach(t *testing.T) {
	c := New()
	c.Add(1, &fakeObject{})
	c.Add(2, &fakeObject{})
	c.Add(3, &fakeObject{})

	if c.Len() != 3 {
		t.Fatalf("Len=%d, want 3", c.Len())
	}

	seen := map[Key]bool{}
	c.Each(func(k Key, o Object) bool {
		seen[k] = true
		return true
	})
	if len(seen) != 3 {
		t.Fatalf("Each visited %d entries, want 3", len(seen))
	}

	n := 0
	c.Each(func(Key, Object) bool {
		n++
		return false
	})
	if n != 1 {
		t.Fatalf("Each ignored early stop, visited %d", n)
	}
}

func TestCache_Close(t *testing.T) {
	c := New()
	c.Add(1, &fakeObject{})
	c.Add(2, &fakeObject{})

	if leaked := c.Close(); leaked != 2 {
		t.Fatalf("Close reported %d leaked entries, want 2", leaked)
	}
	if leaked := c.Close(); leaked != 0 {
		t.Fatalf("second Close reported %d, want 0", leaked)
	}

	// Late deregistration must still work during teardown.
	c.Delete(1)
	c.Delete(2)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Get after Close")
		}
	}()
	c.Get(1)
}
