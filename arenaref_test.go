package arenabridge

import (
	"testing"
)

func TestArenaRef_FreesOnLastUnref(t *testing.T) {
	aref := NewArenaRef()
	a := aref.Arena()
	a.Alloc(32)

	aref.Ref()
	aref.Unref()
	if a.Released() {
		t.Fatal("arena released while a reference remains")
	}

	aref.Unref()
	if !a.Released() {
		t.Fatal("arena not released on last Unref")
	}
}

func TestArenaRef_FusedLifetime(t *testing.T) {
	r1 := NewArenaRef()
	r2 := NewArenaRef()
	a1, a2 := r1.Arena(), r2.Arena()

	r1.Fuse(r2)

	r1.Unref()
	if a1.Released() || a2.Released() {
		t.Fatal("fuse group released while one owner remains")
	}

	r2.Unref()
	if !a1.Released() || !a2.Released() {
		t.Fatal("fuse group not released after both owners dropped")
	}
}
