package arenabridge

import (
	"testing"
	"unsafe"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/arena-bridge/arena"
)

func TestState_CloseClean(t *testing.T) {
	st := NewState()
	if err := st.Close(); err != nil {
		t.Fatal(err)
	}
	if !st.Closed() {
		t.Fatal("state not marked closed")
	}
	if st.Leaked() != 0 {
		t.Fatalf("clean close reported %d leaked wrappers", st.Leaked())
	}
	if err := st.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestState_CloseReportsLeaks(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	st := NewState(WithLogger(zap.New(core)))
	aref := NewArenaRef()
	defer aref.Unref()

	rec := arena.Allocate[testRecord](aref.Arena())
	w, err := wrapRecord(st, aref, rec)
	if err != nil {
		t.Fatal(err)
	}

	st.Close()
	if st.Leaked() != 1 {
		t.Fatalf("Leaked() = %d, want 1", st.Leaked())
	}
	if logs.FilterMessage("arenabridge: state closed with live wrappers").Len() != 1 {
		t.Fatal("leak warning not logged")
	}

	// Late release after teardown must still deregister cleanly.
	w.Unref()
	if st.Cache().Len() != 0 {
		t.Fatal("late release did not deregister")
	}
}

func TestState_DebugLogsCacheEvents(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	st := NewState(WithLogger(zap.New(core)))
	defer st.Close()
	aref := NewArenaRef()
	defer aref.Unref()

	rec := arena.Allocate[testRecord](aref.Arena())
	w, err := wrapRecord(st, aref, rec)
	if err != nil {
		t.Fatal(err)
	}
	w.Unref()

	if logs.FilterMessage("arenabridge: wrapper registered").Len() != 1 {
		t.Fatal("registration not logged")
	}
	if logs.FilterMessage("arenabridge: wrapper deregistered").Len() != 1 {
		t.Fatal("deregistration not logged")
	}
}

func TestKeyOf(t *testing.T) {
	a := arena.New()
	defer a.Free()

	r1 := arena.Allocate[testRecord](a)
	r2 := arena.Allocate[testRecord](a)
	if KeyOf(unsafe.Pointer(r1)) == KeyOf(unsafe.Pointer(r2)) {
		t.Fatal("distinct records share a key")
	}
	if KeyOf(unsafe.Pointer(r1)) != KeyOf(unsafe.Pointer(r1)) {
		t.Fatal("key not stable")
	}
}
