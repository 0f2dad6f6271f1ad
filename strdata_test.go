package arenabridge

import (
	"errors"
	"testing"

	bridgeerrors "github.com/wippyai/arena-bridge/errors"
)

func TestStrData_String(t *testing.T) {
	b, err := StrData("héllo")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "héllo" {
		t.Fatalf("got %q", b)
	}

	b, err = StrData("")
	if err != nil || b != nil {
		t.Fatalf("empty string: got (%v, %v)", b, err)
	}
}

func TestStrData_BytesZeroCopy(t *testing.T) {
	in := []byte("raw\x00bytes")
	out, err := StrData(in)
	if err != nil {
		t.Fatal(err)
	}
	if &out[0] != &in[0] {
		t.Fatal("byte view was copied")
	}
}

func TestStrData_Unsupported(t *testing.T) {
	for _, v := range []any{42, 3.14, nil, []rune("x")} {
		_, err := StrData(v)
		if err == nil {
			t.Fatalf("expected error for %T", v)
		}
		var be *bridgeerrors.Error
		if !errors.As(err, &be) || be.Kind != bridgeerrors.KindUnsupported {
			t.Fatalf("expected unsupported-type error for %T, got %v", v, err)
		}
	}
}
