package arenabridge

import (
	"fmt"
	"unsafe"

	"github.com/wippyai/arena-bridge/errors"
)

// StrData returns a read-only borrowed view of the raw bytes of a host
// text or bytes value, without copying: UTF-8 for a string, the backing
// array itself for a []byte. Any other type yields an unsupported-type
// error.
//
// The view is valid only as long as the input value; callers must not
// retain it beyond that, and must not write through it when the input was
// a string.
func StrData(v any) ([]byte, error) {
	switch s := v.(type) {
	case string:
		if len(s) == 0 {
			return nil, nil
		}
		return unsafe.Slice(unsafe.StringData(s), len(s)), nil
	case []byte:
		return s, nil
	default:
		return nil, errors.Unsupported(errors.PhaseExtract, fmt.Sprintf("%T", v))
	}
}
