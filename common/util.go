package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// BytesEqual compares two slice of bytes by wrapping them into strings,
// slices of stored values are Buffers and can't be compared directly.
func BytesEqual(a []byte, b []byte) bool {
	return util.Equals(string(a), string(b))
}
