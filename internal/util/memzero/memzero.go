package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	fill(b, 0)
}

// Erase overwrites a consumed plaintext password with the '0' character.
// Earlier copies of the bytes are not reached.
func Erase(b []byte) {
	fill(b, '0')
}

func fill(b []byte, v byte) {
	if len(b) == 0 {
		return
	}
	pattern := make([]byte, len(b))
	for i := range pattern {
		pattern[i] = v
	}
	subtle.ConstantTimeCopy(1, b, pattern)
	runtime.KeepAlive(&b)
}
