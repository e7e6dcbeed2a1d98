package nonce

import (
	"fmt"
	"math/bits"

	"acctvault/internal/fault"
)

const (
	// Width is the length of every encoded nonce, equal to the AEAD nonce size.
	Width = 12

	base = 94
)

// Alphabet maps digit values 0..93 to printable ASCII symbols.
const Alphabet = "0123456789" +
	"abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"`~!@#$%^&*()-_+=[{]}|\\;:'\",<.>/?"

var digits = func() [256]int8 {
	var d [256]int8
	for i := range d {
		d[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		d[Alphabet[i]] = int8(i)
	}
	return d
}()

// Encode renders n in base 94, least-significant symbol first, right-padded
// with the zero symbol to Width characters. Every uint64 fits: 94^12 > 2^64.
func Encode(n uint64) string {
	out := make([]byte, 0, Width)
	for {
		out = append(out, Alphabet[n%base])
		n /= base
		if n == 0 {
			break
		}
	}
	for len(out) < Width {
		out = append(out, Alphabet[0])
	}
	return string(out)
}

// Decode is the inverse of Encode.
func Decode(s string) (uint64, error) {
	if len(s) != Width {
		return 0, fmt.Errorf("%w (got %d)", fault.ErrNonceLength, len(s))
	}

	// trailing zero symbols are padding
	end := Width
	for end > 1 && s[end-1] == Alphabet[0] {
		end--
	}

	var n uint64
	for i := end - 1; i >= 0; i-- {
		d := digits[s[i]]
		if d < 0 {
			return 0, fmt.Errorf("%w: %q at %d", fault.ErrNonceSymbol, s[i], i)
		}
		hi, lo := bits.Mul64(n, base)
		if hi != 0 {
			return 0, fault.ErrNonceOverflow
		}
		sum, carry := bits.Add64(lo, uint64(d), 0)
		if carry != 0 {
			return 0, fault.ErrNonceOverflow
		}
		n = sum
	}
	return n, nil
}

// Bytes returns the encoded nonce for n as AEAD nonce bytes.
func Bytes(n uint64) [Width]byte {
	var b [Width]byte
	copy(b[:], Encode(n))
	return b
}
