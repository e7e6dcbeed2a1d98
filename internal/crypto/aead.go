package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"unsafe"

	siv "github.com/secure-io/siv-go"

	"acctvault/internal/fault"
	"acctvault/internal/util/memzero"
)

const (
	KeySize   = 32
	NonceSize = 12
	// Overhead is the authentication tag appended by Seal.
	Overhead = 16

	// the amd64 assembly in siv-go faults on input that is not 16-byte aligned
	alignment = 16
)

// Key is an AES-256-GCM-SIV key.
type Key [KeySize]byte

// Wipe zeroes the key in place.
func (k *Key) Wipe() { memzero.Zero(k[:]) }

// Nonce is a 96-bit AEAD nonce.
type Nonce [NonceSize]byte

// RandomNonce returns a nonce read from crypto/rand.
func RandomNonce() (Nonce, error) {
	var n Nonce
	if _, err := rand.Read(n[:]); err != nil {
		return Nonce{}, fmt.Errorf("read random nonce: %w", err)
	}
	return n, nil
}

func newAEAD(key *Key) (cipher.AEAD, error) {
	aead, err := siv.NewGCM(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fault.ErrKeyLength, err)
	}
	return aead, nil
}

// aligned returns a zeroed slice of length and capacity n whose first byte
// sits on a 16-byte boundary.
func aligned(n int) []byte {
	buf := make([]byte, n+alignment-1)
	off := (alignment - int(uintptr(unsafe.Pointer(unsafe.SliceData(buf)))%alignment)) % alignment
	return buf[off : off+n : off+n]
}

// alignedCopy copies b into a fresh aligned buffer.
func alignedCopy(b []byte) []byte {
	out := aligned(len(b))
	copy(out, b)
	return out
}

// Seal encrypts and authenticates plaintext. The tag is appended to the
// returned ciphertext. plaintext may start at any offset.
func Seal(key Key, nonce Nonce, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(&key)
	if err != nil {
		return nil, err
	}
	in := alignedCopy(plaintext)
	defer memzero.Zero(in)

	out := aligned(len(in) + Overhead)
	return aead.Seal(out[:0], nonce[:], in, nil), nil
}

// Open authenticates and decrypts ciphertext, which may start at any offset
// (the file body sits 12 bytes in). Any failure, wrong key or
// modified bytes alike, is reported as fault.ErrAuthentication.
func Open(key Key, nonce Nonce, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < Overhead {
		return nil, fault.ErrAuthentication
	}
	aead, err := newAEAD(&key)
	if err != nil {
		return nil, err
	}
	in := alignedCopy(ciphertext)
	out := aligned(len(in) - Overhead)
	pt, err := aead.Open(out[:0], nonce[:], in, nil)
	if err != nil {
		memzero.Zero(out)
		return nil, fault.ErrAuthentication
	}
	return pt, nil
}
