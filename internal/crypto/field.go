package crypto

import "acctvault/internal/util/memzero"

// FieldCipher seals individual account passwords under the database's
// secondary key. Every field shares the same fixed nonce; GCM-SIV leaks only
// equality of identical plaintexts under reuse.
type FieldCipher struct {
	key   Key
	nonce Nonce
}

func NewFieldCipher(key Key, nonce Nonce) *FieldCipher {
	return &FieldCipher{key: key, nonce: nonce}
}

func (c *FieldCipher) Seal(plaintext []byte) ([]byte, error) {
	return Seal(c.key, c.nonce, plaintext)
}

func (c *FieldCipher) Open(ciphertext []byte) ([]byte, error) {
	return Open(c.key, c.nonce, ciphertext)
}

// Wipe zeroes the key and nonce held by c.
func (c *FieldCipher) Wipe() {
	c.key.Wipe()
	memzero.Zero(c.nonce[:])
}
