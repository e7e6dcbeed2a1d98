package types

import (
	"slices"
	"unicode/utf8"

	"acctvault/internal/fault"
	"acctvault/internal/util/memzero"
)

// Password is a stored account secret. Only the sealed form is persisted;
// the plaintext is cached after Decipher until Forget.
type Password struct {
	ciphered []byte
	plain    []byte
}

// NewSealedPassword wraps ciphertext read back from the account file.
func NewSealedPassword(ciphered []byte) *Password {
	return &Password{ciphered: slices.Clone(ciphered)}
}

// SealPassword seals plain with c. plain is left untouched.
func SealPassword(plain []byte, c SecretCipher) (*Password, error) {
	ct, err := c.Seal(plain)
	if err != nil {
		return nil, err
	}
	return &Password{ciphered: ct}, nil
}

// Ciphered returns a copy of the sealed bytes.
func (p *Password) Ciphered() []byte { return slices.Clone(p.ciphered) }

// Plain returns a copy of the cached plaintext, if deciphered.
func (p *Password) Plain() ([]byte, bool) {
	if p.plain == nil {
		return nil, false
	}
	return slices.Clone(p.plain), true
}

// Decipher opens the sealed bytes with c and caches the plaintext.
func (p *Password) Decipher(c SecretCipher) ([]byte, error) {
	if p.plain != nil {
		return slices.Clone(p.plain), nil
	}
	pt, err := c.Open(p.ciphered)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(pt) {
		memzero.Zero(pt)
		return nil, fault.ErrInvalidUTF8
	}
	p.plain = pt
	return slices.Clone(pt), nil
}

// Forget erases the cached plaintext.
func (p *Password) Forget() {
	memzero.Erase(p.plain)
	p.plain = nil
}
