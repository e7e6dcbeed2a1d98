package types

// SecretCipher seals and opens individual account secrets.
type SecretCipher interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(ciphertext []byte) ([]byte, error)
}
