package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short hex fingerprint of an encrypted account file,
// for telling copies apart without opening them.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(file []byte) string {
	sum := sha256.Sum256(file)
	return hex.EncodeToString(sum[:10])
}
