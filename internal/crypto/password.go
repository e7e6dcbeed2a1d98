package crypto

import (
	"crypto/sha256"
	"strconv"
	"time"
)

// HashPassword derives the file key from the main password.
func HashPassword(password []byte) Key {
	return sha256.Sum256(password)
}

// DeriveSecondaryKey derives the per-database field key from the decimal
// Unix time in seconds followed by the main password.
func DeriveSecondaryKey(now time.Time, password []byte) Key {
	h := sha256.New()
	h.Write([]byte(strconv.FormatInt(now.Unix(), 10)))
	h.Write(password)

	var k Key
	h.Sum(k[:0])
	return k
}
