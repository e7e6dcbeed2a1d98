// Package fault - error instances
//
// Provides single error instances grouped into classes so callers can
// compare with errors.Is or test the class with the IsErrX predicates:
//
//   - IOError: the file could not be read or written
//   - FormatError: the decrypted payload is truncated or malformed
//   - CryptoError: authentication failed (wrong password or tampering)
//   - InvariantError: a graph mutation was rejected, nothing changed
//   - StateError: the database is not open
package fault
