// Package crypto wraps the one authenticated cipher used by the account
// file: AES-256-GCM-SIV with 32-byte keys and 12-byte nonces.
//
// # Contents
//
//   - Seal / Open over fixed-size Key and Nonce values
//   - HashPassword and DeriveSecondaryKey (SHA-256 based)
//   - RandomNonce for the per-database field nonce
//   - FieldCipher for sealing individual account passwords
//   - Fingerprint, a short hash of an encrypted file
//
// # Notes
//
// Open never says why it failed. A wrong password and a tampered file both
// produce fault.ErrAuthentication. Callers should Wipe keys once done.
package crypto
