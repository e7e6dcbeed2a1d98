// Package store implements the encrypted single-file account database.
//
// # File layout
//
//	[0..12)   file nonce: the save counter in base 94 (package nonce)
//	[12..end) AES-256-GCM-SIV ciphertext and tag under SHA-256(main password)
//
// The sealed payload holds the secondary key and nonce followed by every
// account slot, tombstones included, in the codec encoding. Account
// passwords inside it are sealed a second time under the secondary key.
//
// Save writes through a temporary file and a rename, so a crash never
// leaves a half-written database behind.
package store
