// Package memzero provides best-effort wiping of key material and plaintext
// passwords held in byte slices. It cannot reach copies made elsewhere, such
// as immutable strings or buffers already handed to other code.
package memzero
