// Package nonce converts the file nonce counter to and from the 12-character
// base-94 string stored at the start of every account file.
package nonce
