// Package vault applies the main password policy and runs units of work
// against an account file.
//
// Create refuses to overwrite an existing file and saves the empty database
// straight away so the file exists on return. View and Update open the file,
// hand the store to a callback and always close it; Update saves only when
// the callback succeeds.
package vault
