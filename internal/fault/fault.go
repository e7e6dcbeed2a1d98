package fault

import (
	"errors"
	"fmt"
)

// error classes
type FormatError string
type CryptoError string
type InvariantError string
type StateError string

// Format errors indicate a corrupted or truncated payload.
var (
	ErrInconsistentGraph = FormatError("account graph is inconsistent")
	ErrInvalidFlag       = FormatError("invalid optional flag")
	ErrInvalidUTF8       = FormatError("string is not valid utf-8")
	ErrNonceLength       = FormatError("nonce must be exactly 12 characters")
	ErrNonceOverflow     = FormatError("nonce value overflows 64 bits")
	ErrNonceSymbol       = FormatError("nonce contains a symbol outside the alphabet")
	ErrTrailingBytes     = FormatError("trailing bytes after payload")
	ErrTruncated         = FormatError("truncated payload")
)

// Crypto errors. Wrong password and tampering are deliberately the same error.
var (
	ErrAuthentication = CryptoError("wrong password or corrupted file")
	ErrKeyLength      = CryptoError("key length is invalid")
)

// Invariant errors reject a graph mutation and leave the graph unchanged.
var (
	ErrAccountDeleted  = InvariantError("account has been deleted")
	ErrAccountNotFound = InvariantError("account does not exist")
	ErrHasDependents   = InvariantError("account has children or is referenced by another account")
	ErrNoPassword      = InvariantError("account has no password")
	ErrParentCycle     = InvariantError("parent would create a cycle")
	ErrSelfParent      = InvariantError("account cannot be its own parent")
	ErrSelfReference   = InvariantError("account cannot reference itself")
)

// State errors.
var (
	ErrClosed = StateError("database is closed")
	ErrExists = StateError("database file already exists")
)

func (e FormatError) Error() string    { return string(e) }
func (e CryptoError) Error() string    { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e StateError) Error() string     { return string(e) }

// IOError wraps a filesystem failure with the operation and path involved.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// WrapIO returns nil when err is nil.
func WrapIO(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// determine the class of an error
func IsErrFormat(e error) bool    { var t FormatError; return errors.As(e, &t) }
func IsErrCrypto(e error) bool    { var t CryptoError; return errors.As(e, &t) }
func IsErrInvariant(e error) bool { var t InvariantError; return errors.As(e, &t) }
func IsErrState(e error) bool     { var t StateError; return errors.As(e, &t) }
func IsErrIO(e error) bool        { var t *IOError; return errors.As(e, &t) }
