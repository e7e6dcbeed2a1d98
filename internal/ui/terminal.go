package ui

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"acctvault/internal/util/memzero"
)

// ErrNotTerminal is returned when a password prompt has no terminal.
var ErrNotTerminal = errors.New("cannot read password: stdin is not a terminal")

// ReadPassword prompts on stderr and reads a line without echo.
func ReadPassword(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return pw, nil
}

// ReadNewPassword prompts twice and fails unless both entries match.
func ReadNewPassword(prompt string) ([]byte, error) {
	first, err := ReadPassword(prompt)
	if err != nil {
		return nil, err
	}
	second, err := ReadPassword("Repeat: ")
	if err != nil {
		memzero.Erase(first)
		return nil, err
	}
	defer memzero.Erase(second)
	if !bytes.Equal(first, second) {
		memzero.Erase(first)
		return nil, errors.New("passwords do not match")
	}
	return first, nil
}

// IsTerminal reports whether stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
