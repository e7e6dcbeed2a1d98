package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
)

// Clipboard is the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemClipboard returns the OS clipboard.
func SystemClipboard() Clipboard { return systemClipboard{} }

// ClipboardSupported reports whether a clipboard utility is available.
func ClipboardSupported() bool { return !clipboard.Unsupported }

// CopyAndClear puts text on cb, waits for d (or ctx), then clears cb if it
// still holds text. A zero d leaves the text in place.
func CopyAndClear(ctx context.Context, cb Clipboard, text string, d time.Duration) error {
	if err := cb.WriteAll(text); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}

	cur, err := cb.ReadAll()
	if err != nil {
		return err
	}
	if cur != text {
		return nil
	}
	return cb.WriteAll("")
}
