package codec

import (
	"encoding/binary"
	"slices"
	"time"
)

const (
	flagAbsent  byte = 0
	flagPresent byte = 1
)

// Writer appends little-endian encoded values to a growable buffer.
// Encoding never fails.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with room for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Bytes returns the encoded buffer. The slice aliases the Writer's storage.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

func (w *Writer) PutByte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *Writer) PutBool(v bool) {
	if v {
		w.PutByte(flagPresent)
		return
	}
	w.PutByte(flagAbsent)
}

func (w *Writer) PutUint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *Writer) PutInt64(v int64) {
	w.PutUint64(uint64(v))
}

// PutFixed writes b verbatim with no length prefix. Used for hashes and
// nonces whose size is implied by the format.
func (w *Writer) PutFixed(b []byte) {
	w.buf = append(w.buf, b...)
}

// PutBytes writes an 8-byte length followed by b.
func (w *Writer) PutBytes(b []byte) {
	w.PutUint64(uint64(len(b)))
	w.buf = append(w.buf, b...)
}

// PutString writes the byte length of s followed by its UTF-8 bytes.
func (w *Writer) PutString(s string) {
	w.PutUint64(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

func (w *Writer) PutOptionalUint64(v *uint64) {
	if v == nil {
		w.PutByte(flagAbsent)
		return
	}
	w.PutByte(flagPresent)
	w.PutUint64(*v)
}

func (w *Writer) PutOptionalString(s *string) {
	if s == nil {
		w.PutByte(flagAbsent)
		return
	}
	w.PutByte(flagPresent)
	w.PutString(*s)
}

func (w *Writer) PutOptionalBytes(b []byte) {
	if b == nil {
		w.PutByte(flagAbsent)
		return
	}
	w.PutByte(flagPresent)
	w.PutBytes(b)
}

// PutStringMap writes the entry count followed by key/value pairs in
// ascending key order.
func (w *Writer) PutStringMap(m map[string]string) {
	w.PutUint64(uint64(len(m)))
	for _, k := range SortedKeys(m) {
		w.PutString(k)
		w.PutString(m[k])
	}
}

// PutTime writes t as signed UTC milliseconds since the Unix epoch.
func (w *Writer) PutTime(t time.Time) {
	w.PutInt64(t.UnixMilli())
}

// PutSet writes the element count followed by the distinct elements of
// values in ascending order. values itself is not modified.
func PutSet[T ~uint64](w *Writer, values []T) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	w.PutUint64(uint64(len(sorted)))
	for _, v := range sorted {
		w.PutUint64(uint64(v))
	}
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
