package codec

import (
	"encoding/binary"
	"fmt"
	"time"
	"unicode/utf8"

	"acctvault/internal/fault"
)

// Reader decodes values from a byte slice. Every method fails with a
// fault.FormatError instead of reading past the end.
type Reader struct {
	data []byte
	off  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

// Done fails unless every byte has been consumed.
func (r *Reader) Done() error {
	if r.Remaining() != 0 {
		return fmt.Errorf("%w (%d bytes)", fault.ErrTrailingBytes, r.Remaining())
	}
	return nil
}

func (r *Reader) take(n uint64) ([]byte, error) {
	if n > uint64(r.Remaining()) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			fault.ErrTruncated, n, r.off, r.Remaining())
	}
	b := r.data[r.off : r.off+int(n)]
	r.off += int(n)
	return b, nil
}

func (r *Reader) ReadByte() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBool reads a presence flag; any value other than 0 or 1 is rejected.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case flagAbsent:
		return false, nil
	case flagPresent:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %d at offset %d", fault.ErrInvalidFlag, b, r.off-1)
	}
}

func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFixed reads exactly len(dst) bytes into dst.
func (r *Reader) ReadFixed(dst []byte) error {
	b, err := r.take(uint64(len(dst)))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// ReadBytes reads a length-prefixed byte vector into a fresh slice.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return "", err
	}
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w at offset %d", fault.ErrInvalidUTF8, r.off-len(b))
	}
	return string(b), nil
}

func (r *Reader) ReadOptionalUint64() (*uint64, error) {
	ok, err := r.ReadBool()
	if err != nil || !ok {
		return nil, err
	}
	v, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Reader) ReadOptionalString() (*string, error) {
	ok, err := r.ReadBool()
	if err != nil || !ok {
		return nil, err
	}
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Reader) ReadOptionalBytes() ([]byte, error) {
	ok, err := r.ReadBool()
	if err != nil || !ok {
		return nil, err
	}
	return r.ReadBytes()
}

// ReadStringMap reads a count-prefixed sequence of key/value string pairs.
func (r *Reader) ReadStringMap() (map[string]string, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	// each pair carries two 8-byte length prefixes at minimum
	if n > uint64(r.Remaining())/16 {
		return nil, fmt.Errorf("%w: map of %d entries", fault.ErrTruncated, n)
	}
	m := make(map[string]string, n)
	for i := uint64(0); i < n; i++ {
		k, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		v, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

// ReadTime reads signed UTC milliseconds since the Unix epoch.
func (r *Reader) ReadTime() (time.Time, error) {
	ms, err := r.ReadInt64()
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

// ReadSet reads a count-prefixed sequence of 8-byte integers and returns
// them as an ascending set.
func ReadSet[T ~uint64](r *Reader) ([]T, error) {
	n, err := r.ReadUint64()
	if err != nil {
		return nil, err
	}
	if n > uint64(r.Remaining())/8 {
		return nil, fmt.Errorf("%w: set of %d entries", fault.ErrTruncated, n)
	}
	out := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		v, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}
		out = insertSorted(out, T(v))
	}
	return out, nil
}

func insertSorted[T ~uint64](s []T, v T) []T {
	i := len(s)
	for i > 0 && s[i-1] >= v {
		if s[i-1] == v {
			return s
		}
		i--
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
