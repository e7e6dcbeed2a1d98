// Package codec implements the deterministic binary encoding used inside
// the encrypted account file.
//
// # Encoding
//
//   - integers: fixed-width little-endian (8 bytes; 1 byte for flags)
//   - optional<T>: 1-byte flag (0 absent, 1 present) then T when present
//   - string / bytes: 8-byte byte count then the raw bytes
//   - set<uint>: 8-byte count then the elements in ascending order
//   - map<string,string>: 8-byte count then pairs in ascending key order
//   - fixed arrays: exactly N raw bytes, no prefix
//   - timestamps: signed UTC milliseconds as a 64-bit integer
//
// Writer never fails. Reader never panics or returns partial data: reading
// past the end yields fault.ErrTruncated and malformed content yields
// another fault.FormatError.
package codec
