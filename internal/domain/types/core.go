package types

import (
	"slices"
	"strconv"
	"time"
)

// AccountID is the slot index of an account. IDs are never reused.
type AccountID uint64

// String returns the decimal form of the id.
func (id AccountID) String() string { return strconv.FormatUint(uint64(id), 10) }

// Ptr returns a pointer to a copy of id, for optional fields.
func (id AccountID) Ptr() *AccountID { return &id }

// ParseAccountID parses a decimal account id.
func ParseAccountID(s string) (AccountID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return AccountID(v), err
}

// Now returns the current UTC time truncated to milliseconds, the resolution
// stored on disk.
func Now() time.Time {
	return time.UnixMilli(time.Now().UnixMilli()).UTC()
}

// IDSet is a set of account ids kept as an ascending slice without
// duplicates. The zero value is an empty set.
type IDSet []AccountID

// NewIDSet builds a set from ids in any order.
func NewIDSet(ids ...AccountID) IDSet {
	var s IDSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int { return len(s) }

// Contains reports whether id is in the set.
func (s IDSet) Contains(id AccountID) bool {
	_, ok := slices.BinarySearch(s, id)
	return ok
}

// Add inserts id, reporting whether it was missing.
func (s *IDSet) Add(id AccountID) bool {
	i, ok := slices.BinarySearch(*s, id)
	if ok {
		return false
	}
	*s = slices.Insert(*s, i, id)
	return true
}

// Remove deletes id, reporting whether it was present.
func (s *IDSet) Remove(id AccountID) bool {
	i, ok := slices.BinarySearch(*s, id)
	if !ok {
		return false
	}
	*s = slices.Delete(*s, i, i+1)
	return true
}

// Clone returns an independent copy of the set. An empty set clones to nil.
func (s IDSet) Clone() IDSet {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

// Equal reports whether both sets hold the same ids.
func (s IDSet) Equal(o IDSet) bool { return slices.Equal(s, o) }

// Minus returns the ids of s that are not in o.
func (s IDSet) Minus(o IDSet) IDSet {
	var out IDSet
	for _, id := range s {
		if !o.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}
