package shuffle

import (
	"github.com/cespare/xxhash/v2"
)

// Fingerprint is an order-sensitive 64-bit digest of an item sequence.
// Equal fingerprints are treated as equal orderings; the rare xxhash
// collision only costs an extra reshuffle.
type Fingerprint uint64

// FingerprintOf computes the digest of items in order. Each path is followed
// by a zero byte so that different splits of the same characters differ.
func FingerprintOf(items []Item) Fingerprint {
	d := xxhash.New()
	for _, it := range items {
		_, _ = d.WriteString(it.Path)
		_, _ = d.Write([]byte{0})
	}
	return Fingerprint(d.Sum64())
}

// FingerprintSet records the fingerprints of accepted orderings.
// It only grows. The zero value is an empty set ready to use.
type FingerprintSet struct {
	m map[Fingerprint]struct{}
}

// Contains reports whether fp has been recorded.
func (s *FingerprintSet) Contains(fp Fingerprint) bool {
	_, ok := s.m[fp]
	return ok
}

// Add records fp and reports whether it was new.
func (s *FingerprintSet) Add(fp Fingerprint) bool {
	if s.m == nil {
		s.m = make(map[Fingerprint]struct{})
	}
	if _, ok := s.m[fp]; ok {
		return false
	}
	s.m[fp] = struct{}{}
	return true
}

// Len returns the number of recorded fingerprints.
func (s *FingerprintSet) Len() int {
	return len(s.m)
}
