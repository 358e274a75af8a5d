// Package checksum tracks content digests so unchanged notes can be skipped.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Set remembers the last seen digest per path. It is not safe for
// concurrent use.
type Set struct {
	sums map[string]string
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{sums: make(map[string]string)}
}

// Changed records the digest of data for path and reports whether it
// differs from the previously recorded one. A path seen for the first
// time counts as changed.
func (s *Set) Changed(path string, data []byte) bool {
	sum := Sum(data)
	if prev, ok := s.sums[path]; ok && prev == sum {
		return false
	}
	s.sums[path] = sum
	return true
}

// Forget drops path so its next appearance counts as a change.
func (s *Set) Forget(path string) {
	delete(s.sums, path)
}

// Len returns the number of tracked paths.
func (s *Set) Len() int {
	return len(s.sums)
}
