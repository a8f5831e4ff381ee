// Package id provides unique identifier generation utilities.
// This is the canonical source for ID generation across the codebase.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// UUID generates a UUID v4 (random).
// Returns a string in the format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
func UUID() string {
	return uuid.NewString()
}

// Short generates a short random hex ID (16 characters).
// Suitable for user-facing IDs where brevity matters.
func Short() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// resourceCharset matches the base36 alphabet used for export resource ids.
const resourceCharset = "0123456789abcdefghijklmnopqrstuvwxyz"

// Resource generates an opaque export resource identifier: "req_" followed
// by nine base36 characters.
func Resource() string {
	b := make([]byte, 9)
	_, _ = rand.Read(b)
	out := make([]byte, 9)
	for i := range b {
		out[i] = resourceCharset[int(b[i])%len(resourceCharset)]
	}
	return "req_" + string(out)
}

// Source yields opaque resource identifiers for document exports. Ids only
// need to be unique within a single exported document, not globally stable,
// so tests can supply a deterministic Source.
type Source interface {
	NextID() string
}

// Rand is the default Source, backed by Resource.
type Rand struct{}

// NextID returns a fresh random resource id.
func (Rand) NextID() string { return Resource() }

// Sequence is a deterministic Source for tests. It yields
// <prefix>_1, <prefix>_2, ... in order. Not safe for concurrent use.
type Sequence struct {
	Prefix string
	n      int
}

// NextID returns the next id in the sequence.
func (s *Sequence) NextID() string {
	s.n++
	return fmt.Sprintf("%s_%d", s.Prefix, s.n)
}
