package fs

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/extprune/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher computes inventory fingerprints with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes the sorted names, each terminated by a NUL byte.
func (h *Hasher) Fingerprint(names []string) string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)

	hasher := xxhash.New()
	for _, name := range sorted {
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{0}) // Separator
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
