package keypair

import (
	"crypto/sha256"
	"fmt"

	"github.com/kardashev-net/seedkit/pkg/seedphrase"
)

// seedEntropy is the restricted random source that seeds ed25519 key
// generation. Its only valid use is a single 32-byte read returning
// SHA-256(seed). Every other usage pattern is a programming error and
// panics: recovering into a retry would hand the caller a different,
// non-deterministic key for the same seed.
type seedEntropy struct {
	digest [sha256.Size]byte
	used   bool
}

func newSeedEntropy(seed seedphrase.Seed) *seedEntropy {
	return &seedEntropy{digest: sha256.Sum256(seed[:])}
}

// Read implements io.Reader under the restricted contract above.
func (e *seedEntropy) Read(p []byte) (int, error) {
	if len(p) != sha256.Size {
		panic(fmt.Sprintf("seed entropy: expected a single %d-byte read, got %d", sha256.Size, len(p)))
	}
	if e.used {
		panic("seed entropy: entropy has already been used")
	}
	e.used = true
	copy(p, e.digest[:])
	return len(p), nil
}
