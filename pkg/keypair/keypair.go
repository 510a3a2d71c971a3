// Package keypair derives deterministic ed25519 signing keys from seeds.
package keypair

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/zeebo/blake3"

	"github.com/kardashev-net/seedkit/pkg/seedphrase"
)

// FingerprintSize is the number of hash bytes in a public-key fingerprint.
const FingerprintSize = 20

// Keypair holds an ed25519 signing key pair.
type Keypair struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// FromSeed derives the ed25519 keypair for a seed. The key material is
// exactly SHA-256(seed), delivered through a single-use entropy source, so
// identical seeds always produce identical keypairs.
func FromSeed(seed seedphrase.Seed) Keypair {
	pub, priv, err := ed25519.GenerateKey(newSeedEntropy(seed))
	if err != nil {
		// The entropy source never returns an error.
		panic(fmt.Sprintf("keypair: ed25519 generation failed: %v", err))
	}
	return Keypair{Public: pub, Private: priv}
}

// Sign produces an ed25519 signature over a message.
func (kp Keypair) Sign(message []byte) []byte {
	return ed25519.Sign(kp.Private, message)
}

// Fingerprint returns the short human-readable identifier for this keypair's
// public key.
func (kp Keypair) Fingerprint() string {
	return Fingerprint(kp.Public)
}

// Verifier verifies ed25519 signatures.
type Verifier interface {
	// Verify checks a signature against a message and public key.
	Verify(publicKey ed25519.PublicKey, message, signature []byte) bool
}

// Verify checks an ed25519 signature. Returns false on any malformed input.
func Verify(publicKey ed25519.PublicKey, message, signature []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(publicKey, message, signature)
}

// Ed25519Verifier implements the Verifier interface.
type Ed25519Verifier struct{}

// Verify checks a signature against a message and public key.
func (v Ed25519Verifier) Verify(publicKey ed25519.PublicKey, message, signature []byte) bool {
	return Verify(publicKey, message, signature)
}

// Fingerprint derives a short identifier from a public key:
// base58(BLAKE3(pubkey)[:20]).
func Fingerprint(publicKey ed25519.PublicKey) string {
	h := blake3.Sum256(publicKey)
	return base58.Encode(h[:FingerprintSize])
}
